package mysql

import (
	"context"
	"errors"

	"library-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

type BookRepository struct{ db *gorm.DB }

func NewBookRepository(db *gorm.DB) *BookRepository { return &BookRepository{db: db} }

func (r *BookRepository) Create(ctx context.Context, b *catalog.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepository) GetByTomNo(ctx context.Context, tomNo string) (*catalog.Book, error) {
	var out catalog.Book
	res := r.db.WithContext(ctx).Where("tom_no = ?", tomNo).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrNotFound
	}
	return &out, res.Error
}

func (r *BookRepository) Exists(ctx context.Context, tomNo string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&catalog.Book{}).Where("tom_no = ?", tomNo).Count(&n).Error
	return n > 0, err
}

func (r *BookRepository) ListAvailable(ctx context.Context) ([]catalog.Book, error) {
	var out []catalog.Book
	err := r.db.WithContext(ctx).
		Where("tom_no NOT IN (?)",
			r.db.Table("borrows").Select("book_tom_no").Where("returned_at IS NULL")).
		Order("title").
		Find(&out).Error
	return out, err
}
