package mysql

import (
	"context"
	"errors"

	readerDomain "library-backend/internal/domain/reader"

	"gorm.io/gorm"
)

type ReaderRepository struct{ db *gorm.DB }

func NewReaderRepository(db *gorm.DB) *ReaderRepository { return &ReaderRepository{db: db} }

func (r *ReaderRepository) Create(ctx context.Context, rd *readerDomain.Reader) error {
	return r.db.WithContext(ctx).Create(rd).Error
}

func (r *ReaderRepository) GetByReaderNo(ctx context.Context, readerNo string) (*readerDomain.Reader, error) {
	var out readerDomain.Reader
	res := r.db.WithContext(ctx).Where("reader_no = ?", readerNo).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, readerDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *ReaderRepository) Exists(ctx context.Context, readerNo string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&readerDomain.Reader{}).Where("reader_no = ?", readerNo).Count(&n).Error
	return n > 0, err
}

func (r *ReaderRepository) Delete(ctx context.Context, readerNo string) error {
	res := r.db.WithContext(ctx).Where("reader_no = ?", readerNo).Delete(&readerDomain.Reader{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return readerDomain.ErrNotFound
	}
	return nil
}
