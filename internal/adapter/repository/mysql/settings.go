package mysql

import (
	"context"
	"errors"

	"library-backend/internal/domain/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{db: db} }

func (r *SettingsRepository) Get(ctx context.Context, key string) (*settings.Setting, error) {
	var out settings.Setting
	res := r.db.WithContext(ctx).Where("`key` = ?", key).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, settings.ErrNotFound
	}
	return &out, res.Error
}

func (r *SettingsRepository) List(ctx context.Context) ([]settings.Setting, error) {
	var out []settings.Setting
	err := r.db.WithContext(ctx).Order("`key`").Find(&out).Error
	return out, err
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *settings.Setting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(s).Error
}
