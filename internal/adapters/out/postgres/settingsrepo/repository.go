package settingsrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get reads the value stored under key. A missing key returns nil without an
// error, indistinguishable from a key explicitly set to null.
func (r *GormSettingsRepository) Get(ctx context.Context, key string) (any, error) {
	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var value any
	if err := json.Unmarshal([]byte(dto.Value), &value); err != nil {
		return nil, err
	}

	return value, nil
}

// Set upserts the value under key and returns it as stored. The whole value
// is replaced, there is no merging with a previous document.
func (r *GormSettingsRepository) Set(ctx context.Context, key string, value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	dto := SettingDTO{Key: key, Value: string(raw)}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dto).Error
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, key)
}
