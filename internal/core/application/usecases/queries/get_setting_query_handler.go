package queries

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

// GetSettingQueryHandler reads key/value settings straight from the database.
// A missing key is not an error: it returns a nil value, so callers cannot
// tell a missing key apart from one explicitly set to null.
type GetSettingQueryHandler struct {
	db *gorm.DB
}

// NewGetSettingQueryHandler creates a handler for settings reads.
func NewGetSettingQueryHandler(db *gorm.DB) GetSettingQueryHandler {
	return GetSettingQueryHandler{db: db}
}

// Handle fetches and decodes the stored JSON value for the key.
func (h GetSettingQueryHandler) Handle(ctx context.Context, query GetSettingQuery) (any, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT value
		FROM settings
		WHERE key = ?
	`, query.Key()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	var raw string
	if err = rows.Scan(&raw); err != nil {
		return nil, err
	}

	var value any
	if err = json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, err
	}

	return value, nil
}
