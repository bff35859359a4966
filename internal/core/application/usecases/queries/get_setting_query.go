package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetSettingQueryIsNotConstructed = errors.New(
	"GetSettingQuery must be created via NewGetSettingQuery constructor",
)

// GetSettingQuery retrieves the value stored under a settings key.
type GetSettingQuery struct {
	key string

	guard guard.ConstructorGuard
}

// NewGetSettingQuery creates a query to read one settings value.
func NewGetSettingQuery(key string) (GetSettingQuery, error) {
	if key == "" {
		return GetSettingQuery{}, errs.NewValueIsRequiredError("key")
	}

	return GetSettingQuery{
		key:   key,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSettingQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingQueryIsNotConstructed)
}

// Key returns the settings key to read.
func (q GetSettingQuery) Key() string {
	return q.key
}
