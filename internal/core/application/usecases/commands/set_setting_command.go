package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSetSettingCommandIsNotConstructed = errors.New(
	"SetSettingCommand must be created via NewSetSettingCommand constructor",
)

// SetSettingCommand stores a value under a settings key.
// The value may be any JSON-encodable payload, nil included.
type SetSettingCommand struct {
	key   string
	value any

	guard guard.ConstructorGuard
}

// NewSetSettingCommand creates a command to upsert a settings value.
func NewSetSettingCommand(key string, value any) (SetSettingCommand, error) {
	if key == "" {
		return SetSettingCommand{}, errs.NewValueIsRequiredError("key")
	}

	return SetSettingCommand{
		key:   key,
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetSettingCommand) Validate() error {
	return c.guard.Validate(ErrSetSettingCommandIsNotConstructed)
}

// Key returns the settings key.
func (c SetSettingCommand) Key() string {
	return c.key
}

// Value returns the value to store.
func (c SetSettingCommand) Value() any {
	return c.value
}
