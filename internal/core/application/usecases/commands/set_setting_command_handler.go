package commands

import (
	"context"
)

// SetSettingCommandHandler upserts key/value settings entries.
type SetSettingCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewSetSettingCommandHandler creates a handler for settings writes.
func NewSetSettingCommandHandler(uowFactory SettingsUoWFactory) SetSettingCommandHandler {
	return SetSettingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the value and returns it as persisted.
func (h *SetSettingCommandHandler) Handle(ctx context.Context, cmd SetSettingCommand) (any, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.SettingsRepository().Set(ctx, cmd.Key(), cmd.Value())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
