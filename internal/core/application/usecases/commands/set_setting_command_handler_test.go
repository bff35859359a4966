package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetSettingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	value := map[string]any{"threshold": float64(3)}
	cmd, err := commands.NewSetSettingCommand("reminder", value)
	require.NoError(t, err)

	repo := new(MockSettingsRepository)
	uow := new(MockSettingsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(repo).Once(),
		repo.On("Set", mock.Anything, "reminder", value).Return(value, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettingsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetSettingCommandHandler(factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, value, got)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetSettingCommandHandler_Handle_SetError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSetSettingCommand("reminder", nil)
	require.NoError(t, err)

	repo := new(MockSettingsRepository)
	uow := new(MockSettingsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingsRepository").Return(repo).Once(),
		repo.On("Set", mock.Anything, "reminder", nil).
			Return(nil, errors.New("set error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettingsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetSettingCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
