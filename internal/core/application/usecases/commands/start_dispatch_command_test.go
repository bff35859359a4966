package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartDispatchCommand_ValidInput(t *testing.T) {
	photo := "start.jpg"
	cmd, err := commands.NewStartDispatchCommand(7, &photo, map[string]any{"plate": "AB-12"})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.OrderID())
	assert.Equal(t, &photo, cmd.Photo())
	assert.Equal(t, map[string]any{"plate": "AB-12"}, cmd.Answers())
}

func TestNewStartDispatchCommand_OptionalFieldsAbsent(t *testing.T) {
	cmd, err := commands.NewStartDispatchCommand(1, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.Photo())
	assert.Nil(t, cmd.Answers())
}

func TestNewStartDispatchCommand_NonPositiveID(t *testing.T) {
	_, err := commands.NewStartDispatchCommand(0, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewStartDispatchCommand(-5, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStartDispatchCommand_ZeroValue(t *testing.T) {
	var cmd commands.StartDispatchCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStartDispatchCommandIsNotConstructed)
}
