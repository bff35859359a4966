package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteDispatchCommand_ValidInput(t *testing.T) {
	photo := "done.jpg"
	cmd, err := commands.NewCompleteDispatchCommand(3, &photo, map[string]any{"by": "Bob"})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(3), cmd.OrderID())
	assert.Equal(t, &photo, cmd.Photo())
	assert.Equal(t, map[string]any{"by": "Bob"}, cmd.Answers())
}

func TestNewCompleteDispatchCommand_NonPositiveID(t *testing.T) {
	_, err := commands.NewCompleteDispatchCommand(0, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCompleteDispatchCommand_ZeroValue(t *testing.T) {
	var cmd commands.CompleteDispatchCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCompleteDispatchCommandIsNotConstructed)
}
