package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("ORD-1", "Acme Site", "1 Main St", []string{"box-a", "box-b"}, "D1")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "ORD-1", cmd.Number())
	assert.Equal(t, "Acme Site", cmd.SiteName())
	assert.Equal(t, "1 Main St", cmd.SiteAddress())
	assert.Equal(t, []string{"box-a", "box-b"}, cmd.Items())
	assert.Equal(t, "D1", cmd.Driver())
}

func TestNewCreateOrderCommand_AllFieldsOptional(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("", "", "", nil, "")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Empty(t, cmd.Number())
	assert.Nil(t, cmd.Items())
}

func TestCreateOrderCommand_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
