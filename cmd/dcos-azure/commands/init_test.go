package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	cmd := Init()

	require.NotNil(t, cmd)
	assert.Equal(t, "init", cmd.Use)
	assert.Equal(t, "Create a deployment configuration file", cmd.Short)
	assert.NotNil(t, cmd.RunE, "Init command should have RunE function")
}

func TestInit_Flags(t *testing.T) {
	cmd := Init()

	outputFlag := cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag, "output flag should exist")
	assert.Equal(t, "o", outputFlag.Shorthand)

	nonInteractiveFlag := cmd.Flags().Lookup("non-interactive")
	require.NotNil(t, nonInteractiveFlag, "non-interactive flag should exist")
	assert.Equal(t, "false", nonInteractiveFlag.DefValue)
}
