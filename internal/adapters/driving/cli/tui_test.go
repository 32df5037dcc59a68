package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Registered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"tui"})

	require.NoError(t, err)
	assert.Same(t, tuiCmd, cmd)
	assert.NotNil(t, cmd.Flags().Lookup("no-trace-db"))
	assert.Contains(t, cmd.Long, "ctrl+l switches between English and Spanish")
}

func TestTUICmd_RequiresAskService(t *testing.T) {
	_, err := runCLI(t, &Services{Playbooks: fakePlaybookService{}}, "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ask service is required")
}
