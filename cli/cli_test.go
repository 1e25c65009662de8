package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nebula-vault/config"
	"nebula-vault/logger"
	"nebula-vault/simulation"
)

func noWindow(config.Settings) error { return nil }

func TestFrameCmd_PrintsOnlyTheFrame(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	var out bytes.Buffer
	root := NewRootCmd(noWindow)
	root.SetOut(&out)
	root.SetArgs([]string{"frame"})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "┌──────────┐", lines[0])
	assert.Equal(t, "│·····@····│", lines[6])
	assert.Equal(t, "└──────────┘", lines[11])
	assert.Equal(t, os.Stderr, logger.Log.Out)
}

func TestFrameCmd_TicksFlag(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCmd(noWindow)
	root.SetOut(&out)
	root.SetArgs([]string{"frame", "--ticks", "3"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "┌──────────┐", strings.Split(out.String(), "\n")[0])
}

func TestFrameCmd_RejectsZeroTicks(t *testing.T) {
	root := NewRootCmd(noWindow)
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"frame", "--ticks", "0"})

	err := root.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulation.ErrInvalidTicks))
}

func TestRootCmd_PassesSettingsToWindow(t *testing.T) {
	t.Setenv("NEBULA_TPS", "30")

	var got config.Settings
	root := NewRootCmd(func(s config.Settings) error {
		got = s
		return nil
	})
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	assert.Equal(t, 30, got.TPS)
}

func TestRootCmd_RejectsInvalidSettings(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	called := false
	root := NewRootCmd(func(config.Settings) error {
		called = true
		return nil
	})
	root.SetArgs([]string{})

	err := root.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidSettings))
	assert.False(t, called)
}
