package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads YAML and fills defaults", func(t *testing.T) {
		// Given: a config file with only a few keys
		path := writeConfig(t, "log-level: debug\nmode: board\nboard:\n  tile-width: 9\n")

		// When: loading it
		conf, err := Load(path)

		// Then: file values win and the rest come from defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ModeBoard, conf.Mode)
		assert.Equal(t, 9, conf.Board.TileWidth)
		assert.Equal(t, 3, conf.Board.TileHeight)
		assert.Equal(t, "TicTacToe", conf.Board.Title)
		assert.Equal(t, [3]string{".", "O", "X"}, conf.Console.Symbols())
		assert.False(t, conf.Console.NoPause)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "mode: board\n")
		t.Setenv("TICTACTOE_MODE", ModeConsole)
		t.Setenv("TICTACTOE_CONSOLE_NO_PAUSE", "true")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, ModeConsole, conf.Mode)
		assert.True(t, conf.Console.NoPause)
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.NoError(t, err)
		assert.Equal(t, ModeConsole, conf.Mode)
		assert.Equal(t, 7, conf.Board.TileWidth)
	})

	t.Run("Unknown mode is rejected", func(t *testing.T) {
		path := writeConfig(t, "mode: web\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("Tiny tiles are rejected", func(t *testing.T) {
		path := writeConfig(t, "board:\n  tile-width: 1\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "board tiles too small")
	})
}

func TestMustLoad(t *testing.T) {
	path := writeConfig(t, "mode: [")

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
