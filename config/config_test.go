package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileIsOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.conf"))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 9, cfg.Height)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termunator.conf")
	content := "TERMUNATOR_TICK_RATE=30\nTERMUNATOR_WIDTH=40\nTERMUNATOR_BORDER=false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("TERMUNATOR_WIDTH", "50")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate, "file value")
	assert.Equal(t, 50, cfg.Width, "env overrides file")
	assert.False(t, cfg.Border)
	assert.Equal(t, 9, cfg.Height, "default kept")
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(t *testing.T, c Config)
	}{
		{
			name: "non-positive sizes reset",
			in:   Config{Width: 0, Height: -3},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 32, c.Width)
				assert.Equal(t, 9, c.Height)
			},
		},
		{
			name: "volume clamped high",
			in:   Config{MasterVolume: 3},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 1.0, c.MasterVolume)
			},
		},
		{
			name: "volume clamped low",
			in:   Config{MasterVolume: -1},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 0.0, c.MasterVolume)
			},
		},
		{
			name: "tick rate bounded",
			in:   Config{TickRate: 1_000_000},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, 1000, c.TickRate)
			},
		},
		{
			name: "empty strings filled",
			in:   Config{},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "logs", c.LogDir)
				assert.Equal(t, "games", c.GamesDir)
				assert.Equal(t, "go run .", c.Runner)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.Normalize()
			tt.check(t, c)
		})
	}
}
