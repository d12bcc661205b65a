package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/trix/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "random", cfg.Mover)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
tickInterval: 250ms
seed: 42
mover: still
cellSize: 12
audio: true
`))
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "still", cfg.Mover)
	assert.Equal(t, 12, cfg.CellSize)
	assert.True(t, cfg.Audio)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "trix", cfg.Title, "unset fields keep their defaults")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"zero interval", "tickInterval: 0s", config.ErrTickInterval},
		{"negative interval", "tickInterval: -5ms", config.ErrTickInterval},
		{"tiny cells", "cellSize: 2", config.ErrCellSize},
		{"huge cells", "cellSize: 100", config.ErrCellSize},
		{"unknown mover", "mover: up", config.ErrMover},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := config.Parse([]byte("tickInterval: [1, 2]"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mover: left\nseed: 7\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "left", cfg.Mover)
	assert.Equal(t, uint64(7), cfg.ResolveSeed(time.Now()))

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveSeed(t *testing.T) {
	cfg := config.Default()
	now := time.Unix(0, 123456789)
	assert.Equal(t, uint64(123456789), cfg.ResolveSeed(now))
}
