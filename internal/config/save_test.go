package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Save ──────────────────────────────────────────────────────────────────────

// TestSave_RoundTripsThroughStore verifies that a saved file is readable back
// through OpenStore under the canonical flat keys.
func TestSave_RoundTripsThroughStore(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Port = 8080
	cfg.Mode = ModeProcess
	cfg.IndexPage = "/home.html"

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Save(cfg, path))

	store, err := OpenStore(path)
	require.NoError(t, err)

	port, ok := store.Int(KeyPort)
	assert.True(t, ok)
	assert.Equal(t, int64(8080), port)

	mode, ok := store.Str(KeyMode)
	assert.True(t, ok)
	assert.Equal(t, "process", mode)

	index, ok := store.Str(KeyIndexPage)
	assert.True(t, ok)
	assert.Equal(t, "/home.html", index)
}

// TestSave_CreatesParentDirs verifies that missing parent directories are
// created.
func TestSave_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "config.yaml")

	assert.NoError(t, Save(NewDefaultConfig(), path))
}

// TestSave_ReleasedConfig verifies that a released Config cannot be saved.
func TestSave_ReleasedConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Close())

	err := Save(cfg, filepath.Join(t.TempDir(), "config.yaml"))
	assert.ErrorIs(t, err, ErrReleased)
}
