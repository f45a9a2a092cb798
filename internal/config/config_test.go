package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultStoragePath(), cfg.StoragePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 200*time.Millisecond, cfg.DraftCommitDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.SaveDelay)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\ntheme: light\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, DefaultStoragePath(), cfg.StoragePath)
	assert.Equal(t, 300*time.Millisecond, cfg.SaveDelay)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unterminated"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadClampsNonPositiveDelays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("draft_commit_delay: 0s\nsave_delay: -5ms\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 200*time.Millisecond, cfg.DraftCommitDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.SaveDelay)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yml")

	in := &Config{
		StoragePath:      filepath.Join(dir, "data.db"),
		LogPath:          filepath.Join(dir, "app.log"),
		LogLevel:         "warn",
		Theme:            "light",
		DraftCommitDelay: 50 * time.Millisecond,
		SaveDelay:        75 * time.Millisecond,
	}
	require.NoError(t, in.Save(path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
