package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Greater(t, cfg.IndentedPadding, cfg.BasePadding)
	assert.InDelta(t, 0.4, cfg.FadeStartAlpha, 1e-9)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MODVIEW_CACHE_DIR", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().WatchInterval, cfg.WatchInterval)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path: /tmp/x.db
watch_interval: 5s
indented_padding: 6
fade_start_alpha: 0.25
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, 5*time.Second, cfg.WatchInterval)
	assert.Equal(t, 6, cfg.IndentedPadding)
	assert.InDelta(t, 0.25, cfg.FadeStartAlpha, 1e-9)
	assert.Equal(t, Default().BasePadding, cfg.BasePadding)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watch_interval: [\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fade_start_alpha: 1.5\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsZeroAvatarPixels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("avatar_pixels: 0\n"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "avatar_pixels")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("cache dir moves db and log", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("MODVIEW_CACHE_DIR", dir)
		t.Setenv("MODVIEW_DB", "")

		cfg := Default()
		cfg.applyEnvOverrides()
		assert.Equal(t, filepath.Join(dir, "notes.db"), cfg.DBPath)
		assert.Equal(t, filepath.Join(dir, "debug.log"), cfg.LogPath)
	})

	t.Run("db overrides cache dir", func(t *testing.T) {
		t.Setenv("MODVIEW_CACHE_DIR", t.TempDir())
		t.Setenv("MODVIEW_DB", "/tmp/other.db")

		cfg := Default()
		cfg.applyEnvOverrides()
		assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	})

	t.Run("bad duration is ignored", func(t *testing.T) {
		t.Setenv("MODVIEW_WATCH_INTERVAL", "soon")
		cfg := Default()
		cfg.applyEnvOverrides()
		assert.Equal(t, Default().WatchInterval, cfg.WatchInterval)
	})

	t.Run("watch interval and level", func(t *testing.T) {
		t.Setenv("MODVIEW_WATCH_INTERVAL", "750ms")
		t.Setenv("MODVIEW_LOG_LEVEL", "debug")
		cfg := Default()
		cfg.applyEnvOverrides()
		assert.Equal(t, 750*time.Millisecond, cfg.WatchInterval)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}
