package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{
		Version:    1,
		DBPath:     "/tmp/catalog.db",
		SchemaPath: "/tmp/variants.yaml",
		UISettings: UISettings{PageSize: 25, ConfirmDelete: true},
	}
	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPathMissing(t *testing.T) {
	cs := NewConfigService()

	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadAppliesDefaults(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 10, cfg.UISettings.PageSize)
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0644))

	_, err := cs.LoadFromPath(path)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, 10, cfg.UISettings.PageSize)
	assert.True(t, cfg.UISettings.ConfirmDelete)
}

func TestSaveCreatesDirectory(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "nested", "deeper", "config.toml")

	require.NoError(t, cs.SaveToPath(DefaultConfig(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
