package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartnus/internal/config"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "smartnus", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "smartnus.db", cfg.Storage.Path)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartnus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  path: custom.db\nui:\n  theme: dark\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.db", cfg.Storage.Path)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "smartnus", cfg.App.Name, "unset fields keep defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartnus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: light\n"), 0o644))
	t.Setenv("SMARTNUS_THEME", "dark")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoadRejectsInvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smartnus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: blue\n"), 0o644))

	_, err := config.Load(path)
	assert.ErrorContains(t, err, "validate config")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "smartnus.yaml")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	cfg.UI.Theme = "dark"
	require.NoError(t, config.Save(path, cfg))

	reloaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", reloaded.UI.Theme)
}
