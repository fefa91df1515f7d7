package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without file or environment", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.Equal(t, "127.0.0.1:8050", cfg.Address())
		assert.Equal(t, STORAGE_MODE_EMBED, cfg.Storage.Mode)
	})

	t.Run("YAML file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dashboard.yaml")
		content := "host: 0.0.0.0\nport: \"9000\"\ndebug: true\nstorage:\n  mode: LOCAL\n  path: /srv/data\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:9000", cfg.Address())
		assert.True(t, cfg.Debug)
		assert.Equal(t, STORAGE_MODE_LOCAL, cfg.Storage.Mode)
		assert.Equal(t, "/srv/data", cfg.Storage.Path)
		assert.Equal(t, "gapminder_2007.csv", cfg.Storage.DatasetFile, "Expected unset keys to keep their default")
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dashboard.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\n"), 0600))
		t.Setenv("DASHBOARD_PORT", "9100")
		t.Setenv("DASHBOARD_DEBUG", "true")
		t.Setenv("S3_BUCKET_NAME", "datasets")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "9100", cfg.Port)
		assert.True(t, cfg.Debug)
		assert.Equal(t, "datasets", cfg.Storage.S3.BucketName)
	})

	t.Run("Invalid boolean in environment", func(t *testing.T) {
		t.Setenv("DASHBOARD_DEBUG", "maybe")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DASHBOARD_DEBUG")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("Malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dashboard.yaml")
		require.NoError(t, os.WriteFile(path, []byte("host: [unclosed\n"), 0600))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
