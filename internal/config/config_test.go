package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, Defaults(), cfg)
	})

	t.Run("File overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		content := "addr: \":8080\"\ndata:\n  csv: /srv/presence.csv\ncache:\n  ttl: 30s\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "/srv/presence.csv", cfg.Data.Csv)
		assert.Equal(t, FileSource, cfg.Data.Source)
		assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data:\n  csv: /srv/presence.csv\n"), 0o644))
		t.Setenv("PRESENCE_DATA_CSV", "/tmp/other.csv")
		t.Setenv("PRESENCE_DATA_SOURCE", "s3")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/other.csv", cfg.Data.Csv)
		assert.Equal(t, S3Source, cfg.Data.Source)
		assert.Equal(t, "eu-central-1", cfg.Data.S3.Region)
	})

	t.Run("Invalid YAML is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		require.NoError(t, os.WriteFile(path, []byte("data: [unclosed\n"), 0o644))

		_, err := Load(path)

		assert.Error(t, err)
	})
}
