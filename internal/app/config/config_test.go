package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("reads values from yaml file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := []byte(`
server:
  address: 127.0.0.1
  port: 9090
  mode: release
database:
  driver: postgres
  dsn: host=localhost user=app dbname=expense
jwt:
  secret: test-secret
  access_ttl_minutes: 30
redis:
  enabled: true
  addr: localhost:6379
`)
		require.NoError(t, os.WriteFile(path, content, 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1", cfg.Server.Address)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "release", cfg.Server.Mode)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "test-secret", cfg.JWT.Secret)
		assert.Equal(t, 30, cfg.JWT.AccessTTLMinutes)
		assert.True(t, cfg.Redis.Enabled)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.True(t, cfg.Database.Migrate)
		assert.Equal(t, 15, cfg.JWT.AccessTTLMinutes)
		assert.Equal(t, 7*24, cfg.JWT.RefreshTTLHours)
	})

	t.Run("environment variables apply without a config file", func(t *testing.T) {
		t.Setenv("ET_SERVER_PORT", "9999")
		t.Setenv("ET_SERVER_MODE", "release")
		t.Setenv("ET_JWT_SECRET", "env-secret")
		t.Setenv("ET_REDIS_ENABLED", "true")
		t.Setenv("ET_REDIS_PASSWORD", "env-pass")
		t.Setenv("ET_DATABASE_LOG_MODE", "true")

		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)

		assert.Equal(t, 9999, cfg.Server.Port)
		assert.Equal(t, "release", cfg.Server.Mode)
		assert.Equal(t, "env-secret", cfg.JWT.Secret)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "env-pass", cfg.Redis.Password)
		assert.True(t, cfg.Database.LogMode)
	})

	t.Run("environment variables override file values", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := []byte("jwt:\n  secret: file-secret\n")
		require.NoError(t, os.WriteFile(path, content, 0o644))

		t.Setenv("ET_JWT_SECRET", "env-secret")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env-secret", cfg.JWT.Secret)
	})

	t.Run("broken yaml returns error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
