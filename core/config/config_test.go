package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "data/products.json", cfg.Store.Path)
	assert.Equal(t, 5, cfg.Store.BackupCount)
	assert.True(t, cfg.Store.Ledger)
	assert.Equal(t, "data/cache.json", cfg.Cache.Path)
	assert.Equal(t, 3, cfg.Upstream.MaxAttempts)
	assert.Equal(t, 1000, cfg.Upstream.BaseDelayMS)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Mirror.Enabled())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_API_KEY", "secret-token")
	t.Setenv("UPSTREAM_MAX_ATTEMPTS", "5")
	t.Setenv("STORE_PATH", "/tmp/alt/products.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "secret-token", cfg.Upstream.APIKey)
	assert.Equal(t, 5, cfg.Upstream.MaxAttempts)
	assert.Equal(t, "/tmp/alt/products.json", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_MirrorEnabledByEndpoint(t *testing.T) {
	t.Setenv("MIRROR_ENDPOINT", "localhost:9000")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.Mirror.Enabled())
	assert.Equal(t, "catalog-backups", cfg.Mirror.Bucket)
}
