package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Sync.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Sync.RetryDelay())
	assert.Equal(t, 2, cfg.Sync.MinNameLength)
	assert.Equal(t, "file", cfg.Dictionary.Source)
	assert.True(t, cfg.Dictionary.FallbackSurname)
	assert.Equal(t, 100, cfg.Directory.PageLimit)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SYNC_MAX_ATTEMPTS", "5")
	t.Setenv("DIRECTORY_DOMAIN", "example")
	t.Setenv("DICTIONARY_SHARD_COUNT", "12")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Sync.MaxAttempts)
	assert.Equal(t, "example", cfg.Directory.Domain)
	assert.Equal(t, 12, cfg.Dictionary.ShardCount)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_API_KEY=from-dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SERVER_API_KEY") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Server.ApiKey)
}
