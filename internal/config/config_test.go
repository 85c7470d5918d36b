package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 8*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, zapcore.InfoLevel, cfg.Log.ZapLevel())
	assert.Equal(t, "console", cfg.Log.ZapEncoding())
	assert.True(t, cfg.Psql.Seed)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "warning")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("AUTH_TOKEN_TTL", "30m")
	t.Setenv("PSQL_RUN_MIGRATIONS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, zapcore.WarnLevel, cfg.Log.ZapLevel())
	assert.Equal(t, "json", cfg.Log.ZapEncoding())
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Psql.RunMigrations)
}

func TestLoadClient(t *testing.T) {
	t.Setenv("VICIOLINKS_API_URL", "https://links.example.com")
	t.Setenv("VICIOLINKS_TIMEOUT", "5s")

	cfg, err := LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "https://links.example.com", cfg.APIURL.String())
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}
