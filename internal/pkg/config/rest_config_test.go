//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
environment: development
allowed_origins:
  - https://neic.gov.bd
database:
  type: sqlite
  dsn: "file::memory:?cache=shared"
logger:
  log_level: debug
  log_type: console
auth:
  jwt_secret: "`+testSecret+`"
  token_ttl: 2h
  max_login_attempts: 3
  lockout_window: 5m
attachments:
  provider: local
  directory: /tmp/neic-uploads
  max_size_mb: 5
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://neic.gov.bd"}, cfg.AllowedOrigins)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 3, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, 5*time.Minute, cfg.Auth.LockoutWindow)
	assert.Equal(t, "neic_session", cfg.Auth.CookieName)
	assert.Equal(t, int64(5<<20), cfg.Attachments.MaxSizeBytes())
	assert.False(t, cfg.Redis.Enabled())
}

func TestInitializeRestConfig_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
auth:
  jwt_secret: "`+testSecret+`"
`)

	t.Setenv("NEIC_PORT", "7070")
	t.Setenv("NEIC_AUTH_MAX_LOGIN_ATTEMPTS", "7")
	t.Setenv("NEIC_REDIS_ADDR", "localhost:6379")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 7, cfg.Auth.MaxLoginAttempts)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
}

func TestInitializeRestConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("NEIC_AUTH_JWT_SECRET", testSecret)

	cfg, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LockoutWindow)
	assert.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, LocalStorageProvider, cfg.Attachments.Provider)
}

func TestInitializeRestConfig_MissingSecret(t *testing.T) {
	path := writeConfigFile(t, `port: "9090"`)

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AuthSettings")
}

func TestInitializeRestConfig_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, "port: [unterminated")

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
}
