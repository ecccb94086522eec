package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "appdb")
	t.Setenv("JWT_SECRET", "signing-key")
}

func TestLoadConfigDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 10, cfg.DB.MaxSize)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, EnvDevelopment, cfg.Server.Environment)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.False(t, cfg.Server.IsProduction())
}

func TestLoadConfigCollectsAllErrors(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("ENVIRONMENT", "staging")

	// Both problems are reported in a single pass.
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.Contains(t, err.Error(), "ENVIRONMENT")
}

func TestLoadConfigClampsPoolSize(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_POOL_SIZE", "1")

	// Clamping is reported as a configuration error rather than silently
	// adjusted, so the operator sees the correction.
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_POOL_SIZE")
}

func TestLoadConfigTokenDuration(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_TOKEN_DURATION", "15m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenDuration)
}
