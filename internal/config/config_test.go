package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "CORS_ALLOWED_ORIGINS", "ERROR_DISPLAY_SECONDS", "STAGE", "LOG_LEVEL", "SERVICE_VERSION"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.ErrorDisplayTimeout())
	assert.Equal(t, "dev", cfg.Stage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("ERROR_DISPLAY_SECONDS", "5")
	t.Setenv("STAGE", "prod")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("SERVICE_VERSION", "2.0.0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ErrorDisplayTimeout())
	assert.Equal(t, "prod", cfg.Stage)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "2.0.0", cfg.ServiceVersion)
}

func TestLoad_InvalidErrorDisplayFallsBack(t *testing.T) {
	for _, v := range []string{"0", "-2", "soon"} {
		t.Setenv("ERROR_DISPLAY_SECONDS", v)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.ErrorDisplaySeconds, v)
	}
}
