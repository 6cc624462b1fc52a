package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	assert.NoError(t, err)

	assert.Equal(t, ":8090", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 30*time.Second, cfg.Notify.PollInterval)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("IDOCS_BACKEND_BASE_URL", "https://api.intellidocs.example")
	t.Setenv("IDOCS_SESSION_STORE", "redis")
	t.Setenv("IDOCS_SESSION_TTL", "2h")
	t.Setenv("IDOCS_NOTIFY_POLL_INTERVAL", "45s")

	cfg, err := config.Load()
	assert.NoError(t, err)

	assert.Equal(t, "https://api.intellidocs.example", cfg.Backend.BaseURL)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 45*time.Second, cfg.Notify.PollInterval)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "3001")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, ":3001", cfg.Server.Port)
}

func TestLoad_ExplicitPortBeatsPlatformPort(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("IDOCS_SERVER_PORT", ":9999")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Port)
}

func TestLoad_CORSOriginsSplitAndTrimmed(t *testing.T) {
	t.Setenv("IDOCS_CORS_ALLOWED_ORIGINS", "https://console.example , https://admin.example")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, []string{"https://console.example", "https://admin.example"}, cfg.CORS.AllowedOrigins)
}
