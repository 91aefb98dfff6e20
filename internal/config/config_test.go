package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, "hotel-dashboard.db", cfg.Storage.Path)
	assert.Equal(t, 30*time.Second, cfg.Storage.RetryInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	os.Clearenv()
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DB_PATH", "/tmp/dashboard.db")
	t.Setenv("SNAPSHOT_RETRY_INTERVAL", "5s")
	t.Setenv("ALLOWED_ORIGINS", "http://front-desk.local, http://localhost:8000")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "/tmp/dashboard.db", cfg.Storage.Path)
	assert.Equal(t, 5*time.Second, cfg.Storage.RetryInterval)
	assert.Equal(t, []string{"http://front-desk.local", "http://localhost:8000"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_InvalidRetryIntervalFallsBack(t *testing.T) {
	os.Clearenv()
	t.Setenv("SNAPSHOT_RETRY_INTERVAL", "not-a-duration")

	cfg := LoadConfig()
	assert.Equal(t, 30*time.Second, cfg.Storage.RetryInterval)
}
