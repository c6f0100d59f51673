package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"availability-watcher/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://www.recreation.gov", cfg.Recgov.BaseURL)
	assert.Equal(t, 10086745, cfg.Recgov.FacilityID)
	assert.Equal(t, 10086746, cfg.Recgov.TourID)
	assert.Equal(t, "FIT", cfg.Recgov.InventoryBucket)
	assert.Equal(t, 10, cfg.Recgov.TimeoutSeconds)
	assert.Equal(t, time.Second, cfg.Watch.Interval)
	assert.Equal(t, 4, cfg.Watch.MaxConcurrency)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Server.Enabled)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("WATCH_INTERVAL", "250ms")
	t.Setenv("RECGOV_FACILITY_ID", "42")
	t.Setenv("SERVER_ENABLED", "true")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Interval)
	assert.Equal(t, 42, cfg.Recgov.FacilityID)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	// Registered first so the value written by godotenv is restored afterwards
	t.Setenv("LOG_LEVEL", "")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nRECGOV_TOUR_ID=7\n"), 0o600))
	t.Setenv("RECGOV_TOUR_ID", "")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Recgov.TourID)
}

func TestValidate(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	cfg.Watch.Interval = 0
	cfg.Recgov.TourID = 0
	cfg.Server.Enabled = true
	cfg.Server.Port = "http"

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch interval")
	assert.Contains(t, err.Error(), "recgov.tour_id")
	assert.Contains(t, err.Error(), "server port")
}
