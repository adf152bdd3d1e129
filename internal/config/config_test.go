package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner-service/internal/config"
)

func TestLoadFrom_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, 30*time.Second, cfg.Health.Interval)
	assert.Equal(t, 1, cfg.Health.MaxRetries)
	assert.Equal(t, config.StrategyAnchor, cfg.Itinerary.Strategy)
	assert.Equal(t, "trip-planner:itinerary", cfg.Itinerary.StorageKey)
	assert.Equal(t, "trip-planner:local-ledger", cfg.Ledger.StorageKey)
	assert.Equal(t, "http://localhost:3000,http://localhost:5173", cfg.Server.AllowOrigins)
	assert.False(t, cfg.RemoteConfigured())
}

func TestLoadFrom_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\n" +
		"FIREBASE_PROJECT_ID=trip-demo\n" +
		"FIREBASE_CREDENTIALS_BASE64=e30=\n" +
		"ROUTE_STRATEGY=nearest_neighbor\n" +
		"ROUTE_OPTIMIZE_DELAY=1500\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.RemoteConfigured())
	assert.Equal(t, config.StrategyNearestNeighbor, cfg.Itinerary.Strategy)
	assert.Equal(t, 1500*time.Millisecond, cfg.Itinerary.OptimizeDelay)
}

func TestLoadFrom_RejectsUnknownStrategy(t *testing.T) {
	t.Setenv("ROUTE_STRATEGY", "tsp")

	_, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadFrom_RejectsZeroRetries(t *testing.T) {
	t.Setenv("BACKEND_MAX_RETRIES", "0")

	_, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
