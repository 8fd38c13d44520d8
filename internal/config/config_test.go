package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "lootforge", cfg.ServiceName)
		assert.Equal(t, 50, cfg.InventoryCapacity)
		assert.Empty(t, cfg.CatalogPath)
		assert.Empty(t, cfg.APIKey)
		assert.False(t, cfg.UsesDatabase())
		assert.Equal(t, 256, cfg.SessionCacheSize)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.Equal(t, time.Minute, cfg.AutosaveInterval)
		assert.Equal(t, 2, cfg.WorkerCount)
		assert.Equal(t, 5, cfg.EventMaxRetries)
		assert.Equal(t, "logs/event_deadletter.jsonl", cfg.EventDeadLetterPath)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("API_KEY", "custom-api-key")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("INVENTORY_CAPACITY", "80")
		t.Setenv("CATALOG_PATH", "configs/catalog.yaml")
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/loot?sslmode=disable")
		t.Setenv("SESSION_CACHE_SIZE", "10")
		t.Setenv("SESSION_TTL", "5m")
		t.Setenv("AUTOSAVE_INTERVAL", "15s")
		t.Setenv("WORKER_COUNT", "4")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, 80, cfg.InventoryCapacity)
		assert.Equal(t, "configs/catalog.yaml", cfg.CatalogPath)
		assert.True(t, cfg.UsesDatabase())
		assert.Equal(t, 10, cfg.SessionCacheSize)
		assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
		assert.Equal(t, 15*time.Second, cfg.AutosaveInterval)
		assert.Equal(t, 4, cfg.WorkerCount)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("rejects non-positive inventory capacity", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("INVENTORY_CAPACITY", "0")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "INVENTORY_CAPACITY")
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_FORMAT")
	})
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{Port: 0, LogFormat: "text", InventoryCapacity: -1}

	err := cfg.Validate()

	require.Error(t, err)
	for _, name := range []string{"PORT", "INVENTORY_CAPACITY", "SESSION_CACHE_SIZE", "SESSION_TTL", "AUTOSAVE_INTERVAL", "WORKER_COUNT"} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "placeholder key",
			cfg:  Config{APIKey: ExampleAPIKeyPlaceholder, DatabaseURL: "postgres://x"},
			want: []string{"API_KEY appears to be using the example value"},
		},
		{
			name: "production without key or database",
			cfg:  Config{Environment: "prod"},
			want: []string{"API_KEY is not set in production", "DATABASE_URL is not set"},
		},
		{
			name: "clean",
			cfg:  Config{APIKey: "k", DatabaseURL: "postgres://x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.Warnings()
			require.Len(t, got, len(tt.want))
			for i, prefix := range tt.want {
				assert.Contains(t, got[i], prefix)
			}
		})
	}
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT",
		"SERVICE_NAME", "VERSION", "TRUSTED_PROXIES",
		"INVENTORY_CAPACITY", "CATALOG_PATH", "DATABASE_URL",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME",
		"SESSION_CACHE_SIZE", "SESSION_TTL", "AUTOSAVE_INTERVAL",
		"WORKER_COUNT", "WORKER_QUEUE_SIZE", "SHUTDOWN_TIMEOUT", "LOG_DIR",
		"EVENT_MAX_RETRIES", "EVENT_RETRY_DELAY", "EVENT_DEADLETTER_PATH",
	}

	for _, key := range envVars {
		unsetForTest(t, key)
	}
}

// unsetForTest removes key for the rest of the test; t.Setenv restores it afterwards
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
