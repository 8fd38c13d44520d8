// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	LogDir         string // empty logs to stdout only
	Environment    string
	ServiceName    string
	Version        string
	APIKey         string // empty disables authentication
	TrustedProxies []string

	// Economy
	InventoryCapacity int
	CatalogPath       string // empty uses the built-in catalog

	// Persistence; an empty DatabaseURL keeps saves in memory
	DatabaseURL       string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Sessions and background work
	SessionCacheSize int
	SessionTTL       time.Duration
	AutosaveInterval time.Duration
	WorkerCount      int
	WorkerQueueSize  int
	ShutdownTimeout  time.Duration

	// Event delivery
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:      getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:         getEnv("LOG_DIR", ""),
		Environment:    getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:    getEnv("SERVICE_NAME", DefaultServiceName),
		Version:        getEnv("VERSION", DefaultVersion),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		InventoryCapacity: getEnvAsInt("INVENTORY_CAPACITY", DefaultInventoryCapacity),
		CatalogPath:       getEnv("CATALOG_PATH", ""),

		DatabaseURL:       getEnv("DATABASE_URL", ""),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		SessionCacheSize: getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		AutosaveInterval: getEnvAsDuration("AUTOSAVE_INTERVAL", DefaultAutosaveInterval),
		WorkerCount:      getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:  getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),
		ShutdownTimeout:  getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsesDatabase reports whether saves go to Postgres
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// IsProduction reports whether the service runs in a production environment
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case "prod", "production":
		return true
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration string such as "30s" or "1h30m"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
