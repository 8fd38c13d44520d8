package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate rejects settings the service cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.InventoryCapacity < 1 {
		errs = append(errs, fmt.Errorf("INVENTORY_CAPACITY must be positive, got %d", c.InventoryCapacity))
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat))
	}
	if c.SessionCacheSize < 1 {
		errs = append(errs, fmt.Errorf("SESSION_CACHE_SIZE must be positive, got %d", c.SessionCacheSize))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	if c.AutosaveInterval <= 0 {
		errs = append(errs, fmt.Errorf("AUTOSAVE_INTERVAL must be positive, got %s", c.AutosaveInterval))
	}
	if c.WorkerCount < 1 {
		errs = append(errs, fmt.Errorf("WORKER_COUNT must be positive, got %d", c.WorkerCount))
	}

	return errors.Join(errs...)
}

// Warnings lists non-fatal issues worth logging at startup, such as
// example values copied from .env.example
func (c *Config) Warnings() []string {
	var warnings []string

	if c.APIKey == ExampleAPIKeyPlaceholder {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.APIKey == "" && c.IsProduction() {
		warnings = append(warnings, "API_KEY is not set in production - the API is unauthenticated")
	}
	if !c.UsesDatabase() {
		warnings = append(warnings, "DATABASE_URL is not set - saves are kept in memory and lost on restart")
	}

	return warnings
}
