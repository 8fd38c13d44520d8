package config

import "time"

// Defaults applied when a variable is unset
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "lootforge"
	DefaultVersion           = "dev"
	DefaultInventoryCapacity = 50
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultSessionCacheSize  = 256
	DefaultSessionTTL        = 30 * time.Minute
	DefaultAutosaveInterval  = time.Minute
	DefaultWorkerCount       = 2
	DefaultWorkerQueueSize   = 16
	DefaultShutdownTimeout   = 10 * time.Second
	ExampleAPIKeyPlaceholder = "generate_with_openssl_rand_hex_32"
)

// Event delivery defaults
const (
	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Accepted log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)
