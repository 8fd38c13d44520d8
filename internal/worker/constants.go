package worker

// DefaultWorkerCount is used when a pool is created with no workers
const DefaultWorkerCount = 1

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Autosave
// ============================================================================

// Log messages for autosave operations
const (
	LogMsgAutosaveStarting  = "Autosave starting"
	LogMsgAutosaveCompleted = "Autosave completed"
	ErrMsgAutosaveFailed    = "autosave failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
