package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgTickSkipped  = "Worker queue full, skipping scheduled run"
)
