package event

// EventSchemaVersion is stamped on every published event
const EventSchemaVersion = "1.0"

// Retry and dead-letter settings
const (
	RetryMaxAttempts          = 3
	DeadLetterFilePermissions = 0644
	DeadLetterSchemaVersion   = "1.0"
)

// Error messages
const (
	ErrMsgOpenDeadLetter   = "failed to open dead-letter file"
	ErrMsgBadDeadLetterFmt = "dead-letter line %d: %w"
)

// Log messages
const (
	LogMsgEventPublishFailed  = "Failed to publish event, initiating async retry"
	LogMsgEventRetryFailed    = "Event retry failed"
	LogMsgEventRetrySucceeded = "Successfully published event after retry"
	LogMsgEventDeadLettered   = "Event written to dead letter queue"
	LogMsgDeadLetterFailed    = "Failed to write to dead letter file"
	LogMsgEventDroppedClosed  = "Event retry dropped, publisher closed"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
