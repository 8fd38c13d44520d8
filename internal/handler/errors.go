package handler

// Generic HTTP error messages for client responses.
// They do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgInvalidSlot           = "Invalid slot"
	ErrMsgInvalidPlayerID       = "Invalid player id"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnavailable           = "Service unavailable"
)

// Response messages
const (
	MsgUpgradeUnavailable = "Item cannot be upgraded"
)

// Log messages
const (
	LogMsgDecodeFailedFmt   = "Failed to decode %s request"
	LogMsgDecodedFmt        = "%s request decoded"
	LogMsgCommandFailed     = "Player command failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgRollLootRequested = "Loot roll requested"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
