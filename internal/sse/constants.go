package sse

import "time"

// Channel capacities
const (
	BroadcastBufferSize = 100
	ClientEventBuffer   = 50
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often idle streams get a ping
const KeepaliveInterval = 30 * time.Second

// Event types pushed to clients. Item events reuse the bus event type names.
const (
	EventTypeNotification = "notification"
	EventTypeConnected    = "connected"
	EventTypeKeepalive    = "keepalive"
)

// Query parameters accepted by Handler
const (
	QueryParamTypes  = "types"
	QueryParamPlayer = "player"
)

// Error messages
const (
	ErrMsgEncodeEvent = "failed to encode SSE event"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)
