package notify

// DefaultHistory is the recorder size used by sessions
const DefaultHistory = 50

// EventTypeNotification is the SSE event type of toasts
const EventTypeNotification = "notification"

const LogMsgNotification = "Notification"
