package domain

// NotificationKind classifies a toast for the presentation layer
type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyWarning NotificationKind = "warning"
	NotifyError   NotificationKind = "error"
	NotifyReward  NotificationKind = "reward"
)

// Notification is a fire-and-forget user feedback message
type Notification struct {
	Kind       NotificationKind `json:"kind"`
	Message    string           `json:"message"`
	Icon       string           `json:"icon,omitempty"`
	Color      string           `json:"color,omitempty"`
	DurationMs int              `json:"duration_ms"`
}
