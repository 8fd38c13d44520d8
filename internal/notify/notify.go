// Package notify provides the toast sinks the core reports to. Every sink
// is fire-and-forget: nothing the core does depends on delivery.
package notify

import (
	"context"
	"sync"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/logger"
)

// Notifier receives user feedback messages
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Func adapts a plain function to Notifier
type Func func(ctx context.Context, n domain.Notification)

func (f Func) Notify(ctx context.Context, n domain.Notification) { f(ctx, n) }

// LogNotifier writes notifications to the structured log
type LogNotifier struct {
	PlayerID string
}

func (l LogNotifier) Notify(ctx context.Context, n domain.Notification) {
	log := logger.FromContext(ctx)
	args := []any{"player_id", l.PlayerID, "kind", n.Kind, "message", n.Message}
	switch n.Kind {
	case domain.NotifyWarning, domain.NotifyError:
		log.Warn(LogMsgNotification, args...)
	default:
		log.Info(LogMsgNotification, args...)
	}
}

// Recorder keeps the most recent notifications in memory
type Recorder struct {
	mu      sync.Mutex
	limit   int
	total   int
	history []domain.Notification
}

// NewRecorder creates a recorder keeping at most limit entries (DefaultHistory when <= 0)
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = DefaultHistory
	}
	return &Recorder{limit: limit}
}

func (r *Recorder) Notify(_ context.Context, n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total++
	r.history = append(r.history, n)
	if over := len(r.history) - r.limit; over > 0 {
		r.history = append([]domain.Notification(nil), r.history[over:]...)
	}
}

// History returns recorded notifications, oldest first
func (r *Recorder) History() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.history...)
}

// Last returns the newest notification
func (r *Recorder) Last() (domain.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return domain.Notification{}, false
	}
	return r.history[len(r.history)-1], true
}

// Total returns how many notifications were ever recorded
func (r *Recorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

// Since returns the notifications recorded after Total reported mark,
// limited to those still held
func (r *Recorder) Since(mark int) []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := min(max(r.total-mark, 0), len(r.history))
	return append([]domain.Notification(nil), r.history[len(r.history)-n:]...)
}

// Len returns how many notifications are held
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.history)
}

// Broadcaster is the part of the SSE hub notifications are pushed through
type Broadcaster interface {
	BroadcastTo(playerID, eventType string, payload interface{})
}

// HubPayload is what SSE clients receive for each notification
type HubPayload struct {
	PlayerID     string              `json:"player_id"`
	Notification domain.Notification `json:"notification"`
}

// HubNotifier pushes notifications to connected UIs
type HubNotifier struct {
	hub      Broadcaster
	playerID string
}

// NewHubNotifier creates a notifier scoped to one player
func NewHubNotifier(hub Broadcaster, playerID string) *HubNotifier {
	return &HubNotifier{hub: hub, playerID: playerID}
}

func (h *HubNotifier) Notify(_ context.Context, n domain.Notification) {
	h.hub.BroadcastTo(h.playerID, EventTypeNotification, HubPayload{PlayerID: h.playerID, Notification: n})
}

// Multi fans out to every non-nil notifier
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n domain.Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(ctx, n)
		}
	}
}
