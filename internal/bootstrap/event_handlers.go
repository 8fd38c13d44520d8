package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/metrics"
	"github.com/osse101/lootforge/internal/sse"
)

// RegisterEventHandlers sets up every bus subscriber:
// - Metrics collector (event-based counters)
// - SSE subscriber (rebroadcasts item events to connected UIs)
func RegisterEventHandlers(bus event.Bus, hub sse.Broadcaster) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if hub != nil {
		sse.NewSubscriber(hub, bus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	return nil
}
