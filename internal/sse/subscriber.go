package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/lootforge/internal/event"
)

// Broadcaster is the part of the hub the subscriber needs
type Broadcaster interface {
	BroadcastTo(playerID, eventType string, payload interface{})
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub Broadcaster
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub Broadcaster, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every item event type
func (s *Subscriber) Subscribe() {
	types := event.AllTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		s.bus.Subscribe(t, s.forward)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", names)
}

// forward rebroadcasts a bus event to UIs watching the event's player
func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	playerID, _ := evt.GetMetadataValue(event.MetadataKeyPlayerID).(string)
	source, _ := evt.GetMetadataValue(event.MetadataKeySource).(string)
	count, _ := evt.GetMetadataValue(event.MetadataKeyCount).(int)

	s.hub.BroadcastTo(playerID, string(evt.Type), ItemEventPayload{
		PlayerID: playerID,
		Source:   source,
		Count:    count,
		Data:     evt.Payload,
	})

	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "player_id", playerID)
	return nil
}
