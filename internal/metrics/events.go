package metrics

import (
	"context"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all item events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case domain.ItemLootedPayload:
		LootDrops.WithLabelValues(string(p.Rarity)).Inc()
		if !p.Accepted {
			LootRejected.Inc()
		}

	case domain.ItemSoldPayload:
		for _, r := range p.Rarities {
			ItemsSold.WithLabelValues(string(r)).Inc()
		}
		GoldEarned.Add(float64(p.Gold))

	case domain.ItemSalvagedPayload:
		ItemsSalvaged.Add(float64(len(p.InstanceIDs)))
		for id, qty := range p.Yield {
			MaterialsGained.WithLabelValues(string(id)).Add(float64(qty))
		}

	case domain.ItemCraftedPayload:
		ItemsCrafted.WithLabelValues(p.RecipeID).Inc()

	case domain.ItemUpgradedPayload:
		ItemsUpgraded.Inc()
		GoldSpent.Add(float64(p.Cost))

	case domain.ItemEquipPayload:
		EquipmentChanges.WithLabelValues(string(evt.Type), string(p.Slot)).Inc()

	case domain.ItemAddedPayload:
		// counted by EventsPublished only

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
