package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/lootforge/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Item economy event types
const (
	ItemLooted     Type = domain.EventTypeItemLooted
	ItemAdded      Type = domain.EventTypeItemAdded
	ItemSold       Type = domain.EventTypeItemSold
	ItemSalvaged   Type = domain.EventTypeItemSalvaged
	ItemCrafted    Type = domain.EventTypeItemCrafted
	ItemUpgraded   Type = domain.EventTypeItemUpgraded
	ItemEquipped   Type = domain.EventTypeItemEquipped
	ItemUnequipped Type = domain.EventTypeItemUnequipped
)

// Metadata keys
const (
	MetadataKeyPlayerID = "player_id"
	MetadataKeySource   = "source"
	MetadataKeyCount    = "count"
)

func newEvent(t Type, playerID, source string, count int, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
		Metadata: Metadata{
			MetadataKeyPlayerID: playerID,
			MetadataKeySource:   source,
			MetadataKeyCount:    count,
		},
	}
}

// NewItemLootedEvent creates a new event for a successful loot roll
func NewItemLootedEvent(playerID string, item *domain.Item, accepted bool) Event {
	return newEvent(ItemLooted, playerID, "loot", 1, domain.ItemLootedPayload{
		PlayerID:   playerID,
		InstanceID: item.InstanceID,
		Rarity:     item.Rarity,
		Zone:       item.Zone,
		Accepted:   accepted,
		Timestamp:  time.Now().Unix(),
	})
}

// NewItemAddedEvent creates a new event for an item entering the inventory
func NewItemAddedEvent(playerID string, item *domain.Item) Event {
	return newEvent(ItemAdded, playerID, "inventory", 1, domain.ItemAddedPayload{
		PlayerID:   playerID,
		InstanceID: item.InstanceID,
		Rarity:     item.Rarity,
		Timestamp:  time.Now().Unix(),
	})
}

// NewItemSoldEvent creates a new event covering every item of one sale
func NewItemSoldEvent(playerID string, items []*domain.Item, gold int) Event {
	ids, rarities := summarize(items)
	return newEvent(ItemSold, playerID, "economy", len(items), domain.ItemSoldPayload{
		PlayerID:    playerID,
		InstanceIDs: ids,
		Rarities:    rarities,
		Gold:        gold,
		Timestamp:   time.Now().Unix(),
	})
}

// NewItemSalvagedEvent creates a new event covering every item of one salvage
func NewItemSalvagedEvent(playerID string, items []*domain.Item, yield domain.MaterialYield) Event {
	ids, _ := summarize(items)
	return newEvent(ItemSalvaged, playerID, "economy", len(items), domain.ItemSalvagedPayload{
		PlayerID:    playerID,
		InstanceIDs: ids,
		Yield:       yield.Clone(),
		Timestamp:   time.Now().Unix(),
	})
}

// NewItemCraftedEvent creates a new event for a crafted item
func NewItemCraftedEvent(playerID string, recipe domain.Recipe, item *domain.Item) Event {
	return newEvent(ItemCrafted, playerID, "crafting", 1, domain.ItemCraftedPayload{
		PlayerID:   playerID,
		RecipeID:   recipe.ID,
		InstanceID: item.InstanceID,
		Rarity:     item.Rarity,
		Cost:       recipe.Cost.Clone(),
		Timestamp:  time.Now().Unix(),
	})
}

// NewItemUpgradedEvent creates a new event for an item upgrade
func NewItemUpgradedEvent(playerID string, item *domain.Item, cost int) Event {
	return newEvent(ItemUpgraded, playerID, "crafting", 1, domain.ItemUpgradedPayload{
		PlayerID:   playerID,
		InstanceID: item.InstanceID,
		Level:      item.Upgrades,
		Cost:       cost,
		Timestamp:  time.Now().Unix(),
	})
}

// NewItemEquipEvent creates an equipped or unequipped event
func NewItemEquipEvent(t Type, playerID, memberID string, slot domain.SlotType, instanceID, displaced string) Event {
	return newEvent(t, playerID, "equipment", 1, domain.ItemEquipPayload{
		PlayerID:   playerID,
		MemberID:   memberID,
		Slot:       slot,
		InstanceID: instanceID,
		Displaced:  displaced,
		Timestamp:  time.Now().Unix(),
	})
}

func summarize(items []*domain.Item) ([]string, []domain.Rarity) {
	ids := make([]string, 0, len(items))
	rarities := make([]domain.Rarity, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.InstanceID)
		rarities = append(rarities, it.Rarity)
	}
	return ids, rarities
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the write side of the bus, which is all producers need
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the caller's goroutine.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes handler to every item economy event type
func (b *MemoryBus) SubscribeAll(handler Handler) {
	for _, t := range AllTypes() {
		b.Subscribe(t, handler)
	}
}

// AllTypes lists the item economy event types
func AllTypes() []Type {
	return []Type{ItemLooted, ItemAdded, ItemSold, ItemSalvaged, ItemCrafted, ItemUpgraded, ItemEquipped, ItemUnequipped}
}
