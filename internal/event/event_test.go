package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/lootforge/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	handled := false

	bus.Subscribe(ItemSold, func(ctx context.Context, e Event) error {
		assert.Equal(t, ItemSold, e.Type)
		assert.Equal(t, "payload", e.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: ItemSold, Payload: "payload"})

	require.NoError(t, err)
	assert.True(t, handled)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	assert.NoError(t, bus.Publish(context.Background(), Event{Type: ItemLooted}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(ItemCrafted, func(context.Context, Event) error {
		calls++
		return errors.New("handler error")
	})
	bus.Subscribe(ItemCrafted, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: ItemCrafted})

	require.Error(t, err)
	assert.Equal(t, 2, calls, "a failing handler does not stop the others")
}

func TestMemoryBus_SubscribeAll(t *testing.T) {
	bus := NewMemoryBus()
	seen := map[Type]int{}
	bus.SubscribeAll(func(_ context.Context, e Event) error {
		seen[e.Type]++
		return nil
	})

	for _, typ := range AllTypes() {
		require.NoError(t, bus.Publish(context.Background(), Event{Type: typ}))
	}

	assert.Len(t, seen, len(AllTypes()))
}

func TestConstructors(t *testing.T) {
	item := &domain.Item{InstanceID: "i-1", Rarity: domain.RarityRare, Zone: 3, Upgrades: 2}

	sold := NewItemSoldEvent("p1", []*domain.Item{item}, 40)
	assert.Equal(t, ItemSold, sold.Type)
	assert.Equal(t, "p1", sold.GetMetadataValue(MetadataKeyPlayerID))
	assert.Equal(t, 1, sold.GetMetadataValue(MetadataKeyCount))
	payload, err := DecodePayload[domain.ItemSoldPayload](sold.Payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"i-1"}, payload.InstanceIDs)
	assert.Equal(t, 40, payload.Gold)

	up := NewItemUpgradedEvent("p1", item, 70)
	upPayload, err := DecodePayload[domain.ItemUpgradedPayload](up.Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, upPayload.Level)

	assert.Nil(t, Event{}.GetMetadataValue("missing"))
}

func TestDecodePayload_FromGenericMap(t *testing.T) {
	raw := map[string]interface{}{"recipe_id": "craft_rare_weapon", "instance_id": "x"}

	p, err := DecodePayload[domain.ItemCraftedPayload](raw)

	require.NoError(t, err)
	assert.Equal(t, "craft_rare_weapon", p.RecipeID)
	assert.Equal(t, "x", p.InstanceID)
}
