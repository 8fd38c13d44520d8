package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/lootforge/internal/catalog"
	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/event"
)

func TestAddItem_AssignsIdentity(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	item := newItem(domain.RarityRare, domain.SlotArmor, domain.Stats{Def: 4})

	ok := env.ledger.AddItem(context.Background(), item)

	require.True(t, ok)
	assert.Equal(t, "inst-1", item.InstanceID, "id is written back to the caller's item")
	stored, found := env.ledger.Get("inst-1")
	require.True(t, found)
	assert.Equal(t, "#0070dd", stored.Color)
	assert.Equal(t, fixedNow, stored.CreatedAt)
	assert.Len(t, env.eventsOf(event.ItemAdded), 1)
}

func TestAddItem_KeepsExistingID(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	item := newItem(domain.RarityCommon, domain.SlotTrinket, domain.Stats{HP: 2})
	item.InstanceID = "preset"

	require.True(t, env.ledger.AddItem(context.Background(), item))
	assert.Equal(t, "preset", item.InstanceID)
}

func TestAddItem_DuplicateInstanceGetsFreshID(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	a := newItem(domain.RarityCommon, domain.SlotTrinket, domain.Stats{HP: 2})
	a.InstanceID = "same"
	b := newItem(domain.RarityCommon, domain.SlotTrinket, domain.Stats{HP: 2})
	b.InstanceID = "same"

	require.True(t, env.ledger.AddItem(context.Background(), a))
	require.True(t, env.ledger.AddItem(context.Background(), b))

	assert.NotEqual(t, a.InstanceID, b.InstanceID)
	assert.Equal(t, 2, env.ledger.Count())
}

func TestAddItem_FullInventoryRejects(t *testing.T) {
	env := newTestEnv(t, 2, 1)
	ctx := context.Background()
	require.True(t, env.ledger.AddItem(ctx, newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 1})))
	require.True(t, env.ledger.AddItem(ctx, newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 1})))
	require.True(t, env.ledger.IsFull())

	for i := 0; i < 3; i++ {
		assert.False(t, env.ledger.AddItem(ctx, newItem(domain.RarityEpic, domain.SlotArmor, domain.Stats{Def: 9})))
		assert.Equal(t, 2, env.ledger.Count())
	}

	n := env.lastNotification(t)
	assert.Equal(t, domain.NotifyWarning, n.Kind)
	assert.Equal(t, MsgInventoryFull, n.Message)
	assert.False(t, env.ledger.AddItem(ctx, nil))
}

func TestRemoveItem(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	item := newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 1})
	env.ledger.AddItem(ctx, item)

	env.ledger.RemoveItem(ctx, "missing")
	assert.Equal(t, 1, env.ledger.Count(), "absent id is a no-op")

	env.ledger.RemoveItem(ctx, item.InstanceID)
	assert.Equal(t, 0, env.ledger.Count())
}

func TestItemsForSlot(t *testing.T) {
	env := newTestEnv(t, 10, 1)
	ctx := context.Background()
	env.ledger.AddItem(ctx, newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 1}))
	env.ledger.AddItem(ctx, newItem(domain.RarityRare, domain.SlotArmor, domain.Stats{Def: 3}))
	env.ledger.AddItem(ctx, newItem(domain.RarityEpic, domain.SlotMainHand, domain.Stats{Atk: 9}))

	weapons := env.ledger.ItemsForSlot(domain.SlotMainHand)

	require.Len(t, weapons, 2)
	assert.Equal(t, domain.RarityCommon, weapons[0].Rarity, "insertion order is kept")
	assert.Equal(t, domain.RarityEpic, weapons[1].Rarity)
	assert.Empty(t, env.ledger.ItemsForSlot(domain.SlotTrinket))
}

func TestItems_ReturnsCopies(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	item := newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 2})
	env.ledger.AddItem(context.Background(), item)

	item.Stats.Atk = 100
	items := env.ledger.Items()
	items[0].Stats.Atk = 50

	got, _ := env.ledger.Get(item.InstanceID)
	assert.Equal(t, 2, got.Stats.Atk)
}

func TestRestore_ExceedsCapacity(t *testing.T) {
	env := newTestEnv(t, 1, 1)
	ctx := context.Background()
	env.ledger.AddItem(ctx, newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 1}))

	restored := newItem(domain.RarityRare, domain.SlotArmor, domain.Stats{Def: 5})
	restored.InstanceID = "worn"
	env.ledger.Restore(ctx, restored)
	env.ledger.Restore(ctx, restored)

	assert.Equal(t, 2, env.ledger.Count(), "restore bypasses the cap but never duplicates")
	assert.False(t, env.ledger.AddItem(ctx, newItem(domain.RarityCommon, domain.SlotTrinket, domain.Stats{HP: 1})))
}

func TestTake(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	item := newItem(domain.RarityCommon, domain.SlotOffHand, domain.Stats{Def: 1})
	env.ledger.AddItem(ctx, item)

	taken, ok := env.ledger.Take(ctx, item.InstanceID)
	require.True(t, ok)
	assert.Equal(t, item.InstanceID, taken.InstanceID)

	_, ok = env.ledger.Take(ctx, item.InstanceID)
	assert.False(t, ok)
}

func TestSnapshotRoundTrip(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	env.ledger.AddItem(ctx, newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 1}))
	env.ledger.AddItem(ctx, newItem(domain.RarityLegendary, domain.SlotTrinket, domain.Stats{HP: 40}))

	snap := env.ledger.Snapshot()
	assert.Equal(t, catalog.DefaultVersion, snap.CatalogVersion)

	other := newTestEnv(t, 5, 1)
	require.NoError(t, other.ledger.LoadSnapshot(snap))
	assert.Equal(t, env.ledger.Items(), other.ledger.Items())
}

func TestLoadSnapshot_Rejects(t *testing.T) {
	env := newTestEnv(t, 5, 1)

	err := env.ledger.LoadSnapshot(domain.InventorySnapshot{CatalogVersion: "ancient"})
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)

	common := domain.Item{InstanceID: "a", Rarity: domain.RarityCommon}
	err = env.ledger.LoadSnapshot(domain.InventorySnapshot{Items: []domain.Item{common, common}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	overUpgraded := common
	overUpgraded.Upgrades = 9
	err = env.ledger.LoadSnapshot(domain.InventorySnapshot{Items: []domain.Item{overUpgraded}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	unknownRarity := common
	unknownRarity.Rarity = "Mythic"
	err = env.ledger.LoadSnapshot(domain.InventorySnapshot{Items: []domain.Item{unknownRarity}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Zero(t, env.ledger.Count(), "rejected snapshots leave the ledger untouched")
}

func TestNewLedger_Defaults(t *testing.T) {
	l := NewLedger(Config{}, Dependencies{})

	assert.Equal(t, domain.DefaultInventoryCapacity, l.Capacity())
	assert.False(t, l.IsFull())
}
