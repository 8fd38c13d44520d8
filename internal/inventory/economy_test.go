package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/lootforge/internal/catalog"
	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/idgen"
)

func TestSellValue_NeverBelowOne(t *testing.T) {
	env := newTestEnv(t, 5, 1)

	for _, r := range domain.Rarities() {
		assert.GreaterOrEqual(t, env.ledger.SellValue(&domain.Item{Rarity: r}), 1)
	}
	assert.Equal(t, 1, env.ledger.SellValue(nil))
	assert.Equal(t, 3, env.ledger.SellValue(&domain.Item{Rarity: "Mythic", Stats: domain.Stats{Atk: 3}}))
}

func TestSellItem(t *testing.T) {
	// ARRANGE
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	item := newItem(domain.RarityUncommon, domain.SlotMainHand, domain.Stats{Atk: 4})
	env.ledger.AddItem(ctx, item)

	// ACT
	gold := env.ledger.SellItem(ctx, item.InstanceID)

	// ASSERT
	assert.Equal(t, 12, gold)
	assert.Equal(t, 12, env.wallet.Gold())
	assert.Equal(t, 0, env.ledger.Count())
	assert.Equal(t, domain.NotifyReward, env.lastNotification(t).Kind)
	assert.Len(t, env.eventsOf(event.ItemSold), 1)
}

func TestSellItem_MissingIsNoOp(t *testing.T) {
	env := newTestEnv(t, 5, 1)

	assert.Equal(t, 0, env.ledger.SellItem(context.Background(), "ghost"))
	assert.Equal(t, 0, env.wallet.Gold())
	assert.Equal(t, 0, env.recorder.Len())
}

func TestSellItem_CreditsBeforeRemoving(t *testing.T) {
	res := new(MockResourceLedger)
	l := NewLedger(Config{Capacity: 5}, Dependencies{Catalog: catalog.Default(), Resources: res, IDs: idgen.NewSequence("x")})
	ctx := context.Background()
	item := newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 3})
	l.AddItem(ctx, item)

	res.On("AddGold", 3).Run(func(mock.Arguments) {
		assert.Equal(t, 1, l.Count(), "item still held while gold is credited")
	}).Return()

	assert.Equal(t, 3, l.SellItem(ctx, item.InstanceID))
	res.AssertExpectations(t)
}

func TestSellAllBelow_ExampleScenario(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	common := newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 3})
	uncommon := newItem(domain.RarityUncommon, domain.SlotArmor, domain.Stats{Def: 4})
	env.ledger.AddItem(ctx, common)
	env.ledger.AddItem(ctx, uncommon)

	gold := env.ledger.SellAllBelow(ctx, domain.RarityUncommon)

	assert.Equal(t, 3, gold)
	assert.Equal(t, 3, env.wallet.Gold())
	items := env.ledger.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uncommon.InstanceID, items[0].InstanceID)
	assert.Len(t, env.eventsOf(event.ItemSold), 1)
}

func TestSellAllBelow_MatchesIndividualSales(t *testing.T) {
	stock := []*domain.Item{
		newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 3}),
		newItem(domain.RarityCommon, domain.SlotTrinket, domain.Stats{HP: 7, Def: 1}),
		newItem(domain.RarityRare, domain.SlotArmor, domain.Stats{Def: 6}),
		newItem(domain.RarityUncommon, domain.SlotOffHand, domain.Stats{Def: 2}),
		newItem(domain.RarityCommon, domain.SlotOffHand, domain.Stats{}),
	}
	ctx := context.Background()

	bulk := newTestEnv(t, 10, 1)
	single := newTestEnv(t, 10, 1)
	for _, it := range stock {
		bulk.ledger.AddItem(ctx, it.Clone())
		single.ledger.AddItem(ctx, it.Clone())
	}

	bulkGold := bulk.ledger.SellAllBelow(ctx, domain.RarityUncommon)

	singleGold := 0
	for _, it := range single.ledger.Items() {
		if it.Rarity == domain.RarityCommon {
			singleGold += single.ledger.SellItem(ctx, it.InstanceID)
		}
	}

	assert.Equal(t, singleGold, bulkGold)
	assert.Equal(t, single.ledger.Items(), bulk.ledger.Items())
	assert.Equal(t, 1, bulk.recorder.Len(), "one summary notification")
}

func TestSellAllBelow_NoOps(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	env.ledger.AddItem(ctx, newItem(domain.RarityRare, domain.SlotArmor, domain.Stats{Def: 1}))

	assert.Equal(t, 0, env.ledger.SellAllBelow(ctx, "Mythic"))
	assert.Equal(t, 0, env.ledger.SellAllBelow(ctx, domain.RarityCommon))
	assert.Equal(t, 0, env.ledger.SellAllBelow(ctx, domain.RarityRare))
	assert.Equal(t, 1, env.ledger.Count())
	assert.Equal(t, 0, env.recorder.Len())
}

func TestUpgradeCost(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	item := newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 5, HP: 2})
	env.ledger.AddItem(context.Background(), item)

	cost, ok := env.ledger.UpgradeCost(item.InstanceID)
	assert.True(t, ok)
	assert.Equal(t, 70, cost)

	_, ok = env.ledger.UpgradeCost("ghost")
	assert.False(t, ok)
}

func TestUpgradeItem_ThreeTimesThenCapped(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	item := newItem(domain.RarityRare, domain.SlotMainHand, domain.Stats{Atk: 5, Def: 1})
	item.Name = "Iron Blade"
	env.ledger.AddItem(ctx, item)
	env.wallet.AddGold(100000)

	prev, _ := env.ledger.Get(item.InstanceID)
	for level := 1; level <= 3; level++ {
		goldBefore := env.wallet.Gold()
		cost, _ := env.ledger.UpgradeCost(item.InstanceID)

		require.True(t, env.ledger.UpgradeItem(ctx, item.InstanceID), "upgrade %d", level)

		cur, _ := env.ledger.Get(item.InstanceID)
		assert.Equal(t, level, cur.Upgrades)
		assert.Equal(t, goldBefore-cost, env.wallet.Gold())
		for _, k := range prev.Stats.Keys() {
			assert.Greater(t, cur.Stats.Get(k), prev.Stats.Get(k))
		}
		assert.Equal(t, item.InstanceID, cur.InstanceID)
		prev = cur
	}

	final, _ := env.ledger.Get(item.InstanceID)
	assert.Equal(t, "Iron Blade +3", final.Name)

	goldBefore := env.wallet.Gold()
	assert.False(t, env.ledger.UpgradeItem(ctx, item.InstanceID))
	assert.Equal(t, goldBefore, env.wallet.Gold())
	assert.Equal(t, domain.NotifyWarning, env.lastNotification(t).Kind)
	assert.Contains(t, env.lastNotification(t).Message, "fully upgraded")
	assert.Len(t, env.eventsOf(event.ItemUpgraded), 3)
}

func TestUpgradeItem_InsufficientGold(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	item := newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 2})
	env.ledger.AddItem(ctx, item)
	env.wallet.AddGold(19)

	assert.False(t, env.ledger.UpgradeItem(ctx, item.InstanceID))

	got, _ := env.ledger.Get(item.InstanceID)
	assert.Equal(t, 0, got.Upgrades)
	assert.Equal(t, 2, got.Stats.Atk)
	assert.Equal(t, 19, env.wallet.Gold())
	assert.Contains(t, env.lastNotification(t).Message, "costs 20")
}

func TestUpgradeItem_Missing(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	env.wallet.AddGold(1000)

	assert.False(t, env.ledger.UpgradeItem(context.Background(), "ghost"))
	assert.Equal(t, domain.NotifyError, env.lastNotification(t).Kind)
	assert.Equal(t, 1000, env.wallet.Gold())
}

func TestSalvageItem(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	item := newItem(domain.RarityEpic, domain.SlotArmor, domain.Stats{Def: 10})
	env.ledger.AddItem(ctx, item)

	yield := env.ledger.SalvageItem(ctx, item.InstanceID)

	want := domain.MaterialYield{domain.MaterialScrap: 8, domain.MaterialEssence: 3, domain.MaterialCrystal: 1}
	assert.Equal(t, want, yield)
	assert.Equal(t, map[domain.MaterialID]int(want), env.wallet.Materials())
	assert.Equal(t, 0, env.ledger.Count())
	assert.Contains(t, env.lastNotification(t).Message, "8 Scrap")
}

func TestSalvageItem_MissingIsNoOp(t *testing.T) {
	env := newTestEnv(t, 5, 1)

	assert.Nil(t, env.ledger.SalvageItem(context.Background(), "ghost"))
	assert.Empty(t, env.wallet.Materials())
}

func TestSalvageItem_UnknownRarityFallsBack(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	item := newItem("Mythic", domain.SlotTrinket, domain.Stats{HP: 1})
	env.ledger.AddItem(ctx, item)

	assert.Equal(t, domain.MaterialYield{domain.MaterialScrap: 1}, env.ledger.SalvageItem(ctx, item.InstanceID))
}

func TestSalvageAllBelow_ExampleScenario(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()
	env.ledger.AddItem(ctx, newItem(domain.RarityCommon, domain.SlotMainHand, domain.Stats{Atk: 1}))
	env.ledger.AddItem(ctx, newItem(domain.RarityUncommon, domain.SlotArmor, domain.Stats{Def: 2}))
	env.ledger.AddItem(ctx, newItem(domain.RarityRare, domain.SlotArmor, domain.Stats{Def: 5}))

	yield := env.ledger.SalvageAllBelow(ctx, domain.RarityRare)

	assert.Equal(t, domain.MaterialYield{domain.MaterialScrap: 4}, yield)
	assert.Equal(t, 4, env.wallet.Materials()[domain.MaterialScrap])
	assert.Equal(t, 1, env.ledger.Count())
	assert.Equal(t, 1, env.recorder.Len(), "one summary notification")
	assert.Len(t, env.eventsOf(event.ItemSalvaged), 1)
}

func TestSalvageAllBelow_EmptyResults(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	ctx := context.Background()

	assert.Equal(t, domain.MaterialYield{}, env.ledger.SalvageAllBelow(ctx, domain.RarityLegendary))
	assert.Equal(t, domain.MaterialYield{}, env.ledger.SalvageAllBelow(ctx, "junk"))
	assert.Empty(t, env.wallet.Materials())
}

func TestCanAffordRecipe(t *testing.T) {
	env := newTestEnv(t, 5, 1)

	assert.False(t, env.ledger.CanAffordRecipe("craft_uncommon_weapon"))
	env.wallet.AddMaterial(domain.MaterialScrap, 8)
	assert.True(t, env.ledger.CanAffordRecipe("craft_uncommon_weapon"))
	assert.False(t, env.ledger.CanAffordRecipe("craft_rare_weapon"))
	assert.False(t, env.ledger.CanAffordRecipe("craft_unknown"))
}

func TestCraftItem_ExampleScenario(t *testing.T) {
	for _, zone := range []int{1, 2, 5} {
		env := newTestEnv(t, 5, zone)
		ctx := context.Background()
		env.wallet.AddMaterial(domain.MaterialScrap, 8)

		require.True(t, env.ledger.CraftItem(ctx, "craft_uncommon_weapon"))

		assert.Equal(t, 0, env.wallet.Materials()[domain.MaterialScrap])
		items := env.ledger.Items()
		require.Len(t, items, 1)
		crafted := items[0]
		assert.Equal(t, domain.RarityUncommon, crafted.Rarity)
		assert.Equal(t, domain.SlotMainHand, crafted.Type)
		assert.Equal(t, int(5*1.5*(1+float64(zone)*0.25)), crafted.Stats.Atk)
		assert.Equal(t, []domain.StatKey{domain.StatAtk}, crafted.Stats.Keys())
		assert.Equal(t, "inst-1", crafted.InstanceID)
		assert.Contains(t, crafted.CatalogID, "craft_uncommon_weapon")
		assert.Equal(t, zone, crafted.Zone)
		assert.Equal(t, domain.NotifySuccess, env.lastNotification(t).Kind)
	}
}

func TestCraftItem_DefaultsToZoneOne(t *testing.T) {
	env := newTestEnv(t, 5, 0)
	env.wallet.AddMaterial(domain.MaterialScrap, 8)

	require.True(t, env.ledger.CraftItem(context.Background(), "craft_uncommon_weapon"))
	assert.Equal(t, 9, env.ledger.Items()[0].Stats.Atk)
}

func TestCraftItem_AllOrNothing(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		fill     int
		recipe   string
		funds    map[domain.MaterialID]int
		msg      string
	}{
		{
			name:     "unknown recipe",
			capacity: 5,
			recipe:   "craft_moon",
			funds:    map[domain.MaterialID]int{domain.MaterialScrap: 50},
			msg:      MsgRecipeUnknown,
		},
		{
			name:     "inventory full",
			capacity: 1,
			fill:     1,
			recipe:   "craft_uncommon_weapon",
			funds:    map[domain.MaterialID]int{domain.MaterialScrap: 50},
			msg:      MsgCraftInventoryFull,
		},
		{
			name:     "one material short",
			capacity: 5,
			recipe:   "craft_rare_weapon",
			funds:    map[domain.MaterialID]int{domain.MaterialScrap: 15, domain.MaterialEssence: 2},
			msg:      "need 1 Essence more",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.capacity, 1)
			ctx := context.Background()
			for i := 0; i < tt.fill; i++ {
				env.ledger.AddItem(ctx, newItem(domain.RarityCommon, domain.SlotTrinket, domain.Stats{HP: 1}))
			}
			for id, qty := range tt.funds {
				env.wallet.AddMaterial(id, qty)
			}
			countBefore := env.ledger.Count()

			assert.False(t, env.ledger.CraftItem(ctx, tt.recipe))

			assert.Equal(t, tt.funds, env.wallet.Materials(), "nothing debited")
			assert.Equal(t, countBefore, env.ledger.Count(), "nothing added")
			assert.Contains(t, env.lastNotification(t).Message, tt.msg)
			assert.Empty(t, env.eventsOf(event.ItemCrafted))
		})
	}
}

func TestCraftItem_DebitsEveryMaterial(t *testing.T) {
	env := newTestEnv(t, 5, 1)
	env.wallet.AddMaterial(domain.MaterialScrap, 30)
	env.wallet.AddMaterial(domain.MaterialEssence, 10)
	env.wallet.AddMaterial(domain.MaterialCrystal, 2)

	require.True(t, env.ledger.CraftItem(context.Background(), "craft_epic_weapon"))

	assert.Equal(t, map[domain.MaterialID]int{domain.MaterialScrap: 5, domain.MaterialEssence: 2}, env.wallet.Materials())
	assert.Len(t, env.eventsOf(event.ItemCrafted), 1)
}
