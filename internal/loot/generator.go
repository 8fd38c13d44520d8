// Package loot rolls new items for a zone and hands them to the inventory.
package loot

import (
	"context"
	"math"
	"time"

	"github.com/osse101/lootforge/internal/catalog"
	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/idgen"
	"github.com/osse101/lootforge/internal/logger"
	"github.com/osse101/lootforge/internal/utils"
)

// ItemSink receives rolled items
type ItemSink interface {
	AddItem(ctx context.Context, item *domain.Item) bool
}

// Option configures a Generator
type Option func(*Generator)

// WithRandom overrides the random source, which must return values in [0, 1)
func WithRandom(rnd func() float64) Option {
	return func(g *Generator) { g.rnd = rnd }
}

// WithEvents publishes item.looted events for playerID
func WithEvents(pub event.Publisher, playerID string) Option {
	return func(g *Generator) {
		g.events = pub
		g.playerID = playerID
	}
}

// WithClock overrides the creation timestamp source
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// Generator produces zero or one item per roll
type Generator struct {
	cat      *catalog.Catalog
	sink     ItemSink
	ids      idgen.Generator
	rnd      func() float64
	now      func() time.Time
	events   event.Publisher
	playerID string
}

// NewGenerator creates a generator feeding sink
func NewGenerator(cat *catalog.Catalog, sink ItemSink, ids idgen.Generator, opts ...Option) *Generator {
	if cat == nil {
		cat = catalog.Default()
	}
	if ids == nil {
		ids = idgen.NewUUID()
	}
	g := &Generator{
		cat:  cat,
		sink: sink,
		ids:  ids,
		rnd:  utils.RandomFloat,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RollLoot rolls once for zone. A produced item is handed to the sink right
// away and returned even if the sink rejects it.
func (g *Generator) RollLoot(ctx context.Context, zone int) *domain.Item {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgRollLootCalled, "player_id", g.playerID, "zone", zone)

	if zone < 1 {
		zone = domain.DefaultZone
	}
	if g.rnd() >= DropChance {
		log.Debug(LogMsgNoDrop, "zone", zone)
		return nil
	}

	item := g.roll(zone)
	accepted := false
	if g.sink != nil {
		accepted = g.sink.AddItem(ctx, item)
	}

	if g.events != nil {
		if err := g.events.Publish(ctx, event.NewItemLootedEvent(g.playerID, item, accepted)); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	log.Info(LogMsgItemRolled, "zone", zone, "name", item.Name, "rarity", item.Rarity, "accepted", accepted)
	return item
}

func (g *Generator) roll(zone int) *domain.Item {
	slots := domain.AllSlots()
	slot := slots[max(0, utils.WeightedIndex(slotWeights, g.rnd()))]

	rank := max(0, utils.WeightedIndex(rarityWeights(zone), g.rnd()))
	rarity := domain.Rarities()[rank]

	primaryKey := primaryStat(slot)
	primary := g.statValue(zone, rank)
	stats := domain.StatsOf(primaryKey, primary)

	if rank >= domain.RarityRare.Rank() {
		others := make([]domain.StatKey, 0, 2)
		for _, k := range domain.StatKeys() {
			if k != primaryKey {
				others = append(others, k)
			}
		}
		key := others[min(len(others)-1, int(g.rnd()*float64(len(others))))]
		value := int(math.Floor(float64(primary) * SecondaryFraction * g.variance()))
		stats.Set(key, max(1, value))
	}

	prefix := pick(prefixes[rarity], g.rnd())
	base := pick(baseNames[slot], g.rnd())

	return &domain.Item{
		InstanceID: g.ids.NewID(),
		CatalogID:  catalogID(base),
		Name:       itemName(prefix, base),
		Type:       slot,
		Rarity:     rarity,
		Color:      g.cat.Color(rarity),
		Stats:      stats,
		Zone:       zone,
		CreatedAt:  g.now(),
	}
}

// statValue is floor((BaseStat + zone*StatPerZone) * rarityScale * variance), at least 1
func (g *Generator) statValue(zone, rank int) int {
	raw := float64(BaseStat+zone*StatPerZone) * rarityScale[rank] * g.variance()
	return max(1, int(math.Floor(raw)))
}

func (g *Generator) variance() float64 {
	return VarianceMin + g.rnd()*VarianceSpan
}

func primaryStat(slot domain.SlotType) domain.StatKey {
	switch slot {
	case domain.SlotMainHand:
		return domain.StatAtk
	case domain.SlotTrinket:
		return domain.StatHP
	default:
		return domain.StatDef
	}
}

// rarityWeights skews the base weights toward higher tiers:
// w_i * (1 + ZoneSkew * (zone-1) * i)
func rarityWeights(zone int) []float64 {
	if zone < 1 {
		zone = 1
	}
	out := make([]float64, len(baseRarityWeights))
	for i, w := range baseRarityWeights {
		out[i] = w * (1 + ZoneSkew*float64(zone-1)*float64(i))
	}
	return out
}

// RarityOdds returns the probability of each rarity for a produced item
func RarityOdds(zone int) map[domain.Rarity]float64 {
	probs := utils.Normalize(rarityWeights(zone))
	out := make(map[domain.Rarity]float64, len(probs))
	for i, r := range domain.Rarities() {
		out[r] = probs[i]
	}
	return out
}

// ExpectedPrimaryStat is the mean primary stat of a produced item at zone,
// ignoring the floor rounding
func ExpectedPrimaryStat(zone int) float64 {
	if zone < 1 {
		zone = 1
	}
	probs := utils.Normalize(rarityWeights(zone))
	meanVariance := VarianceMin + VarianceSpan/2
	mean := 0.0
	for i, p := range probs {
		mean += p * float64(BaseStat+zone*StatPerZone) * rarityScale[i] * meanVariance
	}
	return mean
}
