package loot

// DropChance is the probability that a roll produces an item at all.
// It does not depend on zone.
const DropChance = 0.35

// ZoneSkew shifts rarity weight toward higher tiers per zone above 1
const ZoneSkew = 0.15

// Stat scaling
const (
	BaseStat          = 3
	StatPerZone       = 2
	VarianceMin       = 0.85
	VarianceSpan      = 0.30
	SecondaryFraction = 0.4
)

// baseRarityWeights are the zone 1 weights in rarity order
var baseRarityWeights = []float64{60, 25, 10, 4, 1}

// rarityScale multiplies the rolled stat per rarity rank
var rarityScale = []float64{1.0, 1.25, 1.6, 2.1, 3.0}

// slotWeights are the slot draw weights in domain.AllSlots order
var slotWeights = []float64{30, 20, 30, 20}

// Log messages
const (
	LogMsgRollLootCalled = "RollLoot called"
	LogMsgNoDrop         = "Loot roll produced nothing"
	LogMsgItemRolled     = "Loot item rolled"
	LogMsgPublishFailed  = "Failed to publish loot event"
)
