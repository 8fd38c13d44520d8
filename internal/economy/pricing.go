package economy

import (
	"fmt"
	"math"
	"regexp"

	"github.com/osse101/lootforge/internal/domain"
)

var upgradeSuffix = regexp.MustCompile(` \+\d+$`)

// SellValue returns max(1, floor(total stats * multiplier)).
// Rounded down to prevent fractional currency.
func SellValue(item *domain.Item, multiplier float64) int {
	if item == nil {
		return MinSellValue
	}
	value := int(math.Floor(float64(item.Stats.Total()) * multiplier))
	return max(MinSellValue, value)
}

// UpgradeCost returns max(10, floor(total stats * 10))
func UpgradeCost(item *domain.Item) int {
	if item == nil {
		return MinUpgradeCost
	}
	return max(MinUpgradeCost, item.Stats.Total()*UpgradeCostPerStat)
}

// UpgradeStats scales every granted stat by 1.2, rounding down.
// A stat that would not change is bumped by one instead, so every upgrade
// strictly increases every granted stat.
func UpgradeStats(s domain.Stats) domain.Stats {
	out := s
	for _, key := range s.Keys() {
		v := s.Get(key)
		next := int(math.Floor(float64(v) * UpgradeStatScale))
		if next <= v {
			next = v + 1
		}
		out.Set(key, next)
	}
	return out
}

// UpgradeName appends or replaces the trailing " +N" marker
func UpgradeName(name string, level int) string {
	base := upgradeSuffix.ReplaceAllString(name, "")
	return fmt.Sprintf(UpgradeSuffixFmt, base, level)
}

// CraftedStatValue returns floor(base * multiplier * (1 + zone * 0.25)).
// Non-positive zones count as zone 1.
func CraftedStatValue(base int, multiplier float64, zone int) int {
	if zone < 1 {
		zone = domain.DefaultZone
	}
	return int(math.Floor(float64(base) * multiplier * (1 + float64(zone)*CraftZoneScale)))
}

// CanAfford reports whether balances cover every entry of cost
func CanAfford(cost domain.MaterialYield, balances map[domain.MaterialID]int) bool {
	for id, need := range cost {
		if balances[id] < need {
			return false
		}
	}
	return true
}

// Missing returns the shortfall per material, empty when affordable
func Missing(cost domain.MaterialYield, balances map[domain.MaterialID]int) domain.MaterialYield {
	short := domain.MaterialYield{}
	for id, need := range cost {
		if have := balances[id]; have < need {
			short[id] = need - have
		}
	}
	return short
}
