package economy

// Upgrade tuning
const (
	// MaxUpgrades caps the upgrade counter of a single item
	MaxUpgrades = 3

	// UpgradeStatScale multiplies every stat on each upgrade
	UpgradeStatScale = 1.2

	// UpgradeCostPerStat is the gold cost per stat point
	UpgradeCostPerStat = 10

	// MinUpgradeCost is the floor of any upgrade price
	MinUpgradeCost = 10
)

// MinSellValue is the floor of any sell price
const MinSellValue = 1

// CraftZoneScale is the per-zone bonus applied to crafted stats
const CraftZoneScale = 0.25

// UpgradeSuffixFmt renders the trailing upgrade marker of an item name
const UpgradeSuffixFmt = "%s +%d"
