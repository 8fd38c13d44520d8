package domain

// Inventory and upgrade limits
const (
	DefaultInventoryCapacity = 50
	MaxUpgrades              = 3
)

// DefaultZone is used when game progress is unavailable
const DefaultZone = 1

// CraftedCatalogPrefix prefixes the catalog id of crafted items
const CraftedCatalogPrefix = "crafted"

// LootCatalogPrefix prefixes the catalog id of rolled items
const LootCatalogPrefix = "loot"
