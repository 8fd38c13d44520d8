package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeItemLooted is published when a loot roll produces an item
	EventTypeItemLooted = "item.looted"

	// EventTypeItemAdded is published when an item enters the inventory
	EventTypeItemAdded = "item.added"

	// EventTypeItemSold is published when items are sold for gold
	EventTypeItemSold = "item.sold"

	// EventTypeItemSalvaged is published when items are broken down into materials
	EventTypeItemSalvaged = "item.salvaged"

	// EventTypeItemCrafted is published when a recipe produces an item
	EventTypeItemCrafted = "item.crafted"

	// EventTypeItemUpgraded is published after a successful upgrade
	EventTypeItemUpgraded = "item.upgraded"

	EventTypeItemEquipped   = "item.equipped"
	EventTypeItemUnequipped = "item.unequipped"
)
