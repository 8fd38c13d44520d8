package inventory

import "time"

// Notification durations
const (
	ToastShort  = 2000
	ToastNormal = 3000
	ToastLong   = 4000
)

// Notification icons
const (
	IconWarning = "⚠️"
	IconError   = "❌"
	IconGold    = "💰"
	IconSalvage = "🔨"
	IconUpgrade = "⬆️"
	IconCraft   = "⚒️"
)

// Notification colors for non-item toasts
const (
	ColorWarning = "#ffcc00"
	ColorError   = "#ff4444"
	ColorGold    = "#ffd700"
)

// User-facing messages
const (
	MsgInventoryFull         = "Inventory full! Sell or salvage items to make room."
	MsgSoldFmt               = "Sold %s for %d gold"
	MsgSoldBulkFmt           = "Sold %d items for %d gold"
	MsgSalvagedFmt           = "Salvaged %s: +%s"
	MsgSalvagedBulkFmt       = "Salvaged %d items: +%s"
	MsgItemNotFound          = "Item not found"
	MsgMaxUpgradesFmt        = "%s is already fully upgraded"
	MsgNotEnoughGoldFmt      = "Not enough gold: upgrade costs %d"
	MsgUpgradedFmt           = "Upgraded to %s"
	MsgRecipeUnknown         = "Unknown recipe"
	MsgCraftInventoryFull    = "Inventory full! Make room before crafting."
	MsgNotEnoughMaterialsFmt = "Not enough materials: need %s more"
	MsgCraftedFmt            = "Crafted %s!"
)

// Log messages
const (
	LogMsgAddItemCalled         = "AddItem called"
	LogMsgRemoveItemCalled      = "RemoveItem called"
	LogMsgSellItemCalled        = "SellItem called"
	LogMsgSellAllBelowCalled    = "SellAllBelow called"
	LogMsgUpgradeItemCalled     = "UpgradeItem called"
	LogMsgSalvageItemCalled     = "SalvageItem called"
	LogMsgSalvageAllBelowCalled = "SalvageAllBelow called"
	LogMsgCraftItemCalled       = "CraftItem called"
	LogMsgRejected              = "Inventory operation rejected"
	LogMsgDuplicateInstance     = "Instance id already held, assigning a fresh one"
	LogMsgRestoreDuplicate      = "Restore skipped, instance already held"
	LogMsgPublishFailed         = "Failed to publish inventory event"
)

// Error formats
const (
	ErrMsgCatalogMismatchFmt = "save was written against catalog %q, running %q: %w"
	ErrMsgDuplicateSavedFmt  = "save holds instance %q twice: %w"
	ErrMsgSavedRarityFmt     = "saved instance %q has unknown rarity %q: %w"
	ErrMsgSavedUpgradesFmt   = "saved instance %q has %d upgrades: %w"
)

// craftedCatalogIDFmt builds the timestamp-derived catalog id of crafted items
const craftedCatalogIDFmt = "%s_%s_%d"

// defaultClock is used when no clock is injected
var defaultClock = time.Now
