package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Inventory errors
	ErrMsgInventoryFull = "inventory is full"
	ErrMsgItemNotFound  = "item not found"

	// Upgrade errors
	ErrMsgMaxUpgrades = "item is already at max upgrades"

	// Resource errors
	ErrMsgInsufficientFunds     = "insufficient funds"
	ErrMsgInsufficientMaterials = "insufficient materials"

	// Catalog errors
	ErrMsgRecipeNotFound = "recipe not found"
	ErrMsgUnknownRarity  = "unknown rarity"
	ErrMsgInvalidCatalog = "invalid catalog"

	// Party errors
	ErrMsgMemberNotFound = "party member not found"
	ErrMsgSlotEmpty      = "equipment slot is empty"
	ErrMsgInvalidSlot    = "invalid equipment slot"

	// Persistence errors
	ErrMsgPlayerNotFound = "player not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Business outcomes never leave the core as errors; the ledger maps them to
// notifications and sentinel returns. Infrastructure code wraps them with
// fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInventoryFull = errors.New(ErrMsgInventoryFull)
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)

	ErrMaxUpgrades = errors.New(ErrMsgMaxUpgrades)

	ErrInsufficientFunds     = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientMaterials = errors.New(ErrMsgInsufficientMaterials)

	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrUnknownRarity  = errors.New(ErrMsgUnknownRarity)
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	ErrMemberNotFound = errors.New(ErrMsgMemberNotFound)
	ErrSlotEmpty      = errors.New(ErrMsgSlotEmpty)
	ErrInvalidSlot    = errors.New(ErrMsgInvalidSlot)

	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
