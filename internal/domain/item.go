package domain

import (
	"strings"
	"time"
)

// SlotType is the equipment slot an item occupies when equipped
type SlotType string

const (
	SlotMainHand SlotType = "mainHand"
	SlotOffHand  SlotType = "offHand"
	SlotArmor    SlotType = "armor"
	SlotTrinket  SlotType = "trinket"
)

var slotOrder = []SlotType{SlotMainHand, SlotOffHand, SlotArmor, SlotTrinket}

// AllSlots returns every slot type in display order
func AllSlots() []SlotType {
	return append([]SlotType(nil), slotOrder...)
}

// Valid reports whether s is one of the four known slot types
func (s SlotType) Valid() bool {
	for _, known := range slotOrder {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSlot resolves a slot name case-insensitively ("mainhand" -> mainHand)
func ParseSlot(name string) (SlotType, bool) {
	for _, known := range slotOrder {
		if strings.EqualFold(string(known), strings.TrimSpace(name)) {
			return known, true
		}
	}
	return "", false
}

// Item is one physical piece of equipment.
//
// InstanceID is the identity key: unique across the inventory and every
// equipment slot. CatalogID names the recipe or loot template the item came
// from and repeats freely between instances.
type Item struct {
	InstanceID string    `json:"instance_id"`
	CatalogID  string    `json:"catalog_id"`
	Name       string    `json:"name"`
	Type       SlotType  `json:"type"`
	Rarity     Rarity    `json:"rarity"`
	Color      string    `json:"rarity_color"`
	Stats      Stats     `json:"stats"`
	Zone       int       `json:"zone"`
	Upgrades   int       `json:"upgrades"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// Clone returns an independent copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
