package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is the quality tier of an item. Tiers are totally ordered:
// Common < Uncommon < Rare < Epic < Legendary.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// rarityOrder defines the total order; index is the rank
var rarityOrder = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

// Rarities returns every tier from lowest to highest
func Rarities() []Rarity {
	return append([]Rarity(nil), rarityOrder...)
}

// Rank returns the position of r in the total order, or -1 when r is unknown
func (r Rarity) Rank() int {
	for i, known := range rarityOrder {
		if r == known {
			return i
		}
	}
	return -1
}

// Valid reports whether r is a known tier
func (r Rarity) Valid() bool {
	return r.Rank() >= 0
}

// Below reports whether r is strictly lower than other.
// Unknown tiers are never below anything.
func (r Rarity) Below(other Rarity) bool {
	rank, otherRank := r.Rank(), other.Rank()
	if rank < 0 || otherRank < 0 {
		return false
	}
	return rank < otherRank
}

// ParseRarity resolves a tier name case-insensitively ("EPIC", "epic" -> Epic)
func ParseRarity(name string) (Rarity, bool) {
	normalized := Rarity(cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(name))))
	if !normalized.Valid() {
		return "", false
	}
	return normalized, true
}
