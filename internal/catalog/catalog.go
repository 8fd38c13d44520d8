// Package catalog holds the static item economy tables: materials, salvage
// yields, sell multipliers, rarity colors and crafting recipes.
package catalog

import (
	"github.com/osse101/lootforge/internal/domain"
)

// Catalog is read-only after construction and safe for concurrent use
type Catalog struct {
	Version         string                                 `yaml:"version" json:"version" validate:"required"`
	Materials       []domain.Material                      `yaml:"materials" json:"materials" validate:"required,min=1,dive"`
	SalvageYields   map[domain.Rarity]domain.MaterialYield `yaml:"salvage_yields" json:"salvage_yields" validate:"required,dive,dive,gt=0"`
	SellMultipliers map[domain.Rarity]float64              `yaml:"sell_multipliers" json:"sell_multipliers" validate:"required,dive,gt=0"`
	RarityColors    map[domain.Rarity]string               `yaml:"rarity_colors" json:"rarity_colors" validate:"required,dive,hexcolor"`
	Recipes         []domain.Recipe                        `yaml:"recipes" json:"recipes" validate:"required,min=1,dive"`

	recipeIndex map[string]int
}

// fallbackYield is granted for rarities missing from the salvage table
var fallbackYield = domain.MaterialYield{domain.MaterialScrap: 1}

const (
	fallbackMultiplier = 1.0
	fallbackColor      = "#ffffff"
)

func (c *Catalog) index() {
	c.recipeIndex = make(map[string]int, len(c.Recipes))
	for i, r := range c.Recipes {
		c.recipeIndex[r.ID] = i
	}
}

// Recipe looks up a recipe by id
func (c *Catalog) Recipe(id string) (domain.Recipe, bool) {
	if c.recipeIndex == nil {
		for _, r := range c.Recipes {
			if r.ID == id {
				return r, true
			}
		}
		return domain.Recipe{}, false
	}
	i, ok := c.recipeIndex[id]
	if !ok {
		return domain.Recipe{}, false
	}
	return c.Recipes[i], true
}

// AllRecipes returns the recipes in catalog order
func (c *Catalog) AllRecipes() []domain.Recipe {
	return append([]domain.Recipe(nil), c.Recipes...)
}

// SalvageYield returns a copy of the yield for rarity.
// Unknown rarities fall back to a single scrap; this is policy, not an error.
func (c *Catalog) SalvageYield(r domain.Rarity) domain.MaterialYield {
	if y, ok := c.SalvageYields[r]; ok {
		return y.Clone()
	}
	return fallbackYield.Clone()
}

// SellMultiplier returns the gold multiplier for rarity (1 when unknown)
func (c *Catalog) SellMultiplier(r domain.Rarity) float64 {
	if m, ok := c.SellMultipliers[r]; ok {
		return m
	}
	return fallbackMultiplier
}

// Color returns the display color for rarity
func (c *Catalog) Color(r domain.Rarity) string {
	if col, ok := c.RarityColors[r]; ok {
		return col
	}
	return fallbackColor
}

// Material looks up a material definition
func (c *Catalog) Material(id domain.MaterialID) (domain.Material, bool) {
	for _, m := range c.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Material{}, false
}
