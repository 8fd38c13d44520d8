package domain

import "sort"

// MaterialID identifies a crafting material
type MaterialID string

const (
	MaterialScrap   MaterialID = "scrap"
	MaterialEssence MaterialID = "essence"
	MaterialCrystal MaterialID = "crystal"
)

// Material is an immutable catalog entry for a crafting material
type Material struct {
	ID    MaterialID `json:"id" yaml:"id" validate:"required"`
	Name  string     `json:"name" yaml:"name" validate:"required"`
	Icon  string     `json:"icon" yaml:"icon"`
	Color string     `json:"color" yaml:"color"`
}

// MaterialYield maps materials to quantities (salvage output, recipe cost)
type MaterialYield map[MaterialID]int

// Add accumulates other into y
func (y MaterialYield) Add(other MaterialYield) {
	for id, qty := range other {
		y[id] += qty
	}
}

// Total sums all quantities
func (y MaterialYield) Total() int {
	total := 0
	for _, qty := range y {
		total += qty
	}
	return total
}

// Clone returns an independent copy; a nil yield clones to nil
func (y MaterialYield) Clone() MaterialYield {
	if y == nil {
		return nil
	}
	c := make(MaterialYield, len(y))
	for id, qty := range y {
		c[id] = qty
	}
	return c
}

// IDs returns the material ids in sorted order, for stable iteration
func (y MaterialYield) IDs() []MaterialID {
	ids := make([]MaterialID, 0, len(y))
	for id := range y {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
