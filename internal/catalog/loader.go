package catalog

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/lootforge/internal/domain"
)

var validate = validator.New()

// Load reads a YAML catalog and validates it.
// Malformed data is a build-time bug, so every failure wraps domain.ErrInvalidCatalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates catalog YAML; name is used in error messages
func Parse(name string, data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, name, err, domain.ErrInvalidCatalog)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.index()
	return &c, nil
}

// Validate runs struct tag validation plus the cross-table rules tags cannot express
func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf(ErrMsgValidationFailed, err, domain.ErrInvalidCatalog)
	}

	materials := make(map[domain.MaterialID]struct{}, len(c.Materials))
	for _, m := range c.Materials {
		if _, dup := materials[m.ID]; dup {
			return fmt.Errorf(ErrMsgDuplicateMaterial, m.ID, domain.ErrInvalidCatalog)
		}
		materials[m.ID] = struct{}{}
	}

	for _, r := range domain.Rarities() {
		if _, ok := c.SellMultipliers[r]; !ok {
			return fmt.Errorf(ErrMsgMissingRarityFmt, "sell_multipliers", r, domain.ErrInvalidCatalog)
		}
		if _, ok := c.RarityColors[r]; !ok {
			return fmt.Errorf(ErrMsgMissingRarityFmt, "rarity_colors", r, domain.ErrInvalidCatalog)
		}
	}
	for r, y := range c.SalvageYields {
		if !r.Valid() {
			return fmt.Errorf(ErrMsgUnknownRarityFmt, "salvage_yields", r, domain.ErrInvalidCatalog)
		}
		for id := range y {
			if _, ok := materials[id]; !ok {
				return fmt.Errorf(ErrMsgUnknownMaterialFmt, "salvage:"+string(r), id, domain.ErrInvalidCatalog)
			}
		}
	}
	for r := range c.SellMultipliers {
		if !r.Valid() {
			return fmt.Errorf(ErrMsgUnknownRarityFmt, "sell_multipliers", r, domain.ErrInvalidCatalog)
		}
	}

	seen := make(map[string]struct{}, len(c.Recipes))
	for _, rec := range c.Recipes {
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf(ErrMsgDuplicateRecipeFmt, rec.ID, domain.ErrInvalidCatalog)
		}
		seen[rec.ID] = struct{}{}
		for id := range rec.Cost {
			if _, ok := materials[id]; !ok {
				return fmt.Errorf(ErrMsgUnknownMaterialFmt, rec.ID, id, domain.ErrInvalidCatalog)
			}
		}
	}
	return nil
}
