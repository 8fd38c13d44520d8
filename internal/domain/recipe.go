package domain

// RecipeResult is the template of the item a recipe produces
type RecipeResult struct {
	Type           SlotType `json:"type" yaml:"type" validate:"required,oneof=mainHand offHand armor trinket"`
	Rarity         Rarity   `json:"rarity" yaml:"rarity" validate:"required,oneof=Common Uncommon Rare Epic Legendary"`
	StatMultiplier float64  `json:"stat_multiplier" yaml:"stat_multiplier" validate:"gt=0"`
	BaseStat       int      `json:"base_stat" yaml:"base_stat" validate:"gt=0"`
	Stat           StatKey  `json:"stat" yaml:"stat" validate:"required,oneof=atk def hp"`
	Name           string   `json:"name,omitempty" yaml:"name,omitempty"`
}

// Recipe is static catalog data: a material cost and the item it forges
type Recipe struct {
	ID          string        `json:"id" yaml:"id" validate:"required"`
	Name        string        `json:"name" yaml:"name" validate:"required"`
	Description string        `json:"description" yaml:"description"`
	Cost        MaterialYield `json:"cost" yaml:"cost" validate:"required,min=1,dive,keys,required,endkeys,gt=0"`
	Result      RecipeResult  `json:"result" yaml:"result"`
}

// ItemName returns the display name of crafted items
func (r Recipe) ItemName() string {
	if r.Result.Name != "" {
		return r.Result.Name
	}
	return r.Name
}
