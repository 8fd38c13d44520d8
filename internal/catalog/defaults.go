package catalog

import "github.com/osse101/lootforge/internal/domain"

// Default returns the built-in catalog
func Default() *Catalog {
	c := &Catalog{
		Version: DefaultVersion,
		Materials: []domain.Material{
			{ID: domain.MaterialScrap, Name: "Scrap", Icon: "🔩", Color: "#b0b0b0"},
			{ID: domain.MaterialEssence, Name: "Essence", Icon: "✨", Color: "#7fd4ff"},
			{ID: domain.MaterialCrystal, Name: "Crystal", Icon: "💎", Color: "#e070ff"},
		},
		SalvageYields: map[domain.Rarity]domain.MaterialYield{
			domain.RarityCommon:    {domain.MaterialScrap: 1},
			domain.RarityUncommon:  {domain.MaterialScrap: 3},
			domain.RarityRare:      {domain.MaterialScrap: 5, domain.MaterialEssence: 1},
			domain.RarityEpic:      {domain.MaterialScrap: 8, domain.MaterialEssence: 3, domain.MaterialCrystal: 1},
			domain.RarityLegendary: {domain.MaterialScrap: 12, domain.MaterialEssence: 6, domain.MaterialCrystal: 3},
		},
		SellMultipliers: map[domain.Rarity]float64{
			domain.RarityCommon:    1,
			domain.RarityUncommon:  3,
			domain.RarityRare:      8,
			domain.RarityEpic:      20,
			domain.RarityLegendary: 50,
		},
		RarityColors: map[domain.Rarity]string{
			domain.RarityCommon:    "#9d9d9d",
			domain.RarityUncommon:  "#1eff00",
			domain.RarityRare:      "#0070dd",
			domain.RarityEpic:      "#a335ee",
			domain.RarityLegendary: "#ff8000",
		},
		Recipes: defaultRecipes(),
	}
	c.index()
	return c
}

func defaultRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:          "craft_uncommon_weapon",
			Name:        "Forged Blade",
			Description: "A sturdy blade hammered from scrap.",
			Cost:        domain.MaterialYield{domain.MaterialScrap: 8},
			Result:      domain.RecipeResult{Type: domain.SlotMainHand, Rarity: domain.RarityUncommon, StatMultiplier: 1.5, BaseStat: 5, Stat: domain.StatAtk},
		},
		{
			ID:          "craft_uncommon_shield",
			Name:        "Forged Buckler",
			Description: "A small round shield.",
			Cost:        domain.MaterialYield{domain.MaterialScrap: 8},
			Result:      domain.RecipeResult{Type: domain.SlotOffHand, Rarity: domain.RarityUncommon, StatMultiplier: 1.5, BaseStat: 4, Stat: domain.StatDef},
		},
		{
			ID:          "craft_uncommon_armor",
			Name:        "Forged Mail",
			Description: "Riveted rings of salvaged metal.",
			Cost:        domain.MaterialYield{domain.MaterialScrap: 10},
			Result:      domain.RecipeResult{Type: domain.SlotArmor, Rarity: domain.RarityUncommon, StatMultiplier: 1.5, BaseStat: 5, Stat: domain.StatDef},
		},
		{
			ID:          "craft_uncommon_trinket",
			Name:        "Forged Charm",
			Description: "A warm pendant humming with essence.",
			Cost:        domain.MaterialYield{domain.MaterialScrap: 6, domain.MaterialEssence: 1},
			Result:      domain.RecipeResult{Type: domain.SlotTrinket, Rarity: domain.RarityUncommon, StatMultiplier: 1.5, BaseStat: 8, Stat: domain.StatHP},
		},
		{
			ID:          "craft_rare_weapon",
			Name:        "Runed Blade",
			Description: "Essence-etched runes sharpen the edge.",
			Cost:        domain.MaterialYield{domain.MaterialScrap: 15, domain.MaterialEssence: 3},
			Result:      domain.RecipeResult{Type: domain.SlotMainHand, Rarity: domain.RarityRare, StatMultiplier: 2, BaseStat: 6, Stat: domain.StatAtk},
		},
		{
			ID:          "craft_rare_armor",
			Name:        "Runed Plate",
			Description: "Plate armor bound with essence.",
			Cost:        domain.MaterialYield{domain.MaterialScrap: 15, domain.MaterialEssence: 3},
			Result:      domain.RecipeResult{Type: domain.SlotArmor, Rarity: domain.RarityRare, StatMultiplier: 2, BaseStat: 6, Stat: domain.StatDef},
		},
		{
			ID:          "craft_epic_weapon",
			Name:        "Arcane Blade",
			Description: "A crystal core channels raw power.",
			Cost:        domain.MaterialYield{domain.MaterialScrap: 25, domain.MaterialEssence: 8, domain.MaterialCrystal: 2},
			Result:      domain.RecipeResult{Type: domain.SlotMainHand, Rarity: domain.RarityEpic, StatMultiplier: 3, BaseStat: 7, Stat: domain.StatAtk},
		},
		{
			ID:          "craft_legendary_weapon",
			Name:        "Starforged Blade",
			Description: "Forged in the heart of a fallen star.",
			Cost:        domain.MaterialYield{domain.MaterialScrap: 40, domain.MaterialEssence: 15, domain.MaterialCrystal: 6},
			Result:      domain.RecipeResult{Type: domain.SlotMainHand, Rarity: domain.RarityLegendary, StatMultiplier: 4.5, BaseStat: 8, Stat: domain.StatAtk},
		},
	}
}
