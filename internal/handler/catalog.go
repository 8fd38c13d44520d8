package handler

import (
	"net/http"

	"github.com/osse101/lootforge/internal/catalog"
	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/loot"
)

// RecipesResponse lists the craftable recipes
type RecipesResponse struct {
	CatalogVersion string          `json:"catalog_version"`
	Recipes        []domain.Recipe `json:"recipes"`
}

// LootOddsResponse describes what a loot roll can produce at a zone
type LootOddsResponse struct {
	Zone                int                       `json:"zone"`
	DropChance          float64                   `json:"drop_chance"`
	RarityOdds          map[domain.Rarity]float64 `json:"rarity_odds"`
	ExpectedPrimaryStat float64                   `json:"expected_primary_stat"`
}

// HandleListRecipes returns every recipe of the catalog
func HandleListRecipes(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, RecipesResponse{
			CatalogVersion: cat.Version,
			Recipes:        cat.AllRecipes(),
		})
	}
}

// HandleLootOdds returns the rarity distribution for ?zone=N (default 1)
func HandleLootOdds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zone, err := queryInt(r, "zone", domain.DefaultZone, maxZone)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, LootOddsResponse{
			Zone:                zone,
			DropChance:          loot.DropChance,
			RarityOdds:          loot.RarityOdds(zone),
			ExpectedPrimaryStat: loot.ExpectedPrimaryStat(zone),
		})
	}
}
