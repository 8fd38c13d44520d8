package loot

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/lootforge/internal/domain"
)

var prefixes = map[domain.Rarity][]string{
	domain.RarityCommon:    {"worn", "rusty", "plain", "crude"},
	domain.RarityUncommon:  {"sturdy", "fine", "polished"},
	domain.RarityRare:      {"runed", "gleaming", "masterwork"},
	domain.RarityEpic:      {"arcane", "shadowforged", "radiant"},
	domain.RarityLegendary: {"starforged", "eternal", "mythic"},
}

var baseNames = map[domain.SlotType][]string{
	domain.SlotMainHand: {"iron blade", "war axe", "longsword", "mace"},
	domain.SlotOffHand:  {"buckler", "kite shield", "tome", "parrying dagger"},
	domain.SlotArmor:    {"leather vest", "chainmail", "brigandine", "plate cuirass"},
	domain.SlotTrinket:  {"amulet", "signet ring", "charm", "talisman"},
}

func pick(list []string, roll float64) string {
	if len(list) == 0 {
		return ""
	}
	i := int(roll * float64(len(list)))
	if i >= len(list) {
		i = len(list) - 1
	}
	return list[i]
}

// itemName builds "<Prefix> <Base Name>" in title case
func itemName(prefix, base string) string {
	return cases.Title(language.English).String(prefix + " " + base)
}

// catalogID derives the template id from the base name ("loot_iron_blade")
func catalogID(base string) string {
	return domain.LootCatalogPrefix + "_" + strings.ReplaceAll(base, " ", "_")
}
