package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/economy"
	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/logger"
)

// CanAffordRecipe reports whether material balances cover the recipe cost.
// Unknown recipes are never affordable.
func (l *Ledger) CanAffordRecipe(recipeID string) bool {
	recipe, ok := l.cat.Recipe(recipeID)
	if !ok {
		return false
	}
	return economy.CanAfford(recipe.Cost, l.res.Materials())
}

// CraftItem consumes the recipe cost and adds the forged item. Crafting is
// all-or-nothing: every check passes before the first debit.
func (l *Ledger) CraftItem(ctx context.Context, recipeID string) bool {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCraftItemCalled, "player_id", l.cfg.PlayerID, "recipe_id", recipeID)

	recipe, item, err := l.tryCraft(ctx, recipeID)
	if err != nil {
		log.Warn(LogMsgRejected, "op", "CraftItem", "reason", err, "recipe_id", recipeID)
		switch {
		case errors.Is(err, domain.ErrInventoryFull):
			l.notify(ctx, domain.NotifyWarning, MsgCraftInventoryFull, IconWarning, ColorWarning, ToastNormal)
		case errors.Is(err, domain.ErrInsufficientMaterials):
			missing := economy.Missing(recipe.Cost, l.res.Materials())
			l.notify(ctx, domain.NotifyWarning, fmt.Sprintf(MsgNotEnoughMaterialsFmt, l.formatYield(missing)), IconWarning, ColorWarning, ToastNormal)
		default:
			l.notify(ctx, domain.NotifyError, MsgRecipeUnknown, IconError, ColorError, ToastShort)
		}
		return false
	}

	l.notify(ctx, domain.NotifySuccess, fmt.Sprintf(MsgCraftedFmt, item.Name), IconCraft, item.Color, ToastLong)
	l.publish(ctx, event.NewItemCraftedEvent(l.cfg.PlayerID, recipe, item))
	log.Info("Item crafted", "recipe_id", recipeID, "instance_id", item.InstanceID, "stat", recipe.Result.Stat, "value", item.Stats.Get(recipe.Result.Stat))
	return true
}

func (l *Ledger) tryCraft(ctx context.Context, recipeID string) (domain.Recipe, *domain.Item, error) {
	recipe, ok := l.cat.Recipe(recipeID)
	if !ok {
		return recipe, nil, domain.ErrRecipeNotFound
	}
	if l.IsFull() {
		return recipe, nil, domain.ErrInventoryFull
	}
	if !economy.CanAfford(recipe.Cost, l.res.Materials()) {
		return recipe, nil, domain.ErrInsufficientMaterials
	}

	for _, id := range recipe.Cost.IDs() {
		l.res.AddMaterial(id, -recipe.Cost[id])
	}

	zone := l.currentZone()
	now := l.now()
	res := recipe.Result
	item := &domain.Item{
		InstanceID: l.ids.NewID(),
		CatalogID:  fmt.Sprintf(craftedCatalogIDFmt, domain.CraftedCatalogPrefix, recipe.ID, now.UnixMilli()),
		Name:       recipe.ItemName(),
		Type:       res.Type,
		Rarity:     res.Rarity,
		Color:      l.cat.Color(res.Rarity),
		Stats:      domain.StatsOf(res.Stat, economy.CraftedStatValue(res.BaseStat, res.StatMultiplier, zone)),
		Zone:       zone,
		CreatedAt:  now,
	}
	l.insert(ctx, item)
	return recipe, item, nil
}
