package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/economy"
	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/logger"
)

// SellValue returns the gold an item is worth. Pure, no state.
func (l *Ledger) SellValue(item *domain.Item) int {
	if item == nil {
		return economy.MinSellValue
	}
	return economy.SellValue(item, l.cat.SellMultiplier(item.Rarity))
}

// SellItem sells one item and returns the gold granted, 0 when absent.
// Gold is credited before the item leaves the ledger.
func (l *Ledger) SellItem(ctx context.Context, instanceID string) int {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellItemCalled, "player_id", l.cfg.PlayerID, "instance_id", instanceID)

	i := l.indexOf(instanceID)
	if i < 0 {
		log.Warn(LogMsgRejected, "op", "SellItem", "reason", domain.ErrItemNotFound, "instance_id", instanceID)
		return 0
	}
	item := l.items[i]
	value := l.SellValue(item)

	l.res.AddGold(value)
	l.take(instanceID)

	l.notify(ctx, domain.NotifyReward, fmt.Sprintf(MsgSoldFmt, item.Name, value), IconGold, ColorGold, ToastShort)
	l.publish(ctx, event.NewItemSoldEvent(l.cfg.PlayerID, []*domain.Item{item}, value))
	log.Info("Item sold", "instance_id", instanceID, "rarity", item.Rarity, "gold", value)
	return value
}

// SellAllBelow sells every item strictly below rarity in one transaction
// and returns the total gold. Unknown rarities and empty partitions are no-ops.
func (l *Ledger) SellAllBelow(ctx context.Context, rarity domain.Rarity) int {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellAllBelowCalled, "player_id", l.cfg.PlayerID, "rarity", rarity)

	if !rarity.Valid() {
		log.Warn(LogMsgRejected, "op", "SellAllBelow", "reason", domain.ErrUnknownRarity, "rarity", rarity)
		return 0
	}
	targets := l.below(rarity)
	if len(targets) == 0 {
		return 0
	}

	total := 0
	ids := make(map[string]struct{}, len(targets))
	for _, it := range targets {
		total += l.SellValue(it)
		ids[it.InstanceID] = struct{}{}
	}

	l.res.AddGold(total)
	l.removeSet(ids)

	l.notify(ctx, domain.NotifyReward, fmt.Sprintf(MsgSoldBulkFmt, len(targets), total), IconGold, ColorGold, ToastNormal)
	l.publish(ctx, event.NewItemSoldEvent(l.cfg.PlayerID, targets, total))
	log.Info("Items sold", "count", len(targets), "gold", total)
	return total
}
