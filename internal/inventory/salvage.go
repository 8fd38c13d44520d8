package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/logger"
)

// SalvageItem destroys one item for materials and returns the yield
// actually granted, nil when the item does not exist.
func (l *Ledger) SalvageItem(ctx context.Context, instanceID string) domain.MaterialYield {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSalvageItemCalled, "player_id", l.cfg.PlayerID, "instance_id", instanceID)

	i := l.indexOf(instanceID)
	if i < 0 {
		log.Warn(LogMsgRejected, "op", "SalvageItem", "reason", domain.ErrItemNotFound, "instance_id", instanceID)
		return nil
	}
	item := l.items[i]
	yield := l.cat.SalvageYield(item.Rarity)

	l.credit(yield)
	l.take(instanceID)

	l.notify(ctx, domain.NotifySuccess, fmt.Sprintf(MsgSalvagedFmt, item.Name, l.formatYield(yield)), IconSalvage, item.Color, ToastShort)
	l.publish(ctx, event.NewItemSalvagedEvent(l.cfg.PlayerID, []*domain.Item{item}, yield))
	log.Info("Item salvaged", "instance_id", instanceID, "rarity", item.Rarity, "yield", yield)
	return yield
}

// SalvageAllBelow salvages every item strictly below rarity, crediting the
// aggregated yield once. Returns an empty yield when nothing qualifies.
func (l *Ledger) SalvageAllBelow(ctx context.Context, rarity domain.Rarity) domain.MaterialYield {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSalvageAllBelowCalled, "player_id", l.cfg.PlayerID, "rarity", rarity)

	total := domain.MaterialYield{}
	if !rarity.Valid() {
		log.Warn(LogMsgRejected, "op", "SalvageAllBelow", "reason", domain.ErrUnknownRarity, "rarity", rarity)
		return total
	}
	targets := l.below(rarity)
	if len(targets) == 0 {
		return total
	}

	ids := make(map[string]struct{}, len(targets))
	for _, it := range targets {
		total.Add(l.cat.SalvageYield(it.Rarity))
		ids[it.InstanceID] = struct{}{}
	}

	l.credit(total)
	l.removeSet(ids)

	l.notify(ctx, domain.NotifySuccess, fmt.Sprintf(MsgSalvagedBulkFmt, len(targets), l.formatYield(total)), IconSalvage, "", ToastNormal)
	l.publish(ctx, event.NewItemSalvagedEvent(l.cfg.PlayerID, targets, total))
	log.Info("Items salvaged", "count", len(targets), "yield", total)
	return total
}

func (l *Ledger) credit(y domain.MaterialYield) {
	for _, id := range y.IDs() {
		l.res.AddMaterial(id, y[id])
	}
}
