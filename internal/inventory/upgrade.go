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

// UpgradeCost returns the gold price of the next upgrade. ok is false when
// the item does not exist, which callers treat as unaffordable.
func (l *Ledger) UpgradeCost(instanceID string) (cost int, ok bool) {
	i := l.indexOf(instanceID)
	if i < 0 {
		return 0, false
	}
	return economy.UpgradeCost(l.items[i]), true
}

// UpgradeItem spends gold to scale every stat of the item by 1.2 and bump
// its "+N" suffix. Fails at three upgrades or when gold is short.
func (l *Ledger) UpgradeItem(ctx context.Context, instanceID string) bool {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpgradeItemCalled, "player_id", l.cfg.PlayerID, "instance_id", instanceID)

	item, cost, err := l.tryUpgrade(instanceID)
	if err != nil {
		log.Warn(LogMsgRejected, "op", "UpgradeItem", "reason", err, "instance_id", instanceID)
		switch {
		case errors.Is(err, domain.ErrMaxUpgrades):
			l.notify(ctx, domain.NotifyWarning, fmt.Sprintf(MsgMaxUpgradesFmt, item.Name), IconWarning, ColorWarning, ToastNormal)
		case errors.Is(err, domain.ErrInsufficientFunds):
			l.notify(ctx, domain.NotifyWarning, fmt.Sprintf(MsgNotEnoughGoldFmt, cost), IconGold, ColorWarning, ToastNormal)
		default:
			l.notify(ctx, domain.NotifyError, MsgItemNotFound, IconError, ColorError, ToastShort)
		}
		return false
	}

	l.notify(ctx, domain.NotifySuccess, fmt.Sprintf(MsgUpgradedFmt, item.Name), IconUpgrade, item.Color, ToastNormal)
	l.publish(ctx, event.NewItemUpgradedEvent(l.cfg.PlayerID, item, cost))
	log.Info("Item upgraded", "instance_id", instanceID, "level", item.Upgrades, "cost", cost)
	return true
}

// tryUpgrade checks every precondition before mutating anything
func (l *Ledger) tryUpgrade(instanceID string) (*domain.Item, int, error) {
	i := l.indexOf(instanceID)
	if i < 0 {
		return nil, 0, domain.ErrItemNotFound
	}
	item := l.items[i]
	if item.Upgrades >= economy.MaxUpgrades {
		return item, 0, domain.ErrMaxUpgrades
	}
	cost := economy.UpgradeCost(item)
	if l.res.Gold() < cost {
		return item, cost, domain.ErrInsufficientFunds
	}

	l.res.RemoveGold(cost)
	item.Stats = economy.UpgradeStats(item.Stats)
	item.Upgrades++
	item.Name = economy.UpgradeName(item.Name, item.Upgrades)
	return item, cost, nil
}
