// Package inventory implements the player's bounded item ledger and the
// sell, upgrade, salvage and craft operations that consume it.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/lootforge/internal/catalog"
	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/economy"
	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/idgen"
	"github.com/osse101/lootforge/internal/logger"
)

// ResourceLedger owns gold and material balances
type ResourceLedger interface {
	AddGold(amount int)
	RemoveGold(amount int)
	AddMaterial(id domain.MaterialID, delta int)
	Gold() int
	Materials() map[domain.MaterialID]int
}

// Notifier receives fire-and-forget user feedback
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// ProgressSource reports the player's current zone
type ProgressSource interface {
	CurrentZone() int
}

// Config holds the ledger settings
type Config struct {
	PlayerID string
	Capacity int
}

// Dependencies are the collaborators injected at construction.
// Events and Progress may be nil.
type Dependencies struct {
	Catalog   *catalog.Catalog
	Resources ResourceLedger
	Notifier  Notifier
	Progress  ProgressSource
	IDs       idgen.Generator
	Events    event.Publisher
	Now       func() time.Time
}

// Ledger is the ordered, capacity-bounded collection of unequipped items.
//
// A Ledger is not safe for concurrent use. Every command runs to completion
// before the next one starts; game.Registry serializes commands per player.
type Ledger struct {
	cfg      Config
	cat      *catalog.Catalog
	res      ResourceLedger
	notifier Notifier
	progress ProgressSource
	ids      idgen.Generator
	events   event.Publisher
	now      func() time.Time

	items []*domain.Item
}

// NewLedger creates an empty ledger
func NewLedger(cfg Config, deps Dependencies) *Ledger {
	if cfg.Capacity <= 0 {
		cfg.Capacity = domain.DefaultInventoryCapacity
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.IDs == nil {
		deps.IDs = idgen.NewUUID()
	}
	if deps.Now == nil {
		deps.Now = defaultClock
	}
	return &Ledger{
		cfg:      cfg,
		cat:      deps.Catalog,
		res:      deps.Resources,
		notifier: deps.Notifier,
		progress: deps.Progress,
		ids:      deps.IDs,
		events:   deps.Events,
		now:      deps.Now,
	}
}

// Capacity returns the item cap
func (l *Ledger) Capacity() int { return l.cfg.Capacity }

// Count returns how many items are held
func (l *Ledger) Count() int { return len(l.items) }

// IsFull reports count >= capacity
func (l *Ledger) IsFull() bool {
	return len(l.items) >= l.cfg.Capacity
}

// Items returns copies of every item in insertion order
func (l *Ledger) Items() []domain.Item {
	out := make([]domain.Item, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, *it)
	}
	return out
}

// ItemsForSlot returns copies of the items that fit slot
func (l *Ledger) ItemsForSlot(slot domain.SlotType) []domain.Item {
	out := make([]domain.Item, 0)
	for _, it := range l.items {
		if it.Type == slot {
			out = append(out, *it)
		}
	}
	return out
}

// Get returns a copy of the item with instanceID
func (l *Ledger) Get(instanceID string) (*domain.Item, bool) {
	i := l.indexOf(instanceID)
	if i < 0 {
		return nil, false
	}
	return l.items[i].Clone(), true
}

// AddItem appends item unless the inventory is full. An instance id is
// assigned when absent (and written back to item). Returns false with a
// warning notification when full.
func (l *Ledger) AddItem(ctx context.Context, item *domain.Item) bool {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAddItemCalled, "player_id", l.cfg.PlayerID, "count", len(l.items), "capacity", l.cfg.Capacity)

	if item == nil {
		return false
	}
	if l.IsFull() {
		log.Warn(LogMsgRejected, "op", "AddItem", "reason", domain.ErrInventoryFull)
		l.notify(ctx, domain.NotifyWarning, MsgInventoryFull, IconWarning, ColorWarning, ToastNormal)
		return false
	}

	l.insert(ctx, item)
	l.publish(ctx, event.NewItemAddedEvent(l.cfg.PlayerID, item))
	return true
}

// Restore inserts item without the capacity check. Equipment transfer uses
// it so gear coming off a character is never stranded; the inventory may
// then sit above capacity until the player frees space.
func (l *Ledger) Restore(ctx context.Context, item *domain.Item) {
	if item == nil {
		return
	}
	if item.InstanceID != "" && l.indexOf(item.InstanceID) >= 0 {
		logger.FromContext(ctx).Warn(LogMsgRestoreDuplicate, "instance_id", item.InstanceID)
		return
	}
	l.insert(ctx, item)
}

func (l *Ledger) insert(ctx context.Context, item *domain.Item) {
	if item.InstanceID == "" {
		item.InstanceID = l.ids.NewID()
	} else if l.indexOf(item.InstanceID) >= 0 {
		logger.FromContext(ctx).Warn(LogMsgDuplicateInstance, "instance_id", item.InstanceID)
		item.InstanceID = l.ids.NewID()
	}
	if item.Color == "" {
		item.Color = l.cat.Color(item.Rarity)
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = l.now()
	}
	l.items = append(l.items, item.Clone())
}

// RemoveItem deletes the item; absent ids are a no-op
func (l *Ledger) RemoveItem(ctx context.Context, instanceID string) {
	logger.FromContext(ctx).Debug(LogMsgRemoveItemCalled, "instance_id", instanceID)
	l.take(instanceID)
}

// Take removes the item and hands it to the caller
func (l *Ledger) Take(ctx context.Context, instanceID string) (*domain.Item, bool) {
	logger.FromContext(ctx).Debug(LogMsgRemoveItemCalled, "instance_id", instanceID, "take", true)
	return l.take(instanceID)
}

func (l *Ledger) take(instanceID string) (*domain.Item, bool) {
	i := l.indexOf(instanceID)
	if i < 0 {
		return nil, false
	}
	it := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return it, true
}

func (l *Ledger) removeSet(ids map[string]struct{}) {
	kept := l.items[:0]
	for _, it := range l.items {
		if _, drop := ids[it.InstanceID]; !drop {
			kept = append(kept, it)
		}
	}
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = nil
	}
	l.items = kept
}

func (l *Ledger) indexOf(instanceID string) int {
	for i, it := range l.items {
		if it.InstanceID == instanceID {
			return i
		}
	}
	return -1
}

// below partitions the items strictly below rarity, in insertion order
func (l *Ledger) below(r domain.Rarity) []*domain.Item {
	var out []*domain.Item
	for _, it := range l.items {
		if it.Rarity.Below(r) {
			out = append(out, it)
		}
	}
	return out
}

func (l *Ledger) notify(ctx context.Context, kind domain.NotificationKind, msg, icon, color string, durationMs int) {
	if l.notifier == nil {
		return
	}
	l.notifier.Notify(ctx, domain.Notification{
		Kind:       kind,
		Message:    msg,
		Icon:       icon,
		Color:      color,
		DurationMs: durationMs,
	})
}

func (l *Ledger) publish(ctx context.Context, evt event.Event) {
	if l.events == nil {
		return
	}
	if err := l.events.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func (l *Ledger) currentZone() int {
	if l.progress == nil {
		return domain.DefaultZone
	}
	if z := l.progress.CurrentZone(); z > 0 {
		return z
	}
	return domain.DefaultZone
}

// formatYield renders "3 Scrap, 1 Essence" in material id order
func (l *Ledger) formatYield(y domain.MaterialYield) string {
	parts := make([]string, 0, len(y))
	for _, id := range y.IDs() {
		name := string(id)
		if m, ok := l.cat.Material(id); ok {
			name = m.Name
		}
		parts = append(parts, fmt.Sprintf("%d %s", y[id], name))
	}
	return strings.Join(parts, ", ")
}

// Snapshot returns the persistable form of the inventory
func (l *Ledger) Snapshot() domain.InventorySnapshot {
	return domain.InventorySnapshot{
		CatalogVersion: l.cat.Version,
		Items:          l.Items(),
		LastUpdate:     l.now().Unix(),
	}
}

// LoadSnapshot replaces the inventory with a saved one. Saves written against
// another catalog version are rejected; an empty version is accepted.
func (l *Ledger) LoadSnapshot(snap domain.InventorySnapshot) error {
	if snap.CatalogVersion != "" && snap.CatalogVersion != l.cat.Version {
		return fmt.Errorf(ErrMsgCatalogMismatchFmt, snap.CatalogVersion, l.cat.Version, domain.ErrInvalidCatalog)
	}
	seen := make(map[string]struct{}, len(snap.Items))
	items := make([]*domain.Item, 0, len(snap.Items))
	for i := range snap.Items {
		it := snap.Items[i]
		if it.InstanceID == "" {
			it.InstanceID = l.ids.NewID()
		}
		if _, dup := seen[it.InstanceID]; dup {
			return fmt.Errorf(ErrMsgDuplicateSavedFmt, it.InstanceID, domain.ErrInvalidInput)
		}
		seen[it.InstanceID] = struct{}{}
		if !it.Rarity.Valid() {
			return fmt.Errorf(ErrMsgSavedRarityFmt, it.InstanceID, it.Rarity, domain.ErrInvalidInput)
		}
		if it.Upgrades < 0 || it.Upgrades > economy.MaxUpgrades {
			return fmt.Errorf(ErrMsgSavedUpgradesFmt, it.InstanceID, it.Upgrades, domain.ErrInvalidInput)
		}
		items = append(items, &it)
	}
	l.items = items
	return nil
}
