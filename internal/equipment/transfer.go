// Package equipment moves items between the inventory and the equipment
// slots of party members. An instance is always in exactly one place.
package equipment

import (
	"context"
	"fmt"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/event"
	"github.com/osse101/lootforge/internal/logger"
)

// Inventory is the side of the inventory ledger transfers need.
// Restore must accept items even above capacity.
type Inventory interface {
	Get(instanceID string) (*domain.Item, bool)
	Take(ctx context.Context, instanceID string) (*domain.Item, bool)
	Restore(ctx context.Context, item *domain.Item)
}

// PartyStore owns party members and their slots
type PartyStore interface {
	Member(id string) (*domain.Member, bool)
	SetEquipment(memberID string, slot domain.SlotType, item *domain.Item) error
}

// Notifier receives fire-and-forget user feedback
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Option configures a Transfer
type Option func(*Transfer)

// WithEvents publishes equip and unequip events for playerID
func WithEvents(pub event.Publisher, playerID string) Option {
	return func(t *Transfer) {
		t.events = pub
		t.playerID = playerID
	}
}

// Transfer is the two-way bridge between inventory and equipment slots
type Transfer struct {
	inv      Inventory
	party    PartyStore
	notifier Notifier
	events   event.Publisher
	playerID string
}

// NewTransfer creates a Transfer
func NewTransfer(inv Inventory, party PartyStore, notifier Notifier, opts ...Option) *Transfer {
	t := &Transfer{inv: inv, party: party, notifier: notifier}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// EquipItem moves an inventory item into the member slot matching its type.
// Any occupant goes back to the inventory, even when that pushes it over
// capacity. Returns false when the member or the item does not exist.
func (t *Transfer) EquipItem(ctx context.Context, memberID, instanceID string) bool {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipCalled, "member_id", memberID, "instance_id", instanceID)

	member, ok := t.party.Member(memberID)
	if !ok {
		log.Warn(LogMsgRejected, "reason", domain.ErrMemberNotFound, "member_id", memberID)
		return false
	}
	incoming, ok := t.inv.Get(instanceID)
	if !ok {
		log.Warn(LogMsgRejected, "reason", domain.ErrItemNotFound, "instance_id", instanceID)
		t.notify(ctx, domain.NotifyError, MsgItemNotFound, "", "")
		return false
	}
	slot := incoming.Type
	if !slot.Valid() {
		log.Warn(LogMsgRejected, "reason", domain.ErrInvalidSlot, "slot", slot)
		return false
	}
	occupant := member.Equipped(slot)

	incoming, _ = t.inv.Take(ctx, instanceID)
	if err := t.party.SetEquipment(memberID, slot, incoming); err != nil {
		log.Error(LogMsgSlotWriteFail, "error", err, "member_id", memberID, "slot", slot)
		t.inv.Restore(ctx, incoming)
		return false
	}
	displaced := ""
	if occupant != nil {
		t.inv.Restore(ctx, occupant)
		displaced = occupant.InstanceID
	}

	t.notify(ctx, domain.NotifySuccess, fmt.Sprintf(MsgEquippedFmt, member.Name, incoming.Name), IconEquip, incoming.Color)
	t.publish(ctx, event.NewItemEquipEvent(event.ItemEquipped, t.playerID, memberID, slot, instanceID, displaced))
	log.Info("Item equipped", "member_id", memberID, "slot", slot, "instance_id", instanceID, "displaced", displaced)
	return true
}

// UnequipItem returns the occupant of slot to the inventory and empties the
// slot. Capacity is not a precondition. Returns false when the member does
// not exist or the slot is empty.
func (t *Transfer) UnequipItem(ctx context.Context, memberID string, slot domain.SlotType) bool {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUnequipCalled, "member_id", memberID, "slot", slot)

	member, ok := t.party.Member(memberID)
	if !ok {
		log.Warn(LogMsgRejected, "reason", domain.ErrMemberNotFound, "member_id", memberID)
		return false
	}
	occupant := member.Equipped(slot)
	if occupant == nil {
		log.Warn(LogMsgRejected, "reason", domain.ErrSlotEmpty, "member_id", memberID, "slot", slot)
		return false
	}

	if err := t.party.SetEquipment(memberID, slot, nil); err != nil {
		log.Error(LogMsgSlotWriteFail, "error", err, "member_id", memberID, "slot", slot)
		return false
	}
	t.inv.Restore(ctx, occupant)

	t.notify(ctx, domain.NotifyInfo, fmt.Sprintf(MsgUnequippedFmt, member.Name, occupant.Name), IconUnequip, occupant.Color)
	t.publish(ctx, event.NewItemEquipEvent(event.ItemUnequipped, t.playerID, memberID, slot, occupant.InstanceID, ""))
	return true
}

// Equipped returns a copy of the member's slots
func (t *Transfer) Equipped(memberID string) (map[domain.SlotType]*domain.Item, bool) {
	member, ok := t.party.Member(memberID)
	if !ok {
		return nil, false
	}
	out := make(map[domain.SlotType]*domain.Item, len(member.Equipment))
	for slot, it := range member.Equipment {
		if it != nil {
			out[slot] = it.Clone()
		}
	}
	return out, true
}

func (t *Transfer) notify(ctx context.Context, kind domain.NotificationKind, msg, icon, color string) {
	if t.notifier == nil {
		return
	}
	t.notifier.Notify(ctx, domain.Notification{Kind: kind, Message: msg, Icon: icon, Color: color, DurationMs: ToastDuration})
}

func (t *Transfer) publish(ctx context.Context, evt event.Event) {
	if t.events == nil {
		return
	}
	if err := t.events.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
