package handler

import (
	"context"
	"net/http"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/game"
)

// EquipRequest names the inventory item to put on
type EquipRequest struct {
	InstanceID string `json:"instance_id" validate:"required,max=100,printascii"`
}

// UnequipRequest names the slot to empty
type UnequipRequest struct {
	Slot string `json:"slot" validate:"required,slot"`
}

// EquipmentResponse reports a transfer and the member's slots afterwards
type EquipmentResponse struct {
	Success       bool                             `json:"success"`
	Equipment     map[domain.SlotType]*domain.Item `json:"equipment,omitempty"`
	Notifications []domain.Notification            `json:"notifications,omitempty"`
}

// HandleEquipItem moves an inventory item onto a party member
func HandleEquipItem(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EquipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
			return
		}

		withSession(w, r, reg, func(ctx context.Context, p pathParams, s *game.Session) interface{} {
			mark := s.NotificationMark()
			ok := s.Equipment().EquipItem(ctx, p.MemberID, req.InstanceID)
			slots, _ := s.Equipment().Equipped(p.MemberID)
			return EquipmentResponse{Success: ok, Equipment: slots, Notifications: s.NotificationsSince(mark)}
		})
	}
}

// HandleUnequipItem returns a slot's occupant to the inventory
func HandleUnequipItem(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UnequipRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Unequip item"); err != nil {
			return
		}
		slot, _ := domain.ParseSlot(req.Slot)

		withSession(w, r, reg, func(ctx context.Context, p pathParams, s *game.Session) interface{} {
			mark := s.NotificationMark()
			ok := s.Equipment().UnequipItem(ctx, p.MemberID, slot)
			slots, _ := s.Equipment().Equipped(p.MemberID)
			return EquipmentResponse{Success: ok, Equipment: slots, Notifications: s.NotificationsSince(mark)}
		})
	}
}
