package handler

import (
	"context"
	"net/http"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/game"
)

// InventoryResponse is the item list of a player
type InventoryResponse struct {
	Capacity int           `json:"capacity"`
	Count    int           `json:"count"`
	Full     bool          `json:"full"`
	Zone     int           `json:"zone"`
	Items    []domain.Item `json:"items"`
}

// HandleGetInventory lists the inventory, optionally narrowed by ?slot=
func HandleGetInventory(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var slot domain.SlotType
		if raw := r.URL.Query().Get("slot"); raw != "" {
			parsed, ok := domain.ParseSlot(raw)
			if !ok {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidSlot)
				return
			}
			slot = parsed
		}

		withSession(w, r, reg, func(_ context.Context, _ pathParams, s *game.Session) interface{} {
			inv := s.Inventory()
			items := inv.Items()
			if slot != "" {
				items = inv.ItemsForSlot(slot)
			}
			return InventoryResponse{
				Capacity: inv.Capacity(),
				Count:    inv.Count(),
				Full:     inv.IsFull(),
				Zone:     s.CurrentZone(),
				Items:    items,
			}
		})
	}
}

// HandleGetWallet returns gold and material balances
func HandleGetWallet(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, reg, func(_ context.Context, _ pathParams, s *game.Session) interface{} {
			return s.Wallet().Balances()
		})
	}
}

// PartyResponse lists party members with their equipment
type PartyResponse struct {
	Members []domain.Member `json:"members"`
}

// HandleGetParty returns the party roster
func HandleGetParty(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, reg, func(_ context.Context, _ pathParams, s *game.Session) interface{} {
			return PartyResponse{Members: s.Party().Members()}
		})
	}
}

// NotificationsResponse holds recent toasts, oldest first
type NotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

// HandleGetNotifications returns the recent notification history
func HandleGetNotifications(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, reg, func(_ context.Context, _ pathParams, s *game.Session) interface{} {
			return NotificationsResponse{Notifications: s.Notifications()}
		})
	}
}
