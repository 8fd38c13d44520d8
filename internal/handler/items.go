package handler

import (
	"context"
	"net/http"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/economy"
	"github.com/osse101/lootforge/internal/game"
)

// RarityThresholdRequest selects every item strictly below Rarity
type RarityThresholdRequest struct {
	Rarity string `json:"rarity" validate:"required,rarity"`
}

// UpgradeCostResponse quotes the next upgrade of an item
type UpgradeCostResponse struct {
	Success  bool   `json:"success"`
	Cost     int    `json:"cost"`
	Level    int    `json:"level"`
	MaxLevel int    `json:"max_level"`
	Message  string `json:"message,omitempty"`
}

// HandleSellItem sells one item for gold
func HandleSellItem(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, reg, func(ctx context.Context, p pathParams, s *game.Session) interface{} {
			mark := s.NotificationMark()
			gold := s.Inventory().SellItem(ctx, p.InstanceID)
			return ActionResponse{
				Success:       gold > 0,
				Gold:          gold,
				Notifications: s.NotificationsSince(mark),
			}
		})
	}
}

// HandleSellAllBelow sells every item below the requested rarity
func HandleSellAllBelow(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RarityThresholdRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell all below"); err != nil {
			return
		}
		rarity, _ := domain.ParseRarity(req.Rarity)

		withSession(w, r, reg, func(ctx context.Context, _ pathParams, s *game.Session) interface{} {
			mark := s.NotificationMark()
			gold := s.Inventory().SellAllBelow(ctx, rarity)
			return ActionResponse{
				Success:       gold > 0,
				Gold:          gold,
				Notifications: s.NotificationsSince(mark),
			}
		})
	}
}

// HandleSalvageItem breaks one item down into materials
func HandleSalvageItem(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, reg, func(ctx context.Context, p pathParams, s *game.Session) interface{} {
			mark := s.NotificationMark()
			yield := s.Inventory().SalvageItem(ctx, p.InstanceID)
			return ActionResponse{
				Success:       yield != nil,
				Yield:         yield,
				Notifications: s.NotificationsSince(mark),
			}
		})
	}
}

// HandleSalvageAllBelow salvages every item below the requested rarity
func HandleSalvageAllBelow(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RarityThresholdRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Salvage all below"); err != nil {
			return
		}
		rarity, _ := domain.ParseRarity(req.Rarity)

		withSession(w, r, reg, func(ctx context.Context, _ pathParams, s *game.Session) interface{} {
			mark := s.NotificationMark()
			yield := s.Inventory().SalvageAllBelow(ctx, rarity)
			return ActionResponse{
				Success:       yield.Total() > 0,
				Yield:         yield,
				Notifications: s.NotificationsSince(mark),
			}
		})
	}
}

// HandleUpgradeCost quotes the next upgrade without spending anything
func HandleUpgradeCost(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, reg, func(_ context.Context, p pathParams, s *game.Session) interface{} {
			resp := UpgradeCostResponse{MaxLevel: economy.MaxUpgrades}
			cost, ok := s.Inventory().UpgradeCost(p.InstanceID)
			if !ok {
				resp.Message = domain.ErrMsgItemNotFound
				return resp
			}
			item, _ := s.Inventory().Get(p.InstanceID)
			resp.Cost = cost
			resp.Level = item.Upgrades
			resp.Success = item.Upgrades < economy.MaxUpgrades
			if !resp.Success {
				resp.Message = MsgUpgradeUnavailable
			}
			return resp
		})
	}
}

// HandleUpgradeItem spends gold on the next upgrade
func HandleUpgradeItem(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, reg, func(ctx context.Context, p pathParams, s *game.Session) interface{} {
			mark := s.NotificationMark()
			ok := s.Inventory().UpgradeItem(ctx, p.InstanceID)
			resp := ActionResponse{Success: ok, Notifications: s.NotificationsSince(mark)}
			if ok {
				resp.Item, _ = s.Inventory().Get(p.InstanceID)
			}
			return resp
		})
	}
}
