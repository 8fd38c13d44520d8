package handler

import (
	"context"
	"net/http"

	"github.com/osse101/lootforge/internal/domain"
	"github.com/osse101/lootforge/internal/game"
	"github.com/osse101/lootforge/internal/logger"
)

// maxZone bounds the zone accepted from requests; keep in sync with the
// validate tag below
const maxZone = 1000

// RollLootRequest optionally moves the player to Zone before rolling
type RollLootRequest struct {
	Zone int `json:"zone" validate:"omitempty,min=1,max=1000"`
}

// RollLootResponse reports one enemy kill. Dropped without Accepted means
// the inventory was full.
type RollLootResponse struct {
	Dropped       bool                  `json:"dropped"`
	Accepted      bool                  `json:"accepted"`
	Zone          int                   `json:"zone"`
	Item          *domain.Item          `json:"item,omitempty"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

// HandleRollLoot rolls the drop table once for the player's zone
func HandleRollLoot(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RollLootRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Roll loot"); err != nil {
			return
		}

		withSession(w, r, reg, func(ctx context.Context, p pathParams, s *game.Session) interface{} {
			if req.Zone > 0 {
				s.SetZone(ctx, req.Zone)
			}
			logger.FromContext(ctx).Debug(LogMsgRollLootRequested, "player_id", p.PlayerID, "zone", s.CurrentZone())

			mark := s.NotificationMark()
			item := s.Loot().RollLoot(ctx, s.CurrentZone())
			resp := RollLootResponse{Zone: s.CurrentZone(), Item: item}
			if item != nil {
				resp.Dropped = true
				_, resp.Accepted = s.Inventory().Get(item.InstanceID)
			}
			resp.Notifications = s.NotificationsSince(mark)
			return resp
		})
	}
}
