package handler

import (
	"context"
	"net/http"

	"github.com/osse101/lootforge/internal/game"
)

// CraftRequest names the recipe to forge
type CraftRequest struct {
	RecipeID string `json:"recipe_id" validate:"required,max=100,printascii"`
}

// HandleCraftItem forges an item from materials
func HandleCraftItem(reg SessionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft item"); err != nil {
			return
		}

		withSession(w, r, reg, func(ctx context.Context, _ pathParams, s *game.Session) interface{} {
			mark := s.NotificationMark()
			ok := s.Inventory().CraftItem(ctx, req.RecipeID)
			resp := ActionResponse{Success: ok, Notifications: s.NotificationsSince(mark)}
			if ok {
				items := s.Inventory().Items()
				crafted := items[len(items)-1]
				resp.Item = &crafted
			}
			return resp
		})
	}
}
