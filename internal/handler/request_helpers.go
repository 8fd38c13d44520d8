package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/lootforge/internal/game"
	"github.com/osse101/lootforge/internal/logger"
)

// URL parameters
const (
	ParamPlayerID   = "playerID"
	ParamInstanceID = "instanceID"
	ParamMemberID   = "memberID"
)

// SessionRunner runs a command against one player's session
type SessionRunner interface {
	Do(ctx context.Context, playerID string, fn func(ctx context.Context, s *game.Session) error) error
}

// pathParams are validated like request bodies
type pathParams struct {
	PlayerID   string `validate:"required,max=100,printascii,excludesall=/"`
	InstanceID string `validate:"omitempty,max=100,printascii"`
	MemberID   string `validate:"omitempty,max=100,printascii"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// On error the response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailedFmt, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgDecodedFmt, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// readPathParams validates the chi URL parameters of r
func readPathParams(w http.ResponseWriter, r *http.Request) (pathParams, bool) {
	p := pathParams{
		PlayerID:   chi.URLParam(r, ParamPlayerID),
		InstanceID: chi.URLParam(r, ParamInstanceID),
		MemberID:   chi.URLParam(r, ParamMemberID),
	}
	if err := GetValidator().ValidateStruct(p); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidPlayerID,
			Fields: FormatValidationError(err),
		})
		return p, false
	}
	return p, true
}

// queryInt parses an optional integer query parameter in [1, limit]
func queryInt(r *http.Request, name string, fallback, limit int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 || v > limit {
		return 0, fmt.Errorf(ErrMsgInvalidQueryParam, name)
	}
	return v, nil
}

// withSession runs fn under the player's session and writes its result as
// JSON with status 200
func withSession(w http.ResponseWriter, r *http.Request, reg SessionRunner, fn func(ctx context.Context, p pathParams, s *game.Session) interface{}) {
	params, ok := readPathParams(w, r)
	if !ok {
		return
	}

	var payload interface{}
	err := reg.Do(r.Context(), params.PlayerID, func(ctx context.Context, s *game.Session) error {
		payload = fn(ctx, params, s)
		return nil
	})
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgCommandFailed, "error", err, "player_id", params.PlayerID)
		status, msg := mapServiceError(err)
		respondError(w, status, msg)
		return
	}
	respondJSON(w, http.StatusOK, payload)
}
