package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/lootforge/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// ActionResponse is returned by every inventory command. A rejected command
// is a normal outcome: Success is false and the notifications say why.
type ActionResponse struct {
	Success       bool                  `json:"success"`
	Gold          int                   `json:"gold,omitempty"`
	Yield         domain.MaterialYield  `json:"yield,omitempty"`
	Item          *domain.Item          `json:"item,omitempty"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
}

const encodeBufferSize = 4 << 10

var encodeBuffers = sync.Pool{
	New: func() interface{} { return bytes.NewBuffer(make([]byte, 0, encodeBufferSize)) },
}

// respondJSON encodes payload fully before writing, so an encoding failure
// can still be reported as a 500
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceError converts infrastructure errors to a status and a message
// that is safe to show
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrInvalidCatalog):
		return http.StatusConflict, domain.ErrMsgInvalidCatalog
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
