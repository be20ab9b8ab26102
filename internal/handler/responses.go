package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tradi3/chatquest/internal/domain"
	"github.com/tradi3/chatquest/internal/logger"
)

// respondText sends a single-line text body suitable for direct chat relay.
func respondText(w http.ResponseWriter, status int, line string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(line)); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

// respondCommand maps a service result onto an HTTP response. Services
// return (reply, nil) for both success and precondition refusals; only
// lookup failures and real errors arrive as non-nil err.
func respondCommand(w http.ResponseWriter, r *http.Request, opName, reply string, err error) {
	if err == nil {
		respondText(w, http.StatusOK, reply)
		return
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrNotInInventory):
		respondText(w, http.StatusBadRequest, reply)
	default:
		logger.FromContext(r.Context()).Error("Command failed", "op", opName, "error", err)
		respondText(w, http.StatusInternalServerError, ErrMsgInternal)
	}
}
