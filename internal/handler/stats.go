package handler

import (
	"net/http"

	"github.com/tradi3/chatquest/internal/stats"
)

type StatsHandler struct {
	service stats.Service
}

func NewStatsHandler(service stats.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// HandleStats runs the !stats command.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	params, ok := ExtractCommandParams(w, r, ErrMsgMissingUserOrChannel)
	if !ok {
		return
	}

	reply, err := h.service.Stats(r.Context(), params.Channel, params.User)
	respondCommand(w, r, "stats", reply, err)
}

// HandleTop runs the !top command for a channel leaderboard.
func (h *StatsHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	channel, ok := ExtractChannel(w, r)
	if !ok {
		return
	}

	reply, err := h.service.Top(r.Context(), channel)
	respondCommand(w, r, "top", reply, err)
}

// HandleInventory runs the !inv command.
func (h *StatsHandler) HandleInventory(w http.ResponseWriter, r *http.Request) {
	params, ok := ExtractCommandParams(w, r, ErrMsgMissingUserOrChannel)
	if !ok {
		return
	}

	reply, err := h.service.Inventory(r.Context(), params.Channel, params.User)
	respondCommand(w, r, "inventory", reply, err)
}
