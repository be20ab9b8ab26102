package handler

import (
	"net/http"

	"github.com/tradi3/chatquest/internal/boss"
)

type BossHandler struct {
	service boss.Service
}

func NewBossHandler(service boss.Service) *BossHandler {
	return &BossHandler{service: service}
}

// HandleBoss runs the !boss command: spawn or attack the channel boss.
func (h *BossHandler) HandleBoss(w http.ResponseWriter, r *http.Request) {
	params, ok := ExtractCommandParams(w, r, ErrMsgMissingUserOrChannel)
	if !ok {
		return
	}

	reply, err := h.service.Attack(r.Context(), params.Channel, params.User)
	respondCommand(w, r, "boss", reply, err)
}
