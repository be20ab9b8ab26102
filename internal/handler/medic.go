package handler

import (
	"net/http"

	"github.com/tradi3/chatquest/internal/medic"
)

type MedicHandler struct {
	service medic.Service
}

func NewMedicHandler(service medic.Service) *MedicHandler {
	return &MedicHandler{service: service}
}

// HandleHeal runs the !heal command.
func (h *MedicHandler) HandleHeal(w http.ResponseWriter, r *http.Request) {
	params, ok := ExtractCommandParams(w, r, ErrMsgMissingHealParams)
	if !ok {
		return
	}

	reply, err := h.service.Heal(r.Context(), params.Channel, params.User)
	respondCommand(w, r, "heal", reply, err)
}

// HandleRest runs the !rest command.
func (h *MedicHandler) HandleRest(w http.ResponseWriter, r *http.Request) {
	params, ok := ExtractCommandParams(w, r, ErrMsgMissingRestParams)
	if !ok {
		return
	}

	reply, err := h.service.Rest(r.Context(), params.Channel, params.User)
	respondCommand(w, r, "rest", reply, err)
}
