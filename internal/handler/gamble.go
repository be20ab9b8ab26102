package handler

import (
	"net/http"
	"strconv"

	"github.com/tradi3/chatquest/internal/gamble"
)

type GambleHandler struct {
	service gamble.Service
}

func NewGambleHandler(service gamble.Service) *GambleHandler {
	return &GambleHandler{service: service}
}

// HandleGamble runs the !gamble command. A missing or malformed amount
// falls through as zero and the service substitutes the default stake.
func (h *GambleHandler) HandleGamble(w http.ResponseWriter, r *http.Request) {
	params, ok := ExtractCommandParams(w, r, ErrMsgMissingUserOrChannel)
	if !ok {
		return
	}

	amount, err := strconv.Atoi(GetOptionalQueryParam(r, "amount", "0"))
	if err != nil {
		amount = 0
	}

	reply, err := h.service.Gamble(r.Context(), params.Channel, params.User, amount)
	respondCommand(w, r, "gamble", reply, err)
}
