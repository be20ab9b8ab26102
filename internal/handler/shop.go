package handler

import (
	"net/http"
	"strings"

	"github.com/tradi3/chatquest/internal/economy"
)

type ShopHandler struct {
	service economy.Service
}

func NewShopHandler(service economy.Service) *ShopHandler {
	return &ShopHandler{service: service}
}

// HandleBuy runs the shop purchase. The item query param is the catalog
// stock key.
func (h *ShopHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	params, ok := ExtractCommandParams(w, r, ErrMsgMissingUserOrChannel)
	if !ok {
		return
	}

	key := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("item")))
	if key == "" {
		respondText(w, http.StatusBadRequest, ErrMsgMissingItem)
		return
	}

	reply, err := h.service.Buy(r.Context(), params.Channel, params.User, key)
	respondCommand(w, r, "shop_buy", reply, err)
}

// HandleSell runs the shop sale. The item query param is the owned item's id.
func (h *ShopHandler) HandleSell(w http.ResponseWriter, r *http.Request) {
	params, ok := ExtractCommandParams(w, r, ErrMsgMissingUserOrChannel)
	if !ok {
		return
	}

	itemID := strings.TrimSpace(r.URL.Query().Get("item"))
	if itemID == "" {
		respondText(w, http.StatusBadRequest, ErrMsgMissingItem)
		return
	}

	reply, err := h.service.Sell(r.Context(), params.Channel, params.User, itemID)
	respondCommand(w, r, "shop_sell", reply, err)
}
