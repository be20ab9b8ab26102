package handler

import (
	"net/http"

	"github.com/tradi3/chatquest/internal/quest"
)

type QuestHandler struct {
	service quest.Service
}

func NewQuestHandler(service quest.Service) *QuestHandler {
	return &QuestHandler{service: service}
}

// HandleQuest runs the !quest command.
func (h *QuestHandler) HandleQuest(w http.ResponseWriter, r *http.Request) {
	params, ok := ExtractCommandParams(w, r, ErrMsgMissingUserOrChannel)
	if !ok {
		return
	}

	reply, err := h.service.Quest(r.Context(), params.Channel, params.User)
	respondCommand(w, r, "quest", reply, err)
}

// HandleDaily runs the !daily command.
func (h *QuestHandler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	params, ok := ExtractCommandParams(w, r, ErrMsgMissingUserOrChannel)
	if !ok {
		return
	}

	reply, err := h.service.Daily(r.Context(), params.Channel, params.User)
	respondCommand(w, r, "daily", reply, err)
}
