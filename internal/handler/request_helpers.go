package handler

import (
	"net/http"
	"strings"

	"github.com/tradi3/chatquest/internal/logger"
)

// CommandParams is the identity pair every game command requires. User
// and channel are case-folded to lowercase before use as store keys.
type CommandParams struct {
	User    string `validate:"required"`
	Channel string `validate:"required"`
}

// ExtractCommandParams pulls the (user, channel) pair from the query
// string and validates both are present. On failure it writes missingMsg
// as a chat line and returns ok=false; the handler should return.
func ExtractCommandParams(w http.ResponseWriter, r *http.Request, missingMsg string) (CommandParams, bool) {
	params := CommandParams{
		User:    strings.ToLower(strings.TrimSpace(r.URL.Query().Get("user"))),
		Channel: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("channel"))),
	}

	if err := GetValidator().ValidateStruct(params); err != nil {
		logger.FromContext(r.Context()).Warn("Missing command params", "path", r.URL.Path)
		respondText(w, http.StatusOK, missingMsg)
		return CommandParams{}, false
	}
	return params, true
}

// ExtractChannel pulls just the channel (leaderboard has no acting user).
func ExtractChannel(w http.ResponseWriter, r *http.Request) (string, bool) {
	channel := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("channel")))
	if channel == "" {
		logger.FromContext(r.Context()).Warn("Missing channel param", "path", r.URL.Path)
		respondText(w, http.StatusOK, ErrMsgMissingChannel)
		return "", false
	}
	return channel, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the
// request, falling back to defaultValue when absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}
