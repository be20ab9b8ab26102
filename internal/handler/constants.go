package handler

// Chat-relay error lines. Fossabot pipes response bodies straight into
// chat, so validation failures read like game messages, not HTTP errors.
const (
	ErrMsgMissingUserOrChannel = "ChatQuest error: missing user or channel."
	ErrMsgMissingChannel       = "ChatQuest error: missing channel."
	ErrMsgMissingHealParams    = "Heal error: missing user or channel."
	ErrMsgMissingRestParams    = "Rest error: missing user or channel."
	ErrMsgMissingItem          = "ChatQuest error: missing item."
	ErrMsgInternal             = "ChatQuest error: something went wrong. Try again."
	ErrMsgThrottled            = "ChatQuest: easy on the shop. Try again in a moment."
)

// MsgRoot is the landing line for the bare service root.
const MsgRoot = "ChatQuest API is running."

// Health check body values
const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)
