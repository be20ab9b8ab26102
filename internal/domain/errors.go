package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgItemNotFound      = "item not found"
	ErrMsgNotInInventory    = "item not in inventory"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgLevelTooLow       = "level too low"
	ErrMsgConsumableCap     = "consumable cap reached"
	ErrMsgOnCooldown        = "action on cooldown"
	ErrMsgDeathLocked       = "player is down"
	ErrMsgNotDeathLocked    = "player is not down"
	ErrMsgHealLimitReached  = "heal limit reached"
	ErrMsgNoConsumable      = "no consumable to use"
	ErrMsgAlreadyFullHP     = "already at full hp"
	ErrMsgStoreCorrupt      = "store document corrupt"
)

// Common domain errors. Wrap with fmt.Errorf("%w: ...", domain.ErrXxx)
// for additional context; handlers map them to chat-safe text.
var (
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrNotInInventory    = errors.New(ErrMsgNotInInventory)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrLevelTooLow       = errors.New(ErrMsgLevelTooLow)
	ErrConsumableCap     = errors.New(ErrMsgConsumableCap)
	ErrOnCooldown        = errors.New(ErrMsgOnCooldown)
	ErrDeathLocked       = errors.New(ErrMsgDeathLocked)
	ErrNotDeathLocked    = errors.New(ErrMsgNotDeathLocked)
	ErrHealLimitReached  = errors.New(ErrMsgHealLimitReached)
	ErrNoConsumable      = errors.New(ErrMsgNoConsumable)
	ErrAlreadyFullHP     = errors.New(ErrMsgAlreadyFullHP)
	ErrStoreCorrupt      = errors.New(ErrMsgStoreCorrupt)
)

// preconditionErrors are refusals that belong to normal game flow: the
// command declines, nothing mutates, and the player gets a chat line
// instead of an HTTP error.
var preconditionErrors = []error{
	ErrOnCooldown,
	ErrInsufficientFunds,
	ErrLevelTooLow,
	ErrConsumableCap,
	ErrDeathLocked,
	ErrNotDeathLocked,
	ErrHealLimitReached,
	ErrNoConsumable,
	ErrAlreadyFullHP,
}

// IsPrecondition reports whether err is a precondition-not-met refusal
// rather than a real failure.
func IsPrecondition(err error) bool {
	for _, target := range preconditionErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
