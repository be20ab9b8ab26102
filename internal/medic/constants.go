package medic

// Command names for metrics
const (
	CommandHeal = "heal"
	CommandRest = "rest"
)

// DefaultHealAmount is used when a consumable carries no heal value.
const DefaultHealAmount = 60

// Chat message formats
const (
	MsgAlreadyFullHP  = "%s, you're already at full HP."
	MsgHealLimit      = "%s, you've used all heals this shift. Try again later."
	MsgNoConsumable   = "%s, no First Aid Kits in your inventory. Buy from the shop."
	MsgHealed         = "%s used %s and healed %d HP. HP %d/%d."
	MsgNotDown        = "%s, you're not down. Keep working."
	MsgRestCantAfford = "%s, resting costs %d coins. Pay: %d."
	MsgRested         = "%s pays %d coins to rest. Back in 2h (HP %d/%d)."
)

// Error message constants
const (
	ErrMsgHealFailed = "heal failed: %w"
	ErrMsgRestFailed = "rest failed: %w"
)
