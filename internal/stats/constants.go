package stats

// Command names for metrics
const (
	CommandStats     = "stats"
	CommandTop       = "top"
	CommandInventory = "inventory"
)

// TopLimit caps the leaderboard length.
const TopLimit = 5

// InventoryLimit caps how many carried items are listed.
const InventoryLimit = 5

// Chat message formats
const (
	MsgStats = "%s – Site LVL %d (XP: %d/%d). HP %d/%d. Pay: %d coins (Total earned: %d). Total XP poured: %d. %d quests. W:%d/L:%d. Gear → Main tool: %s | Site perk: %s."

	MsgTopEmpty  = "No ChatQuest data for this channel yet."
	MsgTopPrefix = "Channel top players → "
	MsgTopEntry  = "#%d %s - LVL %d, Coins: %d"

	MsgInventoryEmpty = "%s, your toolbelt is empty. Equipped → Main tool: %s | Site perk: %s."
	MsgInventory      = "%s's toolbelt → %s. Equipped → Main tool: %s | Site perk: %s."
	MsgInventoryEntry = "[%d] %s (%s, +%d)"
)

// ErrMsg constants for wrapped failures
const (
	ErrMsgStatsFailed     = "stats failed: %w"
	ErrMsgTopFailed       = "top failed: %w"
	ErrMsgInventoryFailed = "inventory failed: %w"
)
