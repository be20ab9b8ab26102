package quest

// Command names for metrics
const (
	CommandQuest = "quest"
	CommandDaily = "daily"
)

// Reward ranges
const (
	QuestXPMin    = 5
	QuestXPMax    = 15
	QuestCoinsMin = 5
	QuestCoinsMax = 25

	DailyXPMin    = 20
	DailyXPMax    = 40
	DailyCoinsMin = 40
	DailyCoinsMax = 80
)

// ItemDropChance is the probability a quest drops an item.
const ItemDropChance = 0.2

// Chat message formats
const (
	MsgQuestCooldown = "%s, you are still recovering from your last quest. Try again in %ds."
	MsgQuestSuccess  = "%s %s +%d XP, +%d coins. LVL %d (XP: %d/%d)."
	MsgLevelUpSuffix = " 🎉 LEVEL UP!"

	MsgItemFound           = " Found item: %s (%s, +%d)."
	MsgAutoEquippedWeapon  = " Auto-equipped as weapon."
	MsgAutoEquippedTrinket = " Auto-equipped as trinket."

	MsgDailyCooldown    = "%s, you've already claimed your daily. Come back in %dh %dm."
	MsgDailySuccess     = "%s claimed their daily reward: +%d XP, +%d coins. LVL %d (XP: %d/%d)."
	MsgDailyDeathLocked = "%s, you're flat on your back. No daily rewards while you're down."
)

// Error message constants
const (
	ErrMsgQuestFailed = "quest failed: %w"
	ErrMsgDailyFailed = "daily failed: %w"
)

// questScenarios are the flavor lines prefixed to quest results.
var questScenarios = []string{
	"explores the neon ruins and finds hidden loot.",
	"defeats a rogue bot in the data-wastes.",
	"rescues a lost chatter from ad hell.",
	"hacks into a glitched server and steals some credits.",
	"dodges a DMCA laser and survives.",
}
