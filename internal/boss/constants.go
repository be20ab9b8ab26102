package boss

// CommandBoss is the metrics label for the boss command.
const CommandBoss = "boss"

// Spawn and damage tuning
const (
	BaseHP         = 80
	HPPerLevel     = 10
	HPJitterMax    = 20
	RewardCoinsMin = 80
	RewardCoinsMax = 160
	RewardXPMin    = 40
	RewardXPMax    = 80
	DamageMin      = 8
	DamageMax      = 16
	DamagePerLevel = 2
)

// Chat message formats
const (
	MsgBossCooldown  = "%s, you are catching your breath. You can attack the boss again in %ds."
	MsgBossSpawned   = "A wild %s appears! HP %d/%d. Type !boss to attack!"
	MsgBossHit       = "%s hits %s for %d damage. "
	MsgBossEngaged   = "Boss HP: %d/%d. Reward on kill: +%d XP, +%d coins."
	MsgBossDefeated  = "%s is defeated! %s gains +%d XP and +%d coins. LVL %d (XP: %d/%d)."
	MsgLevelUpSuffix = " 🎉 LEVEL UP!"
)

// ErrMsgBossFailed wraps unexpected attack failures.
const ErrMsgBossFailed = "boss attack failed: %w"

// bossNames is the spawn name pool.
var bossNames = []string{
	"DMCA Hydra",
	"Lag Demon",
	"Shadow Stream Sniper",
	"Cosmic Modbot",
	"Ad Break Titan",
}
