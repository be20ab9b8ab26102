package gamble

// CommandGamble is the metrics label for the gamble command.
const CommandGamble = "gamble"

// LoseProbability is the chance the stake is lost.
const LoseProbability = 0.5

// Chat message formats
const (
	MsgInsufficientCoins = "%s, you don't have enough coins to gamble %d. (Coins: %d)"
	MsgLoss              = "%s gambles %d coins and loses. RIP. (Coins left: %d)"
	MsgWin               = "%s gambles %d coins and WINS %d! (Coins: %d, W:%d/L:%d)"
)

// ErrMsgGambleFailed wraps unexpected gamble failures.
const ErrMsgGambleFailed = "gamble failed: %w"
