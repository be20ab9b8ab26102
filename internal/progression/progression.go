// Package progression holds the leveling arithmetic shared by every
// reward-granting command. All callers must produce identical results,
// so the cascade lives here and nowhere else.
package progression

import "github.com/tradi3/chatquest/internal/domain"

// XPForNextLevel is the XP threshold to advance past the given level.
func XPForNextLevel(level int) int {
	return 20 + level*15
}

// Result reports what a reward application did to a player.
type Result struct {
	XPGained     int
	CoinsGained  int
	LevelsGained int
}

// LeveledUp reports whether the application crossed at least one threshold.
func (r Result) LeveledUp() bool {
	return r.LevelsGained > 0
}

// Apply credits xp and coins to the player, bumps the lifetime totals and
// resolves cascading level-ups: a single large gain may cross several
// thresholds in one call. On return p.XP < XPForNextLevel(p.Level).
func Apply(p *domain.Player, xp, coins int) Result {
	p.XP += xp
	p.Coins += coins
	p.TotalXP += xp
	p.TotalCoins += coins

	res := Result{XPGained: xp, CoinsGained: coins}
	for p.XP >= XPForNextLevel(p.Level) {
		p.XP -= XPForNextLevel(p.Level)
		p.Level++
		res.LevelsGained++
	}
	return res
}
