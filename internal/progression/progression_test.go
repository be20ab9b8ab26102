package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tradi3/chatquest/internal/domain"
)

func TestXPForNextLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 35},
		{2, 50},
		{5, 95},
		{10, 170},
		{100, 1520},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, XPForNextLevel(tt.level))
	}
}

func TestApplySimpleGain(t *testing.T) {
	p := &domain.Player{Level: 1}

	res := Apply(p, 10, 20)

	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 10, p.XP)
	assert.Equal(t, 20, p.Coins)
	assert.Equal(t, 10, p.TotalXP)
	assert.Equal(t, 20, p.TotalCoins)
	assert.False(t, res.LeveledUp())
}

func TestApplySingleLevelUp(t *testing.T) {
	p := &domain.Player{Level: 1, XP: 30}

	res := Apply(p, 10, 0) // 40 total, threshold 35

	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 5, p.XP)
	assert.Equal(t, 1, res.LevelsGained)
}

func TestApplyCascadingLevelUps(t *testing.T) {
	p := &domain.Player{Level: 1}

	// 35 (L1) + 50 (L2) + 5 leftover
	res := Apply(p, 90, 0)

	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 5, p.XP)
	assert.Equal(t, 2, res.LevelsGained)
}

// XP conservation: the XP spent climbing plus the remainder must equal the
// starting XP plus the gain, and the remainder is always under threshold.
func TestApplyConservesXP(t *testing.T) {
	gains := []int{0, 1, 34, 35, 36, 100, 999, 12345}

	for _, g := range gains {
		p := &domain.Player{Level: 1, XP: 7}

		startLevel, startXP := p.Level, p.XP
		Apply(p, g, 0)

		spent := 0
		for l := startLevel; l < p.Level; l++ {
			spent += XPForNextLevel(l)
		}
		assert.Equal(t, startXP+g, spent+p.XP, "gain %d", g)
		assert.Less(t, p.XP, XPForNextLevel(p.Level), "gain %d", g)
	}
}

func TestApplyTotalsAreMonotonic(t *testing.T) {
	p := &domain.Player{Level: 1}

	Apply(p, 50, 60)
	Apply(p, 50, 60)

	assert.Equal(t, 100, p.TotalXP)
	assert.Equal(t, 120, p.TotalCoins)
}
