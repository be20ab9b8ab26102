package domain

import "time"

// Player defaults
const (
	// DefaultMaxHP is the starting and default maximum hit points.
	DefaultMaxHP = 100
)

// Command cooldowns
const (
	QuestCooldown = 10 * time.Second
	BossCooldown  = 10 * time.Second
	DailyCooldown = 24 * time.Hour
)

// Heal rate limiting
const (
	// HealWindow is the rolling window in which heal uses are counted.
	HealWindow = 8 * time.Hour

	// MaxHealsPerWindow is the number of heals allowed per window.
	MaxHealsPerWindow = 3
)

// Gamble stake bounds
const (
	DefaultGambleStake = 10
	MaxGambleStake     = 200
)

// Shop limits
const (
	// MaxConsumablesCarried caps consumables held at once.
	MaxConsumablesCarried = 3
)

// Rest (death-lock buyout)
const (
	RestCost     = 80
	RestLockTime = 2 * time.Hour
	RestHPFloor  = 30
)
