package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tradi3/chatquest/internal/domain"
)

// legacyPlayer carries counters from the oldest save format, where the
// document was a flat map of players and gamble counters had long names.
type legacyPlayer struct {
	GamblesWon  int `json:"gamblesWon"`
	GamblesLost int `json:"gamblesLost"`
}

// Normalize parses a raw persisted document into the canonical
// {players, bosses} snapshot, upgrading legacy shapes on the way:
//
//   - flat top-level player maps (pre-boss era) are nested under "players"
//   - gamblesWon/gamblesLost counters become wins/losses
//   - every player record is backfilled with safe defaults
//
// The upgrade is idempotent and never drops fields it does not know.
func Normalize(data []byte) (*domain.Snapshot, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreCorrupt, err)
	}

	snap := domain.NewSnapshot()

	_, hasPlayers := probe["players"]
	_, hasBosses := probe["bosses"]
	if !hasPlayers && !hasBosses {
		// Legacy: the whole document is the player map.
		if err := decodePlayers(data, snap); err != nil {
			return nil, err
		}
	} else {
		if raw, ok := probe["players"]; ok {
			if err := decodePlayers(raw, snap); err != nil {
				return nil, err
			}
		}
		if raw, ok := probe["bosses"]; ok {
			if err := json.Unmarshal(raw, &snap.Bosses); err != nil {
				return nil, fmt.Errorf("%w: bosses: %v", domain.ErrStoreCorrupt, err)
			}
		}
	}

	if snap.Players == nil {
		snap.Players = make(map[string]*domain.Player)
	}
	if snap.Bosses == nil {
		snap.Bosses = make(map[string]*domain.ChannelBoss)
	}

	for key, p := range snap.Players {
		defaultPlayer(key, p)
	}
	return snap, nil
}

func decodePlayers(data []byte, snap *domain.Snapshot) error {
	if err := json.Unmarshal(data, &snap.Players); err != nil {
		return fmt.Errorf("%w: players: %v", domain.ErrStoreCorrupt, err)
	}

	// Second pass for renamed legacy counters.
	var legacy map[string]legacyPlayer
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil
	}
	for key, old := range legacy {
		p := snap.Players[key]
		if p == nil {
			continue
		}
		if p.Wins == 0 && old.GamblesWon > 0 {
			p.Wins = old.GamblesWon
		}
		if p.Losses == 0 && old.GamblesLost > 0 {
			p.Losses = old.GamblesLost
		}
	}
	return nil
}

// defaultPlayer backfills fields absent from older records. Must be
// idempotent and must never clobber explicit non-default values.
func defaultPlayer(key string, p *domain.Player) {
	if p.User == "" || p.Channel == "" {
		if channel, user, ok := strings.Cut(key, ":"); ok {
			if p.Channel == "" {
				p.Channel = channel
			}
			if p.User == "" {
				p.User = user
			}
		}
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Inventory == nil {
		p.Inventory = []domain.Item{}
	}
	if p.MaxHP == 0 {
		// Either the record predates the HP system entirely, or the
		// heal/rest era wrote hp without ever storing maxHp. Only a
		// record with no HP state at all gets topped up; an explicit
		// hp or an active death-lock is real data.
		p.MaxHP = domain.DefaultMaxHP
		if p.HP == 0 && p.DeathUntil == 0 {
			p.HP = p.MaxHP
		}
	}
	if p.TotalXP == 0 && p.XP > 0 {
		p.TotalXP = p.XP
	}
	if p.TotalCoins == 0 && p.Coins > 0 {
		p.TotalCoins = p.Coins
	}
}
