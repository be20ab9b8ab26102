package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tradi3/chatquest/internal/domain"
	"github.com/tradi3/chatquest/internal/metrics"
	"github.com/tradi3/chatquest/internal/progression"
	"github.com/tradi3/chatquest/internal/storage"
)

// Service renders the read-only profile views: stats line, channel
// leaderboard and toolbelt listing. None of them mutate the store; a
// player nobody has written yet is rendered from the defaults without
// being persisted.
type Service interface {
	Stats(ctx context.Context, channel, user string) (string, error)
	Top(ctx context.Context, channel string) (string, error)
	Inventory(ctx context.Context, channel, user string) (string, error)
}

type service struct {
	store storage.Store
	title cases.Caser
}

// NewService creates a stats service.
func NewService(store storage.Store) Service {
	return &service{store: store, title: cases.Title(language.English)}
}

func (s *service) Stats(ctx context.Context, channel, user string) (string, error) {
	var reply string
	err := s.store.View(ctx, func(snap *domain.Snapshot) error {
		p, ok := snap.Players[domain.PlayerKey(channel, user)]
		if !ok {
			p = domain.NewPlayer(channel, user)
		}
		reply = fmt.Sprintf(MsgStats,
			user, p.Level, p.XP, progression.XPForNextLevel(p.Level),
			p.HP, p.MaxHP,
			p.Coins, p.TotalCoins, p.TotalXP,
			p.Quests, p.Wins, p.Losses,
			p.Equipped.Weapon.ShortDescription(), p.Equipped.Trinket.ShortDescription())
		return nil
	})
	if err != nil {
		metrics.RecordCommand(CommandStats, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgStatsFailed, err)
	}

	metrics.RecordCommand(CommandStats, metrics.OutcomeSuccess)
	return reply, nil
}

func (s *service) Top(ctx context.Context, channel string) (string, error) {
	var reply string
	err := s.store.View(ctx, func(snap *domain.Snapshot) error {
		players := snap.ChannelPlayers(channel)
		if len(players) == 0 {
			reply = MsgTopEmpty
			return nil
		}

		sort.SliceStable(players, func(i, j int) bool {
			a, b := players[i], players[j]
			if a.Level != b.Level {
				return a.Level > b.Level
			}
			if a.TotalXP != b.TotalXP {
				return a.TotalXP > b.TotalXP
			}
			return a.Coins > b.Coins
		})

		limit := TopLimit
		if len(players) < limit {
			limit = len(players)
		}

		lines := make([]string, 0, limit)
		for i, p := range players[:limit] {
			lines = append(lines, fmt.Sprintf(MsgTopEntry, i+1, s.title.String(p.User), p.Level, p.Coins))
		}
		reply = MsgTopPrefix + strings.Join(lines, " | ")
		return nil
	})
	if err != nil {
		metrics.RecordCommand(CommandTop, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgTopFailed, err)
	}

	metrics.RecordCommand(CommandTop, metrics.OutcomeSuccess)
	return reply, nil
}

func (s *service) Inventory(ctx context.Context, channel, user string) (string, error) {
	var reply string
	err := s.store.View(ctx, func(snap *domain.Snapshot) error {
		p, ok := snap.Players[domain.PlayerKey(channel, user)]
		if !ok {
			p = domain.NewPlayer(channel, user)
		}
		weapon := p.Equipped.Weapon.ShortDescription()
		trinket := p.Equipped.Trinket.ShortDescription()

		if len(p.Inventory) == 0 {
			reply = fmt.Sprintf(MsgInventoryEmpty, user, weapon, trinket)
			return nil
		}

		limit := InventoryLimit
		if len(p.Inventory) < limit {
			limit = len(p.Inventory)
		}

		entries := make([]string, 0, limit)
		for i, it := range p.Inventory[:limit] {
			entries = append(entries, fmt.Sprintf(MsgInventoryEntry, i+1, it.Name, it.Rarity, it.Power))
		}
		reply = fmt.Sprintf(MsgInventory, user, strings.Join(entries, " | "), weapon, trinket)
		return nil
	})
	if err != nil {
		metrics.RecordCommand(CommandInventory, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgInventoryFailed, err)
	}

	metrics.RecordCommand(CommandInventory, metrics.OutcomeSuccess)
	return reply, nil
}
