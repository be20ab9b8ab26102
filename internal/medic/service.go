package medic

import (
	"context"
	"fmt"
	"time"

	"github.com/tradi3/chatquest/internal/domain"
	"github.com/tradi3/chatquest/internal/logger"
	"github.com/tradi3/chatquest/internal/metrics"
	"github.com/tradi3/chatquest/internal/storage"
)

// Service runs the recovery commands. Heal consumes a carried consumable
// under a rolling per-shift use limit; Rest buys a shorter death-lock.
type Service interface {
	Heal(ctx context.Context, channel, user string) (string, error)
	Rest(ctx context.Context, channel, user string) (string, error)
}

type service struct {
	store storage.Store
	now   func() time.Time
}

// NewService creates a medic service with the wall clock.
func NewService(store storage.Store) Service {
	return &service{store: store, now: time.Now}
}

// NewServiceWithClock creates a medic service with an explicit clock
// (tests).
func NewServiceWithClock(store storage.Store, now func() time.Time) Service {
	return &service{store: store, now: now}
}

// canHeal reports whether the player has heal uses left in the current
// rolling window, resetting the window when it has lapsed.
func canHeal(p *domain.Player, nowMs int64) bool {
	if nowMs-p.HealWindowStart > domain.HealWindow.Milliseconds() {
		p.HealWindowStart = nowMs
		p.HealUses = 0
	}
	return p.HealUses < domain.MaxHealsPerWindow
}

func (s *service) Heal(ctx context.Context, channel, user string) (string, error) {
	log := logger.FromContext(ctx)

	var reply string
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		p := snap.Player(channel, user)
		now := s.now().UnixMilli()

		if p.HP >= p.MaxHP {
			reply = fmt.Sprintf(MsgAlreadyFullHP, user)
			return domain.ErrAlreadyFullHP
		}
		if !canHeal(p, now) {
			reply = fmt.Sprintf(MsgHealLimit, user)
			return domain.ErrHealLimitReached
		}

		idx := -1
		for i := range p.Inventory {
			if p.Inventory[i].Type == domain.ItemTypeConsumable {
				idx = i
				break
			}
		}
		if idx == -1 {
			reply = fmt.Sprintf(MsgNoConsumable, user)
			return domain.ErrNoConsumable
		}

		used := p.Inventory[idx]
		amount := used.Heal
		if amount == 0 {
			amount = DefaultHealAmount
		}
		p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)

		healed := p.MaxHP - p.HP
		if amount < healed {
			healed = amount
		}
		p.HP += healed
		p.HealUses++
		if p.HP > 0 {
			p.DeathUntil = 0
		}

		reply = fmt.Sprintf(MsgHealed, user, used.Name, healed, p.HP, p.MaxHP)
		log.Info("Player healed", "user", user, "channel", channel, "item", used.Name, "healed", healed, "hp", p.HP)
		return nil
	})

	if err != nil {
		if domain.IsPrecondition(err) {
			metrics.RecordCommand(CommandHeal, metrics.OutcomeBlocked)
			return reply, nil
		}
		metrics.RecordCommand(CommandHeal, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgHealFailed, err)
	}

	metrics.RecordCommand(CommandHeal, metrics.OutcomeSuccess)
	return reply, nil
}

func (s *service) Rest(ctx context.Context, channel, user string) (string, error) {
	log := logger.FromContext(ctx)

	var reply string
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		p := snap.Player(channel, user)
		now := s.now()

		if !p.DeathLocked(now.UnixMilli()) {
			reply = fmt.Sprintf(MsgNotDown, user)
			return domain.ErrNotDeathLocked
		}
		if p.Coins < domain.RestCost {
			reply = fmt.Sprintf(MsgRestCantAfford, user, domain.RestCost, p.Coins)
			return domain.ErrInsufficientFunds
		}

		p.Coins -= domain.RestCost
		p.DeathUntil = now.Add(domain.RestLockTime).UnixMilli()
		if p.HP <= 0 {
			p.HP = domain.RestHPFloor
			if p.HP > p.MaxHP {
				p.HP = p.MaxHP
			}
		}

		reply = fmt.Sprintf(MsgRested, user, domain.RestCost, p.HP, p.MaxHP)
		log.Info("Player rested", "user", user, "channel", channel, "coins", p.Coins, "hp", p.HP)
		return nil
	})

	if err != nil {
		if domain.IsPrecondition(err) {
			metrics.RecordCommand(CommandRest, metrics.OutcomeBlocked)
			return reply, nil
		}
		metrics.RecordCommand(CommandRest, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgRestFailed, err)
	}

	metrics.RecordCommand(CommandRest, metrics.OutcomeSuccess)
	return reply, nil
}
