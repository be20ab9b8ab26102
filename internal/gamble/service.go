package gamble

import (
	"context"
	"fmt"

	"github.com/tradi3/chatquest/internal/domain"
	"github.com/tradi3/chatquest/internal/logger"
	"github.com/tradi3/chatquest/internal/metrics"
	"github.com/tradi3/chatquest/internal/storage"
	"github.com/tradi3/chatquest/internal/utils"
)

// Service runs the coin gamble. The stake is clamped before play: zero or
// negative falls back to the default, anything above the cap is capped.
type Service interface {
	Gamble(ctx context.Context, channel, user string, amount int) (string, error)
}

type service struct {
	store storage.Store
	rnd   func() float64
}

// NewService creates a gamble service with default randomness.
func NewService(store storage.Store) Service {
	return &service{store: store, rnd: utils.RandomFloat}
}

// NewServiceWithRand creates a gamble service with an explicit random
// source (tests).
func NewServiceWithRand(store storage.Store, rnd func() float64) Service {
	return &service{store: store, rnd: rnd}
}

// ClampStake normalizes a requested stake to the playable range.
func ClampStake(amount int) int {
	if amount <= 0 {
		return domain.DefaultGambleStake
	}
	if amount > domain.MaxGambleStake {
		return domain.MaxGambleStake
	}
	return amount
}

func (s *service) Gamble(ctx context.Context, channel, user string, amount int) (string, error) {
	log := logger.FromContext(ctx)
	stake := ClampStake(amount)

	var reply string
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		p := snap.Player(channel, user)

		if p.Coins < stake {
			reply = fmt.Sprintf(MsgInsufficientCoins, user, stake, p.Coins)
			return domain.ErrInsufficientFunds
		}

		p.Gambles++
		p.Coins -= stake

		if s.rnd() < LoseProbability {
			p.Losses++
			reply = fmt.Sprintf(MsgLoss, user, stake, p.Coins)
			log.Info("Gamble lost", "user", user, "channel", channel, "stake", stake, "coins", p.Coins)
			return nil
		}

		win := stake * 2
		p.Wins++
		p.Coins += win
		p.TotalCoins += stake

		reply = fmt.Sprintf(MsgWin, user, stake, win, p.Coins, p.Wins, p.Losses)
		log.Info("Gamble won", "user", user, "channel", channel, "stake", stake, "coins", p.Coins)
		return nil
	})

	if err != nil {
		if domain.IsPrecondition(err) {
			metrics.RecordCommand(CommandGamble, metrics.OutcomeBlocked)
			return reply, nil
		}
		metrics.RecordCommand(CommandGamble, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgGambleFailed, err)
	}

	metrics.CoinsGambled.Add(float64(stake))
	metrics.RecordCommand(CommandGamble, metrics.OutcomeSuccess)
	return reply, nil
}
