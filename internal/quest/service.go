package quest

import (
	"context"
	"fmt"
	"time"

	"github.com/tradi3/chatquest/internal/cooldown"
	"github.com/tradi3/chatquest/internal/domain"
	"github.com/tradi3/chatquest/internal/item"
	"github.com/tradi3/chatquest/internal/logger"
	"github.com/tradi3/chatquest/internal/metrics"
	"github.com/tradi3/chatquest/internal/progression"
	"github.com/tradi3/chatquest/internal/storage"
	"github.com/tradi3/chatquest/internal/utils"
)

// Service runs the quest and daily reward commands.
type Service interface {
	Quest(ctx context.Context, channel, user string) (string, error)
	Daily(ctx context.Context, channel, user string) (string, error)
}

type service struct {
	store   storage.Store
	roller  item.Roller
	randInt func(min, max int) int
	rnd     func() float64
	now     func() time.Time
}

// NewService creates a quest service with default randomness and clock.
func NewService(store storage.Store, roller item.Roller) Service {
	return &service{
		store:   store,
		roller:  roller,
		randInt: utils.RandomInt,
		rnd:     utils.RandomFloat,
		now:     time.Now,
	}
}

// NewServiceWithRand creates a quest service with explicit randomness and
// clock (tests).
func NewServiceWithRand(store storage.Store, roller item.Roller, randInt func(min, max int) int, rnd func() float64, now func() time.Time) Service {
	return &service{store: store, roller: roller, randInt: randInt, rnd: rnd, now: now}
}

func (s *service) Quest(ctx context.Context, channel, user string) (string, error) {
	log := logger.FromContext(ctx)

	var reply string
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		p := snap.Player(channel, user)
		now := s.now()

		if left, on := cooldown.Remaining(p.LastQuest, domain.QuestCooldown, now); on {
			reply = fmt.Sprintf(MsgQuestCooldown, user, cooldown.CeilSeconds(left))
			return domain.ErrOnCooldown
		}

		p.LastQuest = now.UnixMilli()
		p.Quests++

		gearBonus := p.GearBonus()
		xpGain := s.randInt(QuestXPMin, QuestXPMax) + gearBonus
		coinGain := s.randInt(QuestCoinsMin, QuestCoinsMax) + gearBonus

		res := progression.Apply(p, xpGain, coinGain)

		scenario := questScenarios[s.randInt(0, len(questScenarios)-1)]
		reply = fmt.Sprintf(MsgQuestSuccess,
			user, scenario, xpGain, coinGain,
			p.Level, p.XP, progression.XPForNextLevel(p.Level))
		if res.LeveledUp() {
			reply += MsgLevelUpSuffix
		}

		if s.rnd() < ItemDropChance {
			if drop := s.roller.RollItem(); drop != nil {
				p.Inventory = append(p.Inventory, *drop)
				reply += fmt.Sprintf(MsgItemFound, drop.Name, drop.Rarity, drop.Power)
				if p.AutoEquip(*drop) {
					if drop.Type == domain.ItemTypeWeapon {
						reply += MsgAutoEquippedWeapon
					} else {
						reply += MsgAutoEquippedTrinket
					}
				}
				log.Info("Quest item dropped", "user", user, "channel", channel, "item", drop.Name, "rarity", drop.Rarity)
			}
		}

		log.Info("Quest completed", "user", user, "channel", channel, "xp", xpGain, "coins", coinGain, "level", p.Level)
		return nil
	})

	if err != nil {
		if domain.IsPrecondition(err) {
			metrics.RecordCommand(CommandQuest, metrics.OutcomeCooldown)
			return reply, nil
		}
		metrics.RecordCommand(CommandQuest, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgQuestFailed, err)
	}

	metrics.RecordCommand(CommandQuest, metrics.OutcomeSuccess)
	return reply, nil
}

func (s *service) Daily(ctx context.Context, channel, user string) (string, error) {
	log := logger.FromContext(ctx)

	var reply string
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		p := snap.Player(channel, user)
		now := s.now()

		if p.DeathLocked(now.UnixMilli()) {
			reply = fmt.Sprintf(MsgDailyDeathLocked, user)
			return domain.ErrDeathLocked
		}

		if left, on := cooldown.Remaining(p.LastDaily, domain.DailyCooldown, now); on {
			h, m := cooldown.HoursMinutes(left)
			reply = fmt.Sprintf(MsgDailyCooldown, user, h, m)
			return domain.ErrOnCooldown
		}

		p.LastDaily = now.UnixMilli()

		xpGain := s.randInt(DailyXPMin, DailyXPMax)
		coinGain := s.randInt(DailyCoinsMin, DailyCoinsMax)

		res := progression.Apply(p, xpGain, coinGain)

		reply = fmt.Sprintf(MsgDailySuccess,
			user, xpGain, coinGain,
			p.Level, p.XP, progression.XPForNextLevel(p.Level))
		if res.LeveledUp() {
			reply += MsgLevelUpSuffix
		}

		log.Info("Daily claimed", "user", user, "channel", channel, "xp", xpGain, "coins", coinGain)
		return nil
	})

	if err != nil {
		if domain.IsPrecondition(err) {
			metrics.RecordCommand(CommandDaily, metrics.OutcomeCooldown)
			return reply, nil
		}
		metrics.RecordCommand(CommandDaily, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgDailyFailed, err)
	}

	metrics.RecordCommand(CommandDaily, metrics.OutcomeSuccess)
	return reply, nil
}
