package boss

import (
	"context"
	"fmt"
	"time"

	"github.com/tradi3/chatquest/internal/cooldown"
	"github.com/tradi3/chatquest/internal/domain"
	"github.com/tradi3/chatquest/internal/logger"
	"github.com/tradi3/chatquest/internal/metrics"
	"github.com/tradi3/chatquest/internal/progression"
	"github.com/tradi3/chatquest/internal/storage"
	"github.com/tradi3/chatquest/internal/utils"
)

// Service runs the channel boss fight. One boss exists per channel; an
// attack against a dormant boss spawns it instead of dealing damage.
type Service interface {
	Attack(ctx context.Context, channel, user string) (string, error)
}

type service struct {
	store   storage.Store
	randInt func(min, max int) int
	now     func() time.Time
}

// NewService creates a boss service with default randomness and clock.
func NewService(store storage.Store) Service {
	return &service{store: store, randInt: utils.RandomInt, now: time.Now}
}

// NewServiceWithRand creates a boss service with explicit randomness and
// clock (tests).
func NewServiceWithRand(store storage.Store, randInt func(min, max int) int, now func() time.Time) Service {
	return &service{store: store, randInt: randInt, now: now}
}

func (s *service) Attack(ctx context.Context, channel, user string) (string, error) {
	log := logger.FromContext(ctx)

	var reply string
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		p := snap.Player(channel, user)
		b := snap.Boss(channel)
		now := s.now()

		if left, on := cooldown.Remaining(p.LastBoss, domain.BossCooldown, now); on {
			reply = fmt.Sprintf(MsgBossCooldown, user, cooldown.CeilSeconds(left))
			return domain.ErrOnCooldown
		}

		p.LastBoss = now.UnixMilli()

		if !b.Active {
			s.spawn(b, p.Level, now)
			reply = fmt.Sprintf(MsgBossSpawned, b.Name, b.HP, b.MaxHP)
			log.Info("Boss spawned", "channel", channel, "name", b.Name, "maxHp", b.MaxHP)
			return nil
		}

		weapon, trinket := p.GearPower()
		dmg := s.randInt(DamageMin, DamageMax) + p.Level*DamagePerLevel + weapon + trinket/2
		b.HP -= dmg
		if b.HP < 0 {
			b.HP = 0
		}

		reply = fmt.Sprintf(MsgBossHit, user, b.Name, dmg)

		if b.HP <= 0 {
			res := progression.Apply(p, b.RewardXP, b.RewardCoins)
			reply += fmt.Sprintf(MsgBossDefeated,
				b.Name, user, b.RewardXP, b.RewardCoins,
				p.Level, p.XP, progression.XPForNextLevel(p.Level))
			if res.LeveledUp() {
				reply += MsgLevelUpSuffix
			}
			b.Active = false
			b.HP = 0
			metrics.BossesDefeated.Inc()
			log.Info("Boss defeated", "channel", channel, "name", b.Name, "user", user, "xp", b.RewardXP, "coins", b.RewardCoins)
			return nil
		}

		reply += fmt.Sprintf(MsgBossEngaged, b.HP, b.MaxHP, b.RewardXP, b.RewardCoins)
		log.Info("Boss attacked", "channel", channel, "name", b.Name, "user", user, "damage", dmg, "hp", b.HP)
		return nil
	})

	if err != nil {
		if domain.IsPrecondition(err) {
			metrics.RecordCommand(CommandBoss, metrics.OutcomeCooldown)
			return reply, nil
		}
		metrics.RecordCommand(CommandBoss, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgBossFailed, err)
	}

	metrics.RecordCommand(CommandBoss, metrics.OutcomeSuccess)
	return reply, nil
}

func (s *service) spawn(b *domain.ChannelBoss, level int, now time.Time) {
	hp := BaseHP + level*HPPerLevel + s.randInt(0, HPJitterMax)
	b.Name = bossNames[s.randInt(0, len(bossNames)-1)]
	b.MaxHP = hp
	b.HP = hp
	b.RewardCoins = s.randInt(RewardCoinsMin, RewardCoinsMax)
	b.RewardXP = s.randInt(RewardXPMin, RewardXPMax)
	b.Active = true
	b.LastSpawn = now.UnixMilli()
}
