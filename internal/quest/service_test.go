package quest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradi3/chatquest/internal/domain"
	"github.com/tradi3/chatquest/internal/storage"
)

// stubRoller returns a fixed item, or nothing.
type stubRoller struct {
	item *domain.Item
}

func (r *stubRoller) RollRarity() domain.Rarity { return domain.RarityCommon }
func (r *stubRoller) RollItem() *domain.Item {
	if r.item == nil {
		return nil
	}
	it := *r.item
	return &it
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(store storage.Store, roller *stubRoller, dropRoll float64) Service {
	return NewServiceWithRand(store, roller,
		func(min, max int) int { return min },
		func() float64 { return dropRoll },
		func() time.Time { return testNow },
	)
}

func getPlayer(t *testing.T, store storage.Store, channel, user string) domain.Player {
	t.Helper()
	var out domain.Player
	err := store.View(context.Background(), func(snap *domain.Snapshot) error {
		p, ok := snap.Players[domain.PlayerKey(channel, user)]
		require.True(t, ok)
		out = *p
		return nil
	})
	require.NoError(t, err)
	return out
}

func TestQuestGrantsRewards(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newTestService(store, &stubRoller{}, 0.99) // no drop

	reply, err := svc.Quest(context.Background(), "chan", "alice")
	require.NoError(t, err)

	p := getPlayer(t, store, "chan", "alice")
	assert.Equal(t, QuestXPMin, p.XP)
	assert.Equal(t, QuestCoinsMin, p.Coins)
	assert.Equal(t, QuestXPMin, p.TotalXP)
	assert.Equal(t, QuestCoinsMin, p.TotalCoins)
	assert.Equal(t, 1, p.Quests)
	assert.Equal(t, testNow.UnixMilli(), p.LastQuest)
	assert.Contains(t, reply, "alice")
	assert.Contains(t, reply, "+5 XP, +5 coins")
}

func TestQuestGearBonusAppliesToBoth(t *testing.T) {
	store := storage.NewMemoryStore()
	snap := domain.NewSnapshot()
	p := snap.Player("chan", "alice")
	p.Equipped.Weapon = &domain.Item{ID: "w", Name: "Reo Bender", Type: domain.ItemTypeWeapon, Power: 7}
	p.Equipped.Trinket = &domain.Item{ID: "t", Name: "Vented Hard Hat", Type: domain.ItemTypeTrinket, Power: 4}
	store.Seed(snap)

	svc := newTestService(store, &stubRoller{}, 0.99)
	_, err := svc.Quest(context.Background(), "chan", "alice")
	require.NoError(t, err)

	// gear bonus = floor((7+4)/2) = 5, added to both sides
	got := getPlayer(t, store, "chan", "alice")
	assert.Equal(t, QuestXPMin+5, got.TotalXP)
	assert.Equal(t, QuestCoinsMin+5, got.TotalCoins)
}

func TestQuestCooldownIsPureRead(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newTestService(store, &stubRoller{}, 0.99)
	ctx := context.Background()

	_, err := svc.Quest(ctx, "chan", "alice")
	require.NoError(t, err)
	before := getPlayer(t, store, "chan", "alice")

	reply, err := svc.Quest(ctx, "chan", "alice")
	require.NoError(t, err)
	assert.Contains(t, reply, "still recovering")
	assert.Contains(t, reply, "10s")

	after := getPlayer(t, store, "chan", "alice")
	assert.Equal(t, before, after, "a blocked quest must not mutate the player")
}

func TestQuestDropAutoEquipsUpgrade(t *testing.T) {
	store := storage.NewMemoryStore()
	drop := &domain.Item{ID: "d1", Name: "Carbon Screed Rail", Type: domain.ItemTypeWeapon, Rarity: domain.RarityRare, Power: 8}
	svc := newTestService(store, &stubRoller{item: drop}, 0.0) // force drop

	reply, err := svc.Quest(context.Background(), "chan", "alice")
	require.NoError(t, err)
	assert.Contains(t, reply, "Found item: Carbon Screed Rail")
	assert.Contains(t, reply, "Auto-equipped as weapon")

	p := getPlayer(t, store, "chan", "alice")
	require.Len(t, p.Inventory, 1)
	require.NotNil(t, p.Equipped.Weapon)
	assert.Equal(t, 8, p.Equipped.Weapon.Power)
}

func TestQuestDropTieDoesNotReplace(t *testing.T) {
	store := storage.NewMemoryStore()
	snap := domain.NewSnapshot()
	p := snap.Player("chan", "alice")
	p.Equipped.Weapon = &domain.Item{ID: "old", Name: "Reo Bender", Type: domain.ItemTypeWeapon, Power: 8}
	store.Seed(snap)

	drop := &domain.Item{ID: "new", Name: "Carbon Screed Rail", Type: domain.ItemTypeWeapon, Rarity: domain.RarityRare, Power: 8}
	svc := newTestService(store, &stubRoller{item: drop}, 0.0)

	reply, err := svc.Quest(context.Background(), "chan", "alice")
	require.NoError(t, err)
	assert.NotContains(t, reply, "Auto-equipped")

	got := getPlayer(t, store, "chan", "alice")
	assert.Equal(t, "old", got.Equipped.Weapon.ID, "equal power must not replace")
}

func TestQuestLevelUpNotice(t *testing.T) {
	store := storage.NewMemoryStore()
	snap := domain.NewSnapshot()
	snap.Player("chan", "alice").XP = 34 // threshold at L1 is 35
	store.Seed(snap)

	svc := newTestService(store, &stubRoller{}, 0.99)
	reply, err := svc.Quest(context.Background(), "chan", "alice")
	require.NoError(t, err)

	assert.Contains(t, reply, "LEVEL UP")
	assert.Equal(t, 2, getPlayer(t, store, "chan", "alice").Level)
}

func TestDailyGrantsAndBlocks(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newTestService(store, &stubRoller{}, 0.99)
	ctx := context.Background()

	reply, err := svc.Daily(ctx, "chan", "bob")
	require.NoError(t, err)
	assert.Contains(t, reply, "daily reward")

	p := getPlayer(t, store, "chan", "bob")
	assert.Equal(t, DailyXPMin, p.TotalXP)
	assert.Equal(t, DailyCoinsMin, p.TotalCoins)

	// Second claim inside 24h shows remaining time, no mutation.
	reply, err = svc.Daily(ctx, "chan", "bob")
	require.NoError(t, err)
	assert.Contains(t, reply, "Come back in 24h 0m")
	assert.Equal(t, p, getPlayer(t, store, "chan", "bob"))
}

func TestDailyBlockedWhileDeathLocked(t *testing.T) {
	store := storage.NewMemoryStore()
	snap := domain.NewSnapshot()
	snap.Player("chan", "bob").DeathUntil = testNow.Add(time.Hour).UnixMilli()
	store.Seed(snap)

	svc := newTestService(store, &stubRoller{}, 0.99)
	reply, err := svc.Daily(context.Background(), "chan", "bob")
	require.NoError(t, err)
	assert.Contains(t, reply, "you're down")

	assert.Zero(t, getPlayer(t, store, "chan", "bob").TotalCoins)
}
