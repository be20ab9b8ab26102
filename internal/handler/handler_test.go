package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradi3/chatquest/internal/domain"
	"github.com/tradi3/chatquest/internal/economy"
	"github.com/tradi3/chatquest/internal/gamble"
	"github.com/tradi3/chatquest/internal/item"
	"github.com/tradi3/chatquest/internal/medic"
	"github.com/tradi3/chatquest/internal/quest"
	"github.com/tradi3/chatquest/internal/stats"
	"github.com/tradi3/chatquest/internal/storage"
)

// nopRoller never drops anything.
type nopRoller struct{}

func (nopRoller) RollRarity() domain.Rarity { return domain.RarityCommon }
func (nopRoller) RollItem() *domain.Item    { return nil }

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newQuestHandler(store storage.Store) *QuestHandler {
	svc := quest.NewServiceWithRand(store, nopRoller{},
		func(min, max int) int { return min },
		func() float64 { return 0.99 },
		fixedClock,
	)
	return NewQuestHandler(svc)
}

func do(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleQuest(t *testing.T) {
	store := storage.NewMemoryStore()
	h := newQuestHandler(store)

	w := do(t, h.HandleQuest, "/api/quest?user=Alice&channel=Chan")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "alice")

	// Identity is case-folded: the same player, now on cooldown.
	w = do(t, h.HandleQuest, "/api/quest?user=ALICE&channel=chan")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "still recovering")
}

func TestHandleQuestMissingParams(t *testing.T) {
	store := storage.NewMemoryStore()
	h := newQuestHandler(store)

	w := do(t, h.HandleQuest, "/api/quest?user=alice")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ChatQuest error: missing user or channel.", w.Body.String())

	// Nothing was created for the incomplete request.
	err := store.View(context.Background(), func(snap *domain.Snapshot) error {
		assert.Empty(t, snap.Players)
		return nil
	})
	require.NoError(t, err)
}

func TestHandleGambleParsesAmount(t *testing.T) {
	store := storage.NewMemoryStore()
	snap := domain.NewSnapshot()
	snap.Player("chan", "alice").Coins = 500
	store.Seed(snap)

	svc := gamble.NewServiceWithRand(store, func() float64 { return 0.9 })
	h := NewGambleHandler(svc)

	w := do(t, h.HandleGamble, "/api/gamble?user=alice&channel=chan&amount=50")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gambles 50 coins and WINS 100!")

	// Garbage amount falls back to the default stake.
	w = do(t, h.HandleGamble, "/api/gamble?user=alice&channel=chan&amount=lots")
	assert.Contains(t, w.Body.String(), "gambles 10 coins")
}

func TestHandleHealMissingParamsUsesHealPrefix(t *testing.T) {
	store := storage.NewMemoryStore()
	h := NewMedicHandler(medic.NewServiceWithClock(store, fixedClock))

	w := do(t, h.HandleHeal, "/api/heal")
	assert.Equal(t, "Heal error: missing user or channel.", w.Body.String())

	w = do(t, h.HandleRest, "/api/rest")
	assert.Equal(t, "Rest error: missing user or channel.", w.Body.String())
}

func TestHandleTopMissingChannel(t *testing.T) {
	store := storage.NewMemoryStore()
	h := NewStatsHandler(stats.NewService(store))

	w := do(t, h.HandleTop, "/api/top")
	assert.Equal(t, "ChatQuest error: missing channel.", w.Body.String())
}

func TestHandleShopBuy(t *testing.T) {
	store := storage.NewMemoryStore()
	snap := domain.NewSnapshot()
	snap.Player("chan", "alice").Coins = 100
	store.Seed(snap)

	catalog := &item.Catalog{Stock: []item.StockDef{
		{Key: "firstaid", Name: "First Aid Kit", Type: domain.ItemTypeConsumable, Rarity: domain.RarityCommon, Heal: 60, Price: 40},
	}}
	h := NewShopHandler(economy.NewService(store, catalog))

	w := do(t, h.HandleBuy, "/api/shop/buy?user=alice&channel=chan&item=firstaid")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bought First Aid Kit")

	w = do(t, h.HandleBuy, "/api/shop/buy?user=alice&channel=chan&item=banhammer")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "doesn't stock that")

	w = do(t, h.HandleBuy, "/api/shop/buy?user=alice&channel=chan")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ChatQuest error: missing item.", w.Body.String())
}

func TestHandleRoot(t *testing.T) {
	w := do(t, HandleRoot(), "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MsgRoot, w.Body.String())
}

func TestHandleHealthz(t *testing.T) {
	w := do(t, HandleHealthz(), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	store := storage.NewMemoryStore()
	w := do(t, HandleReadyz(store), "/readyz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
