package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradi3/chatquest/internal/domain"
)

func testCatalog() *Catalog {
	return &Catalog{
		Version: "1.0",
		Season:  "test",
		Pool: []PoolDef{
			{Name: "Chipped Trowel", Type: domain.ItemTypeWeapon, Rarity: domain.RarityCommon, MinPower: 1, MaxPower: 3},
			{Name: "Laser Line Level", Type: domain.ItemTypeTrinket, Rarity: domain.RarityRare, MinPower: 2, MaxPower: 5},
			{Name: "Diamond Tip Trowel", Type: domain.ItemTypeWeapon, Rarity: domain.RarityEpic, MinPower: 6, MaxPower: 11},
			{Name: "Mythic Wheelbarrow", Type: domain.ItemTypeWeapon, Rarity: domain.RarityLegendary, MinPower: 10, MaxPower: 16},
		},
		Stock: []StockDef{
			{Key: "firstaid", Name: "First Aid Kit", Type: domain.ItemTypeConsumable, Rarity: domain.RarityCommon, Heal: 60, Price: 40},
		},
	}
}

// fixedRand returns a roller whose rarity draw is pinned to the given
// [0,1) value and whose int rolls always return min.
func fixedRand(cat *Catalog, f float64) Roller {
	return NewRollerWithRand(cat,
		func(min, max int) int { return min },
		func() float64 { return f },
	)
}

func TestRollRarityBands(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want domain.Rarity
	}{
		{"band start", 0.0, domain.RarityCommon},
		{"common upper edge", 0.699, domain.RarityCommon},
		{"rare band start", 0.70, domain.RarityRare},
		{"rare upper edge", 0.929, domain.RarityRare},
		{"epic band start", 0.93, domain.RarityEpic},
		{"epic upper edge", 0.989, domain.RarityEpic},
		{"legendary band", 0.99, domain.RarityLegendary},
		{"top of range", 0.999, domain.RarityLegendary},
	}

	cat := testCatalog()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fixedRand(cat, tt.roll)
			assert.Equal(t, tt.want, r.RollRarity())
		})
	}
}

func TestRollItemDrawsFromRolledRarity(t *testing.T) {
	cat := testCatalog()

	r := fixedRand(cat, 0.995) // legendary
	it := r.RollItem()
	require.NotNil(t, it)
	assert.Equal(t, "Mythic Wheelbarrow", it.Name)
	assert.Equal(t, domain.RarityLegendary, it.Rarity)
	assert.Equal(t, 10, it.Power) // randInt pinned to min
	assert.NotEmpty(t, it.ID)
}

func TestRollItemPowerWithinRange(t *testing.T) {
	cat := testCatalog()
	r := NewRoller(cat)

	for i := 0; i < 200; i++ {
		it := r.RollItem()
		require.NotNil(t, it)
		var def *PoolDef
		for j := range cat.Pool {
			if cat.Pool[j].Name == it.Name {
				def = &cat.Pool[j]
			}
		}
		require.NotNil(t, def, "rolled item must come from the pool")
		assert.GreaterOrEqual(t, it.Power, def.MinPower)
		assert.LessOrEqual(t, it.Power, def.MaxPower)
	}
}

func TestRollItemIDsUnique(t *testing.T) {
	r := NewRoller(testCatalog())
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		it := r.RollItem()
		require.NotNil(t, it)
		assert.False(t, seen[it.ID], "item IDs must be unique")
		seen[it.ID] = true
	}
}

func TestCatalogValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, testCatalog().Validate())
	})

	t.Run("empty pool", func(t *testing.T) {
		cat := &Catalog{}
		assert.ErrorIs(t, cat.Validate(), ErrInvalidCatalog)
	})

	t.Run("missing rarity coverage", func(t *testing.T) {
		cat := testCatalog()
		cat.Pool = cat.Pool[:2] // drops epic and legendary
		assert.ErrorIs(t, cat.Validate(), ErrInvalidCatalog)
	})

	t.Run("duplicate stock key", func(t *testing.T) {
		cat := testCatalog()
		cat.Stock = append(cat.Stock, cat.Stock[0])
		assert.ErrorIs(t, cat.Validate(), ErrDuplicateStockKey)
	})

	t.Run("bad power range", func(t *testing.T) {
		cat := testCatalog()
		cat.Pool[0].MaxPower = 0
		assert.ErrorIs(t, cat.Validate(), ErrInvalidCatalog)
	})
}

func TestFindStock(t *testing.T) {
	cat := testCatalog()

	def := cat.FindStock("firstaid")
	require.NotNil(t, def)
	assert.Equal(t, "First Aid Kit", def.Name)

	assert.Nil(t, cat.FindStock("nope"))
}
