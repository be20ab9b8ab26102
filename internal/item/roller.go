package item

import (
	"github.com/google/uuid"

	"github.com/tradi3/chatquest/internal/domain"
	"github.com/tradi3/chatquest/internal/utils"
)

// Roller produces random item drops from a catalog pool. Randomness is
// injectable so rarity bands and power rolls are testable with fixed
// sequences.
type Roller interface {
	// RollRarity draws a rarity tier from the weighted bands.
	RollRarity() domain.Rarity

	// RollItem draws a rarity, picks a matching pool entry uniformly and
	// rolls its power. Returns nil only if the pool has no entry for the
	// drawn rarity, which a validated catalog rules out.
	RollItem() *domain.Item
}

type roller struct {
	catalog *Catalog
	randInt func(min, max int) int
	rnd     func() float64
}

// NewRoller creates a Roller over the catalog using the package default
// randomness.
func NewRoller(catalog *Catalog) Roller {
	return &roller{
		catalog: catalog,
		randInt: utils.RandomInt,
		rnd:     utils.RandomFloat,
	}
}

// NewRollerWithRand creates a Roller with explicit random sources (tests).
func NewRollerWithRand(catalog *Catalog, randInt func(min, max int) int, rnd func() float64) Roller {
	return &roller{catalog: catalog, randInt: randInt, rnd: rnd}
}

func (r *roller) RollRarity() domain.Rarity {
	roll := r.rnd() * 100
	switch {
	case roll < RarityBandRare:
		return domain.RarityCommon
	case roll < RarityBandEpic:
		return domain.RarityRare
	case roll < RarityBandLegendary:
		return domain.RarityEpic
	default:
		return domain.RarityLegendary
	}
}

func (r *roller) RollItem() *domain.Item {
	rarity := r.RollRarity()

	var options []PoolDef
	for _, def := range r.catalog.Pool {
		if def.Rarity == rarity {
			options = append(options, def)
		}
	}
	if len(options) == 0 {
		return nil
	}

	base := options[r.randInt(0, len(options)-1)]
	power := r.randInt(base.MinPower, base.MaxPower)

	return &domain.Item{
		ID:     uuid.NewString(),
		Name:   base.Name,
		Type:   base.Type,
		Rarity: rarity,
		Power:  power,
	}
}
