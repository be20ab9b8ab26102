package economy

import (
	"math"

	"github.com/tradi3/chatquest/internal/domain"
)

// rarityBasePrices value quest drops that never carried a purchase price.
var rarityBasePrices = map[domain.Rarity]int{
	domain.RarityCommon:    20,
	domain.RarityRare:      60,
	domain.RarityEpic:      120,
	domain.RarityLegendary: 250,
}

// SellValue computes the resale price of an item.
func SellValue(it domain.Item) int {
	base := it.Price
	if base == 0 {
		base = rarityBasePrices[it.Rarity]
	}
	value := int(math.Floor(float64(base+it.Power*SellPowerPremium) * SellRatio))
	if value < SellFloor {
		return SellFloor
	}
	return value
}
