package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tradi3/chatquest/internal/domain"
)

// Sentinel errors for the catalog loader
var (
	ErrInvalidCatalog    = errors.New("invalid catalog")
	ErrDuplicateStockKey = errors.New("duplicate stock key")
)

// Catalog is the parsed season content: the random drop pool and the
// fixed shop stock.
type Catalog struct {
	Version string     `json:"version"`
	Season  string     `json:"season"`
	Pool    []PoolDef  `json:"pool"`
	Stock   []StockDef `json:"stock"`
}

// PoolDef is one rollable drop entry. Power is drawn uniformly from
// [MinPower, MaxPower] inclusive at roll time.
type PoolDef struct {
	Name     string          `json:"name"`
	Type     domain.ItemType `json:"type"`
	Rarity   domain.Rarity   `json:"rarity"`
	MinPower int             `json:"min_power"`
	MaxPower int             `json:"max_power"`
}

// StockDef is one purchasable shop entry. Key is the id used in the
// shop-buy command; power and price are fixed, not rolled.
type StockDef struct {
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Type     domain.ItemType `json:"type"`
	Rarity   domain.Rarity   `json:"rarity"`
	Power    int             `json:"power"`
	Heal     int             `json:"heal,omitempty"`
	Price    int             `json:"price"`
	LevelReq int             `json:"level_req,omitempty"`
}

// LoadCatalog reads and validates a season catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks catalog completeness. Every rarity tier must have at
// least one pool entry, otherwise RollItem could come up empty.
func (c *Catalog) Validate() error {
	if len(c.Pool) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, ErrMsgEmptyPool)
	}

	rarities := map[domain.Rarity]bool{}
	for i, def := range c.Pool {
		if def.Name == "" {
			return fmt.Errorf("%w: pool entry %d has no name", ErrInvalidCatalog, i)
		}
		if def.MinPower < 0 || def.MaxPower < def.MinPower {
			return fmt.Errorf("%w: pool entry %q has bad power range [%d,%d]", ErrInvalidCatalog, def.Name, def.MinPower, def.MaxPower)
		}
		rarities[def.Rarity] = true
	}
	for _, r := range []domain.Rarity{domain.RarityCommon, domain.RarityRare, domain.RarityEpic, domain.RarityLegendary} {
		if !rarities[r] {
			return fmt.Errorf("%w: no pool entries for rarity %q", ErrInvalidCatalog, r)
		}
	}

	keys := make(map[string]bool, len(c.Stock))
	for _, def := range c.Stock {
		if def.Key == "" {
			return fmt.Errorf("%w: stock entry %q has no key", ErrInvalidCatalog, def.Name)
		}
		if keys[def.Key] {
			return fmt.Errorf("%w: %s", ErrDuplicateStockKey, def.Key)
		}
		keys[def.Key] = true
		if def.Price <= 0 {
			return fmt.Errorf("%w: stock entry %q has non-positive price", ErrInvalidCatalog, def.Key)
		}
	}

	return nil
}

// FindStock looks up a shop entry by its key. Returns nil when absent.
func (c *Catalog) FindStock(key string) *StockDef {
	for i := range c.Stock {
		if c.Stock[i].Key == key {
			return &c.Stock[i]
		}
	}
	return nil
}
