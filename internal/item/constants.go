package item

// Rarity band upper bounds over a uniform [0,100) draw:
// common [0,70), rare [70,93), epic [93,99), legendary [99,100).
const (
	RarityBandRare      = 70.0
	RarityBandEpic      = 93.0
	RarityBandLegendary = 99.0
)

// Error message constants
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgEmptyPool          = "item pool is empty"
)
