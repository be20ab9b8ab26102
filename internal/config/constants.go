package config

const (
	// Item catalogs live under one file per season.
	ItemsDir      = "configs/items"
	DefaultSeason = "season1"
)
