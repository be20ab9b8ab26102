package domain

import "fmt"

// ItemType categorizes what an item does.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeTrinket    ItemType = "trinket"
	ItemTypeConsumable ItemType = "consumable"
)

// Rarity is the drop tier of an item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Item is an immutable value once created. ID is generation-derived and
// unique for the lifetime of the store; duplicate names may coexist.
type Item struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Type   ItemType `json:"type"`
	Rarity Rarity   `json:"rarity"`
	Power  int      `json:"power"`

	// Heal is the HP restored when a consumable is used.
	Heal int `json:"heal,omitempty"`

	// Price is set when the item was bought from the shop; it feeds the
	// sell-value calculation later.
	Price int `json:"price,omitempty"`
}

// ShortDescription renders the chat-line form of an item: "Name (rarity, +power)".
func (i *Item) ShortDescription() string {
	if i == nil {
		return "none"
	}
	return fmt.Sprintf("%s (%s, +%d)", i.Name, i.Rarity, i.Power)
}
