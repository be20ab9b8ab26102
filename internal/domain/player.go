package domain

import "fmt"

// Player is one adventurer in one channel. Identity is the composite
// (channel, user) key, both lowercased. JSON tags match the persisted
// save-file shape, so existing documents load unchanged.
type Player struct {
	User    string `json:"user"`
	Channel string `json:"channel"`

	Level      int `json:"level"`
	XP         int `json:"xp"`
	Coins      int `json:"coins"`
	TotalXP    int `json:"totalXp"`
	TotalCoins int `json:"totalCoins"`

	// Unix milliseconds, 0 = never. Matches the original save format.
	LastQuest int64 `json:"lastQuest"`
	LastDaily int64 `json:"lastDaily"`
	LastBoss  int64 `json:"lastBoss"`

	Quests  int `json:"quests"`
	Gambles int `json:"gambles"`
	Wins    int `json:"wins"`
	Losses  int `json:"losses"`

	Inventory []Item    `json:"inventory"`
	Equipped  Equipment `json:"equipped"`

	HP         int   `json:"hp"`
	MaxHP      int   `json:"maxHp"`
	DeathUntil int64 `json:"deathUntil"`

	// Rolling heal-rate-limit window.
	HealWindowStart int64 `json:"healWindow"`
	HealUses        int   `json:"healUses"`
}

// Equipment holds at most one item per slot. Entries are independent
// copies of inventory items, not references into it; selling code keeps
// them in sync explicitly.
type Equipment struct {
	Weapon  *Item `json:"weapon"`
	Trinket *Item `json:"trinket"`
}

// PlayerKey builds the composite store key for a player.
func PlayerKey(channel, user string) string {
	return fmt.Sprintf("%s:%s", channel, user)
}

// GearPower returns the equipped weapon and trinket power (0 for empty slots).
func (p *Player) GearPower() (weapon, trinket int) {
	if p.Equipped.Weapon != nil {
		weapon = p.Equipped.Weapon.Power
	}
	if p.Equipped.Trinket != nil {
		trinket = p.Equipped.Trinket.Power
	}
	return weapon, trinket
}

// GearBonus is floor((weaponPower + trinketPower) / 2), added to both the
// XP and coin side of quest rewards.
func (p *Player) GearBonus() int {
	w, t := p.GearPower()
	return (w + t) / 2
}

// DeathLocked reports whether the player is incapacitated at the given
// Unix-millisecond instant.
func (p *Player) DeathLocked(nowMs int64) bool {
	return p.DeathUntil > nowMs
}

// ConsumableCount counts consumables currently carried.
func (p *Player) ConsumableCount() int {
	n := 0
	for _, it := range p.Inventory {
		if it.Type == ItemTypeConsumable {
			n++
		}
	}
	return n
}

// AutoEquip equips the item if its slot is empty or the item is a strict
// power upgrade over the current occupant. Ties do not replace.
// Returns true if the item was equipped. Consumables never equip.
func (p *Player) AutoEquip(item Item) bool {
	switch item.Type {
	case ItemTypeWeapon:
		if p.Equipped.Weapon == nil || item.Power > p.Equipped.Weapon.Power {
			it := item
			p.Equipped.Weapon = &it
			return true
		}
	case ItemTypeTrinket:
		if p.Equipped.Trinket == nil || item.Power > p.Equipped.Trinket.Power {
			it := item
			p.Equipped.Trinket = &it
			return true
		}
	}
	return false
}

// Unequip clears whichever slot currently holds the item with this ID.
func (p *Player) Unequip(itemID string) {
	if p.Equipped.Weapon != nil && p.Equipped.Weapon.ID == itemID {
		p.Equipped.Weapon = nil
	}
	if p.Equipped.Trinket != nil && p.Equipped.Trinket.ID == itemID {
		p.Equipped.Trinket = nil
	}
}
