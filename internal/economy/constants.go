package economy

// Command names for metrics
const (
	CommandBuy  = "shop_buy"
	CommandSell = "shop_sell"
)

// Sell pricing: resale pays half of the item's worth (purchase price when
// known, otherwise a rarity base) plus a power premium, never below the
// floor.
const (
	SellPowerPremium = 5
	SellRatio        = 0.5
	SellFloor        = 10
)

// Chat message formats
const (
	MsgBought         = "%s bought %s for %d coins. (Coins left: %d)"
	MsgBoughtEquipped = " Equipped as %s."
	MsgSold           = "%s sold %s for %d coins. (Coins: %d)"
	MsgUnknownItem    = "%s, the shop doesn't stock that. Check the season catalog."
	MsgLevelTooLow    = "%s, you need Site LVL %d for %s. (You: LVL %d)"
	MsgConsumableCap  = "%s, you can only carry %d First Aid Kits. Use one first."
	MsgCantAfford     = "%s, %s costs %d coins. Pay: %d."
	MsgNotInInventory = "%s, that item isn't in your toolbelt."
)

// Error message constants
const (
	ErrMsgBuyFailed  = "shop buy failed: %w"
	ErrMsgSellFailed = "shop sell failed: %w"
)
