package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tradi3/chatquest/internal/domain"
	"github.com/tradi3/chatquest/internal/item"
	"github.com/tradi3/chatquest/internal/logger"
	"github.com/tradi3/chatquest/internal/metrics"
	"github.com/tradi3/chatquest/internal/storage"
)

// Service runs the season shop: buying from the fixed stock and selling
// owned items back.
type Service interface {
	Buy(ctx context.Context, channel, user, key string) (string, error)
	Sell(ctx context.Context, channel, user, itemID string) (string, error)
}

type service struct {
	store   storage.Store
	catalog *item.Catalog
	newID   func() string
}

// NewService creates a shop service over the season catalog.
func NewService(store storage.Store, catalog *item.Catalog) Service {
	return &service{store: store, catalog: catalog, newID: uuid.NewString}
}

// NewServiceWithIDs creates a shop service with an explicit item id
// generator (tests).
func NewServiceWithIDs(store storage.Store, catalog *item.Catalog, newID func() string) Service {
	return &service{store: store, catalog: catalog, newID: newID}
}

func (s *service) Buy(ctx context.Context, channel, user, key string) (string, error) {
	log := logger.FromContext(ctx)

	stock := s.catalog.FindStock(key)
	if stock == nil {
		metrics.RecordCommand(CommandBuy, metrics.OutcomeBlocked)
		return fmt.Sprintf(MsgUnknownItem, user), domain.ErrItemNotFound
	}

	var reply string
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		p := snap.Player(channel, user)

		if stock.Type != domain.ItemTypeConsumable && p.Level < stock.LevelReq {
			reply = fmt.Sprintf(MsgLevelTooLow, user, stock.LevelReq, stock.Name, p.Level)
			return domain.ErrLevelTooLow
		}
		if stock.Type == domain.ItemTypeConsumable && p.ConsumableCount() >= domain.MaxConsumablesCarried {
			reply = fmt.Sprintf(MsgConsumableCap, user, domain.MaxConsumablesCarried)
			return domain.ErrConsumableCap
		}
		if p.Coins < stock.Price {
			reply = fmt.Sprintf(MsgCantAfford, user, stock.Name, stock.Price, p.Coins)
			return domain.ErrInsufficientFunds
		}

		p.Coins -= stock.Price
		bought := domain.Item{
			ID:     s.newID(),
			Name:   stock.Name,
			Type:   stock.Type,
			Rarity: stock.Rarity,
			Power:  stock.Power,
			Heal:   stock.Heal,
			Price:  stock.Price,
		}
		p.Inventory = append(p.Inventory, bought)

		reply = fmt.Sprintf(MsgBought, user, bought.Name, stock.Price, p.Coins)
		if bought.Type != domain.ItemTypeConsumable && p.AutoEquip(bought) {
			reply += fmt.Sprintf(MsgBoughtEquipped, bought.Type)
		}

		log.Info("Item bought", "user", user, "channel", channel, "item", key, "price", stock.Price)
		return nil
	})

	if err != nil {
		if domain.IsPrecondition(err) {
			metrics.RecordCommand(CommandBuy, metrics.OutcomeBlocked)
			return reply, nil
		}
		metrics.RecordCommand(CommandBuy, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgBuyFailed, err)
	}

	metrics.ItemsBought.WithLabelValues(key).Inc()
	metrics.RecordCommand(CommandBuy, metrics.OutcomeSuccess)
	return reply, nil
}

func (s *service) Sell(ctx context.Context, channel, user, itemID string) (string, error) {
	log := logger.FromContext(ctx)

	var reply, soldName string
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		p := snap.Player(channel, user)

		idx := -1
		for i := range p.Inventory {
			if p.Inventory[i].ID == itemID {
				idx = i
				break
			}
		}
		if idx == -1 {
			reply = fmt.Sprintf(MsgNotInInventory, user)
			return domain.ErrNotInInventory
		}

		sold := p.Inventory[idx]
		value := SellValue(sold)

		p.Inventory = append(p.Inventory[:idx], p.Inventory[idx+1:]...)
		p.Unequip(sold.ID)
		p.Coins += value

		soldName = sold.Name
		reply = fmt.Sprintf(MsgSold, user, sold.Name, value, p.Coins)
		log.Info("Item sold", "user", user, "channel", channel, "item", sold.Name, "value", value)
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrNotInInventory) {
			metrics.RecordCommand(CommandSell, metrics.OutcomeBlocked)
			return reply, err
		}
		metrics.RecordCommand(CommandSell, metrics.OutcomeError)
		return "", fmt.Errorf(ErrMsgSellFailed, err)
	}

	metrics.ItemsSold.WithLabelValues(soldName).Inc()
	metrics.RecordCommand(CommandSell, metrics.OutcomeSuccess)
	return reply, nil
}
