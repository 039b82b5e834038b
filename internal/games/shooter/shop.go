package shooter

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var (
	// ErrInsufficientCoins is returned when the balance is below an item's cost.
	ErrInsufficientCoins = errors.New("shooter: not enough coins")
	// ErrUnknownItem is returned for an item id the shop does not sell.
	ErrUnknownItem = errors.New("shooter: unknown shop item")
)

// Shop feedback messages.
const (
	MsgPurchaseOK = "Purchase successful!"
	MsgNoCoins    = "Not enough coins!"
)

// Item is one purchasable upgrade.
type Item struct {
	ID          string
	Cost        int
	Amount      int
	Description string
}

// Label is the line shown in the shop list.
func (it Item) Label() string {
	return fmt.Sprintf("%s - %d coins", it.Description, it.Cost)
}

// Loadout is everything a purchase may touch: the ship, the session
// weapon and the coin balance.
type Loadout struct {
	Player *Player
	Weapon *Weapon
	Coins  int
}

// Shop sells upgrades in a fixed order.
type Shop struct {
	items []Item
	index map[string]int
}

// NewShop builds a shop from config, keeping the configured order.
func NewShop(cfg config.ShopConfig) *Shop {
	s := &Shop{
		items: make([]Item, 0, len(cfg.Items)),
		index: make(map[string]int, len(cfg.Items)),
	}
	for _, ic := range cfg.Items {
		s.index[ic.ID] = len(s.items)
		s.items = append(s.items, Item{
			ID:          ic.ID,
			Cost:        ic.Cost,
			Amount:      ic.Amount,
			Description: ic.Description,
		})
	}
	return s
}

// Items returns the catalogue in display order.
func (s *Shop) Items() []Item {
	return s.items
}

// Item looks up an item by id.
func (s *Shop) Item(id string) (Item, bool) {
	i, ok := s.index[id]
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}

// Purchase debits the item's cost and applies its effect in one step.
// On error nothing in the loadout changes.
func (s *Shop) Purchase(id string, l *Loadout) error {
	it, ok := s.Item(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if l.Coins < it.Cost {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientCoins, l.Coins, it.Cost)
	}

	switch it.ID {
	case config.ItemHealthUpgrade:
		l.Player.MaxHP += it.Amount
		l.Player.HP += it.Amount
	case config.ItemPowerBullet:
		l.Weapon.Damage += it.Amount
	case config.ItemRapidFire:
		l.Player.ShootDelay -= it.Amount
	case config.ItemSpeedUpgrade:
		l.Player.Speed += it.Amount
	default:
		return fmt.Errorf("%w: %q has no effect", ErrUnknownItem, id)
	}
	l.Coins -= it.Cost
	return nil
}
