package merchant

//go:generate mockgen -destination=mock/mock_service.go -package=mockmerchant -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
)

// OfferCount is how many items a merchant shows at once
const OfferCount = 3

// RerollCosts is the gold price of consecutive offer rerolls. Once the list
// is exhausted the last price repeats.
var RerollCosts = []int{10, 25, 50, 75, 100}

// RerollCost returns the price of the reroll after n previous rerolls
func RerollCost(n int) int {
	if n < 0 {
		n = 0
	}
	if n >= len(RerollCosts) {
		return RerollCosts[len(RerollCosts)-1]
	}
	return RerollCosts[n]
}

// Service defines the merchant room service interface
type Service interface {
	// OpenShop draws the first set of offers for a merchant room
	OpenShop(ctx context.Context) (*Shop, error)

	// Buy purchases the offer at index if the player can pay for it
	Buy(ctx context.Context, shop *Shop, player *character.Player, index int) (*Purchase, error)

	// RerollOffers pays the escalating price and replaces every offer
	RerollOffers(ctx context.Context, shop *Shop, player *character.Player) (*Reroll, error)
}

// Offer is one item on the merchant's table
type Offer struct {
	Item *equipment.Item
	Sold bool
}

// Shop is the state of one merchant room
type Shop struct {
	Offers  []*Offer
	Rerolls int
}

// NextRerollCost is the price of the next offer reroll
func (s *Shop) NextRerollCost() int {
	return RerollCost(s.Rerolls)
}

// PurchaseStatus explains the outcome of a buy attempt
type PurchaseStatus string

const (
	PurchaseBought       PurchaseStatus = "bought"
	PurchaseSoldOut      PurchaseStatus = "sold_out"
	PurchaseTooExpensive PurchaseStatus = "too_expensive"
	PurchaseNoSuchOffer  PurchaseStatus = "no_such_offer"
)

// Purchase is the result of a buy attempt
type Purchase struct {
	Status PurchaseStatus
	Item   *equipment.Item
}

// Bought reports whether the item changed hands
func (p *Purchase) Bought() bool {
	return p.Status == PurchaseBought
}

// Reroll is the result of an offer reroll attempt
type Reroll struct {
	Rerolled bool
	Cost     int
	NextCost int
}

type service struct {
	roller dice.Roller
	pool   func() []*equipment.Item
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller              // Required
	Pool   func() []*equipment.Item // Optional, defaults to equipment.MerchantPool
}

// NewService creates a new merchant service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		roller: cfg.Roller,
		pool:   cfg.Pool,
	}
	if svc.pool == nil {
		svc.pool = equipment.MerchantPool
	}

	return svc
}

// OpenShop draws the first set of offers
func (s *service) OpenShop(ctx context.Context) (*Shop, error) {
	return &Shop{Offers: s.drawOffers()}, nil
}

// Buy purchases one offer. Gold and the item move together or not at all.
func (s *service) Buy(ctx context.Context, shop *Shop, player *character.Player, index int) (*Purchase, error) {
	if shop == nil {
		return nil, dnderr.InvalidArgument("shop is required")
	}
	if player == nil {
		return nil, dnderr.InvalidArgument("player is required")
	}

	if index < 0 || index >= len(shop.Offers) {
		return &Purchase{Status: PurchaseNoSuchOffer}, nil
	}

	offer := shop.Offers[index]
	if offer.Sold {
		return &Purchase{Status: PurchaseSoldOut, Item: offer.Item}, nil
	}
	if !player.SpendGold(offer.Item.Cost) {
		return &Purchase{Status: PurchaseTooExpensive, Item: offer.Item}, nil
	}

	player.AddItem(offer.Item)
	offer.Sold = true

	log.Printf("Player %s bought %s for %d gold", player.ID, offer.Item.Name, offer.Item.Cost)
	return &Purchase{Status: PurchaseBought, Item: offer.Item}, nil
}

// RerollOffers replaces every offer, sold or not, with a fresh draw
func (s *service) RerollOffers(ctx context.Context, shop *Shop, player *character.Player) (*Reroll, error) {
	if shop == nil {
		return nil, dnderr.InvalidArgument("shop is required")
	}
	if player == nil {
		return nil, dnderr.InvalidArgument("player is required")
	}

	cost := shop.NextRerollCost()
	if !player.SpendGold(cost) {
		return &Reroll{Cost: cost, NextCost: cost}, nil
	}

	shop.Rerolls++
	shop.Offers = s.drawOffers()

	return &Reroll{Rerolled: true, Cost: cost, NextCost: shop.NextRerollCost()}, nil
}

// drawOffers shuffles the pool and keeps the first OfferCount items
func (s *service) drawOffers() []*Offer {
	pool := s.pool()
	dice.Shuffle(s.roller, len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := min(OfferCount, len(pool))
	offers := make([]*Offer, 0, n)
	for _, item := range pool[:n] {
		offers = append(offers, &Offer{Item: item})
	}
	return offers
}
