package merchant_test

import (
	"context"
	"testing"

	mockdice "github.com/KirkDiggler/dice-dungeon/internal/dice/mock"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/KirkDiggler/dice-dungeon/internal/services/merchant"
	"github.com/stretchr/testify/suite"
)

type MerchantServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	roller  *mockdice.ManualMockRoller
	service merchant.Service
	player  *character.Player
}

func (s *MerchantServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = mockdice.NewManualMockRoller()
	// a maximal roll keeps every element in place during the shuffle
	s.roller.SetFallback(100)
	s.service = merchant.NewService(&merchant.ServiceConfig{Roller: s.roller})
	s.player = character.NewPlayer(character.ClassSorcerer)
}

func TestMerchantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MerchantServiceTestSuite))
}

func (s *MerchantServiceTestSuite) offerIDs(shop *merchant.Shop) []string {
	ids := make([]string, 0, len(shop.Offers))
	for _, o := range shop.Offers {
		ids = append(ids, o.Item.ID)
	}
	return ids
}

func (s *MerchantServiceTestSuite) TestOpenShop_ThreeDistinctOffers() {
	s.roller.SetNextRoll(1)

	shop, err := s.service.OpenShop(s.ctx)

	s.Require().NoError(err)
	s.Equal([]string{equipment.VitalityAmulet, equipment.MagicScroll, equipment.SharpSword}, s.offerIDs(shop))
	s.Equal(10, shop.NextRerollCost())
}

func (s *MerchantServiceTestSuite) TestBuy_DeductsGoldAndGrantsItem() {
	shop, _ := s.service.OpenShop(s.ctx)

	purchase, err := s.service.Buy(s.ctx, shop, s.player, 0)

	s.Require().NoError(err)
	s.True(purchase.Bought())
	s.Equal(10, s.player.Gold)
	s.True(s.player.HasItem(equipment.HealthPotion))
	s.True(shop.Offers[0].Sold)
}

func (s *MerchantServiceTestSuite) TestBuy_ExactGold() {
	shop, _ := s.service.OpenShop(s.ctx)
	s.player.Gold = 100

	purchase, err := s.service.Buy(s.ctx, shop, s.player, 2)

	s.Require().NoError(err)
	s.True(purchase.Bought())
	s.Equal(0, s.player.Gold)
	s.Equal(2, s.player.GetBonusForType(equipment.EffectDamage), "weapons are equipped on purchase")
}

func (s *MerchantServiceTestSuite) TestBuy_TooExpensiveChangesNothing() {
	shop, _ := s.service.OpenShop(s.ctx)

	purchase, err := s.service.Buy(s.ctx, shop, s.player, 2)

	s.Require().NoError(err)
	s.Equal(merchant.PurchaseTooExpensive, purchase.Status)
	s.Equal(20, s.player.Gold)
	s.False(s.player.HasItem(equipment.SharpSword))
	s.False(shop.Offers[2].Sold)
}

func (s *MerchantServiceTestSuite) TestBuy_SoldOfferCannotBeBoughtTwice() {
	shop, _ := s.service.OpenShop(s.ctx)
	s.player.Gold = 50
	_, _ = s.service.Buy(s.ctx, shop, s.player, 1)

	purchase, err := s.service.Buy(s.ctx, shop, s.player, 1)

	s.Require().NoError(err)
	s.Equal(merchant.PurchaseSoldOut, purchase.Status)
	s.Equal(35, s.player.Gold)
}

func (s *MerchantServiceTestSuite) TestBuy_NoSuchOffer() {
	shop, _ := s.service.OpenShop(s.ctx)

	purchase, err := s.service.Buy(s.ctx, shop, s.player, 3)

	s.Require().NoError(err)
	s.Equal(merchant.PurchaseNoSuchOffer, purchase.Status)
}

func (s *MerchantServiceTestSuite) TestBuy_RequiresShopAndPlayer() {
	shop, _ := s.service.OpenShop(s.ctx)

	_, err := s.service.Buy(s.ctx, nil, s.player, 0)
	s.True(dnderr.IsInvalidArgument(err))

	_, err = s.service.Buy(s.ctx, shop, nil, 0)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *MerchantServiceTestSuite) TestRerollOffers_CostEscalatesAndCaps() {
	shop, _ := s.service.OpenShop(s.ctx)
	s.player.Gold = 1000

	var costs []int
	for range 6 {
		result, err := s.service.RerollOffers(s.ctx, shop, s.player)
		s.Require().NoError(err)
		s.True(result.Rerolled)
		costs = append(costs, result.Cost)
	}

	s.Equal([]int{10, 25, 50, 75, 100, 100}, costs)
	s.Equal(640, s.player.Gold)
	s.Equal(6, shop.Rerolls)
}

func (s *MerchantServiceTestSuite) TestRerollOffers_ReplacesSoldOffers() {
	shop, _ := s.service.OpenShop(s.ctx)
	s.player.Gold = 100
	_, _ = s.service.Buy(s.ctx, shop, s.player, 0)

	s.roller.SetNextRoll(1)
	_, err := s.service.RerollOffers(s.ctx, shop, s.player)

	s.Require().NoError(err)
	s.Equal(equipment.VitalityAmulet, shop.Offers[0].Item.ID)
	for _, o := range shop.Offers {
		s.False(o.Sold)
	}
}

func (s *MerchantServiceTestSuite) TestRerollOffers_UnaffordableIsIgnored() {
	shop, _ := s.service.OpenShop(s.ctx)
	s.player.Gold = 9
	before := s.offerIDs(shop)

	result, err := s.service.RerollOffers(s.ctx, shop, s.player)

	s.Require().NoError(err)
	s.False(result.Rerolled)
	s.Equal(10, result.NextCost)
	s.Equal(9, s.player.Gold)
	s.Equal(before, s.offerIDs(shop))
	s.Equal(0, shop.Rerolls)
}

func (s *MerchantServiceTestSuite) TestRerollCost() {
	s.Equal(10, merchant.RerollCost(-1))
	s.Equal(75, merchant.RerollCost(3))
	s.Equal(100, merchant.RerollCost(40))
}
