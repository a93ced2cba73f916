package loot

//go:generate mockgen -destination=mock/mock_service.go -package=mockloot -source=service.go

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
)

// Service defines the chest room service interface
type Service interface {
	// OpenChest draws one chest reward and grants it to the player
	OpenChest(ctx context.Context, player *character.Player) (*Reward, error)
}

// RewardKind is the category a chest draw produced
type RewardKind string

const (
	RewardGold RewardKind = "gold"
	RewardItem RewardKind = "item"
)

// Entry is one weighted line of a loot table. Gold entries grant a uniform
// amount in [GoldMin, GoldMax]; item entries grant a catalog item.
type Entry struct {
	Weight  int
	Kind    RewardKind
	GoldMin int
	GoldMax int
	ItemID  string
}

// ChestTable is the reward table of treasure rooms. Weights sum to 100.
var ChestTable = []Entry{
	{Weight: 40, Kind: RewardGold, GoldMin: 10, GoldMax: 30},
	{Weight: 25, Kind: RewardItem, ItemID: equipment.HealthPotion},
	{Weight: 20, Kind: RewardItem, ItemID: equipment.MagicScroll},
	{Weight: 8, Kind: RewardItem, ItemID: equipment.SteelShield},
	{Weight: 7, Kind: RewardItem, ItemID: equipment.SharpSword},
}

// Reward is what a chest granted
type Reward struct {
	Kind RewardKind
	Gold int
	Item *equipment.Item
}

func (r *Reward) String() string {
	if r.Kind == RewardGold {
		return fmt.Sprintf("💰 %d gold", r.Gold)
	}
	if r.Item == nil {
		return "nothing"
	}
	return r.Item.Label()
}

// TotalWeight sums the weights of a table
func TotalWeight(table []Entry) int {
	total := 0
	for _, e := range table {
		total += e.Weight
	}
	return total
}

// Pick draws one entry by cumulative weight: a single roll in [1, total]
// selects the first entry whose running weight reaches it.
func Pick(r dice.Roller, table []Entry) (Entry, bool) {
	total := TotalWeight(table)
	if total <= 0 {
		return Entry{}, false
	}

	draw := r.Roll(total)
	cumulative := 0
	for _, e := range table {
		cumulative += e.Weight
		if cumulative >= draw {
			return e, true
		}
	}
	return table[len(table)-1], true
}

type service struct {
	roller dice.Roller
	table  []Entry
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller // Required
	Table  []Entry     // Optional, defaults to ChestTable
}

// NewService creates a new loot service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Roller == nil {
		panic("roller is required")
	}

	svc := &service{
		roller: cfg.Roller,
		table:  cfg.Table,
	}
	if len(svc.table) == 0 {
		svc.table = ChestTable
	}

	return svc
}

// OpenChest draws one chest reward and grants it to the player
func (s *service) OpenChest(ctx context.Context, player *character.Player) (*Reward, error) {
	if player == nil {
		return nil, dnderr.InvalidArgument("player is required")
	}

	entry, ok := Pick(s.roller, s.table)
	if !ok {
		return nil, dnderr.Internal("loot table is empty")
	}

	reward := &Reward{Kind: entry.Kind}
	switch entry.Kind {
	case RewardGold:
		reward.Gold = dice.Between(s.roller, entry.GoldMin, entry.GoldMax)
		player.AddGold(reward.Gold)
	case RewardItem:
		item, found := equipment.Lookup(entry.ItemID)
		if !found {
			return nil, dnderr.Internalf("loot table references unknown item '%s'", entry.ItemID).
				WithMeta("item_id", entry.ItemID)
		}
		reward.Item = item
		player.AddItem(item)
	default:
		return nil, dnderr.Internalf("unknown reward kind '%s'", entry.Kind)
	}

	log.Printf("Player %s opened a chest: %s", player.ID, reward)
	return reward, nil
}
