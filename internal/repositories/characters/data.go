package characters

import (
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
)

// PlayerData is the stored form of a player. Stats are stored as they are,
// so equipment effects are not applied again on load.
type PlayerData struct {
	ID         string     `json:"id"`
	OwnerID    string     `json:"owner_id"`
	Class      string     `json:"class"`
	HP         int        `json:"hp"`
	MaxHP      int        `json:"max_hp"`
	MP         int        `json:"mp"`
	MaxMP      int        `json:"max_mp"`
	Level      int        `json:"level"`
	Experience int        `json:"experience"`
	Gold       int        `json:"gold"`
	Inventory  []ItemData `json:"inventory"`
}

// ItemData is an owned item instance; the rest comes from the catalog
type ItemData struct {
	ID       string `json:"id"`
	Equipped bool   `json:"equipped,omitempty"`
}

// ToData converts a player for storage
func ToData(p *character.Player) *PlayerData {
	data := &PlayerData{
		ID:         p.ID,
		OwnerID:    p.OwnerID,
		Class:      string(p.Class),
		HP:         p.HP,
		MaxHP:      p.MaxHP,
		MP:         p.MP,
		MaxMP:      p.MaxMP,
		Level:      p.Level,
		Experience: p.Experience,
		Gold:       p.Gold,
		Inventory:  make([]ItemData, 0, len(p.Inventory)),
	}

	for _, item := range p.Inventory {
		data.Inventory = append(data.Inventory, ItemData{
			ID:       item.ID,
			Equipped: item.Equipped && !item.Consumable,
		})
	}

	return data
}

// FromData restores a player. Unknown item IDs are an error.
func FromData(data *PlayerData) (*character.Player, error) {
	p := &character.Player{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Class:      character.Class(data.Class),
		HP:         data.HP,
		MaxHP:      data.MaxHP,
		MP:         data.MP,
		MaxMP:      data.MaxMP,
		Level:      data.Level,
		Experience: data.Experience,
		Gold:       data.Gold,
	}

	for _, itemData := range data.Inventory {
		item, ok := equipment.Lookup(itemData.ID)
		if !ok {
			return nil, dnderr.Internalf("player '%s' holds unknown item '%s'", data.ID, itemData.ID).
				WithMeta("player_id", data.ID).
				WithMeta("item_id", itemData.ID)
		}
		item.Equipped = itemData.Equipped && !item.Consumable
		p.Inventory = append(p.Inventory, item)
	}

	return p, nil
}
