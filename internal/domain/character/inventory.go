package character

import "github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"

// AddItem stores a copy of item. Non-consumable items are equipped at once.
func (p *Player) AddItem(item *equipment.Item) {
	if item == nil {
		return
	}

	owned := item.Copy()
	owned.Equipped = false
	p.Inventory = append(p.Inventory, owned)

	if !owned.Consumable {
		p.equip(owned)
	}
}

// EquipItem equips the first unequipped instance of id. It is a no-op when
// the item is absent, consumable or every instance is already equipped.
func (p *Player) EquipItem(id string) bool {
	for _, item := range p.Inventory {
		if item.ID != id || item.Consumable || item.Equipped {
			continue
		}
		p.equip(item)
		return true
	}
	return false
}

// UnequipItem unequips the first equipped instance of id and reverses its
// pool effects, clamping HP and MP to the lowered maxima.
func (p *Player) UnequipItem(id string) bool {
	for _, item := range p.Inventory {
		if item.ID != id || !item.Equipped {
			continue
		}
		p.unequip(item)
		return true
	}
	return false
}

// UseItem consumes one instance of a consumable item
func (p *Player) UseItem(id string) bool {
	for i, item := range p.Inventory {
		if item.ID != id || !item.Consumable {
			continue
		}
		p.applyEffects(item.Effects)
		p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		return true
	}
	return false
}

// GetBonusForType sums kind across every equipped item
func (p *Player) GetBonusForType(kind equipment.EffectKind) int {
	total := 0
	for _, item := range p.Inventory {
		if item.Equipped {
			total += item.Bonus(kind)
		}
	}
	return total
}

// EquippedItems returns the equipped instances
func (p *Player) EquippedItems() []*equipment.Item {
	var items []*equipment.Item
	for _, item := range p.Inventory {
		if item.Equipped {
			items = append(items, item)
		}
	}
	return items
}

// Consumables returns the consumable instances in inventory order
func (p *Player) Consumables() []*equipment.Item {
	var items []*equipment.Item
	for _, item := range p.Inventory {
		if item.Consumable {
			items = append(items, item)
		}
	}
	return items
}

// HasItem reports whether any instance of id is owned
func (p *Player) HasItem(id string) bool {
	for _, item := range p.Inventory {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (p *Player) equip(item *equipment.Item) {
	item.Equipped = true
	p.applyEffects(item.Effects)
}

func (p *Player) unequip(item *equipment.Item) {
	item.Equipped = false
	for _, e := range item.Effects {
		switch e.Kind {
		case equipment.EffectMaxHP:
			p.MaxHP -= e.Value
			p.HP = min(p.HP, p.MaxHP)
		case equipment.EffectMaxMP:
			p.MaxMP -= e.Value
			p.MP = min(p.MP, p.MaxMP)
		}
	}
}

// applyEffects applies each effect once. Damage, defense and reroll are
// read through GetBonusForType while equipped and change nothing here.
func (p *Player) applyEffects(effects []equipment.Effect) {
	for _, e := range effects {
		switch e.Kind {
		case equipment.EffectHealing:
			p.Heal(e.Value)
		case equipment.EffectMP:
			p.RestoreMP(e.Value)
		case equipment.EffectMaxHP:
			p.RaiseMaxHP(e.Value)
		case equipment.EffectMaxMP:
			p.MaxMP += e.Value
			p.MP += e.Value
		case equipment.EffectDamage, equipment.EffectDefense, equipment.EffectReroll:
		}
	}
}
