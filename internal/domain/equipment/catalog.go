package equipment

// Item IDs
const (
	HealthPotion   = "health_potion"
	MagicScroll    = "magic_scroll"
	SharpSword     = "sharp_sword"
	SteelShield    = "steel_shield"
	MagicRing      = "magic_ring"
	LuckyCharm     = "lucky_charm"
	MythrilSword   = "mythril_sword"
	VitalityAmulet = "vitality_amulet"
)

// catalogOrder is the display order of the catalog
var catalogOrder = []string{
	HealthPotion,
	MagicScroll,
	SharpSword,
	SteelShield,
	MagicRing,
	LuckyCharm,
	MythrilSword,
	VitalityAmulet,
}

var catalog = map[string]Item{
	HealthPotion: {
		ID:          HealthPotion,
		Name:        "Health Potion",
		Description: "Restores 10 HP",
		Emoji:       "🧪",
		Cost:        10,
		Effects:     []Effect{{Kind: EffectHealing, Value: 10}},
		Consumable:  true,
	},
	MagicScroll: {
		ID:          MagicScroll,
		Name:        "Magic Scroll",
		Description: "Restores 5 MP",
		Emoji:       "📜",
		Cost:        15,
		Effects:     []Effect{{Kind: EffectMP, Value: 5}},
		Consumable:  true,
	},
	SharpSword: {
		ID:          SharpSword,
		Name:        "Sharp Sword",
		Description: "+2 attack damage",
		Emoji:       "⚔️",
		Cost:        100,
		Effects:     []Effect{{Kind: EffectDamage, Value: 2}},
	},
	SteelShield: {
		ID:          SteelShield,
		Name:        "Steel Shield",
		Description: "+1 defense",
		Emoji:       "🛡️",
		Cost:        80,
		Effects:     []Effect{{Kind: EffectDefense, Value: 1}},
	},
	MagicRing: {
		ID:          MagicRing,
		Name:        "Magic Ring",
		Description: "+5 max MP",
		Emoji:       "💍",
		Cost:        120,
		Effects:     []Effect{{Kind: EffectMaxMP, Value: 5}},
	},
	LuckyCharm: {
		ID:          LuckyCharm,
		Name:        "Lucky Charm",
		Description: "+1 reroll per turn",
		Emoji:       "🍀",
		Cost:        150,
		Effects:     []Effect{{Kind: EffectReroll, Value: 1}},
	},
	MythrilSword: {
		ID:          MythrilSword,
		Name:        "Mythril Sword",
		Description: "+3 attack damage",
		Emoji:       "🗡️",
		Cost:        180,
		Effects:     []Effect{{Kind: EffectDamage, Value: 3}},
	},
	VitalityAmulet: {
		ID:          VitalityAmulet,
		Name:        "Vitality Amulet",
		Description: "+10 max HP",
		Emoji:       "📿",
		Cost:        110,
		Effects:     []Effect{{Kind: EffectMaxHP, Value: 10}},
	},
}

// Lookup returns a fresh instance of the catalog item with the given ID
func Lookup(id string) (*Item, bool) {
	item, ok := catalog[id]
	if !ok {
		return nil, false
	}
	return item.Copy(), true
}

// MustLookup is Lookup for IDs known at compile time
func MustLookup(id string) *Item {
	item, ok := Lookup(id)
	if !ok {
		panic("unknown item: " + id)
	}
	return item
}

// All returns fresh instances of every catalog item in display order
func All() []*Item {
	items := make([]*Item, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		items = append(items, MustLookup(id))
	}
	return items
}

// MerchantPool returns the items a merchant can offer
func MerchantPool() []*Item {
	return All()
}

// Equippables returns the non-consumable catalog items
func Equippables() []*Item {
	var items []*Item
	for _, item := range All() {
		if !item.Consumable {
			items = append(items, item)
		}
	}
	return items
}
