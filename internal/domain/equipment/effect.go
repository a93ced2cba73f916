package equipment

// EffectKind tags what an item effect changes
type EffectKind string

const (
	EffectDamage  EffectKind = "damage"
	EffectDefense EffectKind = "defense"
	EffectHealing EffectKind = "healing"
	EffectMP      EffectKind = "mp"
	EffectMaxHP   EffectKind = "maxHp"
	EffectMaxMP   EffectKind = "maxMp"
	EffectReroll  EffectKind = "reroll"
)

// EffectKinds lists every known kind
var EffectKinds = []EffectKind{
	EffectDamage,
	EffectDefense,
	EffectHealing,
	EffectMP,
	EffectMaxHP,
	EffectMaxMP,
	EffectReroll,
}

// Valid reports whether k is a known effect kind
func (k EffectKind) Valid() bool {
	switch k {
	case EffectDamage, EffectDefense, EffectHealing, EffectMP, EffectMaxHP, EffectMaxMP, EffectReroll:
		return true
	}
	return false
}

// Reversible reports whether the kind is undone when an item is unequipped.
// Pool size changes are reversible; healing and mp restores are one-shot.
// Damage, defense and reroll are read through bonus lookups and never
// change stored stats.
func (k EffectKind) Reversible() bool {
	return k == EffectMaxHP || k == EffectMaxMP
}

// Effect is one numeric change carried by an item
type Effect struct {
	Kind  EffectKind `json:"kind"`
	Value int        `json:"value"`
}
