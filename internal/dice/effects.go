package dice

import (
	"fmt"
	"strings"
)

const (
	// ImmuneDefense is the defense value granted by five Defense faces. It
	// cancels any incoming attack.
	ImmuneDefense = 999

	// FullHeal is the healing value granted by five Health faces. The consumer
	// resolves it to the gap between current and maximum HP.
	FullHeal = -1
)

// Effects is the combat outcome of a hand. The four categories are independent
// and may all fire at once.
type Effects struct {
	Damage      int `json:"damage"`
	Defense     int `json:"defense"`
	MagicDamage int `json:"magic_damage"`
	MagicCost   int `json:"magic_cost"`
	Healing     int `json:"healing"`
}

// Threshold tables, indexed by face count (0-5)
var (
	attackDamage  = [HandSize + 1]int{0, 0, 0, 3, 5, 8}
	defenseValue  = [HandSize + 1]int{0, 0, 0, 3, 5, ImmuneDefense}
	magicDamage   = [HandSize + 1]int{0, 0, 3, 5, 8, 12}
	magicCost     = [HandSize + 1]int{0, 0, 2, 3, 5, 8}
	healingAmount = [HandSize + 1]int{0, 0, 2, 4, 6, FullHeal}
)

// CalculateEffects derives the effects of a set of faces. Only the count of
// each face matters, never the order.
func CalculateEffects(faces []Face) Effects {
	counts := make(map[Face]int, faceCount)
	for _, f := range faces {
		if f.Valid() {
			counts[f]++
		}
	}

	return Effects{
		Damage:      lookup(attackDamage, counts[FaceAttack]),
		Defense:     lookup(defenseValue, counts[FaceDefense]),
		MagicDamage: lookup(magicDamage, counts[FaceMagic]),
		MagicCost:   lookup(magicCost, counts[FaceMagic]),
		Healing:     lookup(healingAmount, counts[FaceHealth]),
	}
}

func lookup(table [HandSize + 1]int, count int) int {
	if count < 0 || count >= len(table) {
		return 0
	}
	return table[count]
}

// IsImmune reports whether the hand cancels the next monster attack
func (e Effects) IsImmune() bool {
	return e.Defense >= ImmuneDefense
}

// IsFullHeal reports whether healing carries the full heal sentinel
func (e Effects) IsFullHeal() bool {
	return e.Healing == FullHeal
}

// IsEmpty reports whether no combination fired
func (e Effects) IsEmpty() bool {
	return e == Effects{}
}

// Preview renders the effects one per line for display
func (e Effects) Preview() string {
	var lines []string

	if e.Damage > 0 {
		lines = append(lines, fmt.Sprintf("Attack: %d damage", e.Damage))
	}
	if e.Defense > 0 {
		if e.IsImmune() {
			lines = append(lines, "Defense: Immune")
		} else {
			lines = append(lines, fmt.Sprintf("Defense: %d", e.Defense))
		}
	}
	if e.MagicDamage > 0 {
		lines = append(lines, fmt.Sprintf("Magic: %d damage (%d MP)", e.MagicDamage, e.MagicCost))
	}
	if e.IsFullHeal() {
		lines = append(lines, "Heal: Full")
	} else if e.Healing > 0 {
		lines = append(lines, fmt.Sprintf("Heal: %d", e.Healing))
	}

	return strings.Join(lines, "\n")
}
