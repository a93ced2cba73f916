package character

import "github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"

// Class is the character class picked at creation. It never changes.
type Class string

const (
	ClassKnight   Class = "knight"
	ClassMage     Class = "mage"
	ClassSorcerer Class = "sorcerer"
)

// ClassInfo holds the starting package for a class
type ClassInfo struct {
	Class         Class
	Name          string
	Emoji         string
	Description   string
	MaxHP         int
	MaxMP         int
	Gold          int
	StartingItems []string
}

var classes = map[Class]ClassInfo{
	ClassKnight: {
		Class:         ClassKnight,
		Name:          "Knight",
		Emoji:         "⚔️",
		Description:   "A sturdy warrior with high HP. Specializes in defensive abilities.",
		MaxHP:         25,
		MaxMP:         5,
		Gold:          15,
		StartingItems: []string{equipment.HealthPotion},
	},
	ClassMage: {
		Class:         ClassMage,
		Name:          "Mage",
		Emoji:         "🔮",
		Description:   "A powerful spellcaster with high MP. Excels at magical attacks.",
		MaxHP:         15,
		MaxMP:         15,
		Gold:          10,
		StartingItems: []string{equipment.MagicScroll},
	},
	ClassSorcerer: {
		Class:       ClassSorcerer,
		Name:        "Sorcerer",
		Emoji:       "🎭",
		Description: "A balanced character with unique abilities.",
		MaxHP:       20,
		MaxMP:       10,
		Gold:        20,
	},
}

// Classes lists the playable classes in menu order
var Classes = []Class{ClassKnight, ClassMage, ClassSorcerer}

// Info returns the starting package for the class
func (c Class) Info() (ClassInfo, bool) {
	info, ok := classes[c]
	return info, ok
}

// Valid reports whether c is a playable class
func (c Class) Valid() bool {
	_, ok := classes[c]
	return ok
}

// Name returns the display name, or the raw value for unknown classes
func (c Class) Name() string {
	if info, ok := classes[c]; ok {
		return info.Name
	}
	return string(c)
}
