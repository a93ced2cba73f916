package dungeon

import (
	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
)

const (
	// DefaultLength is the number of rooms in a run
	DefaultLength = 10

	// MinLength is the shortest dungeon that still fits an encounter ahead
	// of the closing merchant and boss rooms
	MinLength = 4

	chestThreshold    = 35
	merchantThreshold = 85
)

// Generate builds the room sequence of one run. The last two rooms are
// always a merchant then the boss. Exactly one encounter sits in the
// preceding rooms, and a chest or merchant is always followed by a monster.
func Generate(r dice.Roller, length int) []exploration.RoomKind {
	if length < MinLength {
		length = MinLength
	}

	slots := length - 2
	rooms := make([]exploration.RoomKind, 0, length)
	placed := false

	for i := 0; i < slots; i++ {
		if !placed && 2*i >= length && i < length-3 {
			rooms = append(rooms, exploration.RoomKindEncounter)
			placed = true
			continue
		}

		if i > 0 {
			if prev := rooms[i-1]; prev == exploration.RoomKindChest || prev == exploration.RoomKindMerchant {
				rooms = append(rooms, exploration.RoomKindMonster)
				continue
			}
		}

		rooms = append(rooms, weightedRoom(dice.Percent(r)))
	}

	if !placed {
		rooms[dice.Index(r, length-3)] = exploration.RoomKindEncounter
	}

	return append(rooms, exploration.RoomKindMerchant, exploration.RoomKindBoss)
}

func weightedRoom(roll int) exploration.RoomKind {
	switch {
	case roll < chestThreshold:
		return exploration.RoomKindChest
	case roll < merchantThreshold:
		return exploration.RoomKindMonster
	default:
		return exploration.RoomKindMerchant
	}
}
