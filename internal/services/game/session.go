package game

import (
	"sync"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/combat"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	"github.com/KirkDiggler/dice-dungeon/internal/services/encounter"
	"github.com/KirkDiggler/dice-dungeon/internal/services/merchant"
)

// CommandType is a discrete user intent
type CommandType string

const (
	CommandEnterRoom        CommandType = "enter-room"
	CommandNextRoom         CommandType = "next-room"
	CommandReroll           CommandType = "reroll"
	CommandToggleLock       CommandType = "toggle-lock"
	CommandPlayHand         CommandType = "play-hand"
	CommandChooseRoomAction CommandType = "choose-room-action"
	CommandBuy              CommandType = "buy"
	CommandRerollOffers     CommandType = "reroll-offers"
	CommandUseItem          CommandType = "use-item"
	CommandEquip            CommandType = "equip"
	CommandUnequip          CommandType = "unequip"
)

// ChoiceLeave leaves a merchant or encounter room
const ChoiceLeave = encounter.ChoiceLeave

// Command is one user intent. Index addresses a die or an offer, ItemID an
// inventory item and Choice a room action.
type Command struct {
	Type   CommandType `json:"type"`
	Index  int         `json:"index,omitempty"`
	ItemID string      `json:"item_id,omitempty"`
	Choice string      `json:"choice,omitempty"`
}

// Outcome describes what a command did
type Outcome struct {
	Messages    []string
	RoomCleared bool
	Victory     bool
	Defeat      bool
}

func (o *Outcome) say(msg string) {
	if msg != "" {
		o.Messages = append(o.Messages, msg)
	}
}

// Session is one player's game: the player, the run and whatever room is
// open. Only one of Battle, Shop and Encounter is set at a time.
type Session struct {
	mu sync.Mutex

	OwnerID   string
	Player    *character.Player
	Run       *exploration.Run
	Battle    *combat.Battle
	Shop      *merchant.Shop
	Encounter *encounter.Encounter
}

// IsOver reports whether the run ended
func (s *Session) IsOver() bool {
	return s.Run == nil || !s.Run.IsActive()
}

// Room returns the kind of the current room
func (s *Session) Room() exploration.RoomKind {
	if s.Run == nil {
		return ""
	}
	return s.Run.Current()
}

func (s *Session) closeRoom() {
	s.Battle = nil
	s.Shop = nil
	s.Encounter = nil
}
