package events

import (
	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/combat"
)

// EventType names a battle event
type EventType string

const (
	// EventTypeHandPlayed fires after a hand is played and before its effects
	// are applied. Listeners may adjust the effects.
	EventTypeHandPlayed EventType = "hand_played"

	EventTypePlayerTurnResolved  EventType = "player_turn_resolved"
	EventTypeMonsterTurnResolved EventType = "monster_turn_resolved"
	EventTypeBattleWon           EventType = "battle_won"
	EventTypeBattleLost          EventType = "battle_lost"
	EventTypeLevelUp             EventType = "level_up"
)

// AllEventTypes lists every event type in emit order of a round
var AllEventTypes = []EventType{
	EventTypeHandPlayed,
	EventTypePlayerTurnResolved,
	EventTypeMonsterTurnResolved,
	EventTypeBattleWon,
	EventTypeBattleLost,
	EventTypeLevelUp,
}

// Priority levels, lower runs first
const (
	PriorityPreCalculation  = 0
	PriorityEquipment       = 300
	PriorityTemporary       = 400
	PriorityPostCalculation = 500
)

// Event is anything emitted on the bus
type Event interface {
	GetType() EventType
	GetBattleID() string
	GetPlayer() *character.Player
	GetMonster() *combat.Monster
	IsCancelled() bool
	Cancel()
}

// BaseEvent carries the fields shared by every battle event
type BaseEvent struct {
	Type      EventType
	BattleID  string
	Player    *character.Player
	Monster   *combat.Monster
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType           { return e.Type }
func (e *BaseEvent) GetBattleID() string          { return e.BattleID }
func (e *BaseEvent) GetPlayer() *character.Player { return e.Player }
func (e *BaseEvent) GetMonster() *combat.Monster  { return e.Monster }
func (e *BaseEvent) IsCancelled() bool            { return e.Cancelled }
func (e *BaseEvent) Cancel()                      { e.Cancelled = true }

// HandPlayedEvent carries the effects about to be applied. Modifiers edit
// Effects in place; Base keeps what the dice alone produced.
type HandPlayedEvent struct {
	BaseEvent
	Base    dice.Effects
	Effects dice.Effects
}

// PlayerTurnResolvedEvent reports the applied player effects
type PlayerTurnResolvedEvent struct {
	BaseEvent
	Result combat.TurnResult
}

// MonsterTurnResolvedEvent reports the counter-attack
type MonsterTurnResolvedEvent struct {
	BaseEvent
	Attack  int
	Defense int
	Result  combat.MonsterTurnResult
}

// BattleWonEvent fires once rewards were granted
type BattleWonEvent struct {
	BaseEvent
	Rewards combat.Rewards
}

// BattleLostEvent fires when the player is defeated
type BattleLostEvent struct {
	BaseEvent
	Round int
}

// LevelUpEvent fires when a reward raised the player's level
type LevelUpEvent struct {
	BaseEvent
	Level int
}

// NewBaseEvent builds the shared fields for a battle
func NewBaseEvent(t EventType, b *combat.Battle) BaseEvent {
	return BaseEvent{
		Type:     t,
		BattleID: b.ID,
		Player:   b.Player,
		Monster:  b.Monster,
	}
}
