package events

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
)

// EquipmentBonusModifier layers equipped damage and defense bonuses onto a
// played hand. Bonuses only strengthen a combination that fired, and never
// touch an immune defense.
type EquipmentBonusModifier struct{}

// NewEquipmentBonusModifier creates the modifier
func NewEquipmentBonusModifier() *EquipmentBonusModifier {
	return &EquipmentBonusModifier{}
}

func (m *EquipmentBonusModifier) ID() string    { return "equipment-bonus" }
func (m *EquipmentBonusModifier) Priority() int { return PriorityEquipment }

func (m *EquipmentBonusModifier) HandleEvent(e Event) error {
	played, ok := e.(*HandPlayedEvent)
	if !ok {
		return nil
	}
	player := played.GetPlayer()
	if player == nil {
		return fmt.Errorf("hand played without a player")
	}

	if played.Effects.Damage > 0 {
		played.Effects.Damage += player.GetBonusForType(equipment.EffectDamage)
	}
	if played.Effects.Defense > 0 && !played.Effects.IsImmune() {
		played.Effects.Defense = min(dice.ImmuneDefense-1, played.Effects.Defense+player.GetBonusForType(equipment.EffectDefense))
	}

	return nil
}

// LoggingListener writes a line per battle event
type LoggingListener struct {
	logf func(format string, args ...any)
}

// NewLoggingListener logs through log.Printf
func NewLoggingListener() *LoggingListener {
	return &LoggingListener{logf: log.Printf}
}

func (l *LoggingListener) ID() string    { return "battle-logger" }
func (l *LoggingListener) Priority() int { return PriorityPostCalculation }

func (l *LoggingListener) HandleEvent(e Event) error {
	switch ev := e.(type) {
	case *HandPlayedEvent:
		l.logf("Battle %s: hand played %+v (dice %+v)", ev.BattleID, ev.Effects, ev.Base)
	case *PlayerTurnResolvedEvent:
		l.logf("Battle %s: player actions %v, monster defeated %t", ev.BattleID, ev.Result.Actions, ev.Result.MonsterDefeated)
	case *MonsterTurnResolvedEvent:
		l.logf("Battle %s: monster attacked %d vs defense %d for %d damage", ev.BattleID, ev.Attack, ev.Defense, ev.Result.Damage)
	case *BattleWonEvent:
		l.logf("Battle %s: won, +%d xp +%d gold", ev.BattleID, ev.Rewards.Experience, ev.Rewards.Gold)
	case *BattleLostEvent:
		l.logf("Battle %s: lost in round %d", ev.BattleID, ev.Round)
	case *LevelUpEvent:
		l.logf("Battle %s: player reached level %d", ev.BattleID, ev.Level)
	}
	return nil
}

// NewBattleBus creates a bus with the equipment modifier subscribed and,
// when logging is set, the battle logger on every event type
func NewBattleBus(logging bool) *Bus {
	bus := NewBus()
	bus.Subscribe(EventTypeHandPlayed, NewEquipmentBonusModifier())
	if logging {
		bus.SubscribeAll(NewLoggingListener())
	}
	return bus
}
