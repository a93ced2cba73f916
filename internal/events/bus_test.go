package events_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/combat"
	"github.com/KirkDiggler/dice-dungeon/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handPlayed(player *character.Player, effects dice.Effects) *events.HandPlayedEvent {
	return &events.HandPlayedEvent{
		BaseEvent: events.BaseEvent{
			Type:     events.EventTypeHandPlayed,
			BattleID: "battle-1",
			Player:   player,
			Monster:  combat.NewMonster(combat.MonsterTemplates[0]),
		},
		Base:    effects,
		Effects: effects,
	}
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()
	var order []string

	for _, l := range []struct {
		id       string
		priority int
	}{{"low", 300}, {"high", 100}, {"medium", 200}} {
		id := l.id
		bus.Subscribe(events.EventTypeBattleWon, &testListener{
			id:       id,
			priority: l.priority,
			handler: func(events.Event) error {
				order = append(order, id)
				return nil
			},
		})
	}

	err := bus.Emit(&events.BattleWonEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeBattleWon}})
	require.NoError(t, err)

	assert.Equal(t, []string{"high", "medium", "low"}, order)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus()
	var secondRan bool

	bus.Subscribe(events.EventTypeHandPlayed, &testListener{id: "first", priority: 100, handler: func(e events.Event) error {
		e.Cancel()
		return nil
	}})
	bus.Subscribe(events.EventTypeHandPlayed, &testListener{id: "second", priority: 200, handler: func(events.Event) error {
		secondRan = true
		return nil
	}})

	event := handPlayed(character.NewPlayer(character.ClassKnight), dice.Effects{})
	require.NoError(t, bus.Emit(event))

	assert.False(t, secondRan)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerErrorAborts(t *testing.T) {
	bus := events.NewBus()
	bus.Subscribe(events.EventTypeLevelUp, &testListener{id: "broken", handler: func(events.Event) error {
		return errors.New("boom")
	}})

	err := bus.Emit(&events.LevelUpEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeLevelUp}})

	assert.ErrorContains(t, err, "listener broken failed on level_up")
}

func TestEventBus_SubscribeReplacesSameID(t *testing.T) {
	bus := events.NewBus()
	noop := func(events.Event) error { return nil }

	bus.Subscribe(events.EventTypeBattleLost, &testListener{id: "a", handler: noop})
	bus.Subscribe(events.EventTypeBattleLost, &testListener{id: "a", handler: noop})
	bus.Subscribe(events.EventTypeBattleLost, &testListener{id: "b", handler: noop})
	assert.Equal(t, 2, bus.ListenerCount(events.EventTypeBattleLost))

	bus.Unsubscribe(events.EventTypeBattleLost, "a")
	assert.Equal(t, 1, bus.ListenerCount(events.EventTypeBattleLost))

	bus.Clear()
	assert.Equal(t, 0, bus.ListenerCount(events.EventTypeBattleLost))
}

func TestEquipmentBonusModifier(t *testing.T) {
	player := character.NewPlayer(character.ClassKnight)
	player.AddItem(equipment.MustLookup(equipment.MythrilSword))
	player.AddItem(equipment.MustLookup(equipment.SteelShield))

	bus := events.NewBus()
	bus.Subscribe(events.EventTypeHandPlayed, events.NewEquipmentBonusModifier())

	tests := []struct {
		name string
		dice dice.Effects
		want dice.Effects
	}{
		{
			name: "attack and defense fired",
			dice: dice.Effects{Damage: 3, Defense: 3},
			want: dice.Effects{Damage: 6, Defense: 4},
		},
		{
			name: "nothing fired gets no bonus",
			dice: dice.Effects{Healing: 2},
			want: dice.Effects{Healing: 2},
		},
		{
			name: "immune defense is untouched",
			dice: dice.Effects{Defense: dice.ImmuneDefense},
			want: dice.Effects{Defense: dice.ImmuneDefense},
		},
		{
			name: "magic is not boosted",
			dice: dice.Effects{MagicDamage: 5, MagicCost: 3},
			want: dice.Effects{MagicDamage: 5, MagicCost: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := handPlayed(player, tt.dice)
			require.NoError(t, bus.Emit(event))
			assert.Equal(t, tt.want, event.Effects)
			assert.Equal(t, tt.dice, event.Base)
		})
	}
}

func TestLoggingListener_HandlesEveryEvent(t *testing.T) {
	bus := events.NewBus()
	bus.SubscribeAll(events.NewLoggingListener())

	player := character.NewPlayer(character.ClassMage)
	for _, e := range []events.Event{
		handPlayed(player, dice.Effects{Damage: 3}),
		&events.PlayerTurnResolvedEvent{BaseEvent: events.BaseEvent{Type: events.EventTypePlayerTurnResolved}},
		&events.MonsterTurnResolvedEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeMonsterTurnResolved}},
		&events.BattleWonEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeBattleWon}},
		&events.BattleLostEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeBattleLost}},
		&events.LevelUpEvent{BaseEvent: events.BaseEvent{Type: events.EventTypeLevelUp}},
	} {
		assert.NoError(t, bus.Emit(e), fmt.Sprintf("%s", e.GetType()))
	}
}

// Test helper: simple event listener
type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }
