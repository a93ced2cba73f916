package simulate_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	mockdice "github.com/KirkDiggler/dice-dungeon/internal/dice/mock"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/combat"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	"github.com/KirkDiggler/dice-dungeon/internal/services/encounter"
	"github.com/KirkDiggler/dice-dungeon/internal/services/game"
	"github.com/KirkDiggler/dice-dungeon/internal/services/merchant"
	"github.com/KirkDiggler/dice-dungeon/internal/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(state exploration.RunState) *game.Session {
	return &game.Session{
		OwnerID: "sim",
		Player:  character.NewPlayer(character.ClassSorcerer),
		Run: &exploration.Run{
			ID:    "run",
			State: state,
			Rooms: []exploration.RoomKind{exploration.RoomKindMonster, exploration.RoomKindBoss},
		},
	}
}

func withBattle(sess *game.Session, faces ...dice.Face) *game.Session {
	roller := mockdice.NewManualMockRoller(1)
	roller.SetFaces(faces...)
	sess.Battle = combat.NewBattle(sess.Player, combat.NewMonster(combat.MonsterTemplates[0]), roller)
	return sess
}

func TestGreedy_MovesBetweenRooms(t *testing.T) {
	policy := simulate.Greedy{}

	assert.Equal(t, game.CommandEnterRoom, policy.Next(session(exploration.RunStateRoomReady)).Type)
	assert.Equal(t, game.CommandNextRoom, policy.Next(session(exploration.RunStateRoomCleared)).Type)
}

func TestGreedy_LocksMostCommonFace(t *testing.T) {
	sess := withBattle(session(exploration.RunStateInProgress),
		dice.FaceHealth, dice.FaceDefense, dice.FaceDefense, dice.FaceAttack, dice.FaceDefense)
	policy := simulate.Greedy{}

	assert.Equal(t, game.Command{Type: game.CommandToggleLock, Index: 1}, policy.Next(sess))

	sess.Battle.ToggleLock(1)
	sess.Battle.ToggleLock(2)
	sess.Battle.ToggleLock(4)
	assert.Equal(t, game.Command{Type: game.CommandReroll}, policy.Next(sess))

	sess.Battle.RerollsLeft = 0
	assert.Equal(t, game.Command{Type: game.CommandPlayHand}, policy.Next(sess))
}

func TestGreedy_PlaysFullHand(t *testing.T) {
	sess := withBattle(session(exploration.RunStateInProgress),
		dice.FaceAttack, dice.FaceAttack, dice.FaceAttack, dice.FaceAttack, dice.FaceAttack)
	for i := 0; i < dice.HandSize; i++ {
		sess.Battle.ToggleLock(i)
	}

	assert.Equal(t, game.CommandPlayHand, simulate.Greedy{}.Next(sess).Type)
}

func TestGreedy_SkipsMagicWithoutMP(t *testing.T) {
	sess := withBattle(session(exploration.RunStateInProgress),
		dice.FaceMagic, dice.FaceMagic, dice.FaceMagic, dice.FaceAttack, dice.FaceHealth)
	sess.Player.MP = 1

	assert.Equal(t, game.Command{Type: game.CommandToggleLock, Index: 3}, simulate.Greedy{}.Next(sess))
}

func TestGreedy_DrinksPotionWhenLow(t *testing.T) {
	sess := session(exploration.RunStateInProgress)
	sess.Player.AddItem(equipment.MustLookup(equipment.HealthPotion))
	withBattle(sess, dice.FaceAttack, dice.FaceAttack, dice.FaceAttack, dice.FaceAttack, dice.FaceAttack)
	sess.Player.HP = 5

	assert.Equal(t, game.Command{Type: game.CommandUseItem, ItemID: equipment.HealthPotion}, simulate.Greedy{}.Next(sess))
}

func TestGreedy_BuysMostExpensiveAffordable(t *testing.T) {
	sess := session(exploration.RunStateInProgress)
	sess.Player.Gold = 100
	sess.Shop = &merchant.Shop{Offers: []*merchant.Offer{
		{Item: equipment.MustLookup(equipment.HealthPotion)},
		{Item: equipment.MustLookup(equipment.SteelShield)},
		{Item: equipment.MustLookup(equipment.MagicRing)},
	}}
	policy := simulate.Greedy{}

	assert.Equal(t, game.Command{Type: game.CommandBuy, Index: 1}, policy.Next(sess))

	sess.Shop.Offers[1].Sold = true
	sess.Player.Gold = 5
	assert.Equal(t, game.Command{Type: game.CommandChooseRoomAction, Choice: game.ChoiceLeave}, policy.Next(sess))
}

func TestGreedy_EncounterChoices(t *testing.T) {
	tests := []struct {
		kind     encounter.Kind
		gold     int
		expected string
	}{
		{kind: encounter.KindShrine, expected: encounter.ChoicePray},
		{kind: encounter.KindPotion, expected: encounter.ChoiceDrink},
		{kind: encounter.KindGambler, gold: 20, expected: encounter.ChoiceGamble},
		{kind: encounter.KindGambler, gold: 19, expected: encounter.ChoiceLeave},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			sess := session(exploration.RunStateInProgress)
			sess.Player.Gold = tt.gold
			sess.Encounter = &encounter.Encounter{Scenario: encounter.Scenario{Kind: tt.kind}}

			cmd := simulate.Greedy{}.Next(sess)

			assert.Equal(t, game.CommandChooseRoomAction, cmd.Type)
			assert.Equal(t, tt.expected, cmd.Choice)
		})
	}
}

func TestRun_DeterministicForSeed(t *testing.T) {
	cfg := simulate.Config{Runs: 6, Workers: 3, Seed: 1234}

	first, err := simulate.Run(context.Background(), cfg)
	require.NoError(t, err)
	second, err := simulate.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, 6, first.Runs)
	assert.Len(t, first.ByClass, len(character.Classes))
	for i, r := range first.Results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, int64(1234+i), r.Seed)
		assert.GreaterOrEqual(t, r.Level, 1)
		if r.Victory {
			assert.Equal(t, 10, r.RoomsCleared)
		} else {
			assert.Less(t, r.RoomsCleared, 10)
		}
	}
	assert.InDelta(t, float64(first.Victories)/6, first.WinRate(), 1e-9)
}

func TestRun_SingleClass(t *testing.T) {
	report, err := simulate.Run(context.Background(), simulate.Config{Runs: 2, Seed: 9, Class: character.ClassMage})

	require.NoError(t, err)
	assert.Len(t, report.ByClass, 1)
	assert.Equal(t, 2, report.ByClass[character.ClassMage].Runs)
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := simulate.Run(context.Background(), simulate.Config{Runs: 0})
	assert.Error(t, err)

	_, err = simulate.Run(context.Background(), simulate.Config{Runs: 1, Class: "bard"})
	assert.ErrorContains(t, err, "bard")
}
