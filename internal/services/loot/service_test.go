package loot_test

import (
	"context"
	"testing"

	mockdice "github.com/KirkDiggler/dice-dungeon/internal/dice/mock"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/KirkDiggler/dice-dungeon/internal/services/loot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChestTable_WeightsSumToHundred(t *testing.T) {
	assert.Equal(t, 100, loot.TotalWeight(loot.ChestTable))
}

func TestPick_CumulativeBoundaries(t *testing.T) {
	tests := []struct {
		draw int
		want string
	}{
		{draw: 1, want: ""},
		{draw: 40, want: ""},
		{draw: 41, want: equipment.HealthPotion},
		{draw: 65, want: equipment.HealthPotion},
		{draw: 66, want: equipment.MagicScroll},
		{draw: 85, want: equipment.MagicScroll},
		{draw: 86, want: equipment.SteelShield},
		{draw: 93, want: equipment.SteelShield},
		{draw: 94, want: equipment.SharpSword},
		{draw: 100, want: equipment.SharpSword},
	}

	for _, tt := range tests {
		entry, ok := loot.Pick(mockdice.NewManualMockRoller(tt.draw), loot.ChestTable)
		require.True(t, ok)
		assert.Equal(t, tt.want, entry.ItemID, "draw %d", tt.draw)
	}
}

func TestPick_EmptyTable(t *testing.T) {
	_, ok := loot.Pick(mockdice.NewManualMockRoller(), nil)

	assert.False(t, ok)
}

func TestOpenChest_Gold(t *testing.T) {
	roller := mockdice.NewManualMockRoller(12, 21)
	svc := loot.NewService(&loot.ServiceConfig{Roller: roller})
	player := character.NewPlayer(character.ClassMage)

	reward, err := svc.OpenChest(context.Background(), player)

	require.NoError(t, err)
	assert.Equal(t, loot.RewardGold, reward.Kind)
	assert.Equal(t, 30, reward.Gold)
	assert.Equal(t, 40, player.Gold)
	assert.Equal(t, "💰 30 gold", reward.String())
}

func TestOpenChest_EquipsNonConsumable(t *testing.T) {
	roller := mockdice.NewManualMockRoller(99)
	svc := loot.NewService(&loot.ServiceConfig{Roller: roller})
	player := character.NewPlayer(character.ClassSorcerer)

	reward, err := svc.OpenChest(context.Background(), player)

	require.NoError(t, err)
	assert.Equal(t, equipment.SharpSword, reward.Item.ID)
	assert.Equal(t, 2, player.GetBonusForType(equipment.EffectDamage))
}

func TestOpenChest_ConsumableGoesToInventory(t *testing.T) {
	roller := mockdice.NewManualMockRoller(50)
	svc := loot.NewService(&loot.ServiceConfig{Roller: roller})
	player := character.NewPlayer(character.ClassSorcerer)

	_, err := svc.OpenChest(context.Background(), player)

	require.NoError(t, err)
	assert.True(t, player.HasItem(equipment.HealthPotion))
}

func TestOpenChest_RequiresPlayer(t *testing.T) {
	svc := loot.NewService(&loot.ServiceConfig{Roller: mockdice.NewManualMockRoller()})

	_, err := svc.OpenChest(context.Background(), nil)

	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestNewService_PanicsWithoutRoller(t *testing.T) {
	assert.Panics(t, func() { loot.NewService(&loot.ServiceConfig{}) })
}
