package services_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/events"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/dungeons"
	"github.com/KirkDiggler/dice-dungeon/internal/services"
	"github.com/KirkDiggler/dice-dungeon/internal/services/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Defaults(t *testing.T) {
	p := services.NewProvider(nil)

	assert.NotNil(t, p.CharacterService)
	assert.NotNil(t, p.DungeonService)
	assert.NotNil(t, p.BattleService)
	assert.NotNil(t, p.LootService)
	assert.NotNil(t, p.MerchantService)
	assert.NotNil(t, p.EncounterService)
	assert.NotNil(t, p.GameService)
}

func TestNewProvider_WiresRepositories(t *testing.T) {
	ctx := context.Background()
	runs := dungeons.NewInMemoryRepository()
	p := services.NewProvider(&services.ProviderConfig{
		DungeonRepository: runs,
		Roller:            dice.NewSeededRoller(7),
		EventBus:          events.NewBattleBus(false),
	})

	sess, err := p.GameService.NewGame(ctx, &game.NewGameInput{OwnerID: "owner-1", Class: character.ClassKnight})
	require.NoError(t, err)

	stored, err := runs.Get(ctx, sess.Run.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.Run.Rooms, stored.Rooms)

	player, err := p.CharacterService.GetPlayer(ctx, sess.Player.ID)
	require.NoError(t, err)
	assert.Equal(t, character.ClassKnight, player.Class)
}
