package character_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	mockcharacters "github.com/KirkDiggler/dice-dungeon/internal/repositories/characters/mock"
	characterService "github.com/KirkDiggler/dice-dungeon/internal/services/character"
	mockuuid "github.com/KirkDiggler/dice-dungeon/internal/uuid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (characterService.Service, *mockcharacters.MockRepository, *mockuuid.MockGenerator) {
	ctrl := gomock.NewController(t)
	repo := mockcharacters.NewMockRepository(ctrl)
	uuids := mockuuid.NewMockGenerator(ctrl)
	svc := characterService.NewService(&characterService.ServiceConfig{
		Repository:    repo,
		UUIDGenerator: uuids,
	})
	return svc, repo, uuids
}

func TestCreatePlayer(t *testing.T) {
	svc, repo, uuids := newService(t)
	uuids.EXPECT().New().Return("player-1")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *character.Player) error {
		assert.Equal(t, "player-1", p.ID)
		assert.Equal(t, "owner-1", p.OwnerID)
		return nil
	})

	player, err := svc.CreatePlayer(context.Background(), &characterService.CreatePlayerInput{
		OwnerID: "owner-1",
		Class:   character.ClassKnight,
	})

	require.NoError(t, err)
	assert.Equal(t, 25, player.MaxHP)
	assert.Equal(t, 1, player.Level)
}

func TestCreatePlayer_Validation(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreatePlayer(ctx, nil)
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = svc.CreatePlayer(ctx, &characterService.CreatePlayerInput{Class: character.ClassMage})
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = svc.CreatePlayer(ctx, &characterService.CreatePlayerInput{OwnerID: "o", Class: "bard"})
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestGetPlayer_PreservesNotFound(t *testing.T) {
	svc, repo, _ := newService(t)
	repo.EXPECT().Get(gomock.Any(), "missing").Return(nil, dnderr.NotFound("player not found"))

	_, err := svc.GetPlayer(context.Background(), "missing")

	assert.True(t, dnderr.IsNotFound(err))
	assert.Equal(t, "missing", dnderr.GetMeta(err)["player_id"])
}

func TestSavePlayer(t *testing.T) {
	svc, repo, _ := newService(t)
	player := character.NewPlayer(character.ClassMage)
	player.ID = "player-1"
	repo.EXPECT().Update(gomock.Any(), player).Return(nil)

	require.NoError(t, svc.SavePlayer(context.Background(), player))
	assert.True(t, dnderr.IsInvalidArgument(svc.SavePlayer(context.Background(), nil)))
}

func TestSavePlayer_WrapsStorageError(t *testing.T) {
	svc, repo, _ := newService(t)
	player := character.NewPlayer(character.ClassMage)
	player.ID = "player-1"
	repo.EXPECT().Update(gomock.Any(), player).Return(errors.New("connection reset"))

	err := svc.SavePlayer(context.Background(), player)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save player")
}

func TestListAndDeletePlayers(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()
	repo.EXPECT().GetByOwner(gomock.Any(), "owner-1").Return([]*character.Player{{ID: "a"}, {ID: "b"}}, nil)
	repo.EXPECT().Delete(gomock.Any(), "a").Return(nil)

	players, err := svc.ListPlayers(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, players, 2)

	require.NoError(t, svc.DeletePlayer(ctx, "a"))

	_, err = svc.ListPlayers(ctx, "")
	assert.True(t, dnderr.IsInvalidArgument(err))
}
