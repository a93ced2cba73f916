package characters_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/character"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/equipment"
	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/characters"
	"github.com/KirkDiggler/dice-dungeon/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// the same behaviour is expected from every implementation
func repositories(t *testing.T) map[string]characters.Repository {
	_, client := testutils.NewMiniRedis(t)
	return map[string]characters.Repository{
		"in-memory": characters.NewInMemoryRepository(),
		"redis":     characters.NewRedis(client),
	}
}

func newPlayer(id, owner string) *character.Player {
	p := character.NewPlayer(character.ClassMage)
	p.ID = id
	p.OwnerID = owner
	return p
}

func TestRepository_RoundTrip(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := newPlayer("p1", "owner")
			p.AddItem(equipment.MustLookup(equipment.MagicRing))
			p.AddItem(equipment.MustLookup(equipment.LuckyCharm))
			require.True(t, p.UnequipItem(equipment.LuckyCharm))
			p.TakeDamage(4)

			require.NoError(t, repo.Create(ctx, p))

			got, err := repo.Get(ctx, "p1")
			require.NoError(t, err)

			assert.Equal(t, p.Class, got.Class)
			assert.Equal(t, p.HP, got.HP)
			assert.Equal(t, 20, got.MaxMP)
			assert.Equal(t, 5, got.GetBonusForType(equipment.EffectMaxMP))
			assert.Equal(t, 0, got.GetBonusForType(equipment.EffectReroll), "unequipped items stay unequipped")
			assert.Len(t, got.Inventory, 3)

			got.Gold = 500
			assert.NotEqual(t, 500, mustGet(t, repo, "p1").Gold, "stored copy is independent")
		})
	}
}

func TestRepository_Errors(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := newPlayer("p2", "owner")

			require.NoError(t, repo.Create(ctx, p))
			assert.True(t, dnderr.IsAlreadyExists(repo.Create(ctx, p)))

			_, err := repo.Get(ctx, "nobody")
			assert.True(t, dnderr.IsNotFound(err))

			assert.True(t, dnderr.IsNotFound(repo.Update(ctx, newPlayer("nobody", "owner"))))
			assert.True(t, dnderr.IsInvalidArgument(repo.Update(ctx, nil)))
		})
	}
}

func TestRepository_OwnerIndexAndDelete(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Create(ctx, newPlayer("a", "alice")))
			require.NoError(t, repo.Create(ctx, newPlayer("b", "alice")))
			require.NoError(t, repo.Create(ctx, newPlayer("c", "bob")))

			players, err := repo.GetByOwner(ctx, "alice")
			require.NoError(t, err)
			assert.Len(t, players, 2)

			require.NoError(t, repo.Delete(ctx, "a"))
			players, err = repo.GetByOwner(ctx, "alice")
			require.NoError(t, err)
			assert.Len(t, players, 1)

			assert.True(t, dnderr.IsNotFound(repo.Delete(ctx, "a")))
		})
	}
}

func mustGet(t *testing.T, repo characters.Repository, id string) *character.Player {
	t.Helper()
	p, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	return p
}
