//go:build integration

package dungeons_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	"github.com/KirkDiggler/dice-dungeon/internal/repositories/dungeons"
	"github.com/KirkDiggler/dice-dungeon/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Container(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := dungeons.NewRedis(client)
	ctx := context.Background()

	run := newRun("r1", "owner")
	require.NoError(t, repo.Create(ctx, run))

	run.CurrentRoom = 1
	run.RoomsCleared = 1
	run.State = exploration.RunStateInProgress
	require.NoError(t, repo.Update(ctx, run))

	got, err := repo.GetActiveByOwner(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, run, got)
}
