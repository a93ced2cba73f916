package dungeon_test

import (
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
	mockdice "github.com/KirkDiggler/dice-dungeon/internal/dice/mock"
	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	"github.com/KirkDiggler/dice-dungeon/internal/services/dungeon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	M  = exploration.RoomKindMonster
	C  = exploration.RoomKindChest
	S  = exploration.RoomKindMerchant
	B  = exploration.RoomKindBoss
	E  = exploration.RoomKindEncounter
	mo = 51 // a percent roll of 50 picks a monster
)

func TestGenerate_Invariants(t *testing.T) {
	for seed := int64(1); seed <= 1000; seed++ {
		rooms := dungeon.Generate(dice.NewSeededRoller(seed), dungeon.DefaultLength)

		require.Len(t, rooms, 10, "seed %d", seed)
		assert.Equal(t, B, rooms[9], "seed %d", seed)
		assert.Equal(t, S, rooms[8], "seed %d", seed)

		encounters := 0
		for i, room := range rooms[:8] {
			if room == E {
				encounters++
			}
			if i > 0 && (rooms[i-1] == C || rooms[i-1] == S) {
				assert.Contains(t, []exploration.RoomKind{M, E}, room, "seed %d room %d follows %s", seed, i, rooms[i-1])
			}
		}
		assert.Equal(t, 1, encounters, "seed %d", seed)
	}
}

func TestGenerate_WeightedRooms(t *testing.T) {
	// chest, forced monster, merchant, forced monster, monster, encounter, chest, forced monster
	roller := mockdice.NewManualMockRoller(35, 86, mo, 1)

	rooms := dungeon.Generate(roller, dungeon.DefaultLength)

	assert.Equal(t, []exploration.RoomKind{C, M, S, M, M, E, C, M, S, B}, rooms)
	assert.Equal(t, 0, roller.Remaining())
}

func TestGenerate_ThresholdEdges(t *testing.T) {
	tests := []struct {
		roll int
		want exploration.RoomKind
	}{
		{roll: 1, want: C},
		{roll: 35, want: C},
		{roll: 36, want: M},
		{roll: 85, want: M},
		{roll: 86, want: S},
		{roll: 100, want: S},
	}

	for _, tt := range tests {
		roller := mockdice.NewManualMockRoller(tt.roll)
		roller.SetFallback(mo)

		rooms := dungeon.Generate(roller, dungeon.DefaultLength)

		assert.Equal(t, tt.want, rooms[0], "percent roll %d", tt.roll-1)
	}
}

func TestGenerate_FallbackEncounter(t *testing.T) {
	roller := mockdice.NewManualMockRoller(mo, mo, mo, mo, 2)

	rooms := dungeon.Generate(roller, 6)

	assert.Equal(t, []exploration.RoomKind{M, E, M, M, S, B}, rooms)
}

func TestGenerate_ClampsShortLengths(t *testing.T) {
	roller := mockdice.NewManualMockRoller(mo, mo)

	rooms := dungeon.Generate(roller, 2)

	assert.Equal(t, []exploration.RoomKind{E, M, S, B}, rooms)
}
