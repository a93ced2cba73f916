package exploration_test

import (
	"testing"

	"github.com/KirkDiggler/dice-dungeon/internal/domain/game/exploration"
	"github.com/stretchr/testify/assert"
)

func TestDescribeRoom(t *testing.T) {
	tests := []struct {
		kind  exploration.RoomKind
		title string
		emoji string
	}{
		{exploration.RoomKindMonster, "Monster Room", "👾"},
		{exploration.RoomKindChest, "Treasure Room", "💎"},
		{exploration.RoomKindMerchant, "Merchant Room", "🏪"},
		{exploration.RoomKindBoss, "Boss Room", "👑"},
		{exploration.RoomKindEncounter, "Mysterious Room", "❓"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			info := exploration.DescribeRoom(tt.kind)
			assert.Equal(t, tt.title, info.Title)
			assert.Equal(t, tt.emoji, info.Emoji)
			assert.NotEmpty(t, info.Description)
			assert.True(t, tt.kind.Valid())
		})
	}

	assert.False(t, exploration.RoomKind("trap").Valid())
	assert.Equal(t, "Unknown Room", exploration.DescribeRoom("trap").Title)
}

func TestRun_Progression(t *testing.T) {
	run := &exploration.Run{
		State: exploration.RunStateRoomReady,
		Rooms: []exploration.RoomKind{exploration.RoomKindMonster, exploration.RoomKindBoss},
	}

	assert.Equal(t, exploration.RoomKindMonster, run.Current())
	assert.True(t, run.CanEnterRoom())
	assert.False(t, run.CanProceed())
	assert.Equal(t, "Room 1/2", run.Progress())

	run.State = exploration.RunStateRoomCleared
	assert.True(t, run.CanProceed())

	run.CurrentRoom = 1
	assert.True(t, run.IsLastRoom())
	assert.False(t, run.CanProceed(), "nothing after the last room")

	run.State = exploration.RunStateComplete
	assert.False(t, run.IsActive())
}

func TestRun_Copy(t *testing.T) {
	run := &exploration.Run{Rooms: []exploration.RoomKind{exploration.RoomKindChest}}

	c := run.Copy()
	c.Rooms[0] = exploration.RoomKindBoss

	assert.Equal(t, exploration.RoomKindChest, run.Rooms[0])
}
