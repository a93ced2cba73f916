package exploration

import (
	"fmt"
	"time"
)

// RunState is where a run sits between rooms
type RunState string

const (
	RunStateRoomReady   RunState = "room_ready"
	RunStateInProgress  RunState = "in_progress"
	RunStateRoomCleared RunState = "room_cleared"
	RunStateComplete    RunState = "complete"
	RunStateFailed      RunState = "failed"
)

// Run is one trip through a generated dungeon. The room sequence never
// changes once generated; only the current index and state move.
type Run struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	PlayerID     string     `json:"player_id"`
	State        RunState   `json:"state"`
	Rooms        []RoomKind `json:"rooms"`
	CurrentRoom  int        `json:"current_room"`
	RoomsCleared int        `json:"rooms_cleared"`
	Seed         int64      `json:"seed,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// Current returns the kind of the current room
func (r *Run) Current() RoomKind {
	if r.CurrentRoom < 0 || r.CurrentRoom >= len(r.Rooms) {
		return ""
	}
	return r.Rooms[r.CurrentRoom]
}

// IsActive reports whether the run is still going
func (r *Run) IsActive() bool {
	return r.State != RunStateComplete && r.State != RunStateFailed
}

// CanEnterRoom reports whether the current room is waiting to be entered
func (r *Run) CanEnterRoom() bool {
	return r.State == RunStateRoomReady
}

// CanProceed reports whether the player may move to the next room
func (r *Run) CanProceed() bool {
	return r.State == RunStateRoomCleared && r.CurrentRoom < len(r.Rooms)-1
}

// IsLastRoom reports whether the current room is the final one
func (r *Run) IsLastRoom() bool {
	return r.CurrentRoom == len(r.Rooms)-1
}

// Progress renders "Room N/M"
func (r *Run) Progress() string {
	return fmt.Sprintf("Room %d/%d", r.CurrentRoom+1, len(r.Rooms))
}

// Copy returns an independent copy of the run
func (r *Run) Copy() *Run {
	if r == nil {
		return nil
	}
	c := *r
	c.Rooms = append([]RoomKind(nil), r.Rooms...)
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}
