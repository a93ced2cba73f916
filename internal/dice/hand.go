package dice

import "strings"

// HandSize is the number of dice in a hand
const HandSize = 5

// Hand holds the five combat dice and their lock flags. Locks live
// independently of the faces: they survive rerolls and are cleared at the
// start of each player turn.
type Hand struct {
	faces  [HandSize]Face
	locks  [HandSize]bool
	rolled bool
}

// NewHand creates an empty hand. The first Roll fills every slot.
func NewHand() *Hand {
	return &Hand{}
}

// NewHandOf creates a hand showing the given faces, unlocked
func NewHandOf(faces [HandSize]Face) *Hand {
	return &Hand{
		faces:  faces,
		rolled: true,
	}
}

// Roll redraws every unlocked die. Before the first roll all slots are drawn
// regardless of locks.
func (h *Hand) Roll(r Roller) {
	for i := range h.faces {
		if h.rolled && h.locks[i] {
			continue
		}
		h.faces[i] = RollFace(r)
	}
	h.rolled = true
}

// ToggleLock flips the lock at index. It returns false for an out of range index.
func (h *Hand) ToggleLock(index int) bool {
	if index < 0 || index >= HandSize {
		return false
	}
	h.locks[index] = !h.locks[index]
	return true
}

// ResetLocks unlocks every die
func (h *Hand) ResetLocks() {
	h.locks = [HandSize]bool{}
}

// IsLocked reports whether the die at index is locked
func (h *Hand) IsLocked(index int) bool {
	if index < 0 || index >= HandSize {
		return false
	}
	return h.locks[index]
}

// Rolled reports whether the hand has been rolled at least once
func (h *Hand) Rolled() bool {
	return h.rolled
}

// Faces returns a copy of the current faces
func (h *Hand) Faces() []Face {
	out := make([]Face, HandSize)
	copy(out, h.faces[:])
	return out
}

// Locks returns a copy of the lock flags
func (h *Hand) Locks() []bool {
	out := make([]bool, HandSize)
	copy(out, h.locks[:])
	return out
}

// Count returns how many dice show f
func (h *Hand) Count(f Face) int {
	n := 0
	for _, face := range h.faces {
		if face == f {
			n++
		}
	}
	return n
}

// Effects calculates the effects of the current faces
func (h *Hand) Effects() Effects {
	if !h.rolled {
		return Effects{}
	}
	return CalculateEffects(h.faces[:])
}

// String renders the hand as emoji, locked dice in brackets
func (h *Hand) String() string {
	parts := make([]string, HandSize)
	for i, f := range h.faces {
		if h.locks[i] {
			parts[i] = "[" + f.Emoji() + "]"
		} else {
			parts[i] = f.Emoji()
		}
	}
	return strings.Join(parts, " ")
}
