package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/dice-dungeon/internal/dice"
)

// ManualMockRoller implements dice.Roller with predetermined results
type ManualMockRoller struct {
	mu          sync.Mutex
	rolls       []int
	rollIndex   int
	fallback    int
	hasFallback bool
}

var _ dice.Roller = (*ManualMockRoller)(nil)

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller(rolls ...int) *ManualMockRoller {
	return &ManualMockRoller{
		rolls: append([]int{}, rolls...),
	}
}

// SetNextRoll queues one more result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queued results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append([]int{}, rolls...)
	m.rollIndex = 0
}

// SetFaces queues one roll per face, matching how dice.RollFace maps results
func (m *ManualMockRoller) SetFaces(faces ...dice.Face) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range faces {
		m.rolls = append(m.rolls, int(f))
	}
}

// SetFallback makes Roll return value (clamped to the die) once the queue runs out
func (m *ManualMockRoller) SetFallback(value int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = value
	m.hasFallback = true
}

// Reset clears all queued results and the fallback
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
	m.hasFallback = false
}

// Remaining returns how many queued results are left
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

// Roll implements dice.Roller.Roll. It panics when the queue is exhausted and
// no fallback is set, or when a queued value does not fit the die.
func (m *ManualMockRoller) Roll(sides int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		if !m.hasFallback {
			panic(fmt.Sprintf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls)))
		}
		return clamp(m.fallback, sides)
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	if roll < 1 || roll > sides {
		panic(fmt.Sprintf("invalid roll %d for d%d", roll, sides))
	}
	return roll
}

func clamp(value, sides int) int {
	if value < 1 {
		return 1
	}
	if value > sides {
		return sides
	}
	return value
}
