package dice

import (
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller with math/rand. It may be shared between
// goroutines, but draws from a shared roller are no longer reproducible.
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a deterministic roller for a given seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(sides int) int {
	if sides < 1 {
		return 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(sides) + 1
}
