// Package clock hides time.Now so run timestamps can be pinned in tests
package clock

//go:generate mockgen -destination=mock/mock_clock.go -package=mockclock -source=clock.go

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns the wall clock
func New() Clock {
	return realClock{}
}

// Now returns the current UTC time
func (realClock) Now() time.Time {
	return time.Now().UTC()
}
