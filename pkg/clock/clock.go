// Package clock abstracts the wall clock so time-dependent systems can be tested.
package clock

import "time"

// Clock allows injecting time into domain systems.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// Func adapts an ordinary function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}
