package clock

import "time"

// Clock is a source of wall-clock time.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Now is unconditionally available; clock-read failure is not
//   modeled.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by the real system clock.
func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time { return f.t }

// Fixed returns a Clock frozen at t. It exists for deterministic tests.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}
