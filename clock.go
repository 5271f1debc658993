package ectofx

import "time"

// Clock supplies monotonic time for time-based pulsation. It is independent
// of the tick count so a beam keeps a steady pulse when frames are dropped.
type Clock interface {
	Now() time.Duration
}

type wallClock struct {
	start time.Time
}

// WallClock returns a Clock measuring time since its creation.
func WallClock() Clock {
	return wallClock{start: time.Now()}
}

func (c wallClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock is a Clock advanced explicitly. Useful for deterministic
// rendering in scripts and tests.
type ManualClock struct {
	T time.Duration
}

func (c *ManualClock) Now() time.Duration { return c.T }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.T += d }
