package ectofx

import "time"

// Haptics is a best-effort vibration sink. Implementations must not block.
type Haptics interface {
	Vibrate(pattern []time.Duration)
}

// CelebrationPattern is the on/off vibration pattern played on celebrations.
var CelebrationPattern = []time.Duration{
	100 * time.Millisecond,
	50 * time.Millisecond,
	100 * time.Millisecond,
}

// NopHaptics ignores every request.
type NopHaptics struct{}

func (NopHaptics) Vibrate([]time.Duration) {}

// HapticsFunc adapts a function to the Haptics interface.
type HapticsFunc func(pattern []time.Duration)

func (f HapticsFunc) Vibrate(pattern []time.Duration) { f(pattern) }
