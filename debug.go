package ectofx

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick timing and population metrics.
// Only logged when the Director is in debug mode.
type tickStats struct {
	elapsed   time.Duration
	particles int
	effects   int
}

// Stats is a snapshot of the Director's populations.
type Stats struct {
	Ticks    uint64
	LastTick time.Duration

	Particles   int
	Celebration int
	Suction     int
	Failure     int

	Effects       int
	Explosions    int
	Connections   int
	Beams         int
	Glyphs        int
	BeamParticles int
}

// Stats counts the live entities by variant.
func (d *Director) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := Stats{
		Ticks:     d.ticks,
		LastTick:  d.last.elapsed,
		Particles: len(d.particles),
		Effects:   len(d.effects),
	}
	for _, p := range d.particles {
		switch p.(type) {
		case *CelebrationParticle:
			st.Celebration++
		case *SuctionParticle:
			st.Suction++
		case *FailureParticle:
			st.Failure++
		}
	}
	for _, e := range d.effects {
		switch e := e.(type) {
		case *Explosion:
			st.Explosions++
		case *EnergyConnection:
			st.Connections++
		case *ProtonBeam:
			st.Beams++
			st.BeamParticles += e.ParticleCount()
		case *FailureGlyph:
			st.Glyphs++
		}
	}
	return st
}

// SetDebugMode enables or disables debug mode. When enabled, every tick logs
// its timing to stderr, triggers are logged, and Draw adds a stats overlay.
// Debug mode never changes which entities are simulated or rendered.
func (d *Director) SetDebugMode(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (d *Director) DebugMode() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.debug
}

// debugLog prints tick stats to stderr.
func (d *Director) debugLog(stats tickStats) {
	if !d.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[ectofx] tick %d: %v | particles: %d | effects: %d\n",
		d.ticks, stats.elapsed, stats.particles, stats.effects)
}

// debugf logs through the Director's logger in debug mode only.
func (d *Director) debugf(format string, args ...any) {
	if !d.debug {
		return
	}
	d.log.Printf(format, args...)
}
