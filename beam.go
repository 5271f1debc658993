package ectofx

import (
	"math"
)

// ProtonBeam is the continuous stream fired from the pack. It emits a batch
// of ProtonParticles every few ticks from an anchor near the bottom center
// toward a target in the upper part of the surface, and draws a pulsing
// barrel line between the two. It never terminates on its own; the Director
// removes it on StopBeam or ClearAll.
type ProtonBeam struct {
	cfg       *Config
	rng       *Rand
	clock     Clock
	steady    bool
	anchor    Vec2
	target    Vec2
	tick      int
	particles []*ProtonParticle
}

func newProtonBeam(r *Rand, clock Clock, w, h float64, cfg *Config) *ProtonBeam {
	b := &ProtonBeam{
		cfg:   cfg,
		rng:   r,
		clock: clock,
	}
	b.resize(w, h)
	return b
}

// resize moves the anchor and target for new logical surface dimensions.
// Particles already in flight keep their velocity.
func (b *ProtonBeam) resize(w, h float64) {
	b.anchor = Vec2{w / 2, h - b.cfg.Beam.AnchorOffset}
	b.target = Vec2{w / 2, h * b.cfg.Beam.TargetHeight}
}

func (b *ProtonBeam) Kind() EffectKind { return KindBeam }

func (b *ProtonBeam) Active() bool { return true }

// Anchor returns the emission point.
func (b *ProtonBeam) Anchor() Vec2 { return b.anchor }

// Target returns the point the particles are aimed at, before jitter.
func (b *ProtonBeam) Target() Vec2 { return b.target }

// ParticleCount returns the number of live beam particles.
func (b *ProtonBeam) ParticleCount() int { return len(b.particles) }

func (b *ProtonBeam) Update(dt float64) {
	bc := b.cfg.Beam
	if b.tick%bc.EmitInterval == 0 {
		for i := 0; i < bc.BatchSize; i++ {
			b.particles = append(b.particles, newProtonParticle(b.rng, b.anchor, b.target, b.cfg))
		}
	}
	b.tick++

	for _, p := range b.particles {
		p.Update(dt)
	}
	b.particles = dropOldest(filterAlive(b.particles), bc.MaxParticles)
}

// width is the barrel line width, pulsing with the clock.
func (b *ProtonBeam) width() float64 {
	w := b.cfg.Beam.Width
	if b.steady || b.clock == nil {
		return w
	}
	t := b.clock.Now().Seconds()
	return w * (1 + 0.25*math.Sin(t*2*math.Pi*1.5))
}

func (b *ProtonBeam) Render(s Surface) {
	s.Save()
	s.SetGlow(ectoGreen, 15)
	s.SetBlend(BlendAdd)
	s.SetAlpha(0.35)
	s.StrokePolyline([]Vec2{b.anchor, b.target}, b.width(), ectoGreen, CapRound)
	s.SetAlpha(0.8)
	s.StrokePolyline([]Vec2{b.anchor, b.target}, b.width()/3, ColorWhite, CapRound)
	s.Restore()

	for _, p := range b.particles {
		p.Render(s)
	}
}
