package ectofx

import (
	"math"

	"github.com/tanema/gween/ease"
)

// SuctionParticle travels from start to target along an eased curve with a
// sinusoidal sideways bulge, accelerating as it goes. It dies on the tick its
// progress reaches 1.
type SuctionParticle struct {
	particle
	start     Vec2
	target    Vec2
	progress  float64
	speed     float64
	accel     float64
	curvature float64
	trail     *Trail
}

func newSuctionParticle(r *Rand, from, to Vec2, cfg *Config) *SuctionParticle {
	p := &SuctionParticle{
		particle: particle{
			pos:     from,
			life:    1,
			maxLife: 1,
			decay:   cfg.LifeDecay,
			size:    2 + r.Float64()*2,
			color:   suctionCyan,
		},
		start:     from,
		target:    to,
		speed:     cfg.Suction.Speed.Random(r),
		accel:     cfg.Suction.Acceleration,
		curvature: cfg.Suction.Curvature.Random(r),
		trail:     NewTrail(cfg.Suction.TrailLength),
	}
	if r.Chance(0.5) {
		p.curvature = -p.curvature
	}
	p.trail.Push(from)
	return p
}

// Progress returns the fraction of the path covered, in [0, 1].
func (p *SuctionParticle) Progress() float64 { return p.progress }

// Trail returns the particle's recent positions.
func (p *SuctionParticle) Trail() *Trail { return p.trail }

func (p *SuctionParticle) Update(dt float64) {
	p.progress += p.speed * dt
	p.speed *= math.Pow(p.accel, dt)
	p.burn(dt)
	if p.progress >= 1 {
		p.progress = 1
		p.life = 0
	}
	p.pos = p.pointAt(p.progress)
	p.trail.Push(p.pos)
}

// pointAt returns the curve position at progress t.
func (p *SuctionParticle) pointAt(t float64) Vec2 {
	e := float64(ease.InOutQuad(float32(t), 0, 1, 1))
	d := p.target.Sub(p.start)
	base := p.start.Add(d.Scale(e))
	bulge := math.Sin(t*math.Pi) * p.curvature
	return base.Add(d.Normalize().Perp().Scale(bulge))
}

func (p *SuctionParticle) Render(s Surface) {
	if !p.Alive() {
		return
	}
	a := p.Alpha()
	s.Save()
	s.SetAlpha(a * 0.3)
	var buf [16]Vec2
	s.StrokePolyline(p.trail.AppendTo(buf[:0]), 1, p.color, CapRound)
	s.SetAlpha(a)
	s.FillCircle(p.pos, p.size, p.color)
	s.Restore()
}

// ProtonParticle is emitted near the beam anchor and flies in a straight line
// toward a jittered target point, leaving a short trail.
type ProtonParticle struct {
	particle
	trail *Trail
}

func newProtonParticle(r *Rand, anchor, target Vec2, cfg *Config) *ProtonParticle {
	pos := anchor.Add(Vec2{r.Centered(20), 0})
	j := cfg.Beam.TargetJitter
	aim := target.Add(Vec2{r.Centered(j * 2), r.Centered(j * 2)})
	life := 0.5 + r.Float64()*0.5
	p := &ProtonParticle{
		particle: particle{
			pos:     pos,
			vel:     aim.Sub(pos).Normalize().Scale(cfg.Beam.Speed.Random(r)),
			life:    life,
			maxLife: life,
			decay:   cfg.LifeDecay,
			size:    1.5 + r.Float64()*2,
			color:   ectoGreen,
		},
		trail: NewTrail(cfg.Beam.TrailLength),
	}
	p.trail.Push(pos)
	return p
}

// Velocity returns the fixed flight velocity.
func (p *ProtonParticle) Velocity() Vec2 { return p.vel }

// Trail returns the particle's recent positions.
func (p *ProtonParticle) Trail() *Trail { return p.trail }

func (p *ProtonParticle) Update(dt float64) {
	p.integrate(dt)
	p.trail.Push(p.pos)
}

func (p *ProtonParticle) Render(s Surface) {
	if !p.Alive() {
		return
	}
	a := p.Alpha()
	var buf [8]Vec2
	s.Save()
	s.SetGlow(p.color, 6)
	s.SetAlpha(a * 0.5)
	s.StrokePolyline(p.trail.AppendTo(buf[:0]), p.size, p.color, CapRound)
	s.SetAlpha(a)
	s.FillCircle(p.pos, p.size, p.color)
	s.Restore()
}
