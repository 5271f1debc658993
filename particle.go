package ectofx

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Particle is a short-lived visual entity with its own motion law. Particles
// never interact; each is mutated only by its own Update.
type Particle interface {
	// Update advances the particle by dt ticks.
	Update(dt float64)
	// Render draws the particle's current state.
	Render(s Surface)
	// Alive reports whether life > 0.
	Alive() bool
	// Life returns the remaining life. It never increases.
	Life() float64
	// Alpha returns life/maxLife clamped to [0, 1].
	Alpha() float64
	// Position returns the current position.
	Position() Vec2
}

// particle holds the state shared by every variant.
type particle struct {
	pos     Vec2
	vel     Vec2
	life    float64
	maxLife float64
	decay   float64 // life lost per tick
	size    float64
	color   Color
}

func (p *particle) Alive() bool    { return p.life > 0 }
func (p *particle) Life() float64  { return p.life }
func (p *particle) Position() Vec2 { return p.pos }
func (p *particle) Size() float64  { return p.size }

func (p *particle) Alpha() float64 {
	if p.maxLife <= 0 {
		return 0
	}
	return clamp01(p.life / p.maxLife)
}

// integrate applies velocity and burns life.
func (p *particle) integrate(dt float64) {
	p.pos = p.pos.Add(p.vel.Scale(dt))
	p.burn(dt)
}

func (p *particle) burn(dt float64) {
	p.life = math.Max(p.life-p.decay*dt, 0)
}

func (p *particle) renderDot(s Surface) {
	s.Save()
	s.SetAlpha(p.Alpha())
	s.FillCircle(p.pos, p.size, p.color)
	s.Restore()
}

// --- Celebration ---

const (
	sparkleCyclePeriod = 8   // ticks between palette steps
	sparkleBlendTicks  = 4   // ticks to blend into the next palette color
	sparkleTwinkleRate = 0.6 // radians per tick
)

// CelebrationParticle is confetti: a ballistic square biased upward then
// pulled down by gravity, spinning and shrinking. Sparkle particles twinkle,
// cycle through their palette and render as 5-point stars.
type CelebrationParticle struct {
	particle
	gravity   float64
	spin      float64
	angle     float64
	sizeDecay float64
	sparkle   bool
	steady    bool // no twinkle (reduced motion)
	palette   []Color
	colorIdx  int
	blend     *TweenGroup
	age       float64
}

// celebrationVelocity is the randomized primary-burst launch velocity with
// its upward bias.
func celebrationVelocity(r *Rand) Vec2 {
	return Vec2{r.Centered(8), r.Centered(8) - 2}
}

func newCelebrationParticle(r *Rand, at, vel Vec2, palette []Color, cfg *Config) *CelebrationParticle {
	life := 2 + r.Float64()
	idx := r.Intn(len(palette))
	p := &CelebrationParticle{
		particle: particle{
			pos:     at,
			vel:     vel,
			life:    life,
			maxLife: life,
			decay:   cfg.LifeDecay,
			size:    2 + r.Float64()*4,
			color:   ColorWhite,
		},
		gravity:   cfg.Celebration.Gravity,
		spin:      r.Float64() * 0.2,
		sizeDecay: cfg.Celebration.SizeDecay,
		sparkle:   r.Chance(cfg.Celebration.SparkleChance),
		palette:   palette,
		colorIdx:  idx,
	}
	if len(palette) > 0 {
		p.color = palette[idx]
	}
	return p
}

// Sparkle reports whether the particle renders as a star.
func (p *CelebrationParticle) Sparkle() bool { return p.sparkle }

// Angle returns the current rotation in radians.
func (p *CelebrationParticle) Angle() float64 { return p.angle }

// Velocity returns the current velocity.
func (p *CelebrationParticle) Velocity() Vec2 { return p.vel }

func (p *CelebrationParticle) Update(dt float64) {
	p.integrate(dt)
	p.vel.Y += p.gravity * dt
	p.angle += p.spin * dt
	p.size *= math.Pow(p.sizeDecay, dt)

	if !p.sparkle {
		return
	}
	if p.blend != nil {
		p.blend.Update(float32(dt))
		if p.blend.Done {
			p.color = p.palette[p.colorIdx]
			p.blend = nil
		}
	}
	prev := int(p.age / sparkleCyclePeriod)
	p.age += dt
	if step := int(p.age / sparkleCyclePeriod); step != prev && len(p.palette) > 0 {
		p.colorIdx = (p.colorIdx + step - prev) % len(p.palette)
		p.blend = TweenColor(&p.color, p.palette[p.colorIdx], sparkleBlendTicks, ease.Linear)
	}
}

// renderSize is the drawn size, including the sparkle twinkle.
func (p *CelebrationParticle) renderSize() float64 {
	if !p.sparkle || p.steady {
		return p.size
	}
	return p.size * (0.75 + 0.5*math.Abs(math.Sin(p.age*sparkleTwinkleRate)))
}

func (p *CelebrationParticle) Render(s Surface) {
	if !p.Alive() {
		return
	}
	size := p.renderSize()
	s.Save()
	s.SetAlpha(p.Alpha())
	s.Translate(p.pos.X, p.pos.Y)
	s.Rotate(p.angle)
	if p.sparkle {
		s.FillPolygon(starPoints(size, size*0.45, 5), p.color)
	} else {
		s.FillRect(-size/2, -size/2, size, size, p.color)
	}
	s.Restore()
}

// starPoints returns a star centered on the origin, first tip pointing up.
func starPoints(outer, inner float64, tips int) []Vec2 {
	pts := make([]Vec2, 0, tips*2)
	step := math.Pi / float64(tips)
	for i := 0; i < tips*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, Polar(r, float64(i)*step-math.Pi/2))
	}
	return pts
}

// --- Failure ---

// FailureParticle is an undirected spray that decelerates by a constant
// damping factor each tick.
type FailureParticle struct {
	particle
	damping float64
}

func newFailureParticle(r *Rand, at Vec2, cfg *Config) *FailureParticle {
	life := 1 + r.Float64()*0.5
	return &FailureParticle{
		particle: particle{
			pos:     at,
			vel:     Vec2{r.Centered(6), r.Centered(6)},
			life:    life,
			maxLife: life,
			decay:   cfg.LifeDecay,
			size:    2 + r.Float64()*3,
			color:   r.Pick(failurePalette),
		},
		damping: cfg.Failure.Damping,
	}
}

// Velocity returns the current velocity.
func (p *FailureParticle) Velocity() Vec2 { return p.vel }

func (p *FailureParticle) Update(dt float64) {
	p.integrate(dt)
	p.vel = p.vel.Scale(math.Pow(p.damping, dt))
}

func (p *FailureParticle) Render(s Surface) {
	if !p.Alive() {
		return
	}
	p.renderDot(s)
}
