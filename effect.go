package ectofx

import (
	"math"

	"github.com/tanema/gween/ease"
)

// EffectKind tags an effect. The Director uses it to find the unique beam.
type EffectKind string

const (
	KindExplosion  EffectKind = "explosion"
	KindConnection EffectKind = "connection"
	KindBeam       EffectKind = "beam"
	KindFailure    EffectKind = "failure"
)

// Effect is a longer-lived composite visual with its own termination rule.
type Effect interface {
	Update(dt float64)
	Render(s Surface)
	// Active reports whether the effect should stay in the collection.
	Active() bool
	Kind() EffectKind
}

// --- Explosion ---

// Explosion is an expanding set of concentric rings with a pulsing stroke.
// While small it also draws a filled core glow that fades out.
type Explosion struct {
	center    Vec2
	radius    float64
	maxRadius float64
	growth    float64
	life      float64
	decay     float64
	rings     int
	ringStep  float64
	phase     float64
	color     Color
	core      float64
	coreFade  *TweenGroup
}

func newExplosion(at Vec2, color Color, milestone bool, cfg *Config) *Explosion {
	ec := cfg.Explosion
	e := &Explosion{
		center:    at,
		maxRadius: ec.MaxRadius,
		growth:    ec.Growth,
		life:      1,
		decay:     ec.Decay,
		rings:     ec.Rings,
		ringStep:  ec.RingStep,
		color:     color,
		core:      1,
	}
	if milestone && ec.MilestoneMaxRadius > 0 {
		e.maxRadius = ec.MilestoneMaxRadius
	}
	// The core is visible until the radius reaches half the cap.
	e.coreFade = TweenValue(&e.core, 0, float32(e.maxRadius/2/e.growth), ease.OutQuad)
	return e
}

func (e *Explosion) Kind() EffectKind { return KindExplosion }

// Radius returns the current outer ring radius.
func (e *Explosion) Radius() float64 { return e.radius }

// MaxRadius returns the radius cap.
func (e *Explosion) MaxRadius() float64 { return e.maxRadius }

// Life returns the remaining life in [0, 1].
func (e *Explosion) Life() float64 { return e.life }

func (e *Explosion) Active() bool {
	return e.radius <= e.maxRadius && e.life > 0
}

func (e *Explosion) Update(dt float64) {
	e.radius += e.growth * dt
	e.life = math.Max(e.life-e.decay*dt, 0)
	e.phase += 0.3 * dt
	e.coreFade.Update(float32(dt))
}

func (e *Explosion) Render(s Surface) {
	if !e.Active() {
		return
	}
	s.Save()
	s.SetGlow(e.color, 12)
	for i := 0; i < e.rings; i++ {
		r := e.radius - float64(i)*e.ringStep
		if r <= 0 {
			break
		}
		// Outer rings fade first.
		s.SetAlpha(0.3 * math.Pow(e.life, float64(e.rings-i)))
		width := 3 + math.Sin(e.phase+float64(i))
		s.StrokeCircle(e.center, r, width, e.color)
	}
	if e.radius < e.maxRadius/2 && e.core > 0 {
		s.SetBlend(BlendAdd)
		s.SetAlpha(0.5 * e.core * e.life)
		s.FillCircle(e.center, e.radius*0.6, e.color)
	}
	s.Restore()
}

// --- Failure glyph ---

// GlyphPhase is the FailureGlyph state.
type GlyphPhase uint8

const (
	GlyphGrowing GlyphPhase = iota
	GlyphFading
)

// FailureGlyph is a red X that grows linearly to its maximum size, then fades.
type FailureGlyph struct {
	center  Vec2
	size    float64
	maxSize float64
	life    float64
	decay   float64
	phase   GlyphPhase
	grow    *TweenGroup
}

func newFailureGlyph(at Vec2, cfg *Config) *FailureGlyph {
	fc := cfg.Failure
	g := &FailureGlyph{
		center:  at,
		maxSize: fc.GlyphMaxSize,
		life:    1,
		decay:   fc.GlyphDecay,
	}
	g.grow = TweenValue(&g.size, fc.GlyphMaxSize, float32(fc.GlyphMaxSize/fc.GlyphGrowth), ease.Linear)
	return g
}

func (g *FailureGlyph) Kind() EffectKind { return KindFailure }

// Size returns the current arm length.
func (g *FailureGlyph) Size() float64 { return g.size }

// Life returns the remaining life in [0, 1].
func (g *FailureGlyph) Life() float64 { return g.life }

// Phase returns the current lifecycle phase.
func (g *FailureGlyph) Phase() GlyphPhase { return g.phase }

func (g *FailureGlyph) Active() bool { return g.life > 0 }

func (g *FailureGlyph) Update(dt float64) {
	switch g.phase {
	case GlyphGrowing:
		g.grow.Update(float32(dt))
		if g.grow.Done || g.size >= g.maxSize {
			g.size = g.maxSize
			g.phase = GlyphFading
		}
	case GlyphFading:
		g.life = math.Max(g.life-g.decay*dt, 0)
	}
}

func (g *FailureGlyph) Render(s Surface) {
	if !g.Active() || g.size <= 0 {
		return
	}
	h := g.size / 2
	c := g.center
	s.Save()
	s.SetAlpha(g.life)
	s.SetGlow(failureRed, 10)
	s.StrokePolyline([]Vec2{{c.X - h, c.Y - h}, {c.X + h, c.Y + h}}, 4, failureRed, CapRound)
	s.StrokePolyline([]Vec2{{c.X + h, c.Y - h}, {c.X - h, c.Y + h}}, 4, failureRed, CapRound)
	s.Restore()
}
