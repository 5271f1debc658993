package ectofx

import "math"

// EnergyConnection is a flickering lightning-like polyline between two
// points. Its interior points are jittered perpendicular to the line and
// re-rolled at random ticks.
type EnergyConnection struct {
	from, to Vec2
	points   []Vec2
	jitter   float64
	regen    float64
	life     float64
	decay    float64
	rng      *Rand
}

func newEnergyConnection(r *Rand, from, to Vec2, cfg *Config) *EnergyConnection {
	cc := cfg.Connection
	c := &EnergyConnection{
		from:   from,
		to:     to,
		points: make([]Vec2, cc.Segments+1),
		jitter: cc.Jitter,
		regen:  cc.RegenChance,
		life:   1,
		decay:  cc.Decay,
		rng:    r,
	}
	c.regenerate()
	return c
}

func (c *EnergyConnection) Kind() EffectKind { return KindConnection }

// Points returns the current polyline. Endpoints always equal from and to.
func (c *EnergyConnection) Points() []Vec2 { return c.points }

// Life returns the remaining life in [0, 1].
func (c *EnergyConnection) Life() float64 { return c.life }

func (c *EnergyConnection) Active() bool { return c.life > 0 }

func (c *EnergyConnection) regenerate() {
	n := len(c.points) - 1
	d := c.to.Sub(c.from)
	perp := d.Normalize().Perp()
	c.points[0] = c.from
	c.points[n] = c.to
	for i := 1; i < n; i++ {
		base := c.from.Add(d.Scale(float64(i) / float64(n)))
		c.points[i] = base.Add(perp.Scale(c.rng.Centered(c.jitter)))
	}
}

func (c *EnergyConnection) Update(dt float64) {
	c.life = math.Max(c.life-c.decay*dt, 0)
	if c.rng.Chance(c.regen) {
		c.regenerate()
	}
}

func (c *EnergyConnection) Render(s Surface) {
	if !c.Active() {
		return
	}
	s.Save()
	s.SetAlpha(c.life)
	s.SetGlow(suctionCyan, 10)
	s.StrokePolyline(c.points, 3, suctionCyan, CapRound)
	s.Restore()
}
