package ectofx

import (
	"math"
	"testing"
)

func TestParticleAlphaAndLifeInvariants(t *testing.T) {
	cfg := testConfig()
	r := NewRand(7)
	at := Vec2{100, 100}
	palette := cfg.Palette(GhostCaptured)

	tests := []struct {
		name string
		make func() Particle
	}{
		{"celebration", func() Particle { return newCelebrationParticle(r, at, celebrationVelocity(r), palette, &cfg) }},
		{"failure", func() Particle { return newFailureParticle(r, at, &cfg) }},
		{"suction", func() Particle { return newSuctionParticle(r, at, Vec2{400, 400}, &cfg) }},
		{"proton", func() Particle { return newProtonParticle(r, at, Vec2{100, 0}, &cfg) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for n := 0; n < 20; n++ {
				p := tt.make()
				prev := p.Life()
				for tick := 0; p.Alive(); tick++ {
					if tick > 1000 {
						t.Fatal("particle never died")
					}
					p.Update(1)
					if a := p.Alpha(); a < 0 || a > 1 {
						t.Fatalf("tick %d: alpha %v out of [0, 1]", tick, a)
					}
					if p.Life() > prev {
						t.Fatalf("tick %d: life grew from %v to %v", tick, prev, p.Life())
					}
					prev = p.Life()
				}
			}
		})
	}
}

func TestParticleAlphaIsLifeRatio(t *testing.T) {
	p := &particle{life: 0.5, maxLife: 2}
	assertNear(t, "alpha", p.Alpha(), 0.25)
	p.life = 3
	assertNear(t, "alpha above max", p.Alpha(), 1)
	p.maxLife = 0
	assertNear(t, "alpha zero maxLife", p.Alpha(), 0)
}

func TestCelebrationParticleBallistics(t *testing.T) {
	cfg := testConfig()
	r := NewRand(1)
	p := newCelebrationParticle(r, Vec2{0, 0}, Vec2{2, -3}, cfg.Palette(GhostCaptured), &cfg)
	size := p.Size()
	angle := p.Angle()

	p.Update(1)

	assertNear(t, "x", p.Position().X, 2)
	assertNear(t, "y", p.Position().Y, -3)
	assertNear(t, "vy", p.Velocity().Y, -3+cfg.Celebration.Gravity)
	assertNear(t, "size", p.Size(), size*cfg.Celebration.SizeDecay)
	assertNear(t, "life", p.Life(), p.maxLife-cfg.LifeDecay)
	if p.Angle() < angle {
		t.Errorf("angle went backwards: %v -> %v", angle, p.Angle())
	}
}

func TestCelebrationVelocityBiasedUpward(t *testing.T) {
	r := NewRand(3)
	var sumY float64
	for i := 0; i < 2000; i++ {
		v := celebrationVelocity(r)
		if v.X < -4 || v.X >= 4 {
			t.Fatalf("vx %v out of range", v.X)
		}
		if v.Y < -6 || v.Y >= 2 {
			t.Fatalf("vy %v out of range", v.Y)
		}
		sumY += v.Y
	}
	if mean := sumY / 2000; mean > -1.5 || mean < -2.5 {
		t.Errorf("mean vy = %v, want about -2", mean)
	}
}

func TestSparkleCyclesPalette(t *testing.T) {
	cfg := testConfig()
	cfg.Celebration.SparkleChance = 1
	palette := cfg.Palette(Ecto1Unlocked)
	p := newCelebrationParticle(NewRand(5), Vec2{}, Vec2{}, palette, &cfg)
	if !p.Sparkle() {
		t.Fatal("expected sparkle with chance 1")
	}
	start := p.colorIdx

	for i := 0; i < sparkleCyclePeriod-1; i++ {
		p.Update(1)
	}
	if p.colorIdx != start {
		t.Fatalf("color changed before a full period")
	}
	from := p.color
	p.Update(1)
	want := (start + 1) % len(palette)
	if p.colorIdx != want {
		t.Fatalf("colorIdx = %d, want %d", p.colorIdx, want)
	}
	if p.color != from {
		t.Errorf("color jumped to %v on the step tick", p.color)
	}

	// the color blends toward the next entry instead of snapping
	p.Update(1)
	to := palette[want]
	if p.color == from || p.color == to {
		t.Errorf("color %v not between %v and %v", p.color, from, to)
	}
	if g := from.G + (to.G-from.G)/sparkleBlendTicks; math.Abs(p.color.G-g) > 1e-6 {
		t.Errorf("green after one blend tick = %v, want %v", p.color.G, g)
	}
	for i := 1; i < sparkleBlendTicks; i++ {
		p.Update(1)
	}
	if p.color != to {
		t.Errorf("color = %v after the blend, want %v", p.color, to)
	}
}

func TestSparkleRendersStar(t *testing.T) {
	cfg := testConfig()
	cfg.Celebration.SparkleChance = 1
	p := newCelebrationParticle(NewRand(5), Vec2{}, Vec2{}, cfg.Palette(GhostCaptured), &cfg)
	s := newRecordingSurface(100, 100)
	p.Render(s)
	if s.count("fillPolygon") != 1 || s.count("fillRect") != 0 {
		t.Errorf("ops = %v, want one star polygon", s.ops)
	}
	if s.depth != 0 {
		t.Errorf("unbalanced Save/Restore: depth %d", s.depth)
	}

	cfg.Celebration.SparkleChance = 0
	q := newCelebrationParticle(NewRand(5), Vec2{}, Vec2{}, cfg.Palette(GhostCaptured), &cfg)
	s = newRecordingSurface(100, 100)
	q.Render(s)
	if s.count("fillRect") != 1 {
		t.Errorf("ops = %v, want one square", s.ops)
	}
}

func TestSparkleTwinkleSteadyUnderReducedMotion(t *testing.T) {
	cfg := testConfig()
	cfg.Celebration.SparkleChance = 1
	p := newCelebrationParticle(NewRand(9), Vec2{}, Vec2{}, cfg.Palette(GhostCaptured), &cfg)
	p.steady = true
	for i := 0; i < 5; i++ {
		p.Update(1)
		assertNear(t, "renderSize", p.renderSize(), p.Size())
	}
}

func TestStarPoints(t *testing.T) {
	pts := starPoints(10, 4, 5)
	if len(pts) != 10 {
		t.Fatalf("len = %d, want 10", len(pts))
	}
	assertNear(t, "tip x", pts[0].X, 0)
	assertNear(t, "tip y", pts[0].Y, -10)
	for i, p := range pts {
		want := 10.0
		if i%2 == 1 {
			want = 4
		}
		assertNear(t, "radius", p.Len(), want)
	}
}

func TestFailureParticleDamping(t *testing.T) {
	cfg := testConfig()
	p := newFailureParticle(NewRand(11), Vec2{50, 50}, &cfg)
	speed := p.Velocity().Len()
	for i := 1; i <= 10; i++ {
		p.Update(1)
		assertNear(t, "speed", p.Velocity().Len(), speed*math.Pow(cfg.Failure.Damping, float64(i)))
	}
}

func TestDeadParticleDoesNotRender(t *testing.T) {
	cfg := testConfig()
	p := newFailureParticle(NewRand(1), Vec2{}, &cfg)
	p.life = 0
	s := newRecordingSurface(10, 10)
	p.Render(s)
	if len(s.ops) != 0 {
		t.Errorf("dead particle drew %v", s.ops)
	}
}
