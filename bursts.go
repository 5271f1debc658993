package ectofx

import "math"

// Secondary spawn patterns layered on top of the primary bursts. All of them
// must be called with d.mu held.

func (d *Director) spawnCelebration(at, vel Vec2, palette []Color) {
	p := newCelebrationParticle(d.rng, at, vel, palette, &d.cfg)
	p.steady = d.prefs.ReducedMotion
	d.spawn(p)
}

// ringBurst launches evenly spaced particles outward at speeds that grow with
// the ring index, so they spread into concentric rings RingSpacing apart.
// Milestones get one extra ring.
func (d *Director) ringBurst(at Vec2, palette []Color, milestone bool) {
	cc := d.cfg.Celebration
	rings := cc.Rings
	if milestone {
		rings++
	}
	per := d.count(cc.RingParticles)
	for ring := 1; ring <= rings; ring++ {
		speed := float64(ring) * cc.RingSpacing / 10
		offset := d.rng.Angle()
		for i := 0; i < per; i++ {
			a := offset + float64(i)*2*math.Pi/float64(per)
			d.spawnCelebration(at, Polar(speed, a), palette)
		}
	}
}

// starBurst launches particles along radial arms, first arm pointing up.
func (d *Director) starBurst(at Vec2, palette []Color, milestone bool) {
	cc := d.cfg.Celebration
	arms := cc.StarArms
	if milestone {
		arms = cc.MilestoneStarArms
	}
	per := d.count(cc.ArmParticles)
	for arm := 0; arm < arms; arm++ {
		a := float64(arm)*2*math.Pi/float64(arms) - math.Pi/2
		for k := 1; k <= per; k++ {
			d.spawnCelebration(at, Polar(float64(k)*1.2, a), palette)
		}
	}
}

// spiralWave starts suction particles on an outward spiral around from.
func (d *Director) spiralWave(from, to Vec2) {
	sc := d.cfg.Suction
	n := d.count(sc.SpiralParticles)
	for i := 0; i < n; i++ {
		t := float64(i+1) / float64(n)
		start := from.Add(Polar(sc.RingRadius*t, t*4*math.Pi))
		d.spawn(newSuctionParticle(d.rng, start, to, &d.cfg))
	}
}

// ringWave starts suction particles evenly around a circle centered on from.
func (d *Director) ringWave(from, to Vec2) {
	sc := d.cfg.Suction
	n := d.count(sc.RingParticles)
	r := sc.RingRadius * 1.5
	for i := 0; i < n; i++ {
		start := from.Add(Polar(r, float64(i)*2*math.Pi/float64(n)))
		d.spawn(newSuctionParticle(d.rng, start, to, &d.cfg))
	}
}
