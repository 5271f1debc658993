package ectofx

// stepParticles advances every particle by dt, renders the ones still alive
// onto s (which may be nil) and compacts the slice in place. A particle that
// dies during this update is neither rendered nor kept.
func stepParticles(ps []Particle, dt float64, s Surface) []Particle {
	n := 0
	for _, p := range ps {
		p.Update(dt)
		if !p.Alive() {
			continue
		}
		if s != nil {
			p.Render(s)
		}
		ps[n] = p
		n++
	}
	clear(ps[n:])
	return ps[:n]
}

// stepEffects is stepParticles for effects, keyed on Active.
func stepEffects(es []Effect, dt float64, s Surface) []Effect {
	n := 0
	for _, e := range es {
		e.Update(dt)
		if !e.Active() {
			continue
		}
		if s != nil {
			e.Render(s)
		}
		es[n] = e
		n++
	}
	clear(es[n:])
	return es[:n]
}

// filterAlive keeps the live entries of ps in place.
func filterAlive[T interface{ Alive() bool }](ps []T) []T {
	n := 0
	for _, p := range ps {
		if p.Alive() {
			ps[n] = p
			n++
		}
	}
	clear(ps[n:])
	return ps[:n]
}

// dropOldest trims xs to its newest limit entries, keeping order.
func dropOldest[T any](xs []T, limit int) []T {
	over := len(xs) - limit
	if over <= 0 {
		return xs
	}
	n := copy(xs, xs[over:])
	clear(xs[n:])
	return xs[:n]
}
