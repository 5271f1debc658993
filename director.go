package ectofx

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNotReady is returned by triggers that arrive before the Director has a
// drawing surface.
var ErrNotReady = errors.New("ectofx: director not ready")

// Options configures a Director. The zero value is usable: default config,
// wall clock, no haptics, and a stderr logger.
type Options struct {
	// Config overrides DefaultConfig. It is validated by NewDirector.
	Config *Config
	// Surface, when set, makes the Director ready immediately and renders
	// into it. Otherwise the Director waits for Attach or Resize.
	Surface Surface
	// DeviceScale is the pixel ratio of the offscreen layer created on
	// Resize. Values <= 0 mean 1.
	DeviceScale float64
	Clock       Clock
	Haptics     Haptics
	Logger      *log.Logger
	Preferences *Preferences
}

// Director owns the particle and effect collections and exposes the trigger
// API. All methods are safe for concurrent use; a single mutex guards both
// collections.
type Director struct {
	mu sync.Mutex

	cfg     Config
	rng     *Rand
	clock   Clock
	haptics Haptics
	log     *log.Logger
	prefs   Preferences

	surface Surface // host-supplied surface; nil when rendering into layer
	layer   *Layer
	scale   float64

	ready     chan struct{}
	readyOnce sync.Once

	particles []Particle
	effects   []Effect

	running bool
	debug   bool
	ticks   uint64
	last    tickStats

	// Pending StartBeam retry. retryGen invalidates stale goroutines.
	retrying bool
	retryGen uint64
	closed   chan struct{}

	sink   EventSink
	script *Script
	shots  []string
	// ScreenshotDir is where script screenshots are written.
	ScreenshotDir string
}

// NewDirector creates a Director. It returns ErrInvalidConfig (wrapped) when
// opts.Config fails validation.
func NewDirector(opts Options) (*Director, error) {
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Director{
		cfg:           cfg,
		rng:           NewRand(cfg.Seed),
		clock:         opts.Clock,
		haptics:       opts.Haptics,
		log:           opts.Logger,
		prefs:         DefaultPreferences(),
		scale:         opts.DeviceScale,
		ready:         make(chan struct{}),
		closed:        make(chan struct{}),
		particles:     make([]Particle, 0, cfg.MaxParticles),
		ScreenshotDir: "screenshots",
	}
	if d.clock == nil {
		d.clock = WallClock()
	}
	if d.haptics == nil {
		d.haptics = NopHaptics{}
	}
	if d.log == nil {
		d.log = defaultLogger()
	}
	if d.scale <= 0 {
		d.scale = 1
	}
	if opts.Preferences != nil {
		d.prefs = opts.Preferences.normalized()
	}
	if opts.Surface != nil {
		d.surface = opts.Surface
		d.markReady()
	}
	return d, nil
}

func defaultLogger() *log.Logger {
	return log.New(os.Stderr, "[ectofx] ", log.LstdFlags)
}

// Config returns a copy of the active configuration.
func (d *Director) Config() Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cfg
}

// SetPreferences applies new user preferences. Live entities keep the
// settings they were spawned with, except the beam pulse.
func (d *Director) SetPreferences(p Preferences) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.prefs = p.normalized()
	for _, e := range d.effects {
		if b, ok := e.(*ProtonBeam); ok {
			b.steady = d.prefs.ReducedMotion
		}
	}
}

// Preferences returns the active preferences.
func (d *Director) Preferences() Preferences {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.prefs
}

// --- readiness ---

// Ready returns a channel closed once the Director has a surface.
func (d *Director) Ready() <-chan struct{} {
	return d.ready
}

func (d *Director) markReady() {
	d.readyOnce.Do(func() { close(d.ready) })
}

func (d *Director) isClosed() bool {
	select {
	case <-d.closed:
		return true
	default:
		return false
	}
}

func (d *Director) isReady() bool {
	select {
	case <-d.ready:
		return true
	default:
		return false
	}
}

// Attach hands the Director a host-owned surface and marks it ready. Any
// offscreen layer is released; subsequent ticks render into s.
func (d *Director) Attach(s Surface) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s == nil {
		return
	}
	d.surface = s
	if d.layer != nil {
		d.layer.Dispose()
		d.layer = nil
	}
	d.resizeBeams()
	d.markReady()
}

// Resize reacts to a change of the host drawing area (logical pixels). It
// creates or resizes the offscreen layer and repositions the beam. Live
// particles and effects are left untouched. Non-positive sizes are ignored.
func (d *Director) Resize(w, h int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if w <= 0 || h <= 0 || d.isClosed() {
		return
	}
	if d.surface == nil {
		if d.layer == nil {
			d.layer = NewLayer(w, h, d.scale)
		} else {
			d.layer.Resize(w, h, d.scale)
		}
	}
	d.resizeBeams()
	d.markReady()
}

// SetDeviceScale changes the pixel ratio of the offscreen layer.
func (d *Director) SetDeviceScale(scale float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if scale <= 0 {
		scale = 1
	}
	d.scale = scale
	if d.layer != nil {
		w, h := d.layer.Size()
		d.layer.Resize(w, h, scale)
	}
}

// Layer returns the offscreen layer, or nil when rendering into a
// host-supplied surface.
func (d *Director) Layer() *Layer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.layer
}

// target returns the surface to render into this tick, rebuilding a lost
// layer first. Must hold d.mu.
func (d *Director) target() Surface {
	if d.surface != nil {
		return d.surface
	}
	if d.layer == nil || d.isClosed() {
		return nil
	}
	if d.layer.ensure() {
		d.debugf("layer rebuilt at %dx%d", d.layer.w, d.layer.h)
	}
	return d.layer.surface
}

// logicalSize returns the current logical drawing size. Must hold d.mu.
func (d *Director) logicalSize() (float64, float64) {
	if d.surface != nil {
		return d.surface.Size()
	}
	if d.layer != nil {
		w, h := d.layer.Size()
		return float64(w), float64(h)
	}
	return 0, 0
}

func (d *Director) resizeBeams() {
	w, h := d.logicalSize()
	for _, e := range d.effects {
		if b, ok := e.(*ProtonBeam); ok {
			b.resize(w, h)
		}
	}
}

// point resolves an optional position, defaulting to the surface center.
func (d *Director) point(at *Vec2) Vec2 {
	if at != nil {
		return *at
	}
	w, h := d.logicalSize()
	return Vec2{w / 2, h / 2}
}

// notReady logs and returns the wrapped ErrNotReady for op.
func (d *Director) notReady(op string) error {
	d.log.Printf("%s: surface not acquired yet, ignoring", op)
	return fmt.Errorf("%s: %w", op, ErrNotReady)
}

// --- spawning ---

// count scales n by the intensity preference, keeping at least one when n > 0.
func (d *Director) count(n int) int {
	if n <= 0 {
		return 0
	}
	return max(int(float64(n)*d.prefs.Intensity+0.5), 1)
}

func (d *Director) spawn(p Particle) {
	d.particles = append(d.particles, p)
}

// enforceCap drops the oldest particles beyond MaxParticles.
func (d *Director) enforceCap() {
	if over := len(d.particles) - d.cfg.MaxParticles; over > 0 {
		d.particles = dropOldest(d.particles, d.cfg.MaxParticles)
		d.debugf("particle cap reached, dropped %d oldest", over)
	}
}

// TriggerCelebration spawns a celebration at at (nil means the surface
// center): a primary confetti burst sized by kind, one Explosion, concentric
// ring bursts and radial star arms. Unknown kinds use the default palette.
func (d *Director) TriggerCelebration(at *Vec2, kind CelebrationType) error {
	d.mu.Lock()
	if !d.isReady() {
		d.mu.Unlock()
		return d.notReady("TriggerCelebration")
	}
	p := d.point(at)
	palette := d.cfg.Palette(kind)
	milestone := kind.Milestone()

	for i, n := 0, d.count(d.cfg.celebrationCount(kind)); i < n; i++ {
		d.spawnCelebration(p, celebrationVelocity(d.rng), palette)
	}
	d.ringBurst(p, palette, milestone)
	d.starBurst(p, palette, milestone)
	d.enforceCap()
	d.effects = append(d.effects, newExplosion(p, palette[0], milestone, &d.cfg))

	haptics := d.prefs.HapticsEnabled
	d.debugf("celebration %s at (%.0f, %.0f)", kind, p.X, p.Y)
	d.mu.Unlock()

	if haptics {
		d.haptics.Vibrate(CelebrationPattern)
	}
	d.emit(Event{Kind: EventCelebration, At: &p, Celebration: kind})
	return nil
}

// TriggerSuction spawns the suction transfer from from to to: a primary wave
// of SuctionParticles, several jittered EnergyConnections, a spiral wave and
// a ring wave, all converging on to.
func (d *Director) TriggerSuction(from, to Vec2) error {
	d.mu.Lock()
	if !d.isReady() {
		d.mu.Unlock()
		return d.notReady("TriggerSuction")
	}
	sc := d.cfg.Suction
	for i, n := 0, d.count(sc.Particles); i < n; i++ {
		d.spawn(newSuctionParticle(d.rng, from, to, &d.cfg))
	}
	for i := 0; i < sc.Connections; i++ {
		a, b := from, to
		if i > 0 {
			j := sc.ConnectionJitter
			a = a.Add(Vec2{d.rng.Centered(j * 2), d.rng.Centered(j * 2)})
			b = b.Add(Vec2{d.rng.Centered(j * 2), d.rng.Centered(j * 2)})
		}
		d.effects = append(d.effects, newEnergyConnection(d.rng, a, b, &d.cfg))
	}
	d.spiralWave(from, to)
	d.ringWave(from, to)
	d.enforceCap()
	d.debugf("suction (%.0f, %.0f) -> (%.0f, %.0f)", from.X, from.Y, to.X, to.Y)
	d.mu.Unlock()

	d.emit(Event{Kind: EventSuction, At: &from, To: to})
	return nil
}

// StartBeam starts the proton beam, replacing any running one so at most one
// exists. Before the Director is ready the request is deferred: it is retried
// with bounded exponential backoff and fires as soon as readiness arrives.
func (d *Director) StartBeam() error {
	d.mu.Lock()
	if !d.isReady() {
		d.scheduleBeamRetry()
		d.mu.Unlock()
		return nil
	}
	d.startBeamLocked()
	d.mu.Unlock()

	d.emit(Event{Kind: EventBeamStart})
	return nil
}

func (d *Director) startBeamLocked() {
	d.stopBeamLocked()
	w, h := d.logicalSize()
	b := newProtonBeam(d.rng, d.clock, w, h, &d.cfg)
	b.steady = d.prefs.ReducedMotion
	d.effects = append(d.effects, b)
	d.debugf("beam started")
}

// scheduleBeamRetry launches the retry goroutine unless one is pending.
// Must hold d.mu.
func (d *Director) scheduleBeamRetry() {
	if d.retrying {
		return
	}
	d.retrying = true
	d.retryGen++
	gen := d.retryGen
	rc := d.cfg.BeamRetry
	d.log.Printf("StartBeam: not ready, retrying up to %d times", rc.Attempts)
	go d.retryBeam(gen, rc)
}

func (d *Director) retryBeam(gen uint64, rc RetryConfig) {
	delay := rc.InitialDelay
	for attempt := 1; attempt <= rc.Attempts; attempt++ {
		timer := time.NewTimer(delay)
		select {
		case <-d.ready:
			timer.Stop()
		case <-timer.C:
		case <-d.closed:
			timer.Stop()
			return
		}
		d.mu.Lock()
		if !d.retrying || d.retryGen != gen {
			d.mu.Unlock()
			return
		}
		if d.isReady() {
			d.retrying = false
			d.startBeamLocked()
			d.mu.Unlock()
			d.emit(Event{Kind: EventBeamStart})
			return
		}
		d.mu.Unlock()
		delay *= 2
	}
	d.mu.Lock()
	current := d.retryGen == gen
	if current {
		d.retrying = false
	}
	d.mu.Unlock()
	if current {
		d.log.Printf("StartBeam: gave up after %d attempts", rc.Attempts)
	}
}

// StopBeam removes the beam, if any, and cancels a pending deferred start.
// It is idempotent.
func (d *Director) StopBeam() {
	d.mu.Lock()
	stopped := d.stopBeamLocked()
	d.cancelRetry()
	d.mu.Unlock()

	if stopped {
		d.emit(Event{Kind: EventBeamStop})
	}
}

func (d *Director) cancelRetry() {
	if d.retrying {
		d.retrying = false
		d.retryGen++
	}
}

// stopBeamLocked removes every beam and reports whether one was running.
func (d *Director) stopBeamLocked() bool {
	n := 0
	for _, e := range d.effects {
		if e.Kind() == KindBeam {
			continue
		}
		d.effects[n] = e
		n++
	}
	if n == len(d.effects) {
		return false
	}
	clear(d.effects[n:])
	d.effects = d.effects[:n]
	d.debugf("beam stopped")
	return true
}

// TriggerFailure spawns the failure spray and a FailureGlyph at at (nil means
// the surface center).
func (d *Director) TriggerFailure(at *Vec2) error {
	d.mu.Lock()
	if !d.isReady() {
		d.mu.Unlock()
		return d.notReady("TriggerFailure")
	}
	p := d.point(at)
	for i, n := 0, d.count(d.cfg.Failure.Particles); i < n; i++ {
		d.spawn(newFailureParticle(d.rng, p, &d.cfg))
	}
	d.enforceCap()
	d.effects = append(d.effects, newFailureGlyph(p, &d.cfg))
	d.debugf("failure at (%.0f, %.0f)", p.X, p.Y)
	d.mu.Unlock()

	d.emit(Event{Kind: EventFailure, At: &p})
	return nil
}

// ClearAll empties both collections, cancels a pending beam start and clears
// the surface. It works whether or not the Director is ready or running.
func (d *Director) ClearAll() {
	d.mu.Lock()
	clear(d.particles)
	d.particles = d.particles[:0]
	clear(d.effects)
	d.effects = d.effects[:0]
	d.cancelRetry()
	if s := d.target(); s != nil {
		s.Clear()
	}
	d.debugf("cleared")
	d.mu.Unlock()

	d.emit(Event{Kind: EventClear})
}

// --- frame loop ---

// Start engages the frame clock: Update ticks until Stop.
func (d *Director) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = true
}

// Stop disengages the frame clock. Entities are kept and resume on Start.
func (d *Director) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
}

// Running reports whether the frame clock is engaged.
func (d *Director) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// Update is the per-frame entry point. It ticks once while running and
// advances an attached Script. It always returns nil so it can be returned
// straight from ebiten.Game.Update.
func (d *Director) Update() error {
	d.mu.Lock()
	running, script := d.running, d.script
	d.mu.Unlock()
	if script != nil {
		script.step(d)
	}
	if running {
		d.Tick()
	}
	return nil
}

// Tick runs one simulation step: clear the surface, then update, render and
// retire every particle and every effect.
func (d *Director) Tick() {
	d.mu.Lock()
	defer d.mu.Unlock()

	start := time.Now()
	s := d.target()
	if s != nil {
		s.Clear()
	}
	d.particles = stepParticles(d.particles, 1, s)
	d.effects = stepEffects(d.effects, 1, s)
	d.ticks++

	d.last = tickStats{
		elapsed:   time.Since(start),
		particles: len(d.particles),
		effects:   len(d.effects),
	}
	d.debugLog(d.last)
}

// Draw composes the effect layer onto screen, followed by the debug overlay
// and any queued screenshots. Draw never advances the simulation.
func (d *Director) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	if d.layer != nil {
		d.layer.DrawTo(screen)
	}
	if d.debug {
		d.drawOverlay(screen)
	}
	shots, logger := d.takeShots(screen), d.log
	d.mu.Unlock()

	// shots are written without the lock held
	if shots != nil {
		shots.save(logger)
	}
}

// Close cancels any pending beam retry and releases the offscreen layer.
// A closed Director no longer renders; Resize does not recreate the layer.
func (d *Director) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	select {
	case <-d.closed:
		return
	default:
		close(d.closed)
	}
	d.cancelRetry()
	d.running = false
	if d.layer != nil {
		d.layer.Dispose()
		d.layer = nil
	}
}

// --- inspection ---

// ParticleCount returns the number of live particles.
func (d *Director) ParticleCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.particles)
}

// EffectCount returns the number of active effects.
func (d *Director) EffectCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.effects)
}

// BeamActive reports whether a beam is running.
func (d *Director) BeamActive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.beamCount() > 0
}

func (d *Director) beamCount() int {
	n := 0
	for _, e := range d.effects {
		if e.Kind() == KindBeam {
			n++
		}
	}
	return n
}

// Particles returns a snapshot of the live particles.
func (d *Director) Particles() []Particle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Particle(nil), d.particles...)
}

// Effects returns a snapshot of the active effects.
func (d *Director) Effects() []Effect {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Effect(nil), d.effects...)
}
