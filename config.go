package ectofx

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("ectofx: invalid config")

// Config holds every tunable of the engine. Distances are in logical pixels,
// rates are per tick (one tick = one 60 Hz frame).
//
// A YAML file may override any subset of fields; unspecified fields keep
// their DefaultConfig values.
type Config struct {
	// Seed feeds the Director's random source. 0 seeds from the clock.
	Seed uint64 `yaml:"seed"`
	// MaxParticles caps the Director's particle collection. When a spawn
	// would exceed it, the oldest particles are dropped.
	MaxParticles int `yaml:"maxParticles"`
	// LifeDecay is subtracted from every particle's life each tick.
	LifeDecay float64 `yaml:"lifeDecay"`

	Celebration CelebrationConfig `yaml:"celebration"`
	Suction     SuctionConfig     `yaml:"suction"`
	Beam        BeamConfig        `yaml:"beam"`
	Failure     FailureConfig     `yaml:"failure"`
	Explosion   ExplosionConfig   `yaml:"explosion"`
	Connection  ConnectionConfig  `yaml:"connection"`
	BeamRetry   RetryConfig       `yaml:"beamRetry"`

	// Palettes overrides celebration palettes by type name with hex colors.
	Palettes map[CelebrationType][]string `yaml:"palettes"`
}

// CelebrationConfig tunes TriggerCelebration.
type CelebrationConfig struct {
	// Particles is the primary burst size for ghost_captured.
	Particles int `yaml:"particles"`
	// TypeScale multiplies Particles per celebration type.
	TypeScale     map[CelebrationType]float64 `yaml:"typeScale"`
	Gravity       float64                     `yaml:"gravity"`
	SizeDecay     float64                     `yaml:"sizeDecay"`
	SparkleChance float64                     `yaml:"sparkleChance"`
	// Secondary layering: concentric rings and radial star arms.
	Rings             int     `yaml:"rings"`
	RingSpacing       float64 `yaml:"ringSpacing"`
	RingParticles     int     `yaml:"ringParticles"`
	StarArms          int     `yaml:"starArms"`
	MilestoneStarArms int     `yaml:"milestoneStarArms"`
	ArmParticles      int     `yaml:"armParticles"`
}

// SuctionConfig tunes TriggerSuction.
type SuctionConfig struct {
	Particles        int     `yaml:"particles"`
	Speed            Range   `yaml:"speed"`
	Acceleration     float64 `yaml:"acceleration"`
	Curvature        Range   `yaml:"curvature"`
	TrailLength      int     `yaml:"trailLength"`
	Connections      int     `yaml:"connections"`
	ConnectionJitter float64 `yaml:"connectionJitter"`
	SpiralParticles  int     `yaml:"spiralParticles"`
	RingParticles    int     `yaml:"ringParticles"`
	RingRadius       float64 `yaml:"ringRadius"`
}

// BeamConfig tunes the ProtonBeam and its particles.
type BeamConfig struct {
	BatchSize    int   `yaml:"batchSize"`
	EmitInterval int   `yaml:"emitInterval"`
	Speed        Range `yaml:"speed"`
	TrailLength  int   `yaml:"trailLength"`
	// MaxParticles caps the beam's own particle list.
	MaxParticles int `yaml:"maxParticles"`
	// AnchorOffset is the anchor's distance above the bottom edge.
	AnchorOffset float64 `yaml:"anchorOffset"`
	// TargetHeight places the target at this fraction of the surface height.
	TargetHeight float64 `yaml:"targetHeight"`
	TargetJitter float64 `yaml:"targetJitter"`
	Width        float64 `yaml:"width"`
}

// FailureConfig tunes TriggerFailure.
type FailureConfig struct {
	Particles    int     `yaml:"particles"`
	Damping      float64 `yaml:"damping"`
	GlyphMaxSize float64 `yaml:"glyphMaxSize"`
	GlyphGrowth  float64 `yaml:"glyphGrowth"`
	GlyphDecay   float64 `yaml:"glyphDecay"`
}

// ExplosionConfig tunes the Explosion effect.
type ExplosionConfig struct {
	Growth             float64 `yaml:"growth"`
	Decay              float64 `yaml:"decay"`
	MaxRadius          float64 `yaml:"maxRadius"`
	MilestoneMaxRadius float64 `yaml:"milestoneMaxRadius"`
	Rings              int     `yaml:"rings"`
	RingStep           float64 `yaml:"ringStep"`
}

// ConnectionConfig tunes the EnergyConnection effect.
type ConnectionConfig struct {
	Segments    int     `yaml:"segments"`
	Jitter      float64 `yaml:"jitter"`
	RegenChance float64 `yaml:"regenChance"`
	Decay       float64 `yaml:"decay"`
}

// RetryConfig bounds the StartBeam retry while the Director is not ready.
type RetryConfig struct {
	Attempts     int           `yaml:"attempts"`
	InitialDelay time.Duration `yaml:"initialDelay"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MaxParticles: 500,
		LifeDecay:    0.016,
		Celebration: CelebrationConfig{
			Particles: 150,
			TypeScale: map[CelebrationType]float64{
				GhostCaptured:  1.0,
				Ecto1Unlocked:  4.0 / 3.0,
				InventoryFull:  0.8,
				CelebrationAny: 0.7,
			},
			Gravity:           0.1,
			SizeDecay:         0.99,
			SparkleChance:     0.25,
			Rings:             3,
			RingSpacing:       18,
			RingParticles:     12,
			StarArms:          5,
			MilestoneStarArms: 8,
			ArmParticles:      6,
		},
		Suction: SuctionConfig{
			Particles:        50,
			Speed:            Range{0.02, 0.05},
			Acceleration:     1.03,
			Curvature:        Range{10, 30},
			TrailLength:      10,
			Connections:      3,
			ConnectionJitter: 8,
			SpiralParticles:  24,
			RingParticles:    16,
			RingRadius:       30,
		},
		Beam: BeamConfig{
			BatchSize:    5,
			EmitInterval: 2,
			Speed:        Range{8, 11},
			TrailLength:  5,
			MaxParticles: 200,
			AnchorOffset: 100,
			TargetHeight: 0.35,
			TargetJitter: 30,
			Width:        8,
		},
		Failure: FailureConfig{
			Particles:    30,
			Damping:      0.98,
			GlyphMaxSize: 40,
			GlyphGrowth:  2,
			GlyphDecay:   0.03,
		},
		Explosion: ExplosionConfig{
			Growth:             2,
			Decay:              0.02,
			MaxRadius:          50,
			MilestoneMaxRadius: 100,
			Rings:              3,
			RingStep:           15,
		},
		Connection: ConnectionConfig{
			Segments:    10,
			Jitter:      20,
			RegenChance: 0.3,
			Decay:       0.05,
		},
		BeamRetry: RetryConfig{
			Attempts:     5,
			InitialDelay: 50 * time.Millisecond,
		},
	}
}

// LoadConfig decodes YAML over DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return LoadConfig(data)
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"maxParticles", float64(c.MaxParticles)},
		{"lifeDecay", c.LifeDecay},
		{"suction.speed.min", c.Suction.Speed.Min},
		{"suction.trailLength", float64(c.Suction.TrailLength)},
		{"beam.batchSize", float64(c.Beam.BatchSize)},
		{"beam.emitInterval", float64(c.Beam.EmitInterval)},
		{"beam.trailLength", float64(c.Beam.TrailLength)},
		{"beam.maxParticles", float64(c.Beam.MaxParticles)},
		{"failure.glyphGrowth", c.Failure.GlyphGrowth},
		{"failure.glyphDecay", c.Failure.GlyphDecay},
		{"explosion.growth", c.Explosion.Growth},
		{"explosion.decay", c.Explosion.Decay},
		{"explosion.maxRadius", c.Explosion.MaxRadius},
		{"connection.segments", float64(c.Connection.Segments)},
		{"connection.decay", c.Connection.Decay},
		{"beam.speed.min", c.Beam.Speed.Min},
		{"failure.glyphMaxSize", c.Failure.GlyphMaxSize},
		{"explosion.rings", float64(c.Explosion.Rings)},
		{"explosion.ringStep", c.Explosion.RingStep},
		{"beamRetry.attempts", float64(c.BeamRetry.Attempts)},
		{"beamRetry.initialDelay", float64(c.BeamRetry.InitialDelay)},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.Suction.Speed.Max < c.Suction.Speed.Min {
		return fmt.Errorf("%w: suction.speed max < min", ErrInvalidConfig)
	}
	if c.Beam.Speed.Max < c.Beam.Speed.Min {
		return fmt.Errorf("%w: beam.speed max < min", ErrInvalidConfig)
	}
	if c.Suction.Acceleration < 1 {
		return fmt.Errorf("%w: suction.acceleration must be >= 1, got %v", ErrInvalidConfig, c.Suction.Acceleration)
	}
	if !c.suctionArrives() {
		return fmt.Errorf("%w: suction.speed.min %v with acceleration %v never reaches the target before life runs out",
			ErrInvalidConfig, c.Suction.Speed.Min, c.Suction.Acceleration)
	}
	if c.Failure.Damping <= 0 || c.Failure.Damping > 1 {
		return fmt.Errorf("%w: failure.damping must be in (0, 1], got %v", ErrInvalidConfig, c.Failure.Damping)
	}
	if c.Connection.RegenChance < 0 || c.Connection.RegenChance > 1 {
		return fmt.Errorf("%w: connection.regenChance must be in [0, 1], got %v", ErrInvalidConfig, c.Connection.RegenChance)
	}
	for kind, hexes := range c.Palettes {
		for _, h := range hexes {
			if _, err := ParseHexColor(h); err != nil {
				return fmt.Errorf("%w: palette %s: %v", ErrInvalidConfig, kind, err)
			}
		}
	}
	return nil
}

// maxArrivalTicks bounds the suctionArrives walk for tiny life decays.
const maxArrivalTicks = 1 << 20

// suctionArrives reports whether the slowest suction particle covers its
// whole path within its life. It walks the per-tick progress recurrence of
// SuctionParticle.Update.
func (c *Config) suctionArrives() bool {
	ticks := min(int(math.Ceil(1/c.LifeDecay)), maxArrivalTicks)
	progress, speed := 0.0, c.Suction.Speed.Min
	for i := 0; i < ticks; i++ {
		progress += speed
		if progress >= 1 {
			return true
		}
		speed *= c.Suction.Acceleration
	}
	return false
}
