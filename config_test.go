package ectofx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigOverridesSubset(t *testing.T) {
	data := []byte(`
seed: 7
maxParticles: 300
celebration:
  particles: 100
beamRetry:
  attempts: 3
  initialDelay: 20ms
palettes:
  ghost_captured: ["#FF0000", "#00FF00"]
`)
	cfg, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 7 || cfg.MaxParticles != 300 || cfg.Celebration.Particles != 100 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.BeamRetry.Attempts != 3 || cfg.BeamRetry.InitialDelay != 20*time.Millisecond {
		t.Errorf("retry = %+v", cfg.BeamRetry)
	}
	// untouched fields keep defaults
	if cfg.Suction.Particles != 50 || cfg.Celebration.Gravity != 0.1 {
		t.Errorf("defaults lost: suction %d gravity %v", cfg.Suction.Particles, cfg.Celebration.Gravity)
	}
	if got := cfg.Palette(GhostCaptured); len(got) != 2 || got[0] != (Color{1, 0, 0, 1}) {
		t.Errorf("palette override = %v", got)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero max particles", "maxParticles: 0"},
		{"negative decay", "lifeDecay: -1"},
		{"damping above one", "failure: {damping: 1.5}"},
		{"deceleration", "suction: {acceleration: 0.9}"},
		{"regen chance", "connection: {regenChance: 2}"},
		{"bad palette", "palettes: {default: [\"#XYZ\"]}"},
		{"speed range", "suction: {speed: {min: 0.05, max: 0.01}}"},
		{"beam speed range", "beam: {speed: {min: 9, max: 2}}"},
		{"zero beam speed", "beam: {speed: {min: 0, max: 2}}"},
		{"zero glyph size", "failure: {glyphMaxSize: 0}"},
		{"zero rings", "explosion: {rings: 0}"},
		{"zero ring step", "explosion: {ringStep: 0}"},
		{"zero retry attempts", "beamRetry: {attempts: 0}"},
		{"zero retry delay", "beamRetry: {initialDelay: 0s}"},
		{"suction never arrives", "suction: {acceleration: 1, speed: {min: 0.01, max: 0.05}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestSuctionArrivalAtConstantSpeed(t *testing.T) {
	// 0.02 per tick covers the path in 50 ticks, inside the 63-tick life
	cfg, err := LoadConfig([]byte("suction: {acceleration: 1, speed: {min: 0.02, max: 0.05}}"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	p := newSuctionParticle(NewRand(1), Vec2{}, Vec2{100, 0}, &cfg)
	p.speed = cfg.Suction.Speed.Min
	for p.Alive() {
		p.Update(1)
	}
	assertNear(t, "progress", p.Progress(), 1)
	assertNear(t, "end x", p.Position().X, 100)
	assertNear(t, "end y", p.Position().Y, 0)
}

func TestLoadConfigMalformed(t *testing.T) {
	_, err := LoadConfig([]byte("maxParticles: [1, 2"))
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want a parse error", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.yaml")
	if err := os.WriteFile(path, []byte("maxParticles: 123\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxParticles != 123 {
		t.Errorf("MaxParticles = %d", cfg.MaxParticles)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: want error")
	}
}

func TestNewDirectorRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Explosion.Growth = 0
	if _, err := NewDirector(Options{Config: &cfg}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}
