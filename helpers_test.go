package ectofx

import (
	"io"
	"log"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// recordingSurface is a Surface that records draw calls instead of drawing.
type recordingSurface struct {
	w, h   float64
	depth  int
	alpha  float64
	clears int
	ops    []string
	alphas []float64 // alpha in effect at every primitive
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h, alpha: 1}
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }
func (s *recordingSurface) Clear()                   { s.clears++; s.ops = s.ops[:0]; s.alphas = s.alphas[:0] }
func (s *recordingSurface) Save()                    { s.depth++ }
func (s *recordingSurface) Restore()                 { s.depth--; s.alpha = 1 }
func (s *recordingSurface) Translate(x, y float64)   {}
func (s *recordingSurface) Rotate(theta float64)     {}
func (s *recordingSurface) Scale(sx, sy float64)     {}
func (s *recordingSurface) SetAlpha(a float64)       { s.alpha = a }
func (s *recordingSurface) SetGlow(Color, float64)   {}
func (s *recordingSurface) SetBlend(BlendMode)       {}

func (s *recordingSurface) record(op string) {
	s.ops = append(s.ops, op)
	s.alphas = append(s.alphas, s.alpha)
}

func (s *recordingSurface) FillCircle(Vec2, float64, Color)                { s.record("fillCircle") }
func (s *recordingSurface) StrokeCircle(Vec2, float64, float64, Color)     { s.record("strokeCircle") }
func (s *recordingSurface) FillRect(x, y, w, h float64, c Color)           { s.record("fillRect") }
func (s *recordingSurface) FillPolygon([]Vec2, Color)                      { s.record("fillPolygon") }
func (s *recordingSurface) StrokePolyline([]Vec2, float64, Color, LineCap) { s.record("strokePolyline") }

func (s *recordingSurface) count(op string) int {
	n := 0
	for _, o := range s.ops {
		if o == op {
			n++
		}
	}
	return n
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// testConfig returns the default config with a fixed seed.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

// newTestDirector returns a ready Director rendering into a 640x480
// recording surface, with logging discarded.
func newTestDirector(t *testing.T, cfg Config) (*Director, *recordingSurface) {
	t.Helper()
	s := newRecordingSurface(640, 480)
	d, err := NewDirector(Options{
		Config:  &cfg,
		Surface: s,
		Logger:  discardLogger(),
	})
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}
	t.Cleanup(d.Close)
	return d, s
}

// newUnreadyDirector returns a Director with no surface.
func newUnreadyDirector(t *testing.T, cfg Config) *Director {
	t.Helper()
	d, err := NewDirector(Options{
		Config: &cfg,
		Logger: discardLogger(),
	})
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}
	t.Cleanup(d.Close)
	return d
}
