package ectofx

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot of the next composed frame. Draw
// writes it to ScreenshotDir as <timestamp>_<label>.png.
func (d *Director) Screenshot(label string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shots = append(d.shots, label)
}

// pendingShots is one captured frame and the labels queued for it.
type pendingShots struct {
	dir    string
	labels []string
	frame  image.Image
}

// takeShots drains the queue and captures screen. It returns nil when
// nothing is queued. Must hold d.mu.
func (d *Director) takeShots(screen *ebiten.Image) *pendingShots {
	if len(d.shots) == 0 {
		return nil
	}
	ps := &pendingShots{dir: d.ScreenshotDir, labels: d.shots, frame: straightAlpha(screen)}
	d.shots = nil
	return ps
}

// straightAlpha reads src (premultiplied) into a straight-alpha image.
func straightAlpha(src *ebiten.Image) *image.NRGBA {
	b := src.Bounds()
	premul := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	src.ReadPixels(premul.Pix)
	out := image.NewNRGBA(premul.Rect)
	draw.Draw(out, out.Rect, premul, image.Point{}, draw.Src)
	return out
}

// save writes one PNG per label. Failures are logged, not returned.
func (ps *pendingShots) save(logger *log.Logger) {
	if err := os.MkdirAll(ps.dir, 0o755); err != nil {
		logger.Printf("screenshot: %v", err)
		return
	}
	stamp := time.Now().Format("20060102_150405")
	for _, label := range ps.labels {
		path := filepath.Join(ps.dir, stamp+"_"+shotName(label)+".png")
		if err := savePNG(path, ps.frame); err != nil {
			logger.Printf("screenshot: %v", err)
		}
	}
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// shotName maps a label onto [A-Za-z0-9.-], replacing anything else with '_'.
func shotName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
