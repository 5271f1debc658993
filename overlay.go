package ectofx

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayPanel is reused between frames; 180x80 fits the stats text.
var overlayPanel *ebiten.Image

// drawOverlay prints FPS, TPS and entity counts in the top-left corner.
// Must hold d.mu.
func (d *Director) drawOverlay(screen *ebiten.Image) {
	if overlayPanel == nil {
		overlayPanel = ebiten.NewImage(180, 80)
	}
	overlayPanel.Clear()
	// Semi-transparent background for readability
	overlayPanel.Fill(color.RGBA{0, 0, 0, 128})

	ebitenutil.DebugPrint(overlayPanel, d.overlayText())
	screen.DrawImage(overlayPanel, nil)
}

func (d *Director) overlayText() string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nparticles: %d/%d\neffects: %d\ntick: %v",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		len(d.particles), d.cfg.MaxParticles, len(d.effects), d.last.elapsed)
}
