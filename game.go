package ectofx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Director to ebiten.Game so it can run standalone or be
// embedded in a host game. Update drives the frame clock, Layout forwards
// size changes to Resize and Draw composes the effect layer.
type Game struct {
	Director *Director
	// Background is drawn under the effects. Nil leaves the screen as is.
	Background func(screen *ebiten.Image)
	// OnUpdate runs before the Director's Update each frame.
	OnUpdate func() error

	w, h  int
	scale float64
}

// NewGame starts d and wraps it.
func NewGame(d *Director) *Game {
	d.Start()
	return &Game{Director: d}
}

func (g *Game) Update() error {
	if g.OnUpdate != nil {
		if err := g.OnUpdate(); err != nil {
			return err
		}
	}
	return g.Director.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.Background != nil {
		g.Background(screen)
	}
	g.Director.Draw(screen)
}

// Layout resizes the Director when the window changes and returns a screen
// at device resolution so the layer is composed 1:1.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if outsideWidth != g.w || outsideHeight != g.h || scale != g.scale {
		g.w, g.h, g.scale = outsideWidth, outsideHeight, scale
		g.Director.SetDeviceScale(scale)
		g.Director.Resize(outsideWidth, outsideHeight)
	}
	return int(math.Ceil(float64(outsideWidth) * scale)), int(math.Ceil(float64(outsideHeight) * scale))
}
