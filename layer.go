package ectofx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Layer is the persistent offscreen canvas the Director renders into. It is
// composed onto the host screen in Draw. Unlike the host screen, the layer
// survives between frames, so Draw can be called any number of times per
// tick.
//
// A Layer whose image was lost (Invalidate) or no longer matches the wanted
// size is rebuilt by ensure before the next render.
type Layer struct {
	image   *ebiten.Image
	surface *ImageSurface
	w, h    int     // logical size
	scale   float64 // device pixel ratio
	valid   bool
}

// NewLayer creates a layer for a w x h logical area at the given device scale.
func NewLayer(w, h int, scale float64) *Layer {
	l := &Layer{}
	l.Resize(w, h, scale)
	l.ensure()
	return l
}

// Image returns the backing image, or nil before the first ensure.
func (l *Layer) Image() *ebiten.Image {
	return l.image
}

// Surface returns the drawing surface over the backing image.
func (l *Layer) Surface() *ImageSurface {
	l.ensure()
	return l.surface
}

// Size returns the logical size.
func (l *Layer) Size() (w, h int) {
	return l.w, l.h
}

// Scale returns the device pixel ratio.
func (l *Layer) Scale() float64 {
	return l.scale
}

// Resize records a new logical size and device scale. The image is rebuilt
// lazily by the next render.
func (l *Layer) Resize(w, h int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	l.w, l.h, l.scale = max(w, 1), max(h, 1), scale
}

// Invalidate marks the backing image as lost. The next render recreates it.
func (l *Layer) Invalidate() {
	l.valid = false
}

// pixelSize returns the backing image size for the current logical size.
func (l *Layer) pixelSize() (int, int) {
	return int(math.Ceil(float64(l.w) * l.scale)), int(math.Ceil(float64(l.h) * l.scale))
}

// ensure rebuilds the image if it is missing, invalidated or the wrong size.
// It reports whether a rebuild happened.
func (l *Layer) ensure() bool {
	pw, ph := l.pixelSize()
	if l.valid && l.image != nil {
		b := l.image.Bounds()
		if b.Dx() == pw && b.Dy() == ph {
			if l.surface.DeviceScale() != l.scale {
				l.surface.SetScale(l.scale)
			}
			return false
		}
	}
	l.dispose()
	l.image = ebiten.NewImage(pw, ph)
	l.surface = NewImageSurface(l.image, l.scale)
	l.valid = true
	return true
}

// DrawTo composites the layer onto dst at the origin.
func (l *Layer) DrawTo(dst *ebiten.Image) {
	if l.image == nil || !l.valid {
		return
	}
	var op ebiten.DrawImageOptions
	op.Blend = BlendNormal.EbitenBlend()
	dst.DrawImage(l.image, &op)
}

func (l *Layer) dispose() {
	if l.surface != nil {
		l.surface.Dispose()
		l.surface = nil
	}
	if l.image != nil {
		l.image.Deallocate()
		l.image = nil
	}
}

// Dispose releases the backing image.
func (l *Layer) Dispose() {
	l.dispose()
	l.valid = false
}
