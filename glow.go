package ectofx

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// glowCache holds feathered circle textures keyed by quantized radius. Halos
// are drawn by scaling the nearest cached texture, so only a handful of sizes
// are ever generated.
type glowCache struct {
	circles map[int]*ebiten.Image
}

// glowQuantum is the radius step between cached textures.
const glowQuantum = 8

func (g *glowCache) circle(radius float64) (*ebiten.Image, float64) {
	if g.circles == nil {
		g.circles = make(map[int]*ebiten.Image)
	}
	key := int(math.Ceil(radius/glowQuantum)) * glowQuantum
	if key < glowQuantum {
		key = glowQuantum
	}
	img, ok := g.circles[key]
	if !ok {
		img = generateCircle(float64(key))
		g.circles[key] = img
	}
	return img, float64(key)
}

func (g *glowCache) dispose() {
	for k, img := range g.circles {
		img.Deallocate()
		delete(g.circles, k)
	}
}

// generateCircle creates a feathered white circle image with the given radius.
// Uses smoothstep falloff and premultiplied alpha.
func generateCircle(radius float64) *ebiten.Image {
	size := int(math.Ceil(radius * 2))
	if size < 1 {
		size = 1
	}
	img := ebiten.NewImage(size, size)
	pix := make([]byte, size*size*4)

	cx, cy := radius, radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			dist := math.Sqrt(dx*dx+dy*dy) / radius

			var alpha float64
			if dist < 1 {
				t := 1 - dist
				alpha = t * t * (3 - 2*t)
			}

			a := uint8(alpha * 255)
			off := (y*size + x) * 4
			pix[off+0] = a
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	img.WritePixels(pix)
	return img
}
