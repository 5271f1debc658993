package ectofx

// LineCap selects how the ends of stroked polylines are drawn.
type LineCap uint8

const (
	CapButt  LineCap = iota // flat end exactly at the endpoint
	CapRound                // semicircular end
)

// Surface is the drawing-surface handle the engine renders into. It follows
// the immediate-mode 2D canvas model: a stack of draw states (transform,
// alpha, glow, blend) plus primitive fill and stroke calls.
//
// ImageSurface implements it over an *ebiten.Image. Hosts with a different
// backend can supply their own implementation.
type Surface interface {
	// Size returns the logical surface dimensions.
	Size() (w, h float64)
	// Clear erases the whole surface to transparent.
	Clear()

	// Save pushes a copy of the current draw state.
	Save()
	// Restore pops the draw state pushed by the matching Save.
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)
	Scale(sx, sy float64)
	// SetAlpha sets the global opacity applied to subsequent draws.
	SetAlpha(a float64)
	// SetGlow enables a soft halo of the given color and blur radius around
	// subsequent draws. A blur of 0 disables it.
	SetGlow(c Color, blur float64)
	SetBlend(mode BlendMode)

	FillCircle(center Vec2, radius float64, c Color)
	StrokeCircle(center Vec2, radius, width float64, c Color)
	FillRect(x, y, w, h float64, c Color)
	FillPolygon(points []Vec2, c Color)
	StrokePolyline(points []Vec2, width float64, c Color, cap LineCap)
}
