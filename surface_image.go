package ectofx

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- White pixel singleton (single-threaded use, guarded by the Director) ---

var whiteImage *ebiten.Image
var whiteSubImage *ebiten.Image

// ensureWhiteSubImage returns the center pixel of a lazily-initialized 3x3
// white image. Sampling the center avoids bleeding at triangle edges.
func ensureWhiteSubImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// drawState is one entry of the Save/Restore stack.
type drawState struct {
	geom      ebiten.GeoM
	alpha     float64
	glowColor Color
	glowBlur  float64
	blend     BlendMode
}

// ImageSurface implements Surface over an *ebiten.Image using vector paths
// triangulated into DrawTriangles calls. Logical coordinates are multiplied
// by the device scale before hitting the image.
type ImageSurface struct {
	img   *ebiten.Image
	scale float64
	state drawState
	stack []drawState
	glow  glowCache

	verts []ebiten.Vertex
	inds  []uint16
}

// NewImageSurface wraps img. scale is the device pixel ratio; values <= 0
// default to 1.
func NewImageSurface(img *ebiten.Image, scale float64) *ImageSurface {
	s := &ImageSurface{img: img}
	s.SetScale(scale)
	return s
}

// Image returns the wrapped image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// DeviceScale returns the current device pixel ratio.
func (s *ImageSurface) DeviceScale() float64 {
	return s.scale
}

// SetScale recomputes the base transform for a new device pixel ratio and
// resets the draw state stack.
func (s *ImageSurface) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.scale = scale
	s.stack = s.stack[:0]
	s.state = drawState{alpha: 1}
	s.state.geom.Scale(scale, scale)
}

// Size returns the logical dimensions (pixels divided by the device scale).
func (s *ImageSurface) Size() (w, h float64) {
	b := s.img.Bounds()
	return float64(b.Dx()) / s.scale, float64(b.Dy()) / s.scale
}

// Clear erases the whole image.
func (s *ImageSurface) Clear() {
	s.img.Clear()
}

func (s *ImageSurface) Save() {
	s.stack = append(s.stack, s.state)
}

func (s *ImageSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate, Rotate and Scale prepend to the current transform so they apply
// in local space, matching canvas semantics.
func (s *ImageSurface) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(s.state.geom)
	s.state.geom = m
}

func (s *ImageSurface) Rotate(theta float64) {
	var m ebiten.GeoM
	m.Rotate(theta)
	m.Concat(s.state.geom)
	s.state.geom = m
}

func (s *ImageSurface) Scale(sx, sy float64) {
	var m ebiten.GeoM
	m.Scale(sx, sy)
	m.Concat(s.state.geom)
	s.state.geom = m
}

func (s *ImageSurface) SetAlpha(a float64) {
	s.state.alpha = clamp01(a)
}

func (s *ImageSurface) SetGlow(c Color, blur float64) {
	s.state.glowColor = c
	s.state.glowBlur = math.Max(blur, 0)
}

func (s *ImageSurface) SetBlend(mode BlendMode) {
	s.state.blend = mode
}

func (s *ImageSurface) FillCircle(center Vec2, radius float64, c Color) {
	if radius <= 0 {
		return
	}
	cx, cy := s.apply(center.X, center.Y)
	r := radius * s.linearScale()
	s.drawHalo(cx, cy, r)

	var p vector.Path
	p.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	p.Close()
	s.fill(&p, c, s.state.blend)
}

func (s *ImageSurface) StrokeCircle(center Vec2, radius, width float64, c Color) {
	if radius <= 0 {
		return
	}
	cx, cy := s.apply(center.X, center.Y)
	k := s.linearScale()
	s.drawHalo(cx, cy, radius*k)

	var p vector.Path
	p.Arc(float32(cx), float32(cy), float32(radius*k), 0, 2*math.Pi, vector.Clockwise)
	p.Close()
	s.stroke(&p, width*k, CapButt, c, s.state.blend)
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c Color) {
	s.FillPolygon([]Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, c)
}

func (s *ImageSurface) FillPolygon(points []Vec2, c Color) {
	if len(points) < 3 {
		return
	}
	p := s.buildPath(points, true)
	if s.state.glowBlur > 0 {
		s.stroke(p, s.state.glowBlur*s.linearScale(), CapRound,
			s.state.glowColor.WithAlpha(0.35), BlendAdd)
	}
	s.fill(p, c, s.state.blend)
}

func (s *ImageSurface) StrokePolyline(points []Vec2, width float64, c Color, lineCap LineCap) {
	if len(points) < 2 {
		return
	}
	p := s.buildPath(points, false)
	k := s.linearScale()
	if s.state.glowBlur > 0 {
		s.stroke(p, (width+s.state.glowBlur)*k, CapRound,
			s.state.glowColor.WithAlpha(0.35), BlendAdd)
	}
	s.stroke(p, width*k, lineCap, c, s.state.blend)
}

// Dispose releases the glow textures. The wrapped image is owned by the caller.
func (s *ImageSurface) Dispose() {
	s.glow.dispose()
}

func (s *ImageSurface) apply(x, y float64) (float64, float64) {
	return s.state.geom.Apply(x, y)
}

// linearScale approximates the transform's uniform scale factor.
func (s *ImageSurface) linearScale() float64 {
	g := s.state.geom
	a, b := g.Element(0, 0), g.Element(0, 1)
	c, d := g.Element(1, 0), g.Element(1, 1)
	return math.Sqrt(math.Abs(a*d - b*c))
}

func (s *ImageSurface) buildPath(points []Vec2, closed bool) *vector.Path {
	var p vector.Path
	for i, pt := range points {
		x, y := s.apply(pt.X, pt.Y)
		if i == 0 {
			p.MoveTo(float32(x), float32(y))
		} else {
			p.LineTo(float32(x), float32(y))
		}
	}
	if closed {
		p.Close()
	}
	return &p
}

// drawHalo draws a feathered glow circle centered at (cx, cy) in device
// space when glow is enabled.
func (s *ImageSurface) drawHalo(cx, cy, r float64) {
	if s.state.glowBlur <= 0 {
		return
	}
	outer := r + s.state.glowBlur*s.linearScale()
	img, cached := s.glow.circle(outer)
	k := outer / cached

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-cached, -cached)
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(cx, cy)
	gc := s.state.glowColor
	a := gc.A * s.state.alpha * 0.6
	op.ColorScale.Scale(float32(gc.R*a), float32(gc.G*a), float32(gc.B*a), float32(a))
	op.Blend = BlendAdd.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(img, &op)
}

func (s *ImageSurface) fill(p *vector.Path, c Color, blend BlendMode) {
	s.verts, s.inds = p.AppendVerticesAndIndicesForFilling(s.verts[:0], s.inds[:0])
	s.submit(c, blend)
}

func (s *ImageSurface) stroke(p *vector.Path, width float64, lineCap LineCap, c Color, blend BlendMode) {
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	}
	if lineCap == CapRound {
		op.LineCap = vector.LineCapRound
	}
	s.verts, s.inds = p.AppendVerticesAndIndicesForStroke(s.verts[:0], s.inds[:0], op)
	s.submit(c, blend)
}

// submit colors the accumulated vertices and draws them in one call.
func (s *ImageSurface) submit(c Color, blend BlendMode) {
	if len(s.inds) == 0 {
		return
	}
	a := c.A * s.state.alpha
	r, g, b := float32(c.R*a), float32(c.G*a), float32(c.B*a)
	for i := range s.verts {
		v := &s.verts[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, float32(a)
	}

	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	op.Blend = blend.EbitenBlend()
	s.img.DrawTriangles(s.verts, s.inds, ensureWhiteSubImage(), &op)
}
