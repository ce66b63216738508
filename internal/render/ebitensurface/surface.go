// Package ebitensurface implements render.Surface on an offscreen ebiten
// image that the window composites every frame.
package ebitensurface

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-graph/internal/render"
	"github.com/iburimskiy/particle-graph/internal/theme"
)

// gradientSegments is how many solid strokes approximate one gradient line.
const gradientSegments = 8

type Surface struct {
	layer *ebiten.Image
	white *ebiten.Image

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

var (
	_ render.Surface = (*Surface)(nil)
	_ render.Resizer = (*Surface)(nil)
)

func New() *Surface {
	return &Surface{}
}

// Layer is the image the scene is painted on. It is nil until the surface
// has a positive size.
func (s *Surface) Layer() *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.layer
}

// Resize reallocates the layer. A non-positive size drops it and turns every
// draw call into a no-op. A nil *Surface ignores it.
func (s *Surface) Resize(width, height int) {
	if s == nil {
		return
	}
	if s.layer != nil {
		if b := s.layer.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
		s.layer.Deallocate()
		s.layer = nil
	}
	if width <= 0 || height <= 0 {
		return
	}
	s.layer = ebiten.NewImage(width, height)
}

func (s *Surface) Clear() {
	if s.Layer() == nil {
		return
	}
	s.layer.Clear()
}

func (s *Surface) FillCircle(x, y, r float64, c theme.RGBA) {
	if s.Layer() == nil {
		return
	}
	vector.DrawFilledCircle(s.layer, float32(x), float32(y), float32(r), c.NRGBA(), true)
}

func (s *Surface) StrokeCircle(x, y, r, width float64, c theme.RGBA) {
	if s.Layer() == nil {
		return
	}
	vector.StrokeCircle(s.layer, float32(x), float32(y), float32(r), float32(width), c.NRGBA(), true)
}

// FillDiamond fills the rotated square as a four-point path, the corners
// sitting r*sqrt(2) from the center along each axis.
func (s *Surface) FillDiamond(x, y, r float64, c theme.RGBA) {
	if s.Layer() == nil {
		return
	}
	d := float32(r * math.Sqrt2)
	cx, cy := float32(x), float32(y)

	s.path = vector.Path{}
	s.path.MoveTo(cx, cy-d)
	s.path.LineTo(cx+d, cy)
	s.path.LineTo(cx, cy+d)
	s.path.LineTo(cx-d, cy)
	s.path.Close()

	s.vertices, s.indices = s.path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	cr, cg, cb, ca := straight(c)
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = cr
		s.vertices[i].ColorG = cg
		s.vertices[i].ColorB = cb
		s.vertices[i].ColorA = ca
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.layer.DrawTriangles(s.vertices, s.indices, s.whitePixel(), op)
}

// GradientLine strokes the line as gradientSegments pieces, each painted
// with the gradient color at its midpoint.
func (s *Surface) GradientLine(x0, y0, x1, y1, width float64, stops []render.GradientStop) {
	if s.Layer() == nil {
		return
	}
	dx, dy := x1-x0, y1-y0
	for i := 0; i < gradientSegments; i++ {
		t0 := float64(i) / gradientSegments
		t1 := float64(i+1) / gradientSegments
		c := render.GradientAt(stops, (t0+t1)/2)
		vector.StrokeLine(s.layer,
			float32(x0+dx*t0), float32(y0+dy*t0),
			float32(x0+dx*t1), float32(y0+dy*t1),
			float32(width), c.NRGBA(), true)
	}
}

func (s *Surface) whitePixel() *ebiten.Image {
	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.white
}

// straight returns vertex color components in straight alpha, the default
// DrawTriangles color scale mode.
func straight(c theme.RGBA) (r, g, b, a float32) {
	n := c.NRGBA()
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}
