// Package pngsurface rasterizes a scene with gg and encodes it as PNG.
package pngsurface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"git.sr.ht/~sbinet/gg"

	"github.com/iburimskiy/particle-graph/internal/render"
	"github.com/iburimskiy/particle-graph/internal/theme"
)

// Options controls the final composite.
type Options struct {
	Background theme.RGBA
	// Opacity scales the particle layer over the background.
	Opacity float64
}

// Surface paints onto an in-memory gg context with a transparent start.
type Surface struct {
	dc *gg.Context
}

var _ render.Surface = (*Surface)(nil)

func New(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(max(width, 0), max(height, 0))}
}

// Image returns the painted layer.
func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) Clear() {
	s.dc.SetColor(color.Transparent)
	s.dc.Clear()
}

func (s *Surface) FillCircle(x, y, r float64, c theme.RGBA) {
	s.dc.DrawCircle(x, y, r)
	s.dc.SetColor(c.NRGBA())
	s.dc.Fill()
}

// FillDiamond puts the corners of the rotated square r*sqrt(2) from the
// center.
func (s *Surface) FillDiamond(x, y, r float64, c theme.RGBA) {
	d := r * math.Sqrt2
	s.dc.MoveTo(x, y-d)
	s.dc.LineTo(x+d, y)
	s.dc.LineTo(x, y+d)
	s.dc.LineTo(x-d, y)
	s.dc.ClosePath()
	s.dc.SetColor(c.NRGBA())
	s.dc.Fill()
}

func (s *Surface) StrokeCircle(x, y, r, width float64, c theme.RGBA) {
	s.dc.DrawCircle(x, y, r)
	s.dc.SetLineWidth(width)
	s.dc.SetColor(c.NRGBA())
	s.dc.Stroke()
}

func (s *Surface) GradientLine(x0, y0, x1, y1, width float64, stops []render.GradientStop) {
	if len(stops) == 0 {
		return
	}
	grad := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, st := range stops {
		grad.AddColorStop(st.Offset, st.Color.NRGBA())
	}
	s.dc.SetStrokeStyle(grad)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.Stroke()
}

// Write paints one frame, composites it over the background at the given
// opacity and encodes the result as PNG.
func Write(w io.Writer, width, height int, opts Options, paint func(render.Surface)) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}

	layer := New(width, height)
	layer.Clear()
	paint(layer)

	out := gg.NewContext(width, height)
	out.SetColor(opts.Background.NRGBA())
	out.Clear()

	dst, ok := out.Image().(draw.Image)
	if !ok {
		return fmt.Errorf("unexpected canvas type %T", out.Image())
	}
	mask := image.NewUniform(color.Alpha{A: uint8(clamp01(opts.Opacity)*255 + 0.5)})
	draw.DrawMask(dst, dst.Bounds(), layer.Image(), image.Point{}, mask, image.Point{}, draw.Over)

	return out.EncodePNG(w)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
