// Package render draws a particle scene onto a canvas-like Surface.
package render

import "github.com/iburimskiy/particle-graph/internal/theme"

// GradientStop is one color stop of a linear gradient, Offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  theme.RGBA
}

// Surface is a 2D immediate-mode drawing target.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	FillCircle(x, y, r float64, c theme.RGBA)
	// FillDiamond fills a square of half-side r centered on (x, y) and
	// rotated 45 degrees.
	FillDiamond(x, y, r float64, c theme.RGBA)
	StrokeCircle(x, y, r, width float64, c theme.RGBA)
	// GradientLine strokes a line whose color follows stops from
	// (x0, y0) to (x1, y1).
	GradientLine(x0, y0, x1, y1, width float64, stops []GradientStop)
}

// Resizer is implemented by surfaces whose backing store tracks the
// viewport size.
type Resizer interface {
	Resize(width, height int)
}

// Discard is a Surface that draws nothing.
var Discard Surface = discard{}

type discard struct{}

func (discard) Clear()                                                   {}
func (discard) FillCircle(x, y, r float64, c theme.RGBA)                 {}
func (discard) FillDiamond(x, y, r float64, c theme.RGBA)                {}
func (discard) StrokeCircle(x, y, r, width float64, c theme.RGBA)        {}
func (discard) GradientLine(x0, y0, x1, y1, w float64, s []GradientStop) {}

// GradientAt evaluates stops at t by linear interpolation. Stops must be
// sorted by Offset; t outside the covered range takes the nearest end stop.
func GradientAt(stops []GradientStop, t float64) theme.RGBA {
	if len(stops) == 0 {
		return theme.RGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		return theme.RGBA{
			R: lerp8(a.Color.R, b.Color.R, f),
			G: lerp8(a.Color.G, b.Color.G, f),
			B: lerp8(a.Color.B, b.Color.B, f),
			A: a.Color.A + (b.Color.A-a.Color.A)*f,
		}
	}
	return stops[len(stops)-1].Color
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f + 0.5)
}
