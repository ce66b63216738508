// Package theme holds the dark and light particle palettes.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"strings"
)

// Mode selects one of the two palettes.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

var ErrUnknownMode = errors.New("unknown theme mode")

// ParseMode accepts "dark" or "light" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// RGBA is an 8-bit color with a straight (non-premultiplied) alpha in [0, 1],
// the same shape as a CSS rgba() value.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// NRGBA converts to the image/color straight-alpha form.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(c.A) * 255))}
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// AlphaRange describes alpha = rand*Span + Min.
type AlphaRange struct {
	Min  float64
	Span float64
}

// Sample draws an alpha from the range.
func (r AlphaRange) Sample(rng *rand.Rand) float64 {
	return rng.Float64()*r.Span + r.Min
}

// Max is the exclusive upper bound of the range.
func (r AlphaRange) Max() float64 { return r.Min + r.Span }

// Palette holds every color the particle scene uses for one mode.
type Palette struct {
	Node       RGBA // alpha ignored, sampled from NodeAlpha
	NodeAlpha  AlphaRange
	Point      RGBA // alpha ignored, sampled from PointAlpha
	PointAlpha AlphaRange
	Edge       RGBA // gradient base, stops set their own alpha
	Pulse      RGBA
	Background RGBA
}

var (
	darkPalette = Palette{
		Node:       RGBA{R: 77, G: 208, B: 225, A: 1},
		NodeAlpha:  AlphaRange{Min: 0.1, Span: 0.5},
		Point:      RGBA{R: 0, G: 149, B: 255, A: 1},
		PointAlpha: AlphaRange{Min: 0.05, Span: 0.2},
		Edge:       RGBA{R: 0, G: 149, B: 255, A: 1},
		Pulse:      RGBA{R: 77, G: 208, B: 225, A: 0.8},
		Background: RGBA{R: 0x12, G: 0x1A, B: 0x21, A: 1},
	}
	lightPalette = Palette{
		Node:       RGBA{R: 2, G: 119, B: 189, A: 1},
		NodeAlpha:  AlphaRange{Min: 0.1, Span: 0.4},
		Point:      RGBA{R: 3, G: 155, B: 229, A: 1},
		PointAlpha: AlphaRange{Min: 0.03, Span: 0.2},
		Edge:       RGBA{R: 3, G: 155, B: 229, A: 1},
		Pulse:      RGBA{R: 2, G: 119, B: 189, A: 0.8},
		Background: RGBA{R: 0xF5, G: 0xFB, B: 0xFF, A: 1},
	}
)

// PaletteFor returns the palette for m. Anything other than Dark is Light,
// matching how the theme provider resolves "system".
func PaletteFor(m Mode) Palette {
	if m == Dark {
		return darkPalette
	}
	return lightPalette
}

// NodeColor samples a node color for m.
func NodeColor(rng *rand.Rand, m Mode) RGBA {
	p := PaletteFor(m)
	return p.Node.WithAlpha(p.NodeAlpha.Sample(rng))
}

// PointColor samples a plain particle color for m.
func PointColor(rng *rand.Rand, m Mode) RGBA {
	p := PaletteFor(m)
	return p.Point.WithAlpha(p.PointAlpha.Sample(rng))
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
