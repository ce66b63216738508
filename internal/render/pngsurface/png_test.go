package pngsurface

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/iburimskiy/particle-graph/internal/particle"
	"github.com/iburimskiy/particle-graph/internal/render"
	"github.com/iburimskiy/particle-graph/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteComposite(t *testing.T) {
	bg := theme.RGBA{R: 18, G: 26, B: 33, A: 1}
	var buf bytes.Buffer
	err := Write(&buf, 64, 32, Options{Background: bg, Opacity: 1}, func(s render.Surface) {
		s.FillCircle(16, 16, 8, theme.RGBA{R: 255, A: 1})
		s.FillDiamond(48, 16, 8, theme.RGBA{B: 255, A: 1})
	})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())

	corner := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 18, G: 26, B: 33, A: 255}, corner)

	circle := color.NRGBAModel.Convert(img.At(16, 16)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, circle)

	diamond := color.NRGBAModel.Convert(img.At(48, 16)).(color.NRGBA)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, diamond)
}

func TestDiamondSpansHalfDiagonal(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, 64, 64, Options{Opacity: 1}, func(s render.Surface) {
		s.FillDiamond(32, 32, 10, theme.RGBA{G: 255, A: 1})
	})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	alpha := func(x, y int) uint8 {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
	}

	// Half-side 10 puts the corners 14.14 from the center.
	for _, p := range [][2]int{{44, 32}, {20, 32}, {32, 44}, {32, 20}} {
		assert.Equal(t, uint8(255), alpha(p[0], p[1]), "inside corner at %v", p)
	}
	for _, p := range [][2]int{{48, 32}, {16, 32}, {32, 48}, {32, 16}, {41, 41}} {
		assert.Zero(t, alpha(p[0], p[1]), "outside diamond at %v", p)
	}
}

func TestOpacityBlendsLayer(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, 8, 8, Options{Background: theme.RGBA{A: 1}, Opacity: 0.5}, func(s render.Surface) {
		s.FillCircle(4, 4, 8, theme.RGBA{R: 255, G: 255, B: 255, A: 1})
	})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	c := color.NRGBAModel.Convert(img.At(4, 4)).(color.NRGBA)
	assert.InDelta(t, 128, int(c.R), 2)
	assert.Equal(t, uint8(255), c.A)
}

func TestRendersScene(t *testing.T) {
	node := theme.RGBA{R: 77, G: 208, B: 225, A: 0.6}
	sc := render.Scene{
		Mode:  theme.Dark,
		Width: 100,
		Particles: []particle.Particle{
			{IsNode: true, Position: particle.Vec2{X: 10, Y: 10}, Radius: 4, Color: node, Connections: []int{1}},
			{IsNode: true, Position: particle.Vec2{X: 20, Y: 10}, Radius: 4, Color: node},
		},
	}
	var buf bytes.Buffer
	err := Write(&buf, 100, 40, Options{Opacity: 1}, func(s render.Surface) { render.Draw(s, sc) })
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	_, _, _, a := img.At(10, 10).RGBA()
	assert.NotZero(t, a)
	_, _, _, a = img.At(90, 35).RGBA()
	assert.Zero(t, a)
}

func TestWriteRejectsEmptyCanvas(t *testing.T) {
	called := false
	err := Write(&bytes.Buffer{}, 0, 10, Options{}, func(render.Surface) { called = true })
	require.Error(t, err)
	assert.False(t, called)
}
