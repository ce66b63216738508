package ebitensurface

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/particle-graph/internal/engine"
	"github.com/iburimskiy/particle-graph/internal/render"
	"github.com/iburimskiy/particle-graph/internal/theme"
)

func TestNilSurfaceDrawsNothing(t *testing.T) {
	var s *Surface
	assert.Nil(t, s.Layer())
	assert.NotPanics(t, func() {
		s.Resize(100, 50)
		s.Clear()
		s.FillCircle(1, 1, 1, theme.RGBA{A: 1})
		s.FillDiamond(1, 1, 1, theme.RGBA{A: 1})
		s.StrokeCircle(1, 1, 4, 1, theme.RGBA{A: 1})
		s.GradientLine(0, 0, 5, 5, 0.5, render.EdgeStops(theme.RGBA{A: 1}))
	})
	assert.Nil(t, s.Layer())
}

func TestEngineOnNilSurface(t *testing.T) {
	var s *Surface
	q, d := engine.NewFrameQueue(), engine.NewDisplay(300, 200)
	e := engine.New(s, q, d, engine.Options{Theme: theme.Dark, Rand: rand.New(rand.NewPCG(1, 2))})

	assert.NotPanics(t, func() {
		e.Mount()
		q.RunFrame()
		d.Resize(450, 200)
		q.RunFrame()
	})
	assert.Len(t, e.Particles(), 30)
	e.Unmount()
	assert.Equal(t, 0, q.Pending())
}
