package render

import (
	"math"

	"github.com/iburimskiy/particle-graph/internal/particle"
	"github.com/iburimskiy/particle-graph/internal/theme"
)

const (
	ringAlpha     = 0.2
	ringWidth     = 1.0
	ringBase      = 4.0
	ringAmplitude = 2.0

	edgeWidth       = 0.5
	edgeEndAlpha    = 0.2
	edgeMiddleAlpha = 0.1

	pulseRadius = 1.0
)

// Scene is everything needed to paint one frame.
type Scene struct {
	Particles []particle.Particle
	Mode      theme.Mode
	// Width is the canvas width; it sets the edge draw range.
	Width float64
	// Time is wall-clock seconds; it drives every oscillation.
	Time float64
}

// Draw clears s and paints the scene in particle order. A node's visible
// edges are painted right after the node itself.
func Draw(s Surface, sc Scene) {
	s.Clear()

	pal := theme.PaletteFor(sc.Mode)
	stops := EdgeStops(pal.Edge)

	for i := range sc.Particles {
		p := &sc.Particles[i]
		if !p.IsNode {
			s.FillCircle(p.Position.X, p.Position.Y, p.Radius, p.Color)
			continue
		}

		drawNode(s, p, sc.Time)
		for _, j := range p.Connections {
			q := &sc.Particles[j]
			if !particle.EdgeVisible(p, q, sc.Width) {
				continue
			}
			s.GradientLine(p.Position.X, p.Position.Y, q.Position.X, q.Position.Y, edgeWidth, stops)

			at := p.Position.Lerp(q.Position, PulseFraction(sc.Time, p.PulsePhase))
			s.FillCircle(at.X, at.Y, pulseRadius, pal.Pulse)
		}
	}
}

func drawNode(s Surface, p *particle.Particle, now float64) {
	s.FillDiamond(p.Position.X, p.Position.Y, p.Radius, p.Color)
	s.StrokeCircle(p.Position.X, p.Position.Y, RingRadius(now, p.PulsePhase), ringWidth, p.Color.WithAlpha(ringAlpha))
}

// RingRadius is the radius of a node's pulsing ring, in [2, 6].
func RingRadius(now, phase float64) float64 {
	return math.Sin(now+phase)*ringAmplitude + ringBase
}

// PulseFraction places an edge's data pulse along the edge, in [0, 1].
// Only the source node's phase matters.
func PulseFraction(now, phase float64) float64 {
	return (math.Sin(now+phase) + 1) / 2
}

// EdgeStops is the symmetric fade applied to every edge.
func EdgeStops(base theme.RGBA) []GradientStop {
	return []GradientStop{
		{Offset: 0, Color: base.WithAlpha(edgeEndAlpha)},
		{Offset: 0.5, Color: base.WithAlpha(edgeMiddleAlpha)},
		{Offset: 1, Color: base.WithAlpha(edgeEndAlpha)},
	}
}
