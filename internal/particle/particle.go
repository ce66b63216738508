// Package particle generates and simulates the particle graph: a set of
// drifting points, about a fifth of which are nodes wired to their nearest
// node-neighbors.
package particle

import (
	"math"

	"github.com/iburimskiy/particle-graph/internal/theme"
)

const (
	// Spacing is the viewport width, in pixels, allotted per particle.
	Spacing = 15
	// NodeProbability is the chance a particle becomes a node.
	NodeProbability = 0.2
	// MaxConnections caps a node's out-degree.
	MaxConnections = 3
	// ConnectDivisor bounds neighbor search to width/ConnectDivisor.
	ConnectDivisor = 5
	// DrawDivisor bounds edge drawing to width/DrawDivisor.
	DrawDivisor = 4
)

// Vec2 is a 2D vector in canvas pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Len() float64    { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Lerp returns the point at fraction t from v to o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Particle is one animated point.
type Particle struct {
	Position Vec2
	Radius   float64
	// Velocity is applied once per tick; components flip sign on a wall hit.
	Velocity Vec2
	// Speed is sampled with the particle but does not drive motion.
	Speed       float64
	IsNode      bool
	Color       theme.RGBA
	Connections []int
	PulsePhase  float64
}

// Count returns how many particles a viewport of the given width holds.
func Count(width float64) int {
	if width <= 0 || math.IsNaN(width) {
		return 0
	}
	return int(math.Floor(width / Spacing))
}

// ConnectRange is the farthest a node looks for neighbors at build time.
func ConnectRange(width float64) float64 { return width / ConnectDivisor }

// DrawRange is the farthest apart two connected nodes may be and still have
// their edge drawn.
func DrawRange(width float64) float64 { return width / DrawDivisor }

// EdgeVisible reports whether the edge a->b should be drawn on a canvas of
// the given width.
func EdgeVisible(a, b *Particle, width float64) bool {
	return a.Position.Dist(b.Position) < DrawRange(width)
}
