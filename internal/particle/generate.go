package particle

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/iburimskiy/particle-graph/internal/theme"
)

// Generate builds a fresh particle set for a canvas of width x height and
// wires the node graph. Colors come from mode's palette.
func Generate(rng *rand.Rand, width, height float64, mode theme.Mode) []Particle {
	n := Count(width)
	if height < 0 {
		height = 0
	}
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = newParticle(rng, width, height, mode)
	}
	Connect(rng, particles, width)
	return particles
}

func newParticle(rng *rand.Rand, width, height float64, mode theme.Mode) Particle {
	isNode := rng.Float64() < NodeProbability

	p := Particle{
		Position: Vec2{X: rng.Float64() * width, Y: rng.Float64() * height},
		Speed:    rng.Float64()*0.2 + 0.05,
		Velocity: Vec2{X: rng.Float64()*0.6 - 0.3, Y: rng.Float64()*0.6 - 0.3},
		IsNode:   isNode,
	}
	if isNode {
		p.Radius = rng.Float64()*3 + 2
		p.Color = theme.NodeColor(rng, mode)
	} else {
		p.Radius = rng.Float64()*1.5 + 0.5
		p.Color = theme.PointColor(rng, mode)
	}
	p.PulsePhase = rng.Float64() * 2 * math.Pi
	return p
}

// Connect replaces every node's connections. Each node draws an out-degree
// in [1, MaxConnections] and fills each slot with the closest node not
// already chosen that lies within ConnectRange(width). Slots with no
// candidate stay empty. Ties keep the lowest index.
func Connect(rng *rand.Rand, particles []Particle, width float64) {
	limit := ConnectRange(width)

	for i := range particles {
		particles[i].Connections = nil
	}

	for i := range particles {
		src := &particles[i]
		if !src.IsNode {
			continue
		}
		want := rng.IntN(MaxConnections) + 1
		for slot := 0; slot < want; slot++ {
			closest := -1
			closestDist := math.Inf(1)
			for k := range particles {
				if k == i || !particles[k].IsNode || slices.Contains(src.Connections, k) {
					continue
				}
				d := src.Position.Dist(particles[k].Position)
				if d < closestDist && d < limit {
					closestDist = d
					closest = k
				}
			}
			if closest == -1 {
				break
			}
			src.Connections = append(src.Connections, closest)
		}
	}
}
