package particle

// Stats summarizes a particle set.
type Stats struct {
	Particles int
	Nodes     int
	Edges     int
	// OutDegree[d] counts nodes with exactly d connections.
	OutDegree [MaxConnections + 1]int
}

// Summarize counts particles, nodes and structural edges.
func Summarize(particles []Particle) Stats {
	var s Stats
	s.Particles = len(particles)
	for i := range particles {
		p := &particles[i]
		if !p.IsNode {
			continue
		}
		s.Nodes++
		s.Edges += len(p.Connections)
		d := len(p.Connections)
		if d > MaxConnections {
			d = MaxConnections
		}
		s.OutDegree[d]++
	}
	return s
}

// VisibleEdges counts the edges EdgeVisible would draw right now.
func VisibleEdges(particles []Particle, width float64) int {
	n := 0
	for i := range particles {
		p := &particles[i]
		for _, j := range p.Connections {
			if EdgeVisible(p, &particles[j], width) {
				n++
			}
		}
	}
	return n
}
