package particle

// Step advances every particle by one tick on a width x height canvas.
// A coordinate outside [0, size] flips that velocity component; the position
// is not clamped, so a particle may overshoot by one step before heading back.
func Step(particles []Particle, width, height float64) {
	for i := range particles {
		p := &particles[i]
		p.Position = p.Position.Add(p.Velocity)

		if p.Position.X < 0 || p.Position.X > width {
			p.Velocity.X = -p.Velocity.X
		}
		if p.Position.Y < 0 || p.Position.Y > height {
			p.Velocity.Y = -p.Velocity.Y
		}
	}
}
