package sim

// GeoPoint is a geographic position in degrees.
type GeoPoint struct {
	Lng float64
	Lat float64
}

// Particle is one advected simulation entity. Particles are owned by a
// System and reused in place on respawn; they are never individually
// allocated or freed during steady-state ticking.
type Particle struct {
	// X, Y are the position in grid-pixel space, sub-pixel precision kept.
	X, Y float64

	// Age counts ticks since the last respawn.
	Age int

	// MaxAge is randomized per spawn around the configured mean.
	MaxAge int

	// Trail holds recent geographic positions, most recent first.
	Trail []GeoPoint
}

// pushTrail prepends a point and trims the history to maxLen.
func (p *Particle) pushTrail(pt GeoPoint, maxLen int) {
	if maxLen < 1 {
		maxLen = 1
	}
	if len(p.Trail) < maxLen {
		p.Trail = append(p.Trail, GeoPoint{})
	}
	copy(p.Trail[1:], p.Trail)
	p.Trail[0] = pt
	if len(p.Trail) > maxLen {
		p.Trail = p.Trail[:maxLen]
	}
}

// trimTrail drops history beyond maxLen without adding a point.
func (p *Particle) trimTrail(maxLen int) {
	if maxLen < 1 {
		maxLen = 1
	}
	if len(p.Trail) > maxLen {
		p.Trail = p.Trail[:maxLen]
	}
}

// resetTrail collapses the history to a single point, keeping capacity.
func (p *Particle) resetTrail(pt GeoPoint) {
	p.Trail = append(p.Trail[:0], pt)
}
