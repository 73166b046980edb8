package sim

import (
	"github.com/pthm-cable/windtrails/field"
)

// Options configure a particle system.
type Options struct {
	MaxAgeMean     int     // mean particle lifetime in ticks
	MaxAgeJitter   int     // per-spawn jitter band around the mean
	SpawnFocusZoom float64 // at or above this zoom, spawn inside the viewport
	Rng            Source
}

const (
	defaultMaxAgeMean   = 80
	defaultMaxAgeJitter = 15
	defaultFocusZoom    = 5
)

// StepStats summarizes one simulation tick.
type StepStats struct {
	Moved     int // particles advected by a valid sample
	Coasted   int // particles holding position over a data hole
	Respawned int // particles reinitialized this tick
}

// System owns the particle population: it spawns, advects, ages, and
// respawns particles against the current field snapshot. All updates are
// independent per particle and run in one sequential pass.
type System struct {
	field        *field.VectorField
	particles    []Particle
	rng          Source
	maxAgeMean   int
	maxAgeJitter int
	focusZoom    float64

	spawnBounds  field.Bounds
	zoomBucket   int
	haveViewport bool
	desiredCount int
}

// NewSystem creates a system and populates count particles.
func NewSystem(f *field.VectorField, count int, opts Options) *System {
	if opts.MaxAgeMean <= 0 {
		opts.MaxAgeMean = defaultMaxAgeMean
	}
	if opts.MaxAgeJitter < 0 {
		opts.MaxAgeJitter = defaultMaxAgeJitter
	}
	if opts.SpawnFocusZoom <= 0 {
		opts.SpawnFocusZoom = defaultFocusZoom
	}
	if opts.Rng == nil {
		opts.Rng = NewSource(1)
	}
	s := &System{
		field:        f,
		rng:          opts.Rng,
		maxAgeMean:   opts.MaxAgeMean,
		maxAgeJitter: opts.MaxAgeJitter,
		focusZoom:    opts.SpawnFocusZoom,
		zoomBucket:   -1,
	}
	if !f.Empty() {
		s.spawnBounds = f.Bounds
	}
	s.Initialize(count)
	return s
}

// Particles exposes the population for trail building. Callers must not
// mutate the entries.
func (s *System) Particles() []Particle {
	return s.particles
}

// Count returns the live particle count.
func (s *System) Count() int {
	return len(s.particles)
}

// Initialize repopulates count particles at uniformly random positions
// within the spawn bounds, with ages spread over [0, maxAgeMean) so
// respawns do not pulse in sync. A no-op on an empty field.
func (s *System) Initialize(count int) {
	if count < 0 {
		count = 0
	}
	s.desiredCount = count
	if s.field.Empty() {
		s.particles = s.particles[:0]
		return
	}
	if cap(s.particles) < count {
		s.particles = make([]Particle, count)
	} else {
		s.particles = s.particles[:count]
	}
	for i := range s.particles {
		s.spawn(&s.particles[i])
		s.particles[i].Age = int(s.rng.Float64() * float64(s.maxAgeMean))
	}
}

// SetField replaces the field snapshot wholesale. Particle positions in
// the old field's pixel space are meaningless against the new grid, so
// the population is reseeded before the next tick.
func (s *System) SetField(f *field.VectorField) {
	s.field = f
	if !f.Empty() {
		s.spawnBounds = f.Bounds
	}
	s.Initialize(s.desiredCount)
}

// Field returns the current field snapshot.
func (s *System) Field() *field.VectorField {
	return s.field
}

// SetViewport updates the spawn bounds from the visible viewport and
// reports whether the population was reinitialized. Reinitialization is
// bucketed on floor(zoom): sub-integer zoom changes keep existing trails.
// At high zoom, spawning concentrates in the visible intersection of the
// field so density stays where the user is looking.
func (s *System) SetViewport(zoom float64, visible field.Bounds) bool {
	if s.field.Empty() {
		return false
	}
	if zoom >= s.focusZoom {
		s.spawnBounds = s.field.Bounds.Intersect(visible)
	} else {
		s.spawnBounds = s.field.Bounds
	}

	bucket := Bucket(zoom)
	if s.haveViewport && bucket == s.zoomBucket {
		return false
	}
	first := !s.haveViewport
	s.haveViewport = true
	s.zoomBucket = bucket
	if first || zoom < s.focusZoom {
		return false
	}
	s.Initialize(s.desiredCount)
	return true
}

// Resize grows or shrinks the population to the target count without
// disturbing surviving particles.
func (s *System) Resize(count int) {
	if count < 0 {
		count = 0
	}
	s.desiredCount = count
	if s.field.Empty() {
		return
	}
	if count <= len(s.particles) {
		s.particles = s.particles[:count]
		return
	}
	for len(s.particles) < count {
		var p Particle
		s.spawn(&p)
		p.Age = int(s.rng.Float64() * float64(s.maxAgeMean))
		s.particles = append(s.particles, p)
	}
}

// Step advances every particle one tick. Particles over a valid sample
// advect and extend their trail; particles over a data hole coast in
// place. Aged-out or out-of-grid particles respawn in place the same
// tick, so positions are always inside the grid after Step returns.
func (s *System) Step(params Params) StepStats {
	var stats StepStats
	if s.field.Empty() {
		return stats
	}
	for i := range s.particles {
		p := &s.particles[i]

		if smp, ok := s.field.SampleAt(p.X, p.Y); ok {
			p.X += smp.U * params.SpeedFactor
			// Pixel y grows southward, so northward v decreases y.
			p.Y -= smp.V * params.SpeedFactor
			lng, lat := s.field.PixelToGeo(p.X, p.Y)
			p.pushTrail(GeoPoint{Lng: lng, Lat: lat}, params.TrailLength)
			stats.Moved++
		} else {
			// Coasting holds position but the trail bound still applies
			// when the length parameter shrinks between ticks.
			p.trimTrail(params.TrailLength)
			stats.Coasted++
		}

		p.Age++
		if p.Age > p.MaxAge || !s.field.InPixelBounds(p.X, p.Y) {
			s.spawn(p)
			stats.Respawned++
		}
	}
	return stats
}

// spawn reinitializes a particle in place at a random position within
// the spawn bounds with a fresh randomized lifetime.
func (s *System) spawn(p *Particle) {
	b := s.spawnBounds
	lng := b.West + s.rng.Float64()*(b.East-b.West)
	lat := b.South + s.rng.Float64()*(b.North-b.South)
	p.X, p.Y = s.field.GeoToPixel(lng, lat)
	// GeoToPixel can land exactly on the exclusive edge; nudge inside.
	if p.X >= float64(s.field.Width) {
		p.X = float64(s.field.Width) - 1e-9
	}
	if p.Y >= float64(s.field.Height) {
		p.Y = float64(s.field.Height) - 1e-9
	}
	p.Age = 0
	p.MaxAge = s.maxAgeMean - s.maxAgeJitter + int(s.rng.Float64()*float64(2*s.maxAgeJitter+1))
	if p.MaxAge < 1 {
		p.MaxAge = 1
	}
	p.resetTrail(GeoPoint{Lng: lng, Lat: lat})
}
