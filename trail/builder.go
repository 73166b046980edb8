package trail

import (
	"image/color"

	"github.com/pthm-cable/windtrails/field"
	"github.com/pthm-cable/windtrails/sim"
)

// Projector maps geographic coordinates to screen pixels. ok=false
// clips the point out of the polyline.
type Projector func(lng, lat float64) (x, y float32, ok bool)

// Polyline is one renderable trail in screen space.
type Polyline struct {
	Points  [][2]float32
	Color   color.RGBA
	Opacity float32
	Width   float32
}

// Builder converts particle trails into colored polylines. Color comes
// from the field sample at the trail head (deterministic regardless of
// trail history); opacity fades with particle age so young trails read
// brighter.
type Builder struct {
	Ramp         Ramp
	MinOpacity   float64
	FadeStrength float64
	Width        float32
}

// NewBuilder returns a builder with the default wind ramp and fade.
func NewBuilder() Builder {
	return Builder{
		Ramp:         DefaultWindRamp(),
		MinOpacity:   0.25,
		FadeStrength: 0.8,
		Width:        1.5,
	}
}

// Build projects every particle trail through the host projector and
// emits the drawable ones, in particle order. Points the projector
// clips are dropped; the polyline keeps the visible sub-path starting
// at the first visible point. Trails with fewer than two visible points
// are skipped. Build never mutates the particles.
func (b Builder) Build(particles []sim.Particle, f *field.VectorField, project Projector) []Polyline {
	out := make([]Polyline, 0, len(particles))
	for i := range particles {
		p := &particles[i]
		if len(p.Trail) < 2 {
			continue
		}

		points := make([][2]float32, 0, len(p.Trail))
		for _, pt := range p.Trail {
			x, y, ok := project(pt.Lng, pt.Lat)
			if !ok {
				if len(points) > 0 {
					break
				}
				continue
			}
			points = append(points, [2]float32{x, y})
		}
		if len(points) < 2 {
			continue
		}

		out = append(out, Polyline{
			Points:  points,
			Color:   b.headColor(p, f),
			Opacity: b.opacity(p),
			Width:   b.Width,
		})
	}
	return out
}

func (b Builder) headColor(p *sim.Particle, f *field.VectorField) color.RGBA {
	speed := 0.0
	if s, ok := f.SampleAt(p.X, p.Y); ok {
		speed = s.Magnitude
	}
	return b.Ramp.Lookup(speed)
}

func (b Builder) opacity(p *sim.Particle) float32 {
	if p.MaxAge <= 0 {
		return float32(b.MinOpacity)
	}
	o := 1 - float64(p.Age)/float64(p.MaxAge)*b.FadeStrength
	if o < b.MinOpacity {
		o = b.MinOpacity
	}
	return float32(o)
}
