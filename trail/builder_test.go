package trail

import (
	"math"
	"testing"

	"github.com/pthm-cable/windtrails/field"
	"github.com/pthm-cable/windtrails/sim"
)

func testField(r, g byte) *field.VectorField {
	w, h := 16, 8
	samples := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		samples[i*4] = r
		samples[i*4+1] = g
		samples[i*4+3] = 255
	}
	bounds := field.Bounds{West: -30, East: 50, South: 20, North: 70}
	return field.New(w, h, samples, bounds, field.DecodeRange{Min: -50, Max: 50}, field.MagnitudeComputed)
}

// clipWestOfZero maps degrees 1:1 to pixels and clips west of lng 0.
func clipWestOfZero(lng, lat float64) (float32, float32, bool) {
	if lng < 0 {
		return 0, 0, false
	}
	return float32(lng), float32(-lat), true
}

func acceptAll(lng, lat float64) (float32, float32, bool) {
	return float32(lng), float32(-lat), true
}

func particleWithTrail(pts ...sim.GeoPoint) sim.Particle {
	return sim.Particle{X: 1, Y: 1, Age: 0, MaxAge: 100, Trail: pts}
}

func TestBuildSkipsShortTrails(t *testing.T) {
	f := testField(128, 128)
	b := NewBuilder()

	particles := []sim.Particle{
		particleWithTrail(sim.GeoPoint{Lng: 1, Lat: 30}),
		particleWithTrail(sim.GeoPoint{Lng: 1, Lat: 30}, sim.GeoPoint{Lng: 2, Lat: 31}),
	}
	lines := b.Build(particles, f, acceptAll)
	if len(lines) != 1 {
		t.Fatalf("polylines = %d, want 1 (single-point trail skipped)", len(lines))
	}
	if len(lines[0].Points) != 2 {
		t.Errorf("points = %d, want 2", len(lines[0].Points))
	}
}

func TestBuildClipsToVisibleSubpath(t *testing.T) {
	f := testField(128, 128)
	b := NewBuilder()

	// Head visible, tail crosses into the clipped half: the polyline
	// keeps the run from the first visible point and stops at the clip.
	p := particleWithTrail(
		sim.GeoPoint{Lng: 5, Lat: 30},
		sim.GeoPoint{Lng: 3, Lat: 30},
		sim.GeoPoint{Lng: -2, Lat: 30}, // clipped
		sim.GeoPoint{Lng: 4, Lat: 30},  // visible again, but after the break
	)
	lines := b.Build([]sim.Particle{p}, f, clipWestOfZero)
	if len(lines) != 1 {
		t.Fatalf("polylines = %d, want 1", len(lines))
	}
	if len(lines[0].Points) != 2 {
		t.Errorf("points = %d, want 2 (sub-path ends at first clipped point)", len(lines[0].Points))
	}

	// Entirely clipped trail yields nothing.
	hidden := particleWithTrail(sim.GeoPoint{Lng: -5, Lat: 30}, sim.GeoPoint{Lng: -6, Lat: 30})
	if lines := b.Build([]sim.Particle{hidden}, f, clipWestOfZero); len(lines) != 0 {
		t.Errorf("fully clipped trail produced %d polylines", len(lines))
	}

	// Clipped head: the sub-path starts at the first visible point.
	lateStart := particleWithTrail(
		sim.GeoPoint{Lng: -1, Lat: 30},
		sim.GeoPoint{Lng: 2, Lat: 30},
		sim.GeoPoint{Lng: 3, Lat: 30},
	)
	lines = b.Build([]sim.Particle{lateStart}, f, clipWestOfZero)
	if len(lines) != 1 || len(lines[0].Points) != 2 {
		t.Fatalf("clipped-head trail: got %d lines, want 1 with 2 points", len(lines))
	}
}

func TestBuildColorsFromHeadSample(t *testing.T) {
	// u = 50 m/s, v ~ 0: magnitude ~50 clamps to the 40 m/s ramp entry.
	fast := testField(255, 128)
	b := NewBuilder()

	p := particleWithTrail(sim.GeoPoint{Lng: 1, Lat: 30}, sim.GeoPoint{Lng: 2, Lat: 31})
	lines := b.Build([]sim.Particle{p}, fast, acceptAll)
	if len(lines) != 1 {
		t.Fatal("expected one polyline")
	}
	want := DefaultWindRamp().Lookup(40)
	if lines[0].Color != want {
		t.Errorf("color = %v, want top ramp color %v", lines[0].Color, want)
	}
}

func TestBuildOpacityFadesWithAge(t *testing.T) {
	f := testField(140, 128)
	b := NewBuilder()

	young := particleWithTrail(sim.GeoPoint{Lng: 1, Lat: 30}, sim.GeoPoint{Lng: 2, Lat: 31})
	young.Age = 0
	old := particleWithTrail(sim.GeoPoint{Lng: 1, Lat: 30}, sim.GeoPoint{Lng: 2, Lat: 31})
	old.Age = 100 // == MaxAge

	lines := b.Build([]sim.Particle{young, old}, f, acceptAll)
	if len(lines) != 2 {
		t.Fatal("expected two polylines")
	}
	if lines[0].Opacity != 1 {
		t.Errorf("young opacity = %f, want 1", lines[0].Opacity)
	}
	wantOld := math.Max(b.MinOpacity, 1-b.FadeStrength)
	if math.Abs(float64(lines[1].Opacity)-wantOld) > 1e-6 {
		t.Errorf("old opacity = %f, want %f", lines[1].Opacity, wantOld)
	}
}
