package field

import "math"

// Sample is a decoded vector at one pixel.
type Sample struct {
	U         float64 // eastward component, m/s
	V         float64 // northward component, m/s
	Magnitude float64 // speed, m/s
}

// SampleAt looks up the decoded vector at a fractional pixel position.
// The position is floored to the nearest integer pixel; there is no
// sub-pixel interpolation. Returns ok=false when the address is outside
// the grid, the validity channel is zero, or the field is empty.
func (f *VectorField) SampleAt(x, y float64) (Sample, bool) {
	if f.Empty() {
		return Sample{}, false
	}
	px := int(math.Floor(x))
	py := int(math.Floor(y))
	if px < 0 || px >= f.Width || py < 0 || py >= f.Height {
		return Sample{}, false
	}

	i := (py*f.Width + px) * 4
	if f.Samples[i+3] == 0 {
		return Sample{}, false
	}

	s := Sample{
		U: f.Range.Decode(f.Samples[i]),
		V: f.Range.Decode(f.Samples[i+1]),
	}
	switch f.Mode {
	case MagnitudeChannel:
		s.Magnitude = f.Range.Decode(f.Samples[i+2])
	default:
		s.Magnitude = math.Sqrt(s.U*s.U + s.V*s.V)
	}
	return s, true
}

// SampleAtGeo looks up the decoded vector at a geographic position.
func (f *VectorField) SampleAtGeo(lng, lat float64) (Sample, bool) {
	if f.Empty() {
		return Sample{}, false
	}
	x, y := f.GeoToPixel(lng, lat)
	return f.SampleAt(x, y)
}
