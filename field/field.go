// Package field holds decoded vector-field snapshots and pixel-level sampling.
package field

// Bounds is a geographic rectangle in degrees.
type Bounds struct {
	West  float64
	East  float64
	South float64
	North float64
}

// Valid reports whether the rectangle has positive extent.
func (b Bounds) Valid() bool {
	return b.West < b.East && b.South < b.North
}

// Contains reports whether a point lies inside the rectangle.
func (b Bounds) Contains(lng, lat float64) bool {
	return lng >= b.West && lng <= b.East && lat >= b.South && lat <= b.North
}

// Intersect returns the overlap of two rectangles.
// Returns b unchanged when the overlap is empty or o is invalid.
func (b Bounds) Intersect(o Bounds) Bounds {
	if !o.Valid() {
		return b
	}
	r := Bounds{
		West:  maxf(b.West, o.West),
		East:  minf(b.East, o.East),
		South: maxf(b.South, o.South),
		North: minf(b.North, o.North),
	}
	if !r.Valid() {
		return b
	}
	return r
}

// DecodeRange maps encoded byte values to physical units (m/s).
type DecodeRange struct {
	Min float64
	Max float64
}

// Decode converts a channel byte to a physical value.
// Decode(0) == Min, Decode(255) == Max, linear in between.
func (r DecodeRange) Decode(b byte) float64 {
	return float64(b)/255*(r.Max-r.Min) + r.Min
}

// MagnitudeMode selects how sample magnitude is obtained.
type MagnitudeMode int

const (
	// MagnitudeComputed derives magnitude as sqrt(u*u + v*v).
	MagnitudeComputed MagnitudeMode = iota
	// MagnitudeChannel decodes magnitude from the third channel.
	MagnitudeChannel
)

// VectorField is an immutable snapshot of a sampled vector field.
// Samples is a row-major RGBA buffer: R=u, G=v, B=magnitude-or-unused,
// A=validity mask (0 = no usable vector at that pixel).
type VectorField struct {
	Width   int
	Height  int
	Samples []byte
	Bounds  Bounds
	Range   DecodeRange
	Mode    MagnitudeMode
}

// New builds a field snapshot. The samples buffer must hold
// width*height*4 bytes; shorter buffers yield an empty field.
func New(width, height int, samples []byte, bounds Bounds, rng DecodeRange, mode MagnitudeMode) *VectorField {
	f := &VectorField{
		Width:   width,
		Height:  height,
		Samples: samples,
		Bounds:  bounds,
		Range:   rng,
		Mode:    mode,
	}
	if f.Empty() {
		f.Width = 0
		f.Height = 0
	}
	return f
}

// Empty reports whether the field carries no sampleable data.
func (f *VectorField) Empty() bool {
	return f == nil || f.Width <= 0 || f.Height <= 0 ||
		len(f.Samples) < f.Width*f.Height*4 || !f.Bounds.Valid()
}

// GeoToPixel maps geographic coordinates to fractional pixel coordinates.
// Pixel y grows southward: lat == North maps to y == 0.
func (f *VectorField) GeoToPixel(lng, lat float64) (x, y float64) {
	b := f.Bounds
	x = (lng - b.West) / (b.East - b.West) * float64(f.Width)
	y = (b.North - lat) / (b.North - b.South) * float64(f.Height)
	return x, y
}

// PixelToGeo is the exact algebraic inverse of GeoToPixel.
func (f *VectorField) PixelToGeo(x, y float64) (lng, lat float64) {
	b := f.Bounds
	lng = b.West + x/float64(f.Width)*(b.East-b.West)
	lat = b.North - y/float64(f.Height)*(b.North-b.South)
	return lng, lat
}

// InPixelBounds reports whether a fractional pixel position lies
// within [0,width) x [0,height).
func (f *VectorField) InPixelBounds(x, y float64) bool {
	return x >= 0 && x < float64(f.Width) && y >= 0 && y < float64(f.Height)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
