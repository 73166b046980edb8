package field

import "math"

// Encode converts a physical value back to a channel byte, clamping to
// the representable range. Inverse of DecodeRange.Decode up to rounding.
func (r DecodeRange) Encode(v float64) byte {
	t := (v - r.Min) / (r.Max - r.Min) * 255
	if t < 0 {
		t = 0
	}
	if t > 255 {
		t = 255
	}
	return byte(math.Round(t))
}

// Synthetic builds an analytic wind field: a zonal jet across the middle
// latitudes plus a vortex centered in the grid. Useful for demos and for
// exercising the renderer without forecast data. A circular hole of
// invalid pixels is punched near the south-west quadrant so the coasting
// path gets exercised too.
func Synthetic(width, height int, bounds Bounds, rng DecodeRange) *VectorField {
	samples := make([]byte, width*height*4)
	cx := float64(width) / 2
	cy := float64(height) / 2
	holeX := float64(width) * 0.25
	holeY := float64(height) * 0.7
	holeR := float64(width) * 0.06

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx := float64(x)
			fy := float64(y)

			// Jet: eastward flow peaking at mid-grid, fading toward edges.
			band := math.Exp(-sq((fy - cy) / (float64(height) * 0.2)))
			u := 18 * band

			// Vortex: counter-clockwise rotation around the grid center.
			dx := fx - cx
			dy := fy - cy
			dist := math.Hypot(dx, dy) + 1e-9
			strength := 14 * math.Exp(-dist/(float64(width)*0.18))
			u += -dy / dist * strength
			v := dx / dist * strength

			i := (y*width + x) * 4
			samples[i] = rng.Encode(u)
			samples[i+1] = rng.Encode(v)
			samples[i+2] = rng.Encode(math.Hypot(u, v))
			if sq(fx-holeX)+sq(fy-holeY) < sq(holeR) {
				samples[i+3] = 0
			} else {
				samples[i+3] = 255
			}
		}
	}
	return New(width, height, samples, bounds, rng, MagnitudeComputed)
}

func sq(x float64) float64 { return x * x }
