package sim

import "math"

// Params are the simulation parameters derived from the current zoom.
// They are recomputed rather than stored.
type Params struct {
	ParticleCount int
	SpeedFactor   float64 // pixels per tick per m/s
	TrailLength   int
}

// Policy maps a continuous zoom level to simulation parameters through a
// monotone step table. As zoom increases the visible geographic area per
// screen pixel shrinks, so particle count, pixel-space speed, and trail
// length all step down.
type Policy struct {
	BaseCount       int
	BaseSpeedFactor float64
	BaseTrailLength int
}

// tier covers zooms in [prev.upTo, upTo).
type tier struct {
	upTo  float64
	count float64
	speed float64
	trail float64
}

var zoomTiers = []tier{
	{upTo: 4, count: 1.00, speed: 1.00, trail: 1.00},
	{upTo: 6, count: 0.50, speed: 0.75, trail: 0.80},
	{upTo: 8, count: 0.20, speed: 0.45, trail: 0.60},
	{upTo: 10, count: 0.08, speed: 0.17, trail: 0.40},
	{upTo: 12, count: 0.04, speed: 0.07, trail: 0.25},
}

// Trails shorter than this are not drawable as a fading polyline.
const minTrailLength = 3

// ForZoom derives simulation parameters for a zoom level.
func (p Policy) ForZoom(zoom float64) Params {
	countMul := 0.025
	speedMul := 0.022
	trailMul := math.Max(0.15, 3/math.Max(float64(p.BaseTrailLength), 1))
	for _, t := range zoomTiers {
		if zoom < t.upTo {
			countMul = t.count
			speedMul = t.speed
			trailMul = t.trail
			break
		}
	}

	count := int(float64(p.BaseCount) * countMul)
	if count < 0 {
		count = 0
	}
	trail := int(float64(p.BaseTrailLength) * trailMul)
	if trail < minTrailLength {
		trail = minTrailLength
	}
	return Params{
		ParticleCount: count,
		SpeedFactor:   p.BaseSpeedFactor * speedMul,
		TrailLength:   trail,
	}
}

// Bucket returns the discrete zoom bucket for reinitialization decisions.
// Sub-integer zoom changes stay in the same bucket so trails survive
// small camera adjustments.
func Bucket(zoom float64) int {
	return int(math.Floor(zoom))
}
