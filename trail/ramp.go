// Package trail converts particle state into renderable polylines.
package trail

import (
	"image/color"
	"sort"
)

// RampEntry keys a color to a minimum speed in m/s.
type RampEntry struct {
	Speed float64
	Color color.RGBA
}

// Ramp is a monotone speed-to-color table. Lookup returns the color of
// the largest threshold at or below the given speed.
type Ramp struct {
	entries  []RampEntry
	maxSpeed float64
}

// NewRamp builds a ramp from threshold entries, sorting by speed.
// Speeds above maxSpeed clamp to it before lookup.
func NewRamp(entries []RampEntry, maxSpeed float64) Ramp {
	sorted := make([]RampEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Speed < sorted[j].Speed })
	if maxSpeed <= 0 && len(sorted) > 0 {
		maxSpeed = sorted[len(sorted)-1].Speed
	}
	return Ramp{entries: sorted, maxSpeed: maxSpeed}
}

// Lookup returns the ramp color for a speed. Speeds below the first
// threshold take the first color.
func (r Ramp) Lookup(speed float64) color.RGBA {
	if len(r.entries) == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	if speed > r.maxSpeed {
		speed = r.maxSpeed
	}
	c := r.entries[0].Color
	for _, e := range r.entries {
		if speed >= e.Speed {
			c = e.Color
		} else {
			break
		}
	}
	return c
}

// DefaultWindRamp is the standard wind-speed ramp: cool blues for calm
// air stepping through greens and yellows to reds at storm speeds,
// clamped at 40 m/s.
func DefaultWindRamp() Ramp {
	return NewRamp([]RampEntry{
		{0, color.RGBA{R: 98, G: 113, B: 183, A: 255}},
		{2, color.RGBA{R: 74, G: 148, B: 169, A: 255}},
		{4, color.RGBA{R: 77, G: 166, B: 122, A: 255}},
		{6, color.RGBA{R: 109, G: 173, B: 72, A: 255}},
		{8, color.RGBA{R: 164, G: 179, B: 67, A: 255}},
		{10, color.RGBA{R: 202, G: 167, B: 67, A: 255}},
		{15, color.RGBA{R: 219, G: 134, B: 69, A: 255}},
		{20, color.RGBA{R: 219, G: 94, B: 74, A: 255}},
		{25, color.RGBA{R: 207, G: 64, B: 95, A: 255}},
		{30, color.RGBA{R: 172, G: 46, B: 119, A: 255}},
		{40, color.RGBA{R: 117, G: 37, B: 130, A: 255}},
	}, 40)
}
