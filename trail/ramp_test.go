package trail

import (
	"image/color"
	"testing"
)

func TestRampBoundaryExact(t *testing.T) {
	r := DefaultWindRamp()

	// A magnitude exactly at a threshold takes that threshold's color,
	// not the next lower one.
	want := color.RGBA{R: 202, G: 167, B: 67, A: 255} // the 10 m/s entry
	if got := r.Lookup(10); got != want {
		t.Errorf("Lookup(10) = %v, want %v", got, want)
	}
	below := color.RGBA{R: 164, G: 179, B: 67, A: 255} // the 8 m/s entry
	if got := r.Lookup(9.999); got != below {
		t.Errorf("Lookup(9.999) = %v, want %v", got, below)
	}
}

func TestRampClampsAboveMax(t *testing.T) {
	r := DefaultWindRamp()

	top := r.Lookup(40)
	if got := r.Lookup(120); got != top {
		t.Errorf("Lookup(120) = %v, want clamp to %v", got, top)
	}
}

func TestRampBelowFirstThreshold(t *testing.T) {
	r := NewRamp([]RampEntry{
		{5, color.RGBA{R: 1, A: 255}},
		{10, color.RGBA{R: 2, A: 255}},
	}, 20)

	if got := r.Lookup(0); got != (color.RGBA{R: 1, A: 255}) {
		t.Errorf("Lookup(0) = %v, want first entry color", got)
	}
}

func TestRampSortsEntries(t *testing.T) {
	r := NewRamp([]RampEntry{
		{10, color.RGBA{R: 2, A: 255}},
		{0, color.RGBA{R: 1, A: 255}},
	}, 20)

	if got := r.Lookup(5); got != (color.RGBA{R: 1, A: 255}) {
		t.Errorf("Lookup(5) = %v, want the 0-threshold color", got)
	}
	if got := r.Lookup(10); got != (color.RGBA{R: 2, A: 255}) {
		t.Errorf("Lookup(10) = %v, want the 10-threshold color", got)
	}
}

func TestEmptyRamp(t *testing.T) {
	var r Ramp
	if got := r.Lookup(7); got.A != 255 {
		t.Errorf("empty ramp should yield an opaque fallback, got %v", got)
	}
}
