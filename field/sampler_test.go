package field

import (
	"math"
	"testing"
)

func TestSampleDecodesChannels(t *testing.T) {
	f := uniformField(4, 4, 0, 128, 200, 255)

	s, ok := f.SampleAt(1, 1)
	if !ok {
		t.Fatal("expected valid sample")
	}
	if s.U != -50 {
		t.Errorf("u = %f, want -50", s.U)
	}
	wantV := 128.0/255*100 - 50
	if math.Abs(s.V-wantV) > 1e-12 {
		t.Errorf("v = %f, want %f", s.V, wantV)
	}
	wantMag := math.Sqrt(s.U*s.U + s.V*s.V)
	if math.Abs(s.Magnitude-wantMag) > 1e-12 {
		t.Errorf("computed magnitude = %f, want %f", s.Magnitude, wantMag)
	}
}

func TestSampleMagnitudeChannel(t *testing.T) {
	f := uniformField(4, 4, 0, 128, 200, 255)
	f.Mode = MagnitudeChannel

	s, ok := f.SampleAt(0, 0)
	if !ok {
		t.Fatal("expected valid sample")
	}
	want := f.Range.Decode(200)
	if math.Abs(s.Magnitude-want) > 1e-12 {
		t.Errorf("channel magnitude = %f, want %f", s.Magnitude, want)
	}
}

func TestSampleInvalidMask(t *testing.T) {
	f := uniformField(4, 4, 100, 100, 100, 0)

	if _, ok := f.SampleAt(2, 2); ok {
		t.Error("validity 0 should yield no sample")
	}
}

func TestSampleOutOfRange(t *testing.T) {
	f := uniformField(4, 4, 100, 100, 100, 255)

	cases := []struct{ x, y float64 }{
		{-0.01, 0},
		{0, -0.01},
		{4, 0},  // width is exclusive
		{0, 4},  // height is exclusive
		{100, 100},
	}
	for _, tc := range cases {
		if _, ok := f.SampleAt(tc.x, tc.y); ok {
			t.Errorf("SampleAt(%f, %f) should be invalid", tc.x, tc.y)
		}
	}

	// 3.999 floors to pixel 3, still inside a 4x4 grid.
	if _, ok := f.SampleAt(3.999, 3.999); !ok {
		t.Error("fractional position inside the grid should be valid")
	}
}

func TestSampleFloorsFractionalPixels(t *testing.T) {
	f := uniformField(2, 1, 0, 0, 0, 255)
	// Make pixel (1,0) distinct.
	f.Samples[4] = 255
	f.Samples[5] = 255

	s, ok := f.SampleAt(1.9, 0.5)
	if !ok {
		t.Fatal("expected valid sample")
	}
	if s.U != 50 {
		t.Errorf("u = %f, want 50 from pixel 1 (no interpolation)", s.U)
	}
}

func TestSampleAtGeo(t *testing.T) {
	f := uniformField(10, 10, 255, 128, 0, 255)

	s, ok := f.SampleAtGeo(0, 45)
	if !ok {
		t.Fatal("expected valid sample inside bounds")
	}
	if s.U != 50 {
		t.Errorf("u = %f, want 50", s.U)
	}

	if _, ok := f.SampleAtGeo(120, 45); ok {
		t.Error("sample outside geographic bounds should be invalid")
	}
}
