package field

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImageNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{R: 40, G: 50, B: 60, A: 0})

	f := FromImage(img, testBounds(), DecodeRange{Min: -50, Max: 50}, MagnitudeComputed)
	if f.Width != 3 || f.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", f.Width, f.Height)
	}

	i := (0*3 + 1) * 4
	if f.Samples[i] != 10 || f.Samples[i+1] != 20 || f.Samples[i+2] != 30 || f.Samples[i+3] != 255 {
		t.Errorf("pixel (1,0) = %v, want [10 20 30 255]", f.Samples[i:i+4])
	}

	// Alpha 0 pixel must come through as an invalid sample.
	if _, ok := f.SampleAt(2, 1); ok {
		t.Error("alpha-0 pixel should sample invalid")
	}
}

func TestImageRoundtrip(t *testing.T) {
	src := Synthetic(16, 8, testBounds(), DecodeRange{Min: -50, Max: 50})
	back := FromImage(src.ToImage(), src.Bounds, src.Range, src.Mode)

	if back.Width != src.Width || back.Height != src.Height {
		t.Fatalf("dimensions changed: %dx%d -> %dx%d", src.Width, src.Height, back.Width, back.Height)
	}
	for i := range src.Samples {
		if src.Samples[i] != back.Samples[i] {
			t.Fatalf("sample byte %d changed: %d -> %d", i, src.Samples[i], back.Samples[i])
		}
	}
}
