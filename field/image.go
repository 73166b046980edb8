package field

import (
	"image"
	"image/color"
)

// FromImage converts a decoded raster into a field snapshot using the
// standard channel layout (R=u, G=v, B=magnitude-or-unused, A=validity).
// The fast path avoids per-pixel color model conversion for NRGBA images,
// which is what image/png produces for RGBA sources.
func FromImage(img image.Image, bounds Bounds, rng DecodeRange, mode MagnitudeMode) *VectorField {
	r := img.Bounds()
	w, h := r.Dx(), r.Dy()
	samples := make([]byte, w*h*4)

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			row := src.Pix[(y+r.Min.Y-src.Rect.Min.Y)*src.Stride:]
			copy(samples[y*w*4:(y+1)*w*4], row[(r.Min.X-src.Rect.Min.X)*4:])
		}
		return New(w, h, samples, bounds, rng, mode)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.NRGBA)
			i := (y*w + x) * 4
			samples[i] = c.R
			samples[i+1] = c.G
			samples[i+2] = c.B
			samples[i+3] = c.A
		}
	}
	return New(w, h, samples, bounds, rng, mode)
}

// ToImage encodes a field snapshot back into an NRGBA raster with the
// same channel layout. Used by the field synthesis tooling.
func (f *VectorField) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+f.Width*4], f.Samples[y*f.Width*4:])
	}
	return img
}
