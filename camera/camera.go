// Package camera provides the geographic map camera for the viewer.
package camera

import (
	"math"

	"github.com/pthm-cable/windtrails/field"
)

// tileSize is the pixel width of the world at zoom 0, web-map style.
const tileSize = 256

// Camera is a pan/zoom plate-carrée map camera. It supplies the
// geo-to-screen projector and the visible bounds the simulation core
// consumes; zoom follows web-map convention (each level doubles scale).
type Camera struct {
	// CenterLng, CenterLat is the geographic point at the viewport center.
	CenterLng, CenterLat float64

	// Zoom is the continuous map zoom level.
	Zoom float64

	// ViewportW, ViewportH are the screen dimensions in pixels.
	ViewportW, ViewportH float32

	MinZoom, MaxZoom float64
}

// New creates a camera centered on the given point.
func New(viewportW, viewportH float32, lng, lat, zoom float64) *Camera {
	c := &Camera{
		CenterLng: lng,
		CenterLat: lat,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   0,
		MaxZoom:   18,
	}
	c.SetZoom(zoom)
	return c
}

// pixelsPerDegree is the projection scale at the current zoom.
func (c *Camera) pixelsPerDegree() float64 {
	return tileSize * math.Exp2(c.Zoom) / 360
}

// GeoToScreen projects a geographic point to screen pixels. ok=false
// when the point falls outside the viewport, which clips it out of
// trail polylines.
func (c *Camera) GeoToScreen(lng, lat float64) (x, y float32, ok bool) {
	s := c.pixelsPerDegree()
	fx := float64(c.ViewportW)/2 + (lng-c.CenterLng)*s
	fy := float64(c.ViewportH)/2 + (c.CenterLat-lat)*s
	x = float32(fx)
	y = float32(fy)
	ok = fx >= 0 && fx <= float64(c.ViewportW) && fy >= 0 && fy <= float64(c.ViewportH)
	return x, y, ok
}

// ScreenToGeo is the inverse of GeoToScreen.
func (c *Camera) ScreenToGeo(x, y float32) (lng, lat float64) {
	s := c.pixelsPerDegree()
	lng = c.CenterLng + (float64(x)-float64(c.ViewportW)/2)/s
	lat = c.CenterLat - (float64(y)-float64(c.ViewportH)/2)/s
	return lng, lat
}

// VisibleBounds returns the geographic rectangle covering the viewport.
func (c *Camera) VisibleBounds() field.Bounds {
	s := c.pixelsPerDegree()
	halfW := float64(c.ViewportW) / 2 / s
	halfH := float64(c.ViewportH) / 2 / s
	return field.Bounds{
		West:  c.CenterLng - halfW,
		East:  c.CenterLng + halfW,
		South: c.CenterLat - halfH,
		North: c.CenterLat + halfH,
	}
}

// Pan moves the camera by a screen-pixel delta.
func (c *Camera) Pan(dx, dy float32) {
	s := c.pixelsPerDegree()
	c.CenterLng = wrapLng(c.CenterLng + float64(dx)/s)
	c.CenterLat = clamp(c.CenterLat-float64(dy)/s, -85, 85)
}

// SetZoom sets the zoom level, clamped to the camera's range.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy adjusts zoom by a delta in levels.
func (c *Camera) ZoomBy(delta float64) {
	c.SetZoom(c.Zoom + delta)
}

// Resize updates viewport dimensions after a window resize.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// wrapLng normalizes a longitude into [-180, 180).
func wrapLng(lng float64) float64 {
	r := math.Mod(lng+180, 360)
	if r < 0 {
		r += 360
	}
	return r - 180
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
