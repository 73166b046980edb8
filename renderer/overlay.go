package renderer

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/windtrails/trail"
)

// Overlay owns the render-side resources of the visualization layer:
// the trail pass and the raster backdrop with its crossfade. It is an
// explicit acquire/release handle — Attach before drawing, Detach to
// free GPU textures. Both are idempotent; the simulation core never
// touches this type.
type Overlay struct {
	attached bool
	trails   *TrailRenderer

	// Raster crossfade: when a new forecast raster arrives, the old one
	// fades out under the new one rather than popping.
	current    rl.Texture2D
	next       rl.Texture2D
	hasCurrent bool
	hasNext    bool
	fade       float32 // 0..1 progress of the crossfade
	fadeSpeed  float32 // progress per second
}

// NewOverlay creates an overlay; fadeSeconds is the raster crossfade
// duration.
func NewOverlay(fadeSeconds float32) *Overlay {
	if fadeSeconds <= 0 {
		fadeSeconds = 1
	}
	return &Overlay{
		trails:    NewTrailRenderer(),
		fadeSpeed: 1 / fadeSeconds,
	}
}

// Attach acquires the overlay against the live window. No-op when
// already attached.
func (o *Overlay) Attach() {
	o.attached = true
}

// Attached reports whether the overlay holds live resources.
func (o *Overlay) Attached() bool {
	return o.attached
}

// SetRaster uploads a new backdrop raster and starts the crossfade.
// The previous in-flight raster, if any, is promoted first.
func (o *Overlay) SetRaster(img *image.NRGBA) {
	if !o.attached {
		return
	}
	if o.hasNext {
		o.promote()
	}
	tex := rl.LoadTextureFromImage(rl.NewImageFromImage(img))
	if !o.hasCurrent {
		o.current = tex
		o.hasCurrent = true
		return
	}
	o.next = tex
	o.hasNext = true
	o.fade = 0
}

// Update advances the crossfade by dt seconds.
func (o *Overlay) Update(dt float32) {
	if !o.hasNext {
		return
	}
	o.fade += o.fadeSpeed * dt
	if o.fade >= 1 {
		o.promote()
	}
}

func (o *Overlay) promote() {
	rl.UnloadTexture(o.current)
	o.current = o.next
	o.hasCurrent = true
	o.hasNext = false
	o.fade = 0
}

// Draw renders the raster backdrop and then the trail pass on top.
func (o *Overlay) Draw(lines []trail.Polyline, dst rl.Rectangle) {
	if !o.attached {
		return
	}
	if o.hasCurrent {
		o.drawRaster(o.current, dst, 255)
	}
	if o.hasNext {
		o.drawRaster(o.next, dst, uint8(o.fade*255))
	}
	o.trails.Draw(lines)
}

func (o *Overlay) drawRaster(tex rl.Texture2D, dst rl.Rectangle, alpha uint8) {
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	tint := rl.Color{R: 255, G: 255, B: 255, A: alpha}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, tint)
}

// Detach releases GPU textures. Idempotent; safe before Attach.
func (o *Overlay) Detach() {
	if !o.attached {
		return
	}
	if o.hasCurrent {
		rl.UnloadTexture(o.current)
		o.hasCurrent = false
	}
	if o.hasNext {
		rl.UnloadTexture(o.next)
		o.hasNext = false
	}
	o.attached = false
}
