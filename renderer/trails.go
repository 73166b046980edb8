// Package renderer draws trail polylines and the raster backdrop with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/windtrails/trail"
)

// TrailRenderer draws trail polylines with additive blending. Segment
// alpha and width fall off quadratically toward the tail so each trail
// reads as a fading streak.
type TrailRenderer struct{}

// NewTrailRenderer creates a trail renderer.
func NewTrailRenderer() *TrailRenderer {
	return &TrailRenderer{}
}

// Draw renders the polylines in order.
func (r *TrailRenderer) Draw(lines []trail.Polyline) {
	rl.BeginBlendMode(rl.BlendAdditive)

	for i := range lines {
		l := &lines[i]
		n := len(l.Points)
		for j := 0; j < n-1; j++ {
			fade := 1 - float32(j)/float32(n)
			fade *= fade

			alpha := l.Opacity * fade * 255
			if alpha < 1 {
				continue
			}
			c := rl.Color{R: l.Color.R, G: l.Color.G, B: l.Color.B, A: uint8(alpha)}
			rl.DrawLineEx(
				rl.Vector2{X: l.Points[j][0], Y: l.Points[j][1]},
				rl.Vector2{X: l.Points[j+1][0], Y: l.Points[j+1][1]},
				l.Width*fade+0.5,
				c,
			)
		}
	}

	rl.EndBlendMode()
}
