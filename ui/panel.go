// Package ui draws the parameter panel and HUD for the viewer.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Settings are the live-tunable simulation parameters the panel edits.
type Settings struct {
	BaseCount    float32
	SpeedFactor  float32
	TrailLength  float32
	MaxRampSpeed float32
}

// Panel is the left-side parameter panel.
type Panel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewPanel creates a hidden panel at the given position.
func NewPanel(x, y, width float32) *Panel {
	return &Panel{x: x, y: y, width: width}
}

// Toggle flips panel visibility and returns the new state.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// Draw renders the panel and mutates settings from slider input.
// Returns true when any value changed this frame.
func (p *Panel) Draw(s *Settings) bool {
	if !p.visible {
		return false
	}

	const pad = 10
	x := p.x + pad
	y := p.y + pad
	sliderW := p.width - 2*pad - 50

	rl.DrawRectangle(int32(p.x), int32(p.y), int32(p.width), 236, rl.Color{R: 20, G: 24, B: 34, A: 220})
	rl.DrawRectangleLines(int32(p.x), int32(p.y), int32(p.width), 236, rl.Color{R: 70, G: 80, B: 100, A: 255})

	rl.DrawText("Simulation", int32(x), int32(y), 16, rl.White)
	y += 28

	changed := false

	rl.DrawText("Particles", int32(x), int32(y), 12, rl.Gray)
	y += 16
	count := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 18},
		"0", "10k", s.BaseCount, 0, 10000,
	)
	rl.DrawText(fmt.Sprintf("%d", int(s.BaseCount)), int32(x+sliderW+8), int32(y+2), 14, rl.RayWhite)
	if count != s.BaseCount {
		s.BaseCount = count
		changed = true
	}
	y += 30

	rl.DrawText("Speed factor (px/tick per m/s)", int32(x), int32(y), 12, rl.Gray)
	y += 16
	speed := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 18},
		"0.02", "0.5", s.SpeedFactor, 0.02, 0.5,
	)
	rl.DrawText(fmt.Sprintf("%.2f", s.SpeedFactor), int32(x+sliderW+8), int32(y+2), 14, rl.RayWhite)
	if speed != s.SpeedFactor {
		s.SpeedFactor = speed
		changed = true
	}
	y += 30

	rl.DrawText("Trail length", int32(x), int32(y), 12, rl.Gray)
	y += 16
	length := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 18},
		"3", "30", s.TrailLength, 3, 30,
	)
	rl.DrawText(fmt.Sprintf("%d", int(s.TrailLength)), int32(x+sliderW+8), int32(y+2), 14, rl.RayWhite)
	if length != s.TrailLength {
		s.TrailLength = length
		changed = true
	}
	y += 30

	rl.DrawText("Ramp max speed (m/s)", int32(x), int32(y), 12, rl.Gray)
	y += 16
	ramp := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 18},
		"10", "80", s.MaxRampSpeed, 10, 80,
	)
	rl.DrawText(fmt.Sprintf("%.0f", s.MaxRampSpeed), int32(x+sliderW+8), int32(y+2), 14, rl.RayWhite)
	if ramp != s.MaxRampSpeed {
		s.MaxRampSpeed = ramp
		changed = true
	}

	return changed
}
