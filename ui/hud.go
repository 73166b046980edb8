package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDState carries the per-frame readouts the HUD displays.
type HUDState struct {
	Tick      int
	Particles int
	Zoom      float64
	SpeedMean float64
	CoastRate float64
	Paused    bool
}

// DrawHUD renders the status line along the bottom edge.
func DrawHUD(screenW, screenH int32, s HUDState) {
	text := fmt.Sprintf("tick %d | particles %d | zoom %.1f | mean %.1f m/s | holes %.0f%% | fps %d",
		s.Tick, s.Particles, s.Zoom, s.SpeedMean, s.CoastRate*100, rl.GetFPS())
	if s.Paused {
		text += " | PAUSED"
	}
	rl.DrawRectangle(0, screenH-24, screenW, 24, rl.Color{R: 10, G: 12, B: 18, A: 200})
	rl.DrawText(text, 8, screenH-19, 14, rl.RayWhite)
	rl.DrawText("[tab] panel  [space] pause  [drag] pan  [wheel] zoom", screenW-380, screenH-19, 14, rl.Gray)
}
