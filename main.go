package main

import (
	"flag"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/windtrails/camera"
	"github.com/pthm-cable/windtrails/config"
	"github.com/pthm-cable/windtrails/field"
	"github.com/pthm-cable/windtrails/renderer"
	"github.com/pthm-cable/windtrails/sim"
	"github.com/pthm-cable/windtrails/telemetry"
	"github.com/pthm-cable/windtrails/trail"
	"github.com/pthm-cable/windtrails/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	fieldPath := flag.String("field", "", "Path to an encoded field PNG (empty = synthetic demo field)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	fld, err := loadField(cfg, *fieldPath)
	if err != nil {
		slog.Error("failed to load field", "path", *fieldPath, "error", err)
		os.Exit(1)
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if out != nil {
		if err := cfg.WriteYAML(filepath.Join(*outputDir, "config.yaml")); err != nil {
			slog.Warn("failed to snapshot config", "error", err)
		}
	}

	a := newApp(cfg, fld, rngSeed, *logStats, out)

	slog.Info("starting",
		"seed", rngSeed,
		"field", fld.Width*fld.Height,
		"particles", a.sys.Count(),
		"headless", *headless,
	)

	if *headless {
		for *maxTicks == 0 || a.tickN < *maxTicks {
			a.tick()
		}
		slog.Info("max ticks reached", "tick", a.tickN)
		return
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Windtrails")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	a.overlay.Attach()
	defer a.overlay.Detach()
	a.overlay.SetRaster(fld.ToImage())

	a.clock.Start(a.tick)
	defer a.clock.Stop()

	for !rl.WindowShouldClose() {
		a.handleInput()
		a.clock.OnFrame()
		a.overlay.Update(rl.GetFrameTime())
		a.draw()

		if *maxTicks > 0 && a.tickN >= *maxTicks {
			break
		}
	}
}

// loadField decodes an encoded raster PNG, or synthesizes the demo
// field when no path is given.
func loadField(cfg *config.Config, path string) (*field.VectorField, error) {
	bounds := field.Bounds{
		West:  cfg.Field.Bounds.West,
		East:  cfg.Field.Bounds.East,
		South: cfg.Field.Bounds.South,
		North: cfg.Field.Bounds.North,
	}
	rng := field.DecodeRange{Min: cfg.Field.DecodeMin, Max: cfg.Field.DecodeMax}
	mode := field.MagnitudeComputed
	if cfg.Field.MagnitudeMode == "channel" {
		mode = field.MagnitudeChannel
	}

	if path == "" {
		return field.Synthetic(720, 360, bounds, rng), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return field.FromImage(img, bounds, rng, mode), nil
}

// app wires the simulation core to the viewer.
type app struct {
	cfg      *config.Config
	sys      *sim.System
	policy   sim.Policy
	builder  trail.Builder
	cam      *camera.Camera
	clock    *sim.Clock
	overlay  *renderer.Overlay
	panel    *ui.Panel
	settings ui.Settings

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	out       *telemetry.OutputManager
	logStats  bool

	tickN      int
	lines      []trail.Polyline
	lastWindow telemetry.WindowStats
	paused     bool
}

func newApp(cfg *config.Config, fld *field.VectorField, seed int64, logStats bool, out *telemetry.OutputManager) *app {
	a := &app{
		cfg: cfg,
		policy: sim.Policy{
			BaseCount:       cfg.Particles.BaseCount,
			BaseSpeedFactor: cfg.Particles.SpeedFactor,
			BaseTrailLength: cfg.Trails.Length,
		},
		cam: camera.New(
			float32(cfg.Screen.Width), float32(cfg.Screen.Height),
			cfg.Camera.Lng, cfg.Camera.Lat, cfg.Camera.Zoom,
		),
		clock:     sim.NewClock(cfg.Screen.TargetFPS),
		overlay:   renderer.NewOverlay(1.5),
		panel:     ui.NewPanel(10, 10, 280),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		collector: telemetry.NewCollector(cfg.Telemetry.WindowTicks),
		out:       out,
		logStats:  logStats,
	}
	a.settings = ui.Settings{
		BaseCount:    float32(cfg.Particles.BaseCount),
		SpeedFactor:  float32(cfg.Particles.SpeedFactor),
		TrailLength:  float32(cfg.Trails.Length),
		MaxRampSpeed: float32(cfg.Trails.MaxRampSpeed),
	}
	a.builder = trail.Builder{
		Ramp:         rampFromConfig(cfg, cfg.Trails.MaxRampSpeed),
		MinOpacity:   cfg.Trails.MinOpacity,
		FadeStrength: cfg.Trails.FadeStrength,
		Width:        float32(cfg.Trails.Width),
	}

	params := a.policy.ForZoom(a.cam.Zoom)
	a.sys = sim.NewSystem(fld, params.ParticleCount, sim.Options{
		MaxAgeMean:     cfg.Particles.MaxAgeMean,
		MaxAgeJitter:   cfg.Particles.MaxAgeJitter,
		SpawnFocusZoom: cfg.Particles.SpawnFocusZoom,
		Rng:            sim.NewSource(seed),
	})
	a.sys.SetViewport(a.cam.Zoom, a.cam.VisibleBounds())
	return a
}

func rampFromConfig(cfg *config.Config, maxSpeed float64) trail.Ramp {
	if len(cfg.Ramp) == 0 {
		return trail.DefaultWindRamp()
	}
	entries := make([]trail.RampEntry, len(cfg.Ramp))
	for i, s := range cfg.Ramp {
		entries[i] = trail.RampEntry{
			Speed: s.Speed,
			Color: color.RGBA{R: s.R, G: s.G, B: s.B, A: 255},
		}
	}
	return trail.NewRamp(entries, maxSpeed)
}

// tick runs one simulation step and rebuilds the trail polylines.
func (a *app) tick() {
	a.perf.StartTick()

	a.perf.StartPhase(telemetry.PhaseAdvect)
	params := a.policy.ForZoom(a.cam.Zoom)
	a.sys.Resize(params.ParticleCount)
	stats := a.sys.Step(params)

	a.perf.StartPhase(telemetry.PhaseBuild)
	a.lines = a.builder.Build(a.sys.Particles(), a.sys.Field(), a.cam.GeoToScreen)

	a.perf.StartPhase(telemetry.PhaseTelemetry)
	a.tickN++
	if a.collector.Record(stats) {
		ws := a.collector.Close(a.tickN, a.cam.Zoom, a.sys.Particles(), a.sys.Field())
		a.lastWindow = ws
		if a.logStats {
			slog.Info("window", "stats", ws, "perf", a.perf.Stats())
		}
		if err := a.out.WriteWindow(ws); err != nil {
			slog.Warn("telemetry write failed", "error", err)
		}
		if err := a.out.WritePerf(a.perf.Stats(), a.tickN); err != nil {
			slog.Warn("perf write failed", "error", err)
		}
	}

	a.perf.EndTick()
}

// handleInput processes camera and UI interaction for one frame.
func (a *app) handleInput() {
	viewportChanged := false

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 {
			// Dragging moves the map under the cursor.
			a.cam.Pan(-d.X, -d.Y)
			viewportChanged = true
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.cam.ZoomBy(float64(wheel) * 0.25)
		viewportChanged = true
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		a.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		if a.paused {
			a.clock.Start(a.tick)
		} else {
			a.clock.Stop()
		}
		a.paused = !a.paused
	}

	if viewportChanged {
		a.sys.SetViewport(a.cam.Zoom, a.cam.VisibleBounds())
	}
}

// draw renders one frame: raster backdrop, trails, then UI.
func (a *app) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 8, G: 10, B: 16, A: 255})

	a.overlay.Draw(a.lines, a.fieldScreenRect())

	if a.panel.Draw(&a.settings) {
		a.policy.BaseCount = int(a.settings.BaseCount)
		a.policy.BaseSpeedFactor = float64(a.settings.SpeedFactor)
		a.policy.BaseTrailLength = int(a.settings.TrailLength)
		a.builder.Ramp = rampFromConfig(a.cfg, float64(a.settings.MaxRampSpeed))
	}
	ui.DrawHUD(int32(a.cfg.Screen.Width), int32(a.cfg.Screen.Height), ui.HUDState{
		Tick:      a.tickN,
		Particles: a.sys.Count(),
		Zoom:      a.cam.Zoom,
		SpeedMean: a.lastWindow.SpeedMean,
		CoastRate: a.lastWindow.CoastRate,
		Paused:    a.paused,
	})

	rl.EndDrawing()
}

// fieldScreenRect projects the field's geographic bounds to screen
// space for the raster backdrop.
func (a *app) fieldScreenRect() rl.Rectangle {
	b := a.sys.Field().Bounds
	nwX, nwY, _ := a.cam.GeoToScreen(b.West, b.North)
	seX, seY, _ := a.cam.GeoToScreen(b.East, b.South)
	return rl.Rectangle{X: nwX, Y: nwY, Width: seX - nwX, Height: seY - nwY}
}
