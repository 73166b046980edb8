package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/windtrails/field"
	"github.com/pthm-cable/windtrails/sim"
)

// WindowStats aggregates simulation behavior over a tick window.
type WindowStats struct {
	WindowEndTick int     `csv:"window_end"`
	Ticks         int     `csv:"ticks"`
	ParticleCount int     `csv:"particles"`
	Zoom          float64 `csv:"zoom"`

	// Events during the window
	Respawns int `csv:"respawns"`
	Coasted  int `csv:"coasted"`

	// Fraction of particle-ticks spent over data holes
	CoastRate float64 `csv:"coast_rate"`

	// Speed distribution at the particle heads, m/s, window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// Collector accumulates step stats between window closes.
type Collector struct {
	windowTicks int
	ticks       int
	respawns    int
	coasted     int
	moved       int
}

// NewCollector creates a collector closing windows every windowTicks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 90
	}
	return &Collector{windowTicks: windowTicks}
}

// Record accumulates one tick's step stats. Returns true when the
// window is full and Close should be called.
func (c *Collector) Record(s sim.StepStats) bool {
	c.ticks++
	c.respawns += s.Respawned
	c.coasted += s.Coasted
	c.moved += s.Moved
	return c.ticks >= c.windowTicks
}

// Close snapshots the window against the current population and resets
// the accumulators. Head speeds are sampled from the field at each
// particle's position.
func (c *Collector) Close(endTick int, zoom float64, particles []sim.Particle, f *field.VectorField) WindowStats {
	ws := WindowStats{
		WindowEndTick: endTick,
		Ticks:         c.ticks,
		ParticleCount: len(particles),
		Zoom:          zoom,
		Respawns:      c.respawns,
		Coasted:       c.coasted,
	}
	if total := c.coasted + c.moved; total > 0 {
		ws.CoastRate = float64(c.coasted) / float64(total)
	}

	speeds := make([]float64, 0, len(particles))
	for i := range particles {
		if s, ok := f.SampleAt(particles[i].X, particles[i].Y); ok {
			speeds = append(speeds, s.Magnitude)
		}
	}
	if len(speeds) > 0 {
		ws.SpeedMean = stat.Mean(speeds, nil)
		if len(speeds) > 1 {
			ws.SpeedStd = stat.StdDev(speeds, nil)
		}
		sort.Float64s(speeds)
		ws.SpeedP50 = stat.Quantile(0.5, stat.Empirical, speeds, nil)
		ws.SpeedP90 = stat.Quantile(0.9, stat.Empirical, speeds, nil)
	}

	c.ticks = 0
	c.respawns = 0
	c.coasted = 0
	c.moved = 0
	return ws
}

// LogValue implements slog.LogValuer.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", s.WindowEndTick),
		slog.Int("particles", s.ParticleCount),
		slog.Float64("zoom", s.Zoom),
		slog.Int("respawns", s.Respawns),
		slog.Float64("coast_rate", s.CoastRate),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p90", s.SpeedP90),
	)
}
