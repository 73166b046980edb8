// Package telemetry collects simulation timing and flow statistics.
package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one animation tick.
const (
	PhaseAdvect    = "advect"
	PhaseBuild     = "build"
	PhaseTelemetry = "telemetry"
)

var tickPhases = []string{PhaseAdvect, PhaseBuild, PhaseTelemetry}

// perfSample holds timing for a single tick.
type perfSample struct {
	tick   time.Duration
	phases map[string]time.Duration
}

// PerfCollector tracks per-phase tick timing over a rolling window.
type PerfCollector struct {
	windowSize int
	samples    []perfSample
	writeIndex int
	count      int

	current    map[string]time.Duration
	tickStart  time.Time
	phaseStart time.Time
	lastPhase  string
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 30
	}
	return &PerfCollector{
		windowSize: windowSize,
		samples:    make([]perfSample, windowSize),
	}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase closes the previous phase and opens a new one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.current[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndTick closes the tick and records its sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastPhase != "" {
		p.current[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.samples[p.writeIndex] = perfSample{tick: now.Sub(p.tickStart), phases: p.current}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.count < p.windowSize {
		p.count++
	}
}

// PerfStats aggregates the current window.
type PerfStats struct {
	AvgTick        time.Duration
	MaxTick        time.Duration
	PhasePct       map[string]float64
	TicksPerSecond float64
}

// Stats computes aggregates over the recorded window.
func (p *PerfCollector) Stats() PerfStats {
	if p.count == 0 {
		return PerfStats{PhasePct: map[string]float64{}}
	}

	var total, max time.Duration
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.count; i++ {
		s := p.samples[i]
		total += s.tick
		if s.tick > max {
			max = s.tick
		}
		for phase, d := range s.phases {
			phaseSum[phase] += d
		}
	}

	avg := total / time.Duration(p.count)
	pct := make(map[string]float64, len(phaseSum))
	for phase, sum := range phaseSum {
		if total > 0 {
			pct[phase] = float64(sum) / float64(total) * 100
		}
	}

	var tps float64
	if avg > 0 {
		tps = float64(time.Second) / float64(avg)
	}
	return PerfStats{AvgTick: avg, MaxTick: max, PhasePct: pct, TicksPerSecond: tps}
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	for _, phase := range tickPhases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is the flat CSV row for perf windows.
type PerfStatsCSV struct {
	WindowEnd    int     `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	AdvectPct    float64 `csv:"advect_pct"`
	BuildPct     float64 `csv:"build_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens stats for export.
func (s PerfStats) ToCSV(windowEnd int) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		AdvectPct:    s.PhasePct[PhaseAdvect],
		BuildPct:     s.PhasePct[PhaseBuild],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
