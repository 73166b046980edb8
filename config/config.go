// Package config provides configuration loading and access for the viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all viewer and simulation configuration.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Particles ParticlesConfig `yaml:"particles"`
	Trails    TrailsConfig    `yaml:"trails"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Ramp      []RampStop      `yaml:"ramp"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"` // simulation tick rate, not render rate
}

// FieldConfig holds raster decode settings.
type FieldConfig struct {
	DecodeMin float64 `yaml:"decode_min"` // m/s at byte 0
	DecodeMax float64 `yaml:"decode_max"` // m/s at byte 255
	// MagnitudeMode selects "computed" (sqrt(u²+v²)) or "channel"
	// (third channel carries speed).
	MagnitudeMode string `yaml:"magnitude_mode"`
	Bounds        BoundsConfig `yaml:"bounds"`
}

// BoundsConfig is the geographic extent of the field raster.
type BoundsConfig struct {
	West  float64 `yaml:"west"`
	East  float64 `yaml:"east"`
	South float64 `yaml:"south"`
	North float64 `yaml:"north"`
}

// ParticlesConfig holds population parameters at base zoom.
type ParticlesConfig struct {
	BaseCount      int     `yaml:"base_count"`
	SpeedFactor    float64 `yaml:"speed_factor"` // pixels per tick per m/s
	MaxAgeMean     int     `yaml:"max_age_mean"` // ticks
	MaxAgeJitter   int     `yaml:"max_age_jitter"`
	SpawnFocusZoom float64 `yaml:"spawn_focus_zoom"`
}

// TrailsConfig holds trail rendering parameters.
type TrailsConfig struct {
	Length       int     `yaml:"length"` // points at base zoom
	Width        float64 `yaml:"width"`  // stroke width, px
	MinOpacity   float64 `yaml:"min_opacity"`
	FadeStrength float64 `yaml:"fade_strength"`
	MaxRampSpeed float64 `yaml:"max_ramp_speed"` // m/s clamp before color lookup
}

// CameraConfig holds the initial camera placement.
type CameraConfig struct {
	Lng  float64 `yaml:"lng"`
	Lat  float64 `yaml:"lat"`
	Zoom float64 `yaml:"zoom"`
}

// TelemetryConfig holds telemetry window sizes.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"`
	PerfWindow  int `yaml:"perf_window"`
}

// RampStop is one speed-to-color entry of the trail color ramp.
type RampStop struct {
	Speed float64 `yaml:"speed"` // m/s threshold
	R     uint8   `yaml:"r"`
	G     uint8   `yaml:"g"`
	B     uint8   `yaml:"b"`
}

var global *Config

// Init loads configuration into the package global.
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Init must run first.
func Cfg() *Config {
	if global == nil {
		panic("config.Init not called")
	}
	return global
}

// Load reads the embedded defaults and overlays an optional user file.
// Degenerate values are clamped, never surfaced as runtime errors.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct so the file only overrides
		// fields it names.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.clamp()
	return cfg, nil
}

// clamp pins configuration to safe minimums at acceptance time.
func (c *Config) clamp() {
	if c.Particles.BaseCount < 0 {
		c.Particles.BaseCount = 0
	}
	if c.Particles.MaxAgeMean < 1 {
		c.Particles.MaxAgeMean = 80
	}
	if c.Particles.MaxAgeJitter < 0 {
		c.Particles.MaxAgeJitter = 15
	}
	if c.Trails.Length < 2 {
		c.Trails.Length = 2
	}
	if c.Trails.Width <= 0 {
		c.Trails.Width = 1.5
	}
	if c.Screen.TargetFPS < 1 {
		c.Screen.TargetFPS = 30
	}
	if c.Field.DecodeMin >= c.Field.DecodeMax {
		c.Field.DecodeMin = -50
		c.Field.DecodeMax = 50
	}
	if c.Telemetry.WindowTicks < 1 {
		c.Telemetry.WindowTicks = 90
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 30
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
