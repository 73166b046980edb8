package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Particles.BaseCount != 3500 {
		t.Errorf("base count = %d, want 3500", cfg.Particles.BaseCount)
	}
	if cfg.Screen.TargetFPS != 30 {
		t.Errorf("target fps = %d, want 30", cfg.Screen.TargetFPS)
	}
	if cfg.Field.DecodeMin != -50 || cfg.Field.DecodeMax != 50 {
		t.Errorf("decode range = [%f, %f], want [-50, 50]", cfg.Field.DecodeMin, cfg.Field.DecodeMax)
	}
	if len(cfg.Ramp) != 11 {
		t.Errorf("ramp stops = %d, want 11", len(cfg.Ramp))
	}
}

func TestLoadOverlaysUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	body := "particles:\n  base_count: 500\ntrails:\n  length: 6\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading user config: %v", err)
	}
	if cfg.Particles.BaseCount != 500 {
		t.Errorf("base count = %d, want user override 500", cfg.Particles.BaseCount)
	}
	if cfg.Trails.Length != 6 {
		t.Errorf("trail length = %d, want user override 6", cfg.Trails.Length)
	}
	// Untouched fields keep defaults.
	if cfg.Screen.Width != 1280 {
		t.Errorf("screen width = %d, want default 1280", cfg.Screen.Width)
	}
}

func TestLoadClampsDegenerateValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	body := "particles:\n  base_count: -10\ntrails:\n  length: 0\nscreen:\n  target_fps: 0\nfield:\n  decode_min: 10\n  decode_max: 10\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.Particles.BaseCount != 0 {
		t.Errorf("negative count should clamp to 0, got %d", cfg.Particles.BaseCount)
	}
	if cfg.Trails.Length < 2 {
		t.Errorf("trail length should clamp to >= 2, got %d", cfg.Trails.Length)
	}
	if cfg.Screen.TargetFPS < 1 {
		t.Errorf("target fps should clamp to >= 1, got %d", cfg.Screen.TargetFPS)
	}
	if cfg.Field.DecodeMin >= cfg.Field.DecodeMax {
		t.Errorf("degenerate decode range not repaired: [%f, %f]", cfg.Field.DecodeMin, cfg.Field.DecodeMax)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written yaml: %v", err)
	}
	if back.Particles.BaseCount != cfg.Particles.BaseCount {
		t.Errorf("roundtrip changed base count: %d -> %d", cfg.Particles.BaseCount, back.Particles.BaseCount)
	}
}
