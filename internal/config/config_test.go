package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "pendulum" {
		t.Errorf("expected model pendulum, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if len(cfg.Trajectory) == 0 {
		t.Error("default config should prescribe a trajectory")
	}
}

func TestProfileConfigBuild(t *testing.T) {
	sine := ProfileConfig{Type: "sine", Amplitude: 1.0, Frequency: 0.5}
	p, err := sine.Build()
	if err != nil {
		t.Fatalf("sine build failed: %v", err)
	}
	_, qd, _ := p.At(0)
	if math.Abs(qd-math.Pi) > 1e-9 {
		t.Errorf("sine at 0.5 Hz should have qd = pi at t=0, got %f", qd)
	}

	poly := ProfileConfig{Type: "polynomial", Coeffs: []float64{1, 2}}
	p, err = poly.Build()
	if err != nil {
		t.Fatalf("polynomial build failed: %v", err)
	}
	q, _, _ := p.At(2)
	if q != 5 {
		t.Errorf("polynomial at t=2 = %f, want 5", q)
	}

	if _, err := (ProfileConfig{Type: "polynomial"}).Build(); err == nil {
		t.Error("expected error for polynomial without coeffs")
	}
	if _, err := (ProfileConfig{Type: "spline"}).Build(); err == nil {
		t.Error("expected error for unknown profile type")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("pendulum", "swing")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Trajectory[0].Amplitude != 1.2 {
		t.Errorf("expected amplitude 1.2, got %f", cfg.Trajectory[0].Amplitude)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("pendulum", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "swing") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("golf_swing")
	if len(presets) == 0 {
		t.Error("expected presets for golf_swing")
	}

	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	c := *GetPreset("double_pendulum", "whip")
	c.Gravity = 1.62
	cfg := &c
	path := filepath.Join(t.TempDir(), "run.yaml")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Model != cfg.Model {
		t.Errorf("model = %s, want %s", loaded.Model, cfg.Model)
	}
	if loaded.Dt != cfg.Dt {
		t.Errorf("dt = %f, want %f", loaded.Dt, cfg.Dt)
	}
	if len(loaded.Trajectory) != len(cfg.Trajectory) {
		t.Fatalf("trajectory length = %d, want %d", len(loaded.Trajectory), len(cfg.Trajectory))
	}
	if loaded.Trajectory[1].Frequency != cfg.Trajectory[1].Frequency {
		t.Error("trajectory did not roundtrip")
	}
	if loaded.Gravity != 1.62 {
		t.Errorf("gravity = %f, want 1.62", loaded.Gravity)
	}

	set, err := loaded.BuildTrajectory()
	if err != nil {
		t.Fatalf("build trajectory failed: %v", err)
	}
	if len(set) != 2 {
		t.Errorf("expected 2 joint profiles, got %d", len(set))
	}
}
