package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/treedyn/internal/experiment"
)

func sampleResult() *experiment.Result {
	return &experiment.Result{
		Times: []float64{0.0, 0.01, 0.02},
		Positions: [][]float64{
			{0.0, 0.1},
			{0.05, 0.15},
			{0.1, 0.2},
		},
		Torques: [][]float64{
			{1.5, -0.25},
			{1.4, -0.20},
			{1.3, -0.15},
		},
		Metrics: map[string]float64{
			"peak_torque": 1.5,
			"rms_torque":  1.2,
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := store.Save("double_pendulum", 0.01, 0.02, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Model != "double_pendulum" {
		t.Errorf("expected model double_pendulum, got %s", meta.Model)
	}
	if meta.Dt != 0.01 {
		t.Errorf("expected dt 0.01, got %v", meta.Dt)
	}
	if meta.Joints != 2 {
		t.Errorf("expected 2 joints, got %d", meta.Joints)
	}
	if meta.Metrics["peak_torque"] != 1.5 {
		t.Errorf("expected peak_torque 1.5, got %v", meta.Metrics["peak_torque"])
	}
}

func TestLoadTorques(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	want := sampleResult()
	runID, err := store.Save("pendulum", 0.01, 0.02, want)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	torques, times, err := store.LoadTorques(runID)
	if err != nil {
		t.Fatalf("load torques failed: %v", err)
	}

	if len(torques) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(torques))
	}
	if len(times) != 3 {
		t.Fatalf("expected 3 timestamps, got %d", len(times))
	}
	for i := range want.Torques {
		if math.Abs(times[i]-want.Times[i]) > 1e-6 {
			t.Errorf("row %d: expected time %v, got %v", i, want.Times[i], times[i])
		}
		for j := range want.Torques[i] {
			if math.Abs(torques[i][j]-want.Torques[i][j]) > 1e-9 {
				t.Errorf("row %d joint %d: expected %v, got %v", i, j, want.Torques[i][j], torques[i][j])
			}
		}
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := store.Save("pendulum", 0.01, 1.0, sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := store.Save("chain", 0.005, 2.0, sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestListEmptyDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing"))

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestListSkipsCorruptMetadata(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := store.Save("pendulum", 0.01, 1.0, sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	badDir := filepath.Join(dir, "broken_run")
	if err := os.MkdirAll(badDir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(badDir, "metadata.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("no_such_run"); err == nil {
		t.Error("expected error for missing run")
	}
}
