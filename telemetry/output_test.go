package telemetry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/gust/config"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// Every method is a no-op on nil.
	if err := om.WriteStats(WindowStats{}); err != nil {
		t.Errorf("WriteStats on nil: %v", err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Errorf("WritePerf on nil: %v", err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Errorf("WriteConfig on nil: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("expected empty dir, got %q", om.Dir())
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := int32(1); i <= 3; i++ {
		if err := om.WriteStats(WindowStats{WindowEndTick: i * 10, Samples: 10}); err != nil {
			t.Fatalf("WriteStats: %v", err)
		}
	}
	perf := PerfStats{
		AvgTickDuration: 2 * time.Millisecond,
		PhasePct:        map[string]float64{PhaseVelocity: 60, PhaseDensity: 35},
	}
	if err := om.WritePerf(perf, 10); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	if err := om.WritePerf(perf, 20); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	stats := readLines(t, filepath.Join(dir, "stats.csv"))
	if len(stats) != 4 {
		t.Fatalf("expected header + 3 rows in stats.csv, got %d lines", len(stats))
	}
	if !strings.HasPrefix(stats[0], "window_end,sim_time,samples,") {
		t.Errorf("unexpected stats header %q", stats[0])
	}
	if !strings.HasPrefix(stats[3], "30,") {
		t.Errorf("unexpected last stats row %q", stats[3])
	}

	perfLines := readLines(t, filepath.Join(dir, "perf.csv"))
	if len(perfLines) != 3 {
		t.Fatalf("expected header + 2 rows in perf.csv, got %d lines", len(perfLines))
	}
	if !strings.HasPrefix(perfLines[1], "10,2000,") {
		t.Errorf("unexpected perf row %q", perfLines[1])
	}
}

func TestOutputManagerWriteConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	back, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if back.Grid != cfg.Grid {
		t.Errorf("grid section changed on roundtrip: %+v vs %+v", back.Grid, cfg.Grid)
	}
}

func TestSampleWriter(t *testing.T) {
	var buf bytes.Buffer
	sw := NewSampleWriter(&buf)
	for i := int32(0); i < 2; i++ {
		if err := sw.Write(FieldSample{Tick: i, TotalDensity: 0.5}); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "tick,total_density,min_density,max_density,kinetic_energy,max_speed,mean_abs_div" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "1,0.5,") {
		t.Errorf("unexpected row %q", lines[2])
	}
}
