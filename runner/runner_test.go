package runner

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/telemetry"
)

const smallScene = `
grid:
  extent: [6, 4, 6]
  cell_size: 1.0
  world_offset: [0, 0, 0]
scene:
  generate: false
  boxes:
    - center: [3, 1, 3]
      half: [0.5, 1, 0.5]
telemetry:
  stats_window: 0.08
  perf_collector_window: 10
`

func loadConfig(t *testing.T, overlay string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func TestNewBuildsScene(t *testing.T) {
	r, err := New(Options{Config: loadConfig(t, smallScene)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	d := r.Sim().Dims()
	if d.W != 8 || d.H != 6 || d.D != 8 {
		t.Errorf("expected 8x6x8 cells, got %s", d)
	}
	if r.Scene().Len() != 1 {
		t.Errorf("expected 1 collider, got %d", r.Scene().Len())
	}
	if !r.Sim().Built() {
		t.Fatal("obstruction mask should be built")
	}
	// The box covers cells x,z in {3,4} and y in {1,2}.
	if got := r.Sim().SolidCells(); got != 8 {
		t.Errorf("expected 8 solid cells, got %d", got)
	}
	if !r.Sim().Obstruction().Solid(4, 2, 3) || r.Sim().Obstruction().Solid(4, 3, 3) {
		t.Error("solid cells do not match the collider box")
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	r, err := New(Options{Config: loadConfig(t, smallScene)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	first := r.Sim().SolidCells()
	if got := r.Rebuild(); got != first {
		t.Errorf("rebuild changed solid cells from %d to %d", first, got)
	}
}

func TestStatsWindows(t *testing.T) {
	var windows []telemetry.WindowStats
	var samples int
	r, err := New(Options{
		Config:         loadConfig(t, smallScene),
		StepsPerUpdate: 4,
		StatsCallback:  func(ws telemetry.WindowStats) { windows = append(windows, ws) },
		SampleCallback: func(telemetry.FieldSample) { samples++ },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 3; i++ {
		r.Update()
	}
	if r.Tick() != 12 {
		t.Fatalf("expected 12 ticks, got %d", r.Tick())
	}
	if samples != 12 {
		t.Errorf("expected 12 samples, got %d", samples)
	}
	if len(windows) != 2 {
		t.Fatalf("expected 2 full windows, got %d", len(windows))
	}
	if windows[0].WindowStartTick != 1 || windows[0].WindowEndTick != 5 {
		t.Errorf("first window %d..%d, want 1..5", windows[0].WindowStartTick, windows[0].WindowEndTick)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(windows) != 3 || windows[2].Samples != 2 {
		t.Errorf("Close should flush the 2-tick partial window, got %d windows", len(windows))
	}
	if r.Perf().Samples() != 10 {
		t.Errorf("perf window should hold 10 ticks, got %d", r.Perf().Samples())
	}
}

func TestOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r, err := New(Options{Config: loadConfig(t, smallScene), OutputDir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10; i++ {
		r.Step()
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	for _, name := range []string{"stats.csv", "perf.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatalf("reading stats.csv: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(string(data)), "\n"); len(lines) != 3 {
		t.Errorf("expected header + 2 windows, got %d lines", len(lines))
	}
}

func TestRunsAreDeterministic(t *testing.T) {
	run := func() []float32 {
		cfg := loadConfig(t, smallScene)
		r, err := New(Options{Config: cfg, Seed: 7})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer r.Close()
		r.Sim().TriggerDensitySource()
		r.Sim().TriggerVelocitySource()
		for i := 0; i < 20; i++ {
			r.Step()
		}
		return slices.Clone(r.Sim().D().Data())
	}

	a, b := run(), run()
	if !slices.Equal(a, b) {
		t.Error("identical runs produced different density fields")
	}
}

func TestGeneratedSceneIsSeeded(t *testing.T) {
	overlay := strings.Replace(smallScene, "generate: false", "generate: true\n  columns: 3\n  fill: 0.6\n  max_height: 0.5\n  noise_scale: 0.7", 1)

	solid := func(seed int64) (int, int) {
		r, err := New(Options{Config: loadConfig(t, overlay), Seed: seed})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer r.Close()
		return r.Scene().Len(), r.Sim().SolidCells()
	}

	n1, s1 := solid(99)
	n2, s2 := solid(99)
	if n1 != n2 || s1 != s2 {
		t.Errorf("same seed built %d/%d then %d/%d colliders/solid cells", n1, s1, n2, s2)
	}
	if n1 < 1 {
		t.Errorf("expected the declared box at least, got %d colliders", n1)
	}
}

func TestStepsPerUpdateFloor(t *testing.T) {
	r, err := New(Options{Config: loadConfig(t, smallScene)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	if r.StepsPerUpdate() != 1 {
		t.Errorf("expected default 1 step per update, got %d", r.StepsPerUpdate())
	}
	r.SetStepsPerUpdate(-3)
	if r.StepsPerUpdate() != 1 {
		t.Errorf("expected floor of 1, got %d", r.StepsPerUpdate())
	}
}
