// Package runner drives a wind simulation over a scene with telemetry. It
// holds everything a host needs except drawing and input, so headless tools
// and the windowed game share one stepping loop.
package runner

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/scene"
	"github.com/pthm-cable/gust/telemetry"
	"github.com/pthm-cable/gust/wind"
)

// Options configures a Runner.
type Options struct {
	Config         *config.Config // nil uses config.Cfg()
	Seed           int64          // scene generator seed
	LogStats       bool           // log window stats via slog
	OutputDir      string         // CSV and config snapshot directory ("" disables)
	StepsPerUpdate int            // ticks per Update call

	// Called when a stats window closes.
	StatsCallback func(telemetry.WindowStats)
	// Called with the diagnostics of every tick.
	SampleCallback func(telemetry.FieldSample)
}

// Runner owns the scene, the simulation and the telemetry around them.
type Runner struct {
	cfg   *config.Config
	scene *scene.Scene
	sim   *wind.Simulation

	perf   *telemetry.PerfCollector
	stats  *telemetry.StatsCollector
	output *telemetry.OutputManager

	dt             float32
	stepsPerUpdate int
	logStats       bool
	statsCallback  func(telemetry.WindowStats)
	sampleCallback func(telemetry.FieldSample)
}

// New builds the scene from config, creates the simulation and rasterises the
// scene into its obstruction mask.
func New(opts Options) (*Runner, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	sim, err := wind.New(cfg.WindOptions())
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}
	d := sim.Dims()
	slog.Info("simulation created",
		"dims", d.String(),
		"cells", d.Cells(),
		"dt", cfg.Solver.DT,
	)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	r := &Runner{
		cfg:            cfg,
		scene:          scene.New(),
		sim:            sim,
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		stats:          telemetry.NewStatsCollector(int32(cfg.Derived.StatsTicks), cfg.Derived.DT32),
		output:         output,
		dt:             cfg.Derived.DT32,
		stepsPerUpdate: steps,
		logStats:       opts.LogStats,
		statsCallback:  opts.StatsCallback,
		sampleCallback: opts.SampleCallback,
	}
	sim.SetPhaseHook(r.perf.StartPhase)

	origin := cfg.WorldOffset()
	extent := sim.CellMin(d.W-1, d.H-1, d.D-1).Sub(origin)
	if cfg.Scene.Generate {
		r.scene.Generate(cfg.Scene, opts.Seed, origin, extent)
	}
	r.scene.LoadBoxes(cfg.Scene.Boxes)
	r.Rebuild()

	return r, nil
}

// Rebuild rasterises the current scene into the obstruction mask.
func (r *Runner) Rebuild() int {
	solid := r.sim.BuildForScene(r.scene, r.cfg.WorldOffset())
	slog.Info("scene built",
		"colliders", r.scene.Len(),
		"solid_cells", solid,
	)
	return solid
}

// Update advances the simulation by the configured number of ticks.
func (r *Runner) Update() {
	for i := 0; i < r.stepsPerUpdate; i++ {
		r.Step()
	}
}

// Step advances the simulation by one tick and records its telemetry.
func (r *Runner) Step() {
	r.perf.StartTick()
	r.sim.Step(r.dt)

	r.perf.StartPhase(telemetry.PhaseTelemetry)
	sample := telemetry.Sample(r.sim)
	if r.sampleCallback != nil {
		r.sampleCallback(sample)
	}
	full := r.stats.Record(sample)
	r.perf.EndTick()

	if full {
		r.flushStats()
	}
}

// flushStats closes the current stats window and fans it out.
func (r *Runner) flushStats() {
	ws, ok := r.stats.Flush()
	if !ok {
		return
	}
	perf := r.perf.Stats()

	if r.statsCallback != nil {
		r.statsCallback(ws)
	}
	if r.logStats {
		slog.Info("stats", "window", ws, "perf", perf)
	}
	if err := r.output.WriteStats(ws); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
	if err := r.output.WritePerf(perf, ws.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// Close flushes a partial stats window and closes the output files.
func (r *Runner) Close() error {
	if r.stats.Pending() > 0 {
		r.flushStats()
	}
	return r.output.Close()
}

// Config returns the configuration in use.
func (r *Runner) Config() *config.Config { return r.cfg }

// Scene returns the collider scene.
func (r *Runner) Scene() *scene.Scene { return r.scene }

// Sim returns the simulation.
func (r *Runner) Sim() *wind.Simulation { return r.sim }

// Perf returns the step timing collector.
func (r *Runner) Perf() *telemetry.PerfCollector { return r.perf }

// Tick returns the number of completed ticks.
func (r *Runner) Tick() int64 { return r.sim.Tick() }

// StepsPerUpdate returns the ticks run per Update.
func (r *Runner) StepsPerUpdate() int { return r.stepsPerUpdate }

// SetStepsPerUpdate sets the ticks run per Update, at least 1.
func (r *Runner) SetStepsPerUpdate(n int) {
	r.stepsPerUpdate = max(n, 1)
}
