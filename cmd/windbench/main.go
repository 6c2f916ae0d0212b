// Wind benchmark - runs a fixed stimulus schedule headless and prints one CSV
// row of field diagnostics per tick. Two runs with the same flags produce
// identical output, which makes the CSV a regression baseline.
//
// Usage: go run ./cmd/windbench [-config path] [-ticks 600] [-pulse 60] > baseline.csv
package main

import (
	"bufio"
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/runner"
	"github.com/pthm-cable/gust/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	ticks := flag.Int("ticks", 600, "Ticks to run")
	pulse := flag.Int("pulse", 60, "Ticks between source pulses (0 = only at start)")
	sinkEvery := flag.Int("sink", 0, "Ticks between sink pulses (0 = never)")
	seed := flag.Int64("seed", 1, "Scene generator seed")
	flag.Parse()

	// Logs go to stderr so stdout stays pure CSV.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	samples := telemetry.NewSampleWriter(out)
	var writeErr error

	r, err := runner.New(runner.Options{
		Config: cfg,
		Seed:   *seed,
		SampleCallback: func(s telemetry.FieldSample) {
			if writeErr == nil {
				writeErr = samples.Write(s)
			}
		},
	})
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	sim := r.Sim()
	for i := 0; i < *ticks; i++ {
		if i == 0 || (*pulse > 0 && i%*pulse == 0) {
			sim.TriggerDensitySource()
			sim.TriggerVelocitySource()
		}
		if *sinkEvery > 0 && i > 0 && i%*sinkEvery == 0 {
			sim.TriggerDensitySink()
			sim.TriggerVelocitySink()
		}
		r.Step()
	}

	perf := r.Perf().Stats()
	if err := r.Close(); err != nil {
		slog.Error("failed to close", "error", err)
	}
	if err := out.Flush(); err != nil && writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		slog.Error("failed to write samples", "error", writeErr)
		os.Exit(1)
	}
	slog.Info("done", "ticks", r.Tick(), "solid_cells", sim.SolidCells(), "perf", perf)
}
