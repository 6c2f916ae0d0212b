package telemetry

import (
	"log/slog"
	"sort"

	"github.com/pthm-cable/gust/wind"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FieldSample is a per-tick snapshot of the simulation's scalar diagnostics.
type FieldSample struct {
	Tick          int32   `csv:"tick"`
	TotalDensity  float64 `csv:"total_density"`
	MinDensity    float64 `csv:"min_density"`
	MaxDensity    float64 `csv:"max_density"`
	KineticEnergy float64 `csv:"kinetic_energy"`
	MaxSpeed      float64 `csv:"max_speed"`
	MeanAbsDiv    float64 `csv:"mean_abs_div"`
}

// Sample reads the diagnostics of sim. It walks every interior cell a few
// times, so callers decide how often to pay for it.
func Sample(sim *wind.Simulation) FieldSample {
	total, lo, hi := sim.DensityRange()
	return FieldSample{
		Tick:          int32(sim.Tick()),
		TotalDensity:  float64(total),
		MinDensity:    float64(lo),
		MaxDensity:    float64(hi),
		KineticEnergy: float64(sim.KineticEnergy()),
		MaxSpeed:      float64(sim.MaxSpeed()),
		MeanAbsDiv:    float64(sim.MeanAbsDivergence()),
	}
}

// WindowStats aggregates the samples of one stats window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	Samples         int     `csv:"samples"`

	// Density totals across the window
	DensityMean float64 `csv:"density_mean"`
	DensityStd  float64 `csv:"density_std"`
	DensityMin  float64 `csv:"density_min"`
	DensityMax  float64 `csv:"density_max"`

	// Energy and speed
	EnergyMean    float64 `csv:"energy_mean"`
	EnergyStd     float64 `csv:"energy_std"`
	EnergyP50     float64 `csv:"energy_p50"`
	EnergyP90     float64 `csv:"energy_p90"`
	SpeedMax      float64 `csv:"speed_max"`
	DivergenceP50 float64 `csv:"divergence_p50"`
	DivergenceMax float64 `csv:"divergence_max"`
}

// StatsCollector buffers samples until a window's worth of ticks is seen.
type StatsCollector struct {
	windowTicks int32
	dt          float32
	samples     []FieldSample
}

// NewStatsCollector creates a collector closing a window every windowTicks
// ticks. dt converts ticks to simulated seconds.
func NewStatsCollector(windowTicks int32, dt float32) *StatsCollector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &StatsCollector{
		windowTicks: windowTicks,
		dt:          dt,
		samples:     make([]FieldSample, 0, windowTicks),
	}
}

// WindowTicks returns the window length in ticks.
func (c *StatsCollector) WindowTicks() int32 {
	return c.windowTicks
}

// Record buffers a sample and reports whether the window is now full.
func (c *StatsCollector) Record(s FieldSample) bool {
	c.samples = append(c.samples, s)
	return int32(len(c.samples)) >= c.windowTicks
}

// Pending returns the number of buffered samples.
func (c *StatsCollector) Pending() int {
	return len(c.samples)
}

// Flush aggregates the buffered samples into WindowStats and starts a new
// window. An empty window yields zero stats with ok false.
func (c *StatsCollector) Flush() (WindowStats, bool) {
	n := len(c.samples)
	if n == 0 {
		return WindowStats{}, false
	}

	density := make([]float64, n)
	energy := make([]float64, n)
	speed := make([]float64, n)
	div := make([]float64, n)
	for i, s := range c.samples {
		density[i] = s.TotalDensity
		energy[i] = s.KineticEnergy
		speed[i] = s.MaxSpeed
		div[i] = s.MeanAbsDiv
	}

	first, last := c.samples[0], c.samples[n-1]
	ws := WindowStats{
		WindowStartTick: first.Tick,
		WindowEndTick:   last.Tick,
		SimTimeSec:      float64(last.Tick) * float64(c.dt),
		Samples:         n,
		DensityMin:      floats.Min(density),
		DensityMax:      floats.Max(density),
		SpeedMax:        floats.Max(speed),
		DivergenceMax:   floats.Max(div),
	}
	ws.DensityMean, ws.DensityStd = meanStd(density)
	ws.EnergyMean, ws.EnergyStd = meanStd(energy)

	sort.Float64s(energy)
	ws.EnergyP50 = stat.Quantile(0.5, stat.Empirical, energy, nil)
	ws.EnergyP90 = stat.Quantile(0.9, stat.Empirical, energy, nil)
	sort.Float64s(div)
	ws.DivergenceP50 = stat.Quantile(0.5, stat.Empirical, div, nil)

	c.samples = c.samples[:0]
	return ws, true
}

// meanStd is stat.MeanStdDev with a zero deviation for single samples
// instead of NaN.
func meanStd(x []float64) (mean, std float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("samples", s.Samples),
		slog.Float64("density_mean", s.DensityMean),
		slog.Float64("density_std", s.DensityStd),
		slog.Float64("density_min", s.DensityMin),
		slog.Float64("density_max", s.DensityMax),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_std", s.EnergyStd),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("divergence_p50", s.DivergenceP50),
		slog.Float64("divergence_max", s.DivergenceMax),
	)
}
