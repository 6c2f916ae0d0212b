// Package config provides configuration loading and access for the wind demo.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Solver    SolverConfig    `yaml:"solver"`
	Stimulus  StimulusConfig  `yaml:"stimulus"`
	Scene     SceneConfig     `yaml:"scene"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Render    RenderConfig    `yaml:"render"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// GridConfig holds the simulated volume.
type GridConfig struct {
	Extent      [3]float64 `yaml:"extent"`       // world size of the interior (x, y, z)
	CellSize    float64    `yaml:"cell_size"`    // meters per cell
	WorldOffset [3]float64 `yaml:"world_offset"` // world position of the interior's low corner
}

// SolverConfig holds solver coefficients and stage toggles.
type SolverConfig struct {
	DT                float64 `yaml:"dt"`
	Diffusion         float64 `yaml:"diffusion"`
	Viscosity         float64 `yaml:"viscosity"`
	DensityDiffusion  bool    `yaml:"density_diffusion"`
	DensityAdvection  bool    `yaml:"density_advection"`
	VelocityDiffusion bool    `yaml:"velocity_diffusion"`
	VelocityAdvection bool    `yaml:"velocity_advection"`
}

// StimulusConfig holds the scripted source/sink pattern.
type StimulusConfig struct {
	Offsets  [][3]int   `yaml:"offsets"`  // cells relative to the low interior corner
	Density  float64    `yaml:"density"`  // value written by the density source
	Velocity [3]float64 `yaml:"velocity"` // value written by the velocity source
}

// SceneConfig holds obstacle layout parameters.
type SceneConfig struct {
	Generate   bool        `yaml:"generate"`    // procedural columns from noise
	Columns    int         `yaml:"columns"`     // columns per side of the generator lattice
	Fill       float64     `yaml:"fill"`        // fraction of lattice slots that receive a column
	MaxHeight  float64     `yaml:"max_height"`  // tallest column as a fraction of grid height
	NoiseScale float64     `yaml:"noise_scale"` // lattice-to-noise frequency
	Boxes      []BoxConfig `yaml:"boxes"`
}

// BoxConfig declares a static box collider.
type BoxConfig struct {
	Center [3]float64 `yaml:"center"`
	Half   [3]float64 `yaml:"half"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // seconds of simulated time per window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // ticks averaged by the perf collector
}

// RenderConfig holds debug-draw settings.
type RenderConfig struct {
	ShowGrid         bool    `yaml:"show_grid"`
	ShowDensity      bool    `yaml:"show_density"`
	ShowVelocity     bool    `yaml:"show_velocity"`
	ShowObstructions bool    `yaml:"show_obstructions"`
	ShowColliders    bool    `yaml:"show_colliders"`
	DensityThreshold float64 `yaml:"density_threshold"` // skip cells below this density
	ArrowScale       float64 `yaml:"arrow_scale"`       // world length per unit speed
	MinArrowSpeed    float64 `yaml:"min_arrow_speed"`   // skip arrows below this speed
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32       float32 // Solver.DT as float32
	StatsTicks int     // Telemetry.StatsWindow in ticks
	InteriorW  int     // interior cells along x
	InteriorH  int     // interior cells along y
	InteriorD  int     // interior cells along z
	TotalCells int     // cells including the ghost shell
	ScreenW32  float32 // Screen.Width as float32
	ScreenH32  float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks values the solver cannot run with.
func (c *Config) Validate() error {
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid.cell_size must be > 0, got %g", c.Grid.CellSize)
	}
	for i, e := range c.Grid.Extent {
		if e <= 0 {
			return fmt.Errorf("grid.extent[%d] must be > 0, got %g", i, e)
		}
	}
	if c.Solver.DT <= 0 {
		return fmt.Errorf("solver.dt must be > 0, got %g", c.Solver.DT)
	}
	if c.Solver.Diffusion < 0 || c.Solver.Viscosity < 0 {
		return fmt.Errorf("solver.diffusion and solver.viscosity must be >= 0")
	}
	for i, b := range c.Scene.Boxes {
		for a := 0; a < 3; a++ {
			if b.Half[a] <= 0 {
				return fmt.Errorf("scene.boxes[%d].half must be > 0 on every axis", i)
			}
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Solver.DT)
	c.Derived.StatsTicks = int(c.Telemetry.StatsWindow/c.Solver.DT + 0.5)
	if c.Derived.StatsTicks < 1 {
		c.Derived.StatsTicks = 1
	}

	cells := func(extent float64) int {
		n := int(extent / c.Grid.CellSize)
		if float64(n)*c.Grid.CellSize < extent {
			n++
		}
		return n
	}
	c.Derived.InteriorW = cells(c.Grid.Extent[0])
	c.Derived.InteriorH = cells(c.Grid.Extent[1])
	c.Derived.InteriorD = cells(c.Grid.Extent[2])
	c.Derived.TotalCells = (c.Derived.InteriorW + 2) * (c.Derived.InteriorH + 2) * (c.Derived.InteriorD + 2)

	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Default stimulus if none specified
	if len(c.Stimulus.Offsets) == 0 {
		c.Stimulus.Offsets = [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
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
