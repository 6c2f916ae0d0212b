// Package game hosts the wind demo: it ties the stepping loop to a raylib
// window, an orbit camera and the debug UI.
package game

import (
	"github.com/pthm-cable/gust/camera"
	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/renderer"
	"github.com/pthm-cable/gust/runner"
	"github.com/pthm-cable/gust/telemetry"
	"github.com/pthm-cable/gust/ui"
)

// Options configures game initialization.
type Options struct {
	Seed           int64
	LogStats       bool
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
	Config         *config.Config // nil uses config.Cfg()
	StatsCallback  func(telemetry.WindowStats)
}

// Game holds the complete demo state.
type Game struct {
	run *runner.Runner
	cfg *config.Config

	// Rendering (nil in headless mode)
	camera    *camera.Camera
	wind      *renderer.WindRenderer
	overlays  *ui.OverlayRegistry
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	panel     *ui.ControlPanel

	headless bool
	paused   bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game. In headless mode no window state is
// touched, so the caller need not have opened one.
func NewGameWithOptions(opts Options) (*Game, error) {
	run, err := runner.New(runner.Options{
		Config:         opts.Config,
		Seed:           opts.Seed,
		LogStats:       opts.LogStats,
		OutputDir:      opts.OutputDir,
		StepsPerUpdate: opts.StepsPerUpdate,
		StatsCallback:  opts.StatsCallback,
	})
	if err != nil {
		return nil, err
	}

	cfg := run.Config()
	g := &Game{
		run:          run,
		cfg:          cfg,
		headless:     opts.Headless,
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}
	if opts.Headless {
		return g, nil
	}

	g.resetCamera()
	g.wind = renderer.NewWindRenderer(renderOptions(cfg.Render))
	g.hud = ui.NewHUD()
	g.perfPanel = ui.NewPerfPanel(int32(g.screenWidth)-260, 10)
	g.panel = ui.NewControlPanel(10, 125, 260)

	g.overlays = ui.NewOverlayRegistry()
	g.overlays.SetEnabled(ui.OverlayGrid, cfg.Render.ShowGrid)
	g.overlays.SetEnabled(ui.OverlayDensity, cfg.Render.ShowDensity)
	g.overlays.SetEnabled(ui.OverlayVelocity, cfg.Render.ShowVelocity)
	g.overlays.SetEnabled(ui.OverlayObstructions, cfg.Render.ShowObstructions)
	g.overlays.SetEnabled(ui.OverlayColliders, cfg.Render.ShowColliders)

	return g, nil
}

// resetCamera frames the simulated interior.
func (g *Game) resetCamera() {
	sim := g.run.Sim()
	d := sim.Dims()
	g.camera = camera.Frame(sim.CellMin(1, 1, 1), sim.CellMin(d.W-1, d.H-1, d.D-1))
}

func renderOptions(rc config.RenderConfig) renderer.Options {
	return renderer.Options{
		DensityThreshold: float32(rc.DensityThreshold),
		ArrowScale:       float32(rc.ArrowScale),
		MinArrowSpeed:    float32(rc.MinArrowSpeed),
	}
}

// UpdateHeadless advances the simulation without input or drawing.
func (g *Game) UpdateHeadless() {
	g.run.Update()
}

// Update processes input and advances the simulation unless paused.
func (g *Game) Update() {
	g.handleInput()
	if !g.paused {
		g.run.Update()
	}
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int64 {
	return g.run.Tick()
}

// Paused reports whether stepping is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Unload flushes telemetry and closes output files.
func (g *Game) Unload() error {
	return g.run.Close()
}
