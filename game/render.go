package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gust/renderer"
	"github.com/pthm-cable/gust/scene"
	"github.com/pthm-cable/gust/telemetry"
	"github.com/pthm-cable/gust/ui"
)

var backgroundColor = rl.Color{R: 14, G: 17, B: 22, A: 255}

const controlsLegend = "[Space] pause  [1-4] stimuli  [D/A/V/B] stages  [R] rebuild  [Backspace] reset  [F1-F5] overlays  [Tab] panel  [RMB] orbit  [Wheel] zoom"

// Draw renders the scene and UI. Called between steps only.
func (g *Game) Draw() {
	g.run.Perf().RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	rl.BeginMode3D(g.camera3D())
	g.wind.Draw(g.run.Sim(), g.colliders(), g.layers())
	rl.EndMode3D()

	g.drawUI()

	rl.EndDrawing()
}

// camera3D converts the orbit camera for raylib.
func (g *Game) camera3D() rl.Camera3D {
	pos := g.camera.Position()
	return rl.Camera3D{
		Position:   rl.NewVector3(pos.X(), pos.Y(), pos.Z()),
		Target:     rl.NewVector3(g.camera.Target.X(), g.camera.Target.Y(), g.camera.Target.Z()),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       g.camera.FovY,
		Projection: rl.CameraPerspective,
	}
}

func (g *Game) layers() renderer.Layers {
	return renderer.Layers{
		Grid:         g.overlays.IsEnabled(ui.OverlayGrid),
		Density:      g.overlays.IsEnabled(ui.OverlayDensity),
		Velocity:     g.overlays.IsEnabled(ui.OverlayVelocity),
		Obstructions: g.overlays.IsEnabled(ui.OverlayObstructions),
		Colliders:    g.overlays.IsEnabled(ui.OverlayColliders),
	}
}

func (g *Game) colliders() []scene.Box {
	if !g.overlays.IsEnabled(ui.OverlayColliders) {
		return nil
	}
	return g.run.Scene().Boxes()
}

// drawUI renders the HUD, perf panel and control panel.
func (g *Game) drawUI() {
	sim := g.run.Sim()
	total, _, _ := sim.DensityRange()

	g.hud.Draw(ui.HUDData{
		Title:        "Gust",
		Tick:         sim.Tick(),
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		Cells:        sim.Dims().String(),
		SolidCells:   sim.SolidCells(),
		Colliders:    g.run.Scene().Len(),
		TotalDensity: total,
		MaxSpeed:     sim.MaxSpeed(),
		Energy:       sim.KineticEnergy(),
	})

	perf := g.run.Perf().Stats()
	g.perfPanel.Draw(ui.PerfPanelData{
		PhaseAvg: perf.PhaseAvg,
		Total:    perf.AvgTickDuration,
		Order:    telemetry.Phases,
	})

	g.panel.Draw(sim, g.overlays)
	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)
}
