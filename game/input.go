package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	orbitSpeed = 1.5 // radians per second for arrow keys
	dragSpeed  = 0.005
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}

	g.handleSolverKeys()
	g.handleOverlayKeys()
	g.handleCameraInput()
}

// handleSolverKeys maps keys onto the same simulation setters the panel uses.
func (g *Game) handleSolverKeys() {
	sim := g.run.Sim()

	// One-shot stimuli
	if rl.IsKeyPressed(rl.KeyOne) {
		sim.TriggerDensitySource()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		sim.TriggerDensitySink()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		sim.TriggerVelocitySource()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		sim.TriggerVelocitySink()
	}

	// Stage toggles
	if rl.IsKeyPressed(rl.KeyD) {
		sim.SetDensityDiffusion(!sim.DensityDiffusion())
	}
	if rl.IsKeyPressed(rl.KeyA) {
		sim.SetDensityAdvection(!sim.DensityAdvection())
	}
	if rl.IsKeyPressed(rl.KeyV) {
		sim.SetVelocityDiffusion(!sim.VelocityDiffusion())
	}
	if rl.IsKeyPressed(rl.KeyB) {
		sim.SetVelocityAdvection(!sim.VelocityAdvection())
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.run.Rebuild()
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		sim.Reset()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		g.run.SetStepsPerUpdate(g.run.StepsPerUpdate() - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.run.StepsPerUpdate() < 10 {
		g.run.SetStepsPerUpdate(g.run.StepsPerUpdate() + 1)
	}
}

// handleOverlayKeys checks for overlay toggle key presses.
func (g *Game) handleOverlayKeys() {
	for _, desc := range g.overlays.All() {
		if desc.Key != 0 && rl.IsKeyPressed(desc.Key) {
			g.overlays.Toggle(desc.ID)
		}
	}
}

// handleResize keeps panel anchors in step with the window size.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenWidth = float32(rl.GetScreenWidth())
	g.screenHeight = float32(rl.GetScreenHeight())
	g.perfPanel.SetPosition(int32(g.screenWidth)-260, 10)
}

// handleCameraInput orbits with arrow keys or right-drag and zooms with the
// wheel. Input over the control panel is left to the panel.
func (g *Game) handleCameraInput() {
	dt := rl.GetFrameTime()

	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Orbit(orbitSpeed*dt, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Orbit(-orbitSpeed*dt, 0)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Orbit(0, orbitSpeed*dt)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Orbit(0, -orbitSpeed*dt)
	}

	mouse := rl.GetMousePosition()
	if g.panel.Contains(mouse) {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		g.camera.Orbit(delta.X*dragSpeed, delta.Y*dragSpeed)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		delta := rl.GetMouseDelta()
		scale := g.camera.Distance * 0.002
		g.camera.Pan(-delta.X*scale, delta.Y*scale)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.Zoom(1 - wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.resetCamera()
	}
}
