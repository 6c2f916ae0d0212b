package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controls is the part of the solver the panel may change. Every edit goes
// through these setters, so the panel never touches field data.
type Controls interface {
	Diffusion() float32
	SetDiffusion(k float32)
	Viscosity() float32
	SetViscosity(k float32)

	DensityDiffusion() bool
	DensityAdvection() bool
	VelocityDiffusion() bool
	VelocityAdvection() bool
	SetDensityDiffusion(on bool)
	SetDensityAdvection(on bool)
	SetVelocityDiffusion(on bool)
	SetVelocityAdvection(on bool)

	TriggerDensitySource()
	TriggerDensitySink()
	TriggerVelocitySource()
	TriggerVelocitySink()
}

// ControlPanel renders the raygui solver controls and the overlay legend.
type ControlPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	// Slider upper bounds
	MaxDiffusion float32
	MaxViscosity float32
}

// NewControlPanel creates a visible panel at (x, y).
func NewControlPanel(x, y, width int32) *ControlPanel {
	return &ControlPanel{
		renderer:     NewRenderer(),
		x:            x,
		y:            y,
		width:        width,
		visible:      true,
		MaxDiffusion: 0.002,
		MaxViscosity: 0.002,
	}
}

// SetPosition updates the panel position.
func (c *ControlPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Toggle switches panel visibility.
func (c *ControlPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlPanel) IsVisible() bool {
	return c.visible
}

// Contains reports whether a screen point falls on the visible panel, so the
// host can keep mouse input on the panel away from the camera.
func (c *ControlPanel) Contains(p rl.Vector2) bool {
	if !c.visible {
		return false
	}
	return rl.CheckCollisionPointRec(p, c.bounds())
}

func (c *ControlPanel) height() int32 {
	t := c.renderer.Theme
	// title, 2 sliders, 4 toggles, 2 button rows, overlays header and rows
	return t.Padding*3 + 22 + 2*40 + 4*24 + 2*32 + t.LineHeight*8
}

func (c *ControlPanel) bounds() rl.Rectangle {
	return rl.Rectangle{X: float32(c.x), Y: float32(c.y), Width: float32(c.width), Height: float32(c.height())}
}

// Draw renders the panel and applies any edits to ctrl.
func (c *ControlPanel) Draw(ctrl Controls, overlays *OverlayRegistry) {
	if !c.visible {
		return
	}

	r := c.renderer
	pad := r.Theme.Padding
	r.DrawPanel(c.x, c.y, c.width, c.height())

	x := float32(c.x + pad)
	y := float32(c.y + pad)
	inner := float32(c.width - 2*pad)

	rl.DrawText("Wind", int32(x), int32(y), 16, rl.White)
	y += 22

	if v, ok := c.slider(x, &y, inner, "Diffusion", ctrl.Diffusion(), c.MaxDiffusion); ok {
		ctrl.SetDiffusion(v)
	}
	if v, ok := c.slider(x, &y, inner, "Viscosity", ctrl.Viscosity(), c.MaxViscosity); ok {
		ctrl.SetViscosity(v)
	}

	toggles := []struct {
		label string
		get   func() bool
		set   func(bool)
	}{
		{"Density diffusion [D]", ctrl.DensityDiffusion, ctrl.SetDensityDiffusion},
		{"Density advection [A]", ctrl.DensityAdvection, ctrl.SetDensityAdvection},
		{"Velocity diffusion [V]", ctrl.VelocityDiffusion, ctrl.SetVelocityDiffusion},
		{"Velocity advection [B]", ctrl.VelocityAdvection, ctrl.SetVelocityAdvection},
	}
	for _, tg := range toggles {
		cur := tg.get()
		if next := gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, tg.label, cur); next != cur {
			tg.set(next)
		}
		y += 24
	}

	half := (inner - 10) / 2
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, "Density source [1]") {
		ctrl.TriggerDensitySource()
	}
	if gui.Button(rl.Rectangle{X: x + half + 10, Y: y, Width: half, Height: 24}, "Density sink [2]") {
		ctrl.TriggerDensitySink()
	}
	y += 32
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, "Velocity source [3]") {
		ctrl.TriggerVelocitySource()
	}
	if gui.Button(rl.Rectangle{X: x + half + 10, Y: y, Width: half, Height: 24}, "Velocity sink [4]") {
		ctrl.TriggerVelocitySink()
	}
	y += 32

	if overlays == nil {
		return
	}
	iy := r.DrawSectionHeader(int32(x), int32(y), "Overlays")
	for _, cat := range overlays.Categories() {
		for _, desc := range overlays.ByCategory(cat) {
			iy = r.DrawStatus(int32(x), iy, desc.Name, desc.KeyLabel, overlays.IsEnabled(desc.ID), int32(inner))
		}
	}
}

// slider draws a labelled slider and advances y. It reports whether the
// value changed.
func (c *ControlPanel) slider(x float32, y *float32, width float32, label string, value, max float32) (float32, bool) {
	t := c.renderer.Theme
	rl.DrawText(fmt.Sprintf("%s: %.5f", label, value), int32(x), int32(*y), t.FontSize, t.LabelColor)
	*y += 16
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: width - 40, Height: 16},
		"", fmt.Sprintf("%.0e", max),
		value, 0, max,
	)
	*y += 24
	return next, next != value
}
