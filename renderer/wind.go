// Package renderer draws debug views of the wind volume with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/gust/scene"
	"github.com/pthm-cable/gust/wind"
)

// Options tunes what the renderer skips and how it scales.
type Options struct {
	DensityThreshold float32 // cells below this density are not drawn
	ArrowScale       float32 // world length per unit speed
	MinArrowSpeed    float32 // arrows below this speed are not drawn
}

// Layers selects the debug layers drawn by Draw.
type Layers struct {
	Grid         bool
	Density      bool
	Velocity     bool
	Obstructions bool
	Colliders    bool
}

var (
	gridColor        = rl.Color{R: 90, G: 100, B: 110, A: 255}
	obstructionColor = rl.Color{R: 200, G: 90, B: 60, A: 160}
	colliderColor    = rl.Color{R: 230, G: 200, B: 90, A: 255}
	arrowColor       = rl.Color{R: 120, G: 220, B: 255, A: 255}
	densityLow       = rl.Color{R: 40, G: 80, B: 200, A: 255}
	densityHigh      = rl.Color{R: 240, G: 250, B: 255, A: 255}
)

// WindRenderer draws a Simulation inside a 3D mode block. It only reads
// simulation state and must not be called while a step is running.
type WindRenderer struct {
	opts Options
}

// NewWindRenderer creates a renderer.
func NewWindRenderer(opts Options) *WindRenderer {
	return &WindRenderer{opts: opts}
}

// SetOptions replaces the renderer options.
func (r *WindRenderer) SetOptions(opts Options) {
	r.opts = opts
}

// Draw renders the enabled layers. Call between rl.BeginMode3D and
// rl.EndMode3D.
func (r *WindRenderer) Draw(sim *wind.Simulation, colliders []scene.Box, layers Layers) {
	if layers.Grid {
		r.drawGrid(sim)
	}
	if layers.Obstructions {
		r.drawObstructions(sim)
	}
	if layers.Colliders {
		for _, b := range colliders {
			drawBoxWires(b.Min, b.Max, colliderColor)
		}
	}
	if layers.Density {
		r.drawDensity(sim)
	}
	if layers.Velocity {
		r.drawVelocity(sim)
	}
}

// drawGrid outlines the interior volume and the floor lattice.
func (r *WindRenderer) drawGrid(sim *wind.Simulation) {
	d := sim.Dims()
	lo := sim.CellMin(1, 1, 1)
	hi := sim.CellMin(d.W-1, d.H-1, d.D-1)
	drawBoxWires(lo, hi, gridColor)

	for x := 2; x <= d.W-2; x++ {
		a := sim.CellMin(x, 1, 1)
		b := sim.CellMin(x, 1, d.D-1)
		rl.DrawLine3D(vec3(a), vec3(b), rl.Fade(gridColor, 0.4))
	}
	for z := 2; z <= d.D-2; z++ {
		a := sim.CellMin(1, 1, z)
		b := sim.CellMin(d.W-1, 1, z)
		rl.DrawLine3D(vec3(a), vec3(b), rl.Fade(gridColor, 0.4))
	}
}

func (r *WindRenderer) drawObstructions(sim *wind.Simulation) {
	d := sim.Dims()
	size := d.CellSize * 0.9
	o := sim.Obstruction()
	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			for x := 1; x <= d.W-2; x++ {
				if o.Solid(x, y, z) {
					rl.DrawCubeWires(vec3(sim.CellCenter(x, y, z)), size, size, size, obstructionColor)
				}
			}
		}
	}
}

// drawDensity shades each cell above the threshold by its share of the
// largest interior density.
func (r *WindRenderer) drawDensity(sim *wind.Simulation) {
	_, _, hi := sim.DensityRange()
	if hi <= r.opts.DensityThreshold || hi <= 0 {
		return
	}

	d := sim.Dims()
	dens := sim.D()
	size := d.CellSize * 0.6
	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			for x := 1; x <= d.W-2; x++ {
				v := dens.Get(x, y, z)
				if v <= r.opts.DensityThreshold {
					continue
				}
				t := v / hi
				c := lerpColor(densityLow, densityHigh, t)
				rl.DrawCube(vec3(sim.CellCenter(x, y, z)), size, size, size, rl.Fade(c, 0.15+0.6*t))
			}
		}
	}
}

func (r *WindRenderer) drawVelocity(sim *wind.Simulation) {
	d := sim.Dims()
	vel := sim.V()
	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			for x := 1; x <= d.W-2; x++ {
				v := vel.Get(x, y, z)
				speed := v.Len()
				if speed < r.opts.MinArrowSpeed || speed == 0 {
					continue
				}
				from := sim.CellCenter(x, y, z)
				drawArrow(from, from.Add(v.Mul(r.opts.ArrowScale)), d.CellSize*0.08, arrowColor)
			}
		}
	}
}

func drawArrow(from, to mgl32.Vec3, radius float32, color rl.Color) {
	shaft := to.Sub(from)
	head := from.Add(shaft.Mul(0.75))
	rl.DrawLine3D(vec3(from), vec3(head), color)
	rl.DrawCylinderEx(vec3(head), vec3(to), radius, 0, 6, color)
}

func drawBoxWires(min, max mgl32.Vec3, color rl.Color) {
	size := max.Sub(min)
	center := min.Add(size.Mul(0.5))
	rl.DrawCubeWires(vec3(center), size.X(), size.Y(), size.Z(), color)
}

func lerpColor(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return rl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
