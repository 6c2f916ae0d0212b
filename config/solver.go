package config

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/gust/wind"
)

// WindOptions maps the grid, solver and stimulus sections onto solver options.
func (c *Config) WindOptions() wind.Options {
	st := wind.Stimulus{
		Offsets:  make([]wind.Cell, len(c.Stimulus.Offsets)),
		Density:  float32(c.Stimulus.Density),
		Velocity: vec3(c.Stimulus.Velocity),
	}
	for i, o := range c.Stimulus.Offsets {
		st.Offsets[i] = wind.Cell{X: o[0], Y: o[1], Z: o[2]}
	}
	return wind.Options{
		Extent:            vec3(c.Grid.Extent),
		CellSize:          float32(c.Grid.CellSize),
		Diffusion:         float32(c.Solver.Diffusion),
		Viscosity:         float32(c.Solver.Viscosity),
		DensityDiffusion:  c.Solver.DensityDiffusion,
		DensityAdvection:  c.Solver.DensityAdvection,
		VelocityDiffusion: c.Solver.VelocityDiffusion,
		VelocityAdvection: c.Solver.VelocityAdvection,
		Stimulus:          st,
	}
}

// WorldOffset returns the grid's world offset as a vector.
func (c *Config) WorldOffset() mgl32.Vec3 {
	return vec3(c.Grid.WorldOffset)
}

func vec3(v [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
