package wind

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/gust/field"
)

var axisBoundary = [3]Boundary{BoundaryX, BoundaryY, BoundaryZ}

// Phase names passed to the phase hook.
const (
	PhaseDensity  = "density"
	PhaseVelocity = "velocity"
)

// SetPhaseHook installs fn to be called with the phase name as Step enters
// each phase. A nil fn removes the hook.
func (s *Simulation) SetPhaseHook(fn func(phase string)) {
	s.phaseHook = fn
}

// Step advances the simulation by dt seconds: density first, against the
// velocity field as it stood at the start of the tick, then velocity.
func (s *Simulation) Step(dt float32) {
	s.enterPhase(PhaseDensity)
	s.StepDensity(dt)
	s.enterPhase(PhaseVelocity)
	s.StepVelocity(dt)
	s.tick++
}

func (s *Simulation) enterPhase(phase string) {
	if s.phaseHook != nil {
		s.phaseHook(phase)
	}
}

// StepDensity integrates sources, applies stimuli, then diffuses and
// advects density as enabled.
func (s *Simulation) StepDensity(dt float32) {
	field.AddScaled(s.d, dt, s.d0)

	if s.densitySource {
		for _, c := range s.stimulus.SourceCells(s.dims) {
			s.d.Set(c.X, c.Y, c.Z, s.stimulus.Density)
		}
		s.densitySource = false
	}
	if s.densitySink {
		for _, c := range s.stimulus.SinkCells(s.dims) {
			s.d.Set(c.X, c.Y, c.Z, 0)
		}
		s.densitySink = false
	}

	if s.densityDiffusion {
		field.Swap(s.d, s.d0)
		s.diffuse(BoundaryScalar, s.d, s.d0, s.diffusion, dt)
	}
	if s.densityAdvection {
		field.Swap(s.d, s.d0)
		s.advect(BoundaryScalar, s.d, s.d0, s.v, dt)
	}
}

// StepVelocity is StepDensity for each velocity axis, with a projection
// after diffusion and again after advection.
func (s *Simulation) StepVelocity(dt float32) {
	for a := field.AxisX; a <= field.AxisZ; a++ {
		field.AddScaled(s.v.Axis(a), dt, s.v0.Axis(a))
	}

	if s.velocitySource {
		for _, c := range s.stimulus.SourceCells(s.dims) {
			s.v.Set(c.X, c.Y, c.Z, s.stimulus.Velocity)
		}
		s.velocitySource = false
	}
	if s.velocitySink {
		for _, c := range s.stimulus.SinkCells(s.dims) {
			s.v.Set(c.X, c.Y, c.Z, mgl32.Vec3{})
		}
		s.velocitySink = false
	}

	if s.velocityDiffusion {
		field.SwapVector(s.v, s.v0)
		for a := field.AxisX; a <= field.AxisZ; a++ {
			s.diffuse(axisBoundary[a], s.v.Axis(a), s.v0.Axis(a), s.viscosity, dt)
		}
		s.project(s.v, s.v0.X, s.v0.Y)
	}
	if s.velocityAdvection {
		field.SwapVector(s.v, s.v0)
		for a := field.AxisX; a <= field.AxisZ; a++ {
			s.advect(axisBoundary[a], s.v.Axis(a), s.v0.Axis(a), s.v0, dt)
		}
		s.project(s.v, s.v0.X, s.v0.Y)
	}
}
