// Package wind implements a 3D stable-fluids wind solver (density and
// velocity) with a static obstruction mask rasterised from scene geometry.
//
// A Simulation is not safe for concurrent use. Readers such as renderers
// must only access the fields between calls to Step.
package wind

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/gust/field"
)

// Iterations is the fixed Gauss-Seidel sweep count for every relaxation.
const Iterations = 10

// Options configures a Simulation.
type Options struct {
	Extent   mgl32.Vec3 // world size of the simulated interior
	CellSize float32    // meters per cell

	Diffusion float32 // density spread rate
	Viscosity float32 // velocity spread rate

	DensityDiffusion  bool
	DensityAdvection  bool
	VelocityDiffusion bool
	VelocityAdvection bool

	Stimulus Stimulus
}

// DefaultOptions returns a small enclosure with every solver stage enabled.
func DefaultOptions() Options {
	return Options{
		Extent:            mgl32.Vec3{16, 8, 16},
		CellSize:          1,
		Diffusion:         0.0002,
		Viscosity:         0.0001,
		DensityDiffusion:  true,
		DensityAdvection:  true,
		VelocityDiffusion: true,
		VelocityAdvection: true,
		Stimulus:          DefaultStimulus(),
	}
}

// Simulation owns the double-buffered density and velocity fields and the
// obstruction mask.
type Simulation struct {
	dims field.Dims

	d, d0 *field.Scalar
	v, v0 *field.Vector
	o     *field.Obstruction

	diffusion float32
	viscosity float32

	densityDiffusion  bool
	densityAdvection  bool
	velocityDiffusion bool
	velocityAdvection bool

	// One-shot stimuli, consumed by the next step.
	densitySource  bool
	densitySink    bool
	velocitySource bool
	velocitySink   bool

	stimulus Stimulus

	worldOffset mgl32.Vec3
	solid       int
	built       bool
	tick        int64

	phaseHook func(phase string)
}

// New creates a simulation whose interior covers opts.Extent.
// Each axis gets ceil(extent/cellSize) interior cells plus a ghost shell.
func New(opts Options) (*Simulation, error) {
	if !(opts.CellSize > 0) {
		return nil, fmt.Errorf("wind: cell size must be > 0, got %g", opts.CellSize)
	}
	var n [3]int
	for a := 0; a < 3; a++ {
		if !(opts.Extent[a] > 0) {
			return nil, fmt.Errorf("wind: extent must be > 0 on every axis, got %v", opts.Extent)
		}
		n[a] = int(math.Ceil(float64(opts.Extent[a]/opts.CellSize))) + 2
	}
	return NewGrid(field.Dims{W: n[0], H: n[1], D: n[2], CellSize: opts.CellSize}, opts)
}

// NewGrid creates a simulation with explicit cell dimensions, ghost shell
// included. opts.Extent is ignored.
func NewGrid(dims field.Dims, opts Options) (*Simulation, error) {
	if err := dims.Validate(); err != nil {
		return nil, fmt.Errorf("wind: %w", err)
	}
	if dims.W < 3 || dims.H < 3 || dims.D < 3 {
		return nil, fmt.Errorf("wind: need at least 3 cells per axis, got %s", dims)
	}
	if opts.Diffusion < 0 || opts.Viscosity < 0 {
		return nil, errors.New("wind: diffusion and viscosity must be >= 0")
	}
	if len(opts.Stimulus.Offsets) == 0 {
		opts.Stimulus = DefaultStimulus()
	}

	s := &Simulation{
		dims:              dims,
		d:                 field.NewScalar(dims),
		d0:                field.NewScalar(dims),
		v:                 field.NewVector(dims),
		v0:                field.NewVector(dims),
		o:                 field.NewObstruction(dims),
		diffusion:         opts.Diffusion,
		viscosity:         opts.Viscosity,
		densityDiffusion:  opts.DensityDiffusion,
		densityAdvection:  opts.DensityAdvection,
		velocityDiffusion: opts.VelocityDiffusion,
		velocityAdvection: opts.VelocityAdvection,
		stimulus:          opts.Stimulus,
	}
	s.checkDims()
	return s, nil
}

// checkDims panics unless all five fields share dimensions.
func (s *Simulation) checkDims() {
	all := []field.Dims{
		s.d.Dims(), s.d0.Dims(),
		s.v.X.Dims(), s.v.Y.Dims(), s.v.Z.Dims(),
		s.v0.X.Dims(), s.v0.Y.Dims(), s.v0.Z.Dims(),
		s.o.Dims(),
	}
	for _, d := range all {
		if !d.Equal(s.dims) {
			panic(fmt.Sprintf("wind: field dimensions diverge: %s vs %s", d, s.dims))
		}
	}
}

// Dims returns the grid dimensions shared by every field.
func (s *Simulation) Dims() field.Dims { return s.dims }

// D returns the current density field. Read-only for callers.
func (s *Simulation) D() *field.Scalar { return s.d }

// D0 returns the density source/scratch field.
func (s *Simulation) D0() *field.Scalar { return s.d0 }

// V returns the current velocity field. Read-only for callers.
func (s *Simulation) V() *field.Vector { return s.v }

// V0 returns the velocity source/scratch field.
func (s *Simulation) V0() *field.Vector { return s.v0 }

// Obstruction returns the solid-cell mask.
func (s *Simulation) Obstruction() *field.Obstruction { return s.o }

// Built reports whether BuildForScene has run.
func (s *Simulation) Built() bool { return s.built }

// SolidCells returns the solid count from the last build.
func (s *Simulation) SolidCells() int { return s.solid }

// Tick returns the number of completed Step calls.
func (s *Simulation) Tick() int64 { return s.tick }

// WorldOffset returns the world position of the interior's low corner.
func (s *Simulation) WorldOffset() mgl32.Vec3 { return s.worldOffset }

// CellMin returns the world position of the low corner of cell (x, y, z).
func (s *Simulation) CellMin(x, y, z int) mgl32.Vec3 {
	cs := s.dims.CellSize
	return s.worldOffset.Add(mgl32.Vec3{
		float32(x-1) * cs,
		float32(y-1) * cs,
		float32(z-1) * cs,
	})
}

// CellCenter returns the world position of the centre of cell (x, y, z).
func (s *Simulation) CellCenter(x, y, z int) mgl32.Vec3 {
	h := s.dims.CellSize * 0.5
	return s.CellMin(x, y, z).Add(mgl32.Vec3{h, h, h})
}

// Reset zeroes density and velocity, including the source buffers.
// The obstruction mask is kept.
func (s *Simulation) Reset() {
	s.d.Clear()
	s.d0.Clear()
	s.v.Clear()
	s.v0.Clear()
	s.applyBoundaries()
}

// SetDiffusion sets the density diffusion coefficient.
func (s *Simulation) SetDiffusion(k float32) { s.diffusion = k }

// Diffusion returns the density diffusion coefficient.
func (s *Simulation) Diffusion() float32 { return s.diffusion }

// SetViscosity sets the velocity diffusion coefficient.
func (s *Simulation) SetViscosity(k float32) { s.viscosity = k }

// Viscosity returns the velocity diffusion coefficient.
func (s *Simulation) Viscosity() float32 { return s.viscosity }

// SetDensityDiffusion enables or disables density diffusion.
func (s *Simulation) SetDensityDiffusion(on bool) { s.densityDiffusion = on }

// SetDensityAdvection enables or disables density advection.
func (s *Simulation) SetDensityAdvection(on bool) { s.densityAdvection = on }

// SetVelocityDiffusion enables or disables velocity diffusion and its projection.
func (s *Simulation) SetVelocityDiffusion(on bool) { s.velocityDiffusion = on }

// SetVelocityAdvection enables or disables velocity advection and its projection.
func (s *Simulation) SetVelocityAdvection(on bool) { s.velocityAdvection = on }

// DensityDiffusion reports whether density diffusion runs.
func (s *Simulation) DensityDiffusion() bool { return s.densityDiffusion }

// DensityAdvection reports whether density advection runs.
func (s *Simulation) DensityAdvection() bool { return s.densityAdvection }

// VelocityDiffusion reports whether velocity diffusion runs.
func (s *Simulation) VelocityDiffusion() bool { return s.velocityDiffusion }

// VelocityAdvection reports whether velocity advection runs.
func (s *Simulation) VelocityAdvection() bool { return s.velocityAdvection }

// TriggerDensitySource fills the source cells with density on the next step.
func (s *Simulation) TriggerDensitySource() { s.densitySource = true }

// TriggerDensitySink empties the sink cells on the next step.
func (s *Simulation) TriggerDensitySink() { s.densitySink = true }

// TriggerVelocitySource sets the source cells to the stimulus velocity on the
// next step.
func (s *Simulation) TriggerVelocitySource() { s.velocitySource = true }

// TriggerVelocitySink stills the sink cells on the next step.
func (s *Simulation) TriggerVelocitySink() { s.velocitySink = true }

// Pending reports which one-shot stimuli are waiting for the next step.
func (s *Simulation) Pending() (densitySource, densitySink, velocitySource, velocitySink bool) {
	return s.densitySource, s.densitySink, s.velocitySource, s.velocitySink
}

// AddDensitySource adds a per-second density source rate at an interior cell.
// The rate is integrated by the next StepDensity; the buffer doubles as
// diffusion scratch afterwards.
func (s *Simulation) AddDensitySource(x, y, z int, rate float32) {
	if !s.dims.Interior(x, y, z) {
		return
	}
	i := s.dims.Index(x, y, z)
	s.d0.SetAt(i, s.d0.At(i)+rate)
}

// AddVelocitySource adds a per-second acceleration at an interior cell.
func (s *Simulation) AddVelocitySource(x, y, z int, accel mgl32.Vec3) {
	if !s.dims.Interior(x, y, z) {
		return
	}
	s.v0.Set(x, y, z, s.v0.Get(x, y, z).Add(accel))
}
