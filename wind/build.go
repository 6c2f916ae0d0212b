package wind

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Oracle answers whether an axis-aligned box overlaps any scene geometry.
type Oracle interface {
	BoxOverlapsAny(min, max mgl32.Vec3) bool
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(min, max mgl32.Vec3) bool

// BoxOverlapsAny calls f.
func (f OracleFunc) BoxOverlapsAny(min, max mgl32.Vec3) bool { return f(min, max) }

// cellMargin shrinks each query box so geometry in a neighbouring cell does
// not mark this one.
const cellMargin = 0.05

// BuildForScene rasterises scene geometry into the obstruction mask.
// Interior cell (1,1,1) starts at worldOffset. The mask is rebuilt from
// scratch, so repeated builds against unchanged geometry are identical.
// Returns the number of solid cells.
func (s *Simulation) BuildForScene(oracle Oracle, worldOffset mgl32.Vec3) int {
	s.worldOffset = worldOffset
	s.o.Clear()

	d := s.dims
	lo := d.CellSize * cellMargin
	hi := d.CellSize * (1 - cellMargin)
	solid := 0
	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			for x := 1; x <= d.W-2; x++ {
				base := s.CellMin(x, y, z)
				min := base.Add(mgl32.Vec3{lo, lo, lo})
				max := base.Add(mgl32.Vec3{hi, hi, hi})
				if oracle.BoxOverlapsAny(min, max) {
					s.o.Set(x, y, z, true)
					solid++
				}
			}
		}
	}
	s.solid = solid
	s.built = true

	s.applyBoundaries()
	return solid
}
