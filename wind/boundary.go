package wind

import (
	"github.com/pthm-cable/gust/field"
)

// Boundary selects how ghost cells mirror the interior.
type Boundary int

const (
	// BoundaryScalar copies the adjacent interior value on every face.
	BoundaryScalar Boundary = iota
	// BoundaryX negates on the x faces (velocity x component).
	BoundaryX
	// BoundaryY negates on the y faces.
	BoundaryY
	// BoundaryZ negates on the z faces.
	BoundaryZ
)

func (b Boundary) String() string {
	switch b {
	case BoundaryScalar:
		return "scalar"
	case BoundaryX:
		return "x"
	case BoundaryY:
		return "y"
	case BoundaryZ:
		return "z"
	}
	return "unknown"
}

// obstructionLimit bounds the value written into solid cells.
const obstructionLimit = 100

// setBoundary enforces obstruction cells, then face, edge and corner ghost
// cells, in that order. Each tier reads values written by the one before.
func (s *Simulation) setBoundary(b Boundary, f *field.Scalar) {
	if s.solid > 0 {
		s.obstructionBoundary(f)
	}

	d := s.dims
	w, h, dp := d.W, d.H, d.D
	data := f.Data()

	sx, sy, sz := float32(1), float32(1), float32(1)
	switch b {
	case BoundaryX:
		sx = -1
	case BoundaryY:
		sy = -1
	case BoundaryZ:
		sz = -1
	}

	// Faces.
	for z := 1; z <= dp-2; z++ {
		for y := 1; y <= h-2; y++ {
			data[d.Index(0, y, z)] = sx * data[d.Index(1, y, z)]
			data[d.Index(w-1, y, z)] = sx * data[d.Index(w-2, y, z)]
		}
	}
	for z := 1; z <= dp-2; z++ {
		for x := 1; x <= w-2; x++ {
			data[d.Index(x, 0, z)] = sy * data[d.Index(x, 1, z)]
			data[d.Index(x, h-1, z)] = sy * data[d.Index(x, h-2, z)]
		}
	}
	for y := 1; y <= h-2; y++ {
		for x := 1; x <= w-2; x++ {
			data[d.Index(x, y, 0)] = sz * data[d.Index(x, y, 1)]
			data[d.Index(x, y, dp-1)] = sz * data[d.Index(x, y, dp-2)]
		}
	}

	// Edges: average of the two face ghosts sharing the edge.
	xs := [2][2]int{{0, 1}, {w - 1, w - 2}} // {ghost, inner}
	ys := [2][2]int{{0, 1}, {h - 1, h - 2}}
	zs := [2][2]int{{0, 1}, {dp - 1, dp - 2}}

	for _, yy := range ys {
		for _, zz := range zs {
			for x := 1; x <= w-2; x++ {
				data[d.Index(x, yy[0], zz[0])] = 0.5 * (data[d.Index(x, yy[1], zz[0])] + data[d.Index(x, yy[0], zz[1])])
			}
		}
	}
	for _, xx := range xs {
		for _, zz := range zs {
			for y := 1; y <= h-2; y++ {
				data[d.Index(xx[0], y, zz[0])] = 0.5 * (data[d.Index(xx[1], y, zz[0])] + data[d.Index(xx[0], y, zz[1])])
			}
		}
	}
	for _, xx := range xs {
		for _, yy := range ys {
			for z := 1; z <= dp-2; z++ {
				data[d.Index(xx[0], yy[0], z)] = 0.5 * (data[d.Index(xx[1], yy[0], z)] + data[d.Index(xx[0], yy[1], z)])
			}
		}
	}

	// Corners: average of the three edge ghosts meeting there.
	for _, xx := range xs {
		for _, yy := range ys {
			for _, zz := range zs {
				data[d.Index(xx[0], yy[0], zz[0])] = (data[d.Index(xx[1], yy[0], zz[0])] +
					data[d.Index(xx[0], yy[1], zz[0])] +
					data[d.Index(xx[0], yy[0], zz[1])]) / 3
			}
		}
	}
}

// obstructionBoundary overwrites each solid interior cell with the negated
// sum of its free axis neighbours, clamped to ±obstructionLimit.
func (s *Simulation) obstructionBoundary(f *field.Scalar) {
	d := s.dims
	o := s.o
	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			for x := 1; x <= d.W-2; x++ {
				if !o.Get(x, y, z) {
					continue
				}
				var sum float32
				if !o.Solid(x-1, y, z) {
					sum += f.Get(x-1, y, z)
				}
				if !o.Solid(x+1, y, z) {
					sum += f.Get(x+1, y, z)
				}
				if !o.Solid(x, y-1, z) {
					sum += f.Get(x, y-1, z)
				}
				if !o.Solid(x, y+1, z) {
					sum += f.Get(x, y+1, z)
				}
				if !o.Solid(x, y, z-1) {
					sum += f.Get(x, y, z-1)
				}
				if !o.Solid(x, y, z+1) {
					sum += f.Get(x, y, z+1)
				}
				f.Set(x, y, z, clampf(-sum, -obstructionLimit, obstructionLimit))
			}
		}
	}
}

// applyBoundaries enforces boundary conditions on the current fields.
func (s *Simulation) applyBoundaries() {
	s.setBoundary(BoundaryScalar, s.d)
	s.setBoundary(BoundaryX, s.v.X)
	s.setBoundary(BoundaryY, s.v.Y)
	s.setBoundary(BoundaryZ, s.v.Z)
}
