// Package field provides the dense 3D grids the wind solver operates on.
//
// Every grid reserves a one-cell ghost shell on each face; the simulated
// interior is [1..W-2] x [1..H-2] x [1..D-2].
package field

import "fmt"

// Dims describes grid dimensions in cells plus the world size of a cell.
type Dims struct {
	W, H, D  int
	CellSize float32 // meters per cell
}

// Cells returns the total number of cells including the ghost shell.
func (d Dims) Cells() int { return d.W * d.H * d.D }

// Index returns the linear index for (x, y, z).
func (d Dims) Index(x, y, z int) int { return x + d.W*y + d.W*d.H*z }

// Contains reports whether (x, y, z) addresses a stored cell.
func (d Dims) Contains(x, y, z int) bool {
	return x >= 0 && x < d.W && y >= 0 && y < d.H && z >= 0 && z < d.D
}

// Interior reports whether (x, y, z) lies inside the ghost shell.
func (d Dims) Interior(x, y, z int) bool {
	return x >= 1 && x <= d.W-2 && y >= 1 && y <= d.H-2 && z >= 1 && z <= d.D-2
}

// Max returns the largest of the three cell counts.
func (d Dims) Max() int {
	return max(d.W, d.H, d.D)
}

// InteriorMax returns the largest interior extent (cells excluding the shell).
func (d Dims) InteriorMax() int {
	n := d.Max() - 2
	if n < 1 {
		return 1
	}
	return n
}

// Equal reports whether two grids share dimensions and cell size.
func (d Dims) Equal(o Dims) bool {
	return d.W == o.W && d.H == o.H && d.D == o.D && d.CellSize == o.CellSize
}

// Validate returns an error if any dimension is unusable.
func (d Dims) Validate() error {
	if d.W < 1 || d.H < 1 || d.D < 1 {
		return fmt.Errorf("field: dimensions must be >= 1, got %dx%dx%d", d.W, d.H, d.D)
	}
	if !(d.CellSize > 0) {
		return fmt.Errorf("field: cell size must be > 0, got %g", d.CellSize)
	}
	return nil
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d@%g", d.W, d.H, d.D, d.CellSize)
}
