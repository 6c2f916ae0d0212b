package field

import "fmt"

// Cell is the element type a Field may hold.
type Cell interface {
	~float32 | ~bool
}

// Field is a dense W*H*D grid stored in a single row-major slice.
type Field[T Cell] struct {
	dims Dims
	data []T
}

// New allocates a zeroed field. It panics if dims are invalid.
func New[T Cell](dims Dims) *Field[T] {
	if err := dims.Validate(); err != nil {
		panic(err)
	}
	return &Field[T]{dims: dims, data: make([]T, dims.Cells())}
}

// Dims returns the field dimensions.
func (f *Field[T]) Dims() Dims { return f.dims }

// Data exposes the backing slice for bulk kernels.
func (f *Field[T]) Data() []T { return f.data }

// Get returns the value at (x, y, z). Callers guarantee the cell is in range.
func (f *Field[T]) Get(x, y, z int) T {
	return f.data[x+f.dims.W*y+f.dims.W*f.dims.H*z]
}

// Set writes the value at (x, y, z). Callers guarantee the cell is in range.
func (f *Field[T]) Set(x, y, z int, v T) {
	f.data[x+f.dims.W*y+f.dims.W*f.dims.H*z] = v
}

// At returns the value at linear index i.
func (f *Field[T]) At(i int) T { return f.data[i] }

// SetAt writes the value at linear index i.
func (f *Field[T]) SetAt(i int, v T) { f.data[i] = v }

// Clamped returns the value at the nearest stored cell to (x, y, z).
// Used where sample positions may overshoot the grid.
func (f *Field[T]) Clamped(x, y, z int) T {
	x = clampInt(x, 0, f.dims.W-1)
	y = clampInt(y, 0, f.dims.H-1)
	z = clampInt(z, 0, f.dims.D-1)
	return f.Get(x, y, z)
}

// GetOr returns the value at (x, y, z), or fallback outside the field.
func (f *Field[T]) GetOr(x, y, z int, fallback T) T {
	if !f.dims.Contains(x, y, z) {
		return fallback
	}
	return f.Get(x, y, z)
}

// Fill sets every cell to v.
func (f *Field[T]) Fill(v T) {
	for i := range f.data {
		f.data[i] = v
	}
}

// Clear resets every cell to the zero value.
func (f *Field[T]) Clear() {
	clear(f.data)
}

// Swap exchanges the storage of a and b without copying cells.
// It panics if the two fields do not share dimensions.
func Swap[T Cell](a, b *Field[T]) {
	mustMatch(a.dims, b.dims)
	a.data, b.data = b.data, a.data
}

func mustMatch(a, b Dims) {
	if !a.Equal(b) {
		panic(fmt.Sprintf("field: dimension mismatch %s vs %s", a, b))
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
