package field

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Axis selects one component of a Vector field.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Vector holds one scalar field per axis, all sharing dimensions.
type Vector struct {
	X, Y, Z *Scalar
}

// NewVector allocates a zeroed vector field.
func NewVector(dims Dims) *Vector {
	return &Vector{X: NewScalar(dims), Y: NewScalar(dims), Z: NewScalar(dims)}
}

// Dims returns the shared dimensions of the component fields.
func (v *Vector) Dims() Dims { return v.X.dims }

// Axis returns the component field for a.
func (v *Vector) Axis(a Axis) *Scalar {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic(fmt.Sprintf("field: invalid axis %d", int(a)))
}

// Get assembles the vector at (x, y, z).
func (v *Vector) Get(x, y, z int) mgl32.Vec3 {
	i := v.X.dims.Index(x, y, z)
	return mgl32.Vec3{v.X.data[i], v.Y.data[i], v.Z.data[i]}
}

// Set writes all three components at (x, y, z).
func (v *Vector) Set(x, y, z int, val mgl32.Vec3) {
	i := v.X.dims.Index(x, y, z)
	v.X.data[i] = val[0]
	v.Y.data[i] = val[1]
	v.Z.data[i] = val[2]
}

// Clear zeroes all three components.
func (v *Vector) Clear() {
	v.X.Clear()
	v.Y.Clear()
	v.Z.Clear()
}

// SwapVector exchanges the storage of every axis of a and b.
func SwapVector(a, b *Vector) {
	Swap(a.X, b.X)
	Swap(a.Y, b.Y)
	Swap(a.Z, b.Z)
}

// SwapAxis exchanges the storage of a single axis of a and b.
func SwapAxis(a, b *Vector, axis Axis) {
	Swap(a.Axis(axis), b.Axis(axis))
}
