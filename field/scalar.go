package field

import "gonum.org/v1/gonum/blas/blas32"

// Scalar is a float32 field: smoke density, one velocity component, or
// solver scratch.
type Scalar = Field[float32]

// NewScalar allocates a zeroed scalar field.
func NewScalar(dims Dims) *Scalar { return New[float32](dims) }

// AddScaled performs dst += alpha*src over every cell.
func AddScaled(dst *Scalar, alpha float32, src *Scalar) {
	mustMatch(dst.dims, src.dims)
	blas32.Axpy(alpha, vec(src.data), vec(dst.data))
}

// SumSquares returns the sum of squared cell values.
func SumSquares(f *Scalar) float32 {
	v := vec(f.data)
	return blas32.Dot(v, v)
}

// MaxAbs returns the largest absolute cell value.
func MaxAbs(f *Scalar) float32 {
	if len(f.data) == 0 {
		return 0
	}
	v := f.data[blas32.Iamax(vec(f.data))]
	if v < 0 {
		return -v
	}
	return v
}

func vec(data []float32) blas32.Vector {
	return blas32.Vector{N: len(data), Inc: 1, Data: data}
}
