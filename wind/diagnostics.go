package wind

import (
	"math"

	"github.com/pthm-cable/gust/field"
)

// Divergence returns the discrete divergence at an interior cell, using the
// same central differences as the projection.
func (s *Simulation) Divergence(x, y, z int) float32 {
	d := s.dims
	return divergenceAt(s.v.X.Data(), s.v.Y.Data(), s.v.Z.Data(),
		d.Index(x, y, z), d.W, d.W*d.H, float32(d.InteriorMax()))
}

// MeanAbsDivergence averages |Divergence| over the interior.
func (s *Simulation) MeanAbsDivergence() float32 {
	d := s.dims
	var sum float64
	n := 0
	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			for x := 1; x <= d.W-2; x++ {
				sum += math.Abs(float64(s.Divergence(x, y, z)))
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return float32(sum / float64(n))
}

// DensityRange returns the total, minimum and maximum interior density.
func (s *Simulation) DensityRange() (total, lo, hi float32) {
	d := s.dims
	lo = float32(math.Inf(1))
	hi = float32(math.Inf(-1))
	var sum float64
	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			for x := 1; x <= d.W-2; x++ {
				v := s.d.Get(x, y, z)
				sum += float64(v)
				lo = min(lo, v)
				hi = max(hi, v)
			}
		}
	}
	return float32(sum), lo, hi
}

// TotalDensity sums density over the interior.
func (s *Simulation) TotalDensity() float32 {
	total, _, _ := s.DensityRange()
	return total
}

// KineticEnergy returns 0.5*|v|^2 summed over every stored cell, ghost
// shell included.
func (s *Simulation) KineticEnergy() float32 {
	return 0.5 * (field.SumSquares(s.v.X) + field.SumSquares(s.v.Y) + field.SumSquares(s.v.Z))
}

// MaxSpeed returns the largest velocity magnitude in the interior.
func (s *Simulation) MaxSpeed() float32 {
	d := s.dims
	var best float32
	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			for x := 1; x <= d.W-2; x++ {
				if l := s.v.Get(x, y, z).Len(); l > best {
					best = l
				}
			}
		}
	}
	return best
}
