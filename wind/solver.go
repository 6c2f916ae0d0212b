package wind

import (
	"github.com/pthm-cable/gust/field"
)

// diffuse solves the implicit diffusion of f0 into f.
func (s *Simulation) diffuse(b Boundary, f, f0 *field.Scalar, coeff, dt float32) {
	n := float32(s.dims.InteriorMax())
	a := dt * coeff * n * n * n
	s.relax(b, f, f0, a, 1+6*a)
}

// relax runs Iterations in-place Gauss-Seidel sweeps of
// f = (f0 + a*sum(neighbours of f)) / c, enforcing boundaries after each.
func (s *Simulation) relax(b Boundary, f, f0 *field.Scalar, a, c float32) {
	for it := 0; it < Iterations; it++ {
		s.sweep(f, f0, a, c)
		s.setBoundary(b, f)
	}
}

// sweep is one Gauss-Seidel pass over the free interior cells. Solid cells
// keep the value the last boundary pass gave them.
func (s *Simulation) sweep(f, f0 *field.Scalar, a, c float32) {
	d := s.dims
	sy, sz := d.W, d.W*d.H
	dst, src := f.Data(), f0.Data()
	solid := s.o.Data()

	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			i := d.Index(1, y, z)
			for x := 1; x <= d.W-2; x++ {
				if !solid[i] {
					sum := dst[i-1] + dst[i+1] + dst[i-sy] + dst[i+sy] + dst[i-sz] + dst[i+sz]
					dst[i] = (src[i] + a*sum) / c
				}
				i++
			}
		}
	}
}

// advect moves f0 along vel into f by semi-Lagrangian backtracing with
// trilinear interpolation.
func (s *Simulation) advect(b Boundary, f, f0 *field.Scalar, vel *field.Vector, dt float32) {
	d := s.dims
	dt0 := dt * float32(d.InteriorMax())
	maxX := float32(d.W) - 0.5
	maxY := float32(d.H) - 0.5
	maxZ := float32(d.D) - 0.5
	u, v, w := vel.X.Data(), vel.Y.Data(), vel.Z.Data()
	dst := f.Data()

	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			i := d.Index(1, y, z)
			for x := 1; x <= d.W-2; x++ {
				px := clampf(float32(x)-dt0*u[i], 0.5, maxX)
				py := clampf(float32(y)-dt0*v[i], 0.5, maxY)
				pz := clampf(float32(z)-dt0*w[i], 0.5, maxZ)

				// px, py, pz >= 0.5, so truncation is floor.
				i0, j0, k0 := int(px), int(py), int(pz)
				i1, j1, k1 := i0+1, j0+1, k0+1

				s1, t1, r1 := px-float32(i0), py-float32(j0), pz-float32(k0)
				s0, t0, r0 := 1-s1, 1-t1, 1-r1

				dst[i] = s0*(t0*(r0*f0.Clamped(i0, j0, k0)+r1*f0.Clamped(i0, j0, k1))+
					t1*(r0*f0.Clamped(i0, j1, k0)+r1*f0.Clamped(i0, j1, k1))) +
					s1*(t0*(r0*f0.Clamped(i1, j0, k0)+r1*f0.Clamped(i1, j0, k1))+
						t1*(r0*f0.Clamped(i1, j1, k0)+r1*f0.Clamped(i1, j1, k1)))
				i++
			}
		}
	}
	s.setBoundary(b, f)
}

// project removes the divergent part of vel. p and div are scratch fields.
func (s *Simulation) project(vel *field.Vector, p, div *field.Scalar) {
	d := s.dims
	n := float32(d.InteriorMax())
	sy, sz := d.W, d.W*d.H
	u, v, w := vel.X.Data(), vel.Y.Data(), vel.Z.Data()
	pd, dd := p.Data(), div.Data()

	p.Clear()
	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			i := d.Index(1, y, z)
			for x := 1; x <= d.W-2; x++ {
				dd[i] = divergenceAt(u, v, w, i, sy, sz, n)
				i++
			}
		}
	}
	s.setBoundary(BoundaryScalar, div)
	s.setBoundary(BoundaryScalar, p)

	s.relax(BoundaryScalar, p, div, 1, 6)

	g := 0.5 * n
	for z := 1; z <= d.D-2; z++ {
		for y := 1; y <= d.H-2; y++ {
			i := d.Index(1, y, z)
			for x := 1; x <= d.W-2; x++ {
				u[i] -= g * (pd[i+1] - pd[i-1])
				v[i] -= g * (pd[i+sy] - pd[i-sy])
				w[i] -= g * (pd[i+sz] - pd[i-sz])
				i++
			}
		}
	}
	s.setBoundary(BoundaryX, vel.X)
	s.setBoundary(BoundaryY, vel.Y)
	s.setBoundary(BoundaryZ, vel.Z)
}

// divergenceAt is the central-difference divergence used by the projection.
func divergenceAt(u, v, w []float32, i, sy, sz int, n float32) float32 {
	return -(1.0 / 3.0) * ((u[i+1]-u[i-1])/n + (v[i+sy]-v[i-sy])/n + (w[i+sz]-w[i-sz])/n)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
