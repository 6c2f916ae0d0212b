package wind

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// slab is solid for world y in [0, 1).
var slab = OracleFunc(func(min, max mgl32.Vec3) bool {
	return min.Y() < 1 && max.Y() > 0
})

func TestBuildForSceneIsIdempotent(t *testing.T) {
	s := newGridSim(t, 8, quietOptions())

	first := s.BuildForScene(slab, mgl32.Vec3{})
	snapshot := append([]bool(nil), s.Obstruction().Data()...)
	second := s.BuildForScene(slab, mgl32.Vec3{})

	if first != second {
		t.Errorf("solid count changed between builds: %d vs %d", first, second)
	}
	for i, v := range s.Obstruction().Data() {
		if v != snapshot[i] {
			t.Fatalf("mask differs at %d after rebuild", i)
		}
	}
	if !s.Built() {
		t.Error("expected Built after BuildForScene")
	}
}

func TestBuildForSceneMarksOnlyOverlappedCells(t *testing.T) {
	s := newGridSim(t, 8, quietOptions())
	n := s.BuildForScene(slab, mgl32.Vec3{})

	d := s.Dims()
	if want := (d.W - 2) * (d.D - 2); n != want {
		t.Errorf("expected one solid layer of %d cells, got %d", want, n)
	}
	for z := 1; z <= d.D-2; z++ {
		for x := 1; x <= d.W-2; x++ {
			if !s.Obstruction().Solid(x, 1, z) {
				t.Fatalf("expected (%d,1,%d) solid", x, z)
			}
			if s.Obstruction().Solid(x, 2, z) {
				t.Fatalf("cell above the slab marked solid at (%d,2,%d)", x, z)
			}
		}
	}
	if s.Obstruction().Solid(0, 1, 1) {
		t.Error("ghost cells must never be solid")
	}
}

func TestBuildForSceneMarginIgnoresTouchingGeometry(t *testing.T) {
	s := newGridSim(t, 8, quietOptions())

	// Geometry reaching 2% into the second layer must not mark it.
	thin := OracleFunc(func(min, max mgl32.Vec3) bool {
		return min.Y() < 1.02 && max.Y() > 0
	})
	s.BuildForScene(thin, mgl32.Vec3{})
	if s.Obstruction().Solid(3, 2, 3) {
		t.Error("expected margin to reject geometry within 5% of the cell face")
	}
}

func TestBuildForSceneUsesWorldOffset(t *testing.T) {
	s := newGridSim(t, 8, quietOptions())

	var seen mgl32.Vec3
	first := true
	s.BuildForScene(OracleFunc(func(min, max mgl32.Vec3) bool {
		if first {
			seen = min
			first = false
		}
		return false
	}), mgl32.Vec3{10, 20, 30})

	want := mgl32.Vec3{10.05, 20.05, 30.05}
	if !seen.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("expected first query at %v, got %v", want, seen)
	}
	if c := s.CellCenter(1, 1, 1); !c.ApproxEqualThreshold(mgl32.Vec3{10.5, 20.5, 30.5}, 1e-5) {
		t.Errorf("unexpected cell centre %v", c)
	}
}

func TestBuildForSceneAppliesVelocityBoundaries(t *testing.T) {
	s := newGridSim(t, 6, quietOptions())
	s.V().Set(1, 2, 2, mgl32.Vec3{0.5, 0.5, 0.5})

	s.BuildForScene(OracleFunc(func(_, _ mgl32.Vec3) bool { return false }), mgl32.Vec3{})

	if got := s.V().X.Get(0, 2, 2); got != -0.5 {
		t.Errorf("expected reflected normal component -0.5, got %f", got)
	}
	if got := s.V().Y.Get(0, 2, 2); got != 0.5 {
		t.Errorf("expected copied tangential component 0.5, got %f", got)
	}
}
