package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/field"
	"github.com/pthm-cable/gust/wind"
)

// Compile-time check that a scene can feed the solver.
var _ wind.Oracle = (*Scene)(nil)

func TestBoxOverlapsAny(t *testing.T) {
	s := New()
	s.AddBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})

	testCases := []struct {
		name     string
		min, max mgl32.Vec3
		want     bool
	}{
		{"inside", mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5}, true},
		{"partial", mgl32.Vec3{0.9, 0.9, 0.9}, mgl32.Vec3{2, 2, 2}, true},
		{"touching face", mgl32.Vec3{1, -1, -1}, mgl32.Vec3{2, 1, 1}, false},
		{"apart", mgl32.Vec3{3, 3, 3}, mgl32.Vec3{4, 4, 4}, false},
		{"enclosing", mgl32.Vec3{-5, -5, -5}, mgl32.Vec3{5, 5, 5}, true},
	}
	for _, tc := range testCases {
		if got := s.BoxOverlapsAny(tc.min, tc.max); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestEarlyExitLeavesWorldUsable(t *testing.T) {
	s := New()
	s.AddBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	s.AddBox(mgl32.Vec3{5, 0, 0}, mgl32.Vec3{1, 1, 1})

	if !s.BoxOverlapsAny(mgl32.Vec3{-0.1, -0.1, -0.1}, mgl32.Vec3{0.1, 0.1, 0.1}) {
		t.Fatal("expected overlap")
	}
	// A query left open would lock the world against structural changes.
	e := s.AddBox(mgl32.Vec3{10, 0, 0}, mgl32.Vec3{1, 1, 1})
	if s.Len() != 3 {
		t.Errorf("expected 3 colliders, got %d", s.Len())
	}
	s.Remove(e)
	s.Remove(e)
	if s.Len() != 2 {
		t.Errorf("expected 2 colliders after removal, got %d", s.Len())
	}
}

func TestBoxes(t *testing.T) {
	s := New()
	s.AddBox(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0.5, 1, 1.5})

	boxes := s.Boxes()
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}
	if boxes[0].Min != (mgl32.Vec3{0.5, 1, 1.5}) || boxes[0].Max != (mgl32.Vec3{1.5, 3, 4.5}) {
		t.Errorf("unexpected box %+v", boxes[0])
	}
}

func TestLoadBoxes(t *testing.T) {
	s := New()
	s.LoadBoxes([]config.BoxConfig{
		{Center: [3]float64{0, 0, 0}, Half: [3]float64{1, 1, 1}},
		{Center: [3]float64{4, 0, 0}, Half: [3]float64{1, 1, 1}},
	})
	if s.Len() != 2 {
		t.Errorf("expected 2 colliders, got %d", s.Len())
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	cfg := config.SceneConfig{Generate: true, Columns: 8, Fill: 0.5, MaxHeight: 0.5, NoiseScale: 0.4}
	origin := mgl32.Vec3{-8, 0, -8}
	extent := mgl32.Vec3{16, 8, 16}

	a, b := New(), New()
	na := a.Generate(cfg, 7, origin, extent)
	nb := b.Generate(cfg, 7, origin, extent)

	if na != nb {
		t.Fatalf("same seed produced %d and %d columns", na, nb)
	}
	ba, bb := a.Boxes(), b.Boxes()
	for i := range ba {
		if ba[i] != bb[i] {
			t.Fatalf("column %d differs between identical seeds", i)
		}
	}
	for _, box := range ba {
		if box.Min.Y() != 0 {
			t.Errorf("expected columns to stand on the floor, got min y %f", box.Min.Y())
		}
		if box.Max.Y() > 4+1e-4 {
			t.Errorf("column taller than max_height: %f", box.Max.Y())
		}
	}
}

func TestSceneDrivesObstructionBuild(t *testing.T) {
	s := New()
	// Occupies interior cell x=3 (world [2,3)) through the full y and z range.
	s.AddBox(mgl32.Vec3{2.5, 3, 3}, mgl32.Vec3{0.5, 3, 3})

	sim, err := wind.NewGrid(field.Dims{W: 8, H: 8, D: 8, CellSize: 1}, wind.Options{})
	if err != nil {
		t.Fatal(err)
	}
	n := sim.BuildForScene(s, mgl32.Vec3{})
	if n != 36 {
		t.Errorf("expected a 6x6 wall of solid cells, got %d", n)
	}
	if !sim.Obstruction().Solid(3, 1, 1) || sim.Obstruction().Solid(2, 1, 1) || sim.Obstruction().Solid(4, 1, 1) {
		t.Error("wall rasterised into the wrong column")
	}
}
