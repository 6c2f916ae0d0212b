package wind

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDensitySourceIsOneShot(t *testing.T) {
	s := newGridSim(t, 8, quietOptions())
	s.TriggerDensitySource()

	s.Step(0.016)

	cells := s.stimulus.SourceCells(s.Dims())
	if len(cells) != 5 {
		t.Fatalf("expected 5 source cells, got %d", len(cells))
	}
	for _, c := range cells {
		if got := s.D().Get(c.X, c.Y, c.Z); got != 0.5 {
			t.Errorf("expected 0.5 at %v, got %f", c, got)
		}
	}
	if src, _, _, _ := s.Pending(); src {
		t.Error("expected source flag to reset after one step")
	}

	first := cells[0]
	s.D().Set(first.X, first.Y, first.Z, 0.1)
	s.Step(0.016)
	if got := s.D().Get(first.X, first.Y, first.Z); got != 0.1 {
		t.Errorf("expected source not to fire again, got %f", got)
	}
}

func TestDensitySinkClearsOppositeCorner(t *testing.T) {
	s := newGridSim(t, 8, quietOptions())
	s.D().Fill(1)
	s.TriggerDensitySink()

	s.Step(0.016)

	for _, c := range s.stimulus.SinkCells(s.Dims()) {
		if got := s.D().Get(c.X, c.Y, c.Z); got != 0 {
			t.Errorf("expected 0 at %v, got %f", c, got)
		}
	}
	if got := s.D().Get(6, 6, 6-1); got != 0 {
		t.Errorf("expected mirrored offset (6,6,5) cleared, got %f", got)
	}
	if got := s.D().Get(1, 1, 1); got != 1 {
		t.Errorf("expected low corner untouched, got %f", got)
	}
}

func TestVelocityStimuli(t *testing.T) {
	s := newGridSim(t, 8, quietOptions())
	s.V().Set(6, 6, 6, mgl32.Vec3{3, 3, 3})
	s.TriggerVelocitySource()
	s.TriggerVelocitySink()

	s.Step(0.016)

	if got := s.V().Get(1, 1, 1); got != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("expected source velocity at (1,1,1), got %v", got)
	}
	if got := s.V().Get(6, 6, 6); got != (mgl32.Vec3{}) {
		t.Errorf("expected sink to still (6,6,6), got %v", got)
	}
	if _, _, vs, vk := s.Pending(); vs || vk {
		t.Error("expected velocity flags reset")
	}
}

func TestStimulusSkipsCellsOutsideInterior(t *testing.T) {
	st := Stimulus{Offsets: []Cell{{0, 0, 0}, {5, 0, 0}}}
	s := newGridSim(t, 4, quietOptions())

	if n := len(st.SourceCells(s.Dims())); n != 1 {
		t.Errorf("expected 1 in-range source cell, got %d", n)
	}
	if n := len(st.SinkCells(s.Dims())); n != 1 {
		t.Errorf("expected 1 in-range sink cell, got %d", n)
	}
}
