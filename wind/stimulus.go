package wind

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/gust/field"
)

// Cell is an integer grid offset.
type Cell struct {
	X, Y, Z int
}

// Stimulus describes the scripted source and sink injections.
// Source cells are Offsets measured inward from the low interior corner
// (1,1,1); sink cells mirror them from the high interior corner.
type Stimulus struct {
	Offsets  []Cell
	Density  float32
	Velocity mgl32.Vec3
}

// DefaultStimulus returns the five-cell corner pattern.
func DefaultStimulus() Stimulus {
	return Stimulus{
		Offsets: []Cell{
			{0, 0, 0},
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
			{1, 1, 1},
		},
		Density:  0.5,
		Velocity: mgl32.Vec3{1, 1, 1},
	}
}

// SourceCells returns the interior cells the source stimulus writes.
func (st Stimulus) SourceCells(d field.Dims) []Cell {
	cells := make([]Cell, 0, len(st.Offsets))
	for _, o := range st.Offsets {
		c := Cell{1 + o.X, 1 + o.Y, 1 + o.Z}
		if d.Interior(c.X, c.Y, c.Z) {
			cells = append(cells, c)
		}
	}
	return cells
}

// SinkCells returns the interior cells the sink stimulus writes.
func (st Stimulus) SinkCells(d field.Dims) []Cell {
	cells := make([]Cell, 0, len(st.Offsets))
	for _, o := range st.Offsets {
		c := Cell{d.W - 2 - o.X, d.H - 2 - o.Y, d.D - 2 - o.Z}
		if d.Interior(c.X, c.Y, c.Z) {
			cells = append(cells, c)
		}
	}
	return cells
}
