// Package scene holds the static box colliders the wind solver rasterises
// into its obstruction mask.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gust/config"
)

// Position is the world centre of a collider.
type Position struct {
	Center mgl32.Vec3
}

// Extent is the half size of a collider along each axis.
type Extent struct {
	Half mgl32.Vec3
}

// Box is an axis-aligned box in world space.
type Box struct {
	Min, Max mgl32.Vec3
}

// Overlaps reports whether b and o share volume. Touching faces do not
// count as overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X() < o.Max.X() && b.Max.X() > o.Min.X() &&
		b.Min.Y() < o.Max.Y() && b.Max.Y() > o.Min.Y() &&
		b.Min.Z() < o.Max.Z() && b.Max.Z() > o.Min.Z()
}

// Scene is an ECS world of static colliders.
type Scene struct {
	world     *ecs.World
	mapper    *ecs.Map2[Position, Extent]
	colliders *ecs.Filter2[Position, Extent]
}

// New creates an empty scene.
func New() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world:     world,
		mapper:    ecs.NewMap2[Position, Extent](world),
		colliders: ecs.NewFilter2[Position, Extent](world),
	}
}

// AddBox adds a collider centred at center with half size half.
func (s *Scene) AddBox(center, half mgl32.Vec3) ecs.Entity {
	return s.mapper.NewEntity(&Position{Center: center}, &Extent{Half: half})
}

// Remove deletes a collider. Unknown or removed entities are ignored.
func (s *Scene) Remove(e ecs.Entity) {
	if s.world.Alive(e) {
		s.world.RemoveEntity(e)
	}
}

// Len returns the number of colliders.
func (s *Scene) Len() int {
	query := s.colliders.Query()
	n := query.Count()
	query.Close()
	return n
}

// Boxes returns every collider as a world-space box.
func (s *Scene) Boxes() []Box {
	var boxes []Box
	query := s.colliders.Query()
	for query.Next() {
		pos, ext := query.Get()
		boxes = append(boxes, boxOf(pos, ext))
	}
	return boxes
}

// BoxOverlapsAny reports whether the box [min, max] overlaps any collider.
// Orientation is always identity.
func (s *Scene) BoxOverlapsAny(min, max mgl32.Vec3) bool {
	probe := Box{Min: min, Max: max}
	query := s.colliders.Query()
	for query.Next() {
		pos, ext := query.Get()
		if boxOf(pos, ext).Overlaps(probe) {
			query.Close()
			return true
		}
	}
	return false
}

// LoadBoxes adds colliders declared in configuration.
func (s *Scene) LoadBoxes(boxes []config.BoxConfig) {
	for _, b := range boxes {
		s.AddBox(
			mgl32.Vec3{float32(b.Center[0]), float32(b.Center[1]), float32(b.Center[2])},
			mgl32.Vec3{float32(b.Half[0]), float32(b.Half[1]), float32(b.Half[2])},
		)
	}
}

func boxOf(pos *Position, ext *Extent) Box {
	return Box{Min: pos.Center.Sub(ext.Half), Max: pos.Center.Add(ext.Half)}
}
