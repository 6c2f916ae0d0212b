package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Debug-draw overlays.
const (
	OverlayGrid         OverlayID = "grid"
	OverlayDensity      OverlayID = "density"
	OverlayVelocity     OverlayID = "velocity"
	OverlayObstructions OverlayID = "obstructions"
	OverlayColliders    OverlayID = "colliders"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID // Unique identifier
	Name        string    // Display name
	Description string    // What this overlay shows
	Key         int32     // Keyboard key to toggle (0 = no key)
	KeyLabel    string    // Key label for display
	Category    string    // Grouping ("field" or "scene")
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with the debug-draw overlays, all off.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:          OverlayDensity,
		Name:        "Density",
		Description: "Cubes shaded by density above the threshold",
		Key:         rl.KeyF1,
		KeyLabel:    "F1",
		Category:    "field",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayVelocity,
		Name:        "Velocity",
		Description: "Arrows along the cell velocity",
		Key:         rl.KeyF2,
		KeyLabel:    "F2",
		Category:    "field",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayGrid,
		Name:        "Grid",
		Description: "Wireframe of the interior bounds",
		Key:         rl.KeyF3,
		KeyLabel:    "F3",
		Category:    "field",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayObstructions,
		Name:        "Obstructions",
		Description: "Solid cells of the obstruction mask",
		Key:         rl.KeyF4,
		KeyLabel:    "F4",
		Category:    "scene",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayColliders,
		Name:        "Colliders",
		Description: "Scene collider boxes",
		Key:         rl.KeyF5,
		KeyLabel:    "F5",
		Category:    "scene",
	})
}

// Register adds an overlay to the registry, disabled.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = false
}

// Toggle switches an overlay on/off and returns the new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	if _, ok := r.byID[id]; ok {
		r.enabled[id] = enabled
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}
