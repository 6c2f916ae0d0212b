// Package camera provides an orbit camera for viewing the wind volume.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// maxPitch keeps the camera off the poles, where the up vector degenerates.
const maxPitch = math32.Pi/2 - 0.05

// Camera orbits a target point at a given distance.
// Angles are in radians; yaw 0 looks along -X from the +X side.
type Camera struct {
	// Target is the point the camera looks at
	Target mgl32.Vec3

	Yaw      float32
	Pitch    float32
	Distance float32

	// Distance constraints
	MinDistance, MaxDistance float32

	// Vertical field of view in degrees
	FovY float32
}

// New creates a camera looking at target from distance, slightly above the
// horizon.
func New(target mgl32.Vec3, distance float32) *Camera {
	c := &Camera{
		Target:      target,
		Yaw:         math32.Pi / 4,
		Pitch:       math32.Pi / 6,
		Distance:    distance,
		MinDistance: 1,
		MaxDistance: 4 * distance,
		FovY:        45,
	}
	c.clamp()
	return c
}

// Frame points the camera at the center of the box and backs off far enough
// to see all of it.
func Frame(min, max mgl32.Vec3) *Camera {
	center := min.Add(max).Mul(0.5)
	radius := max.Sub(min).Len() / 2
	if radius <= 0 {
		radius = 1
	}
	return New(center, 2*radius)
}

// Position returns the camera's world position.
func (c *Camera) Position() mgl32.Vec3 {
	return c.Target.Add(c.offset())
}

func (c *Camera) offset() mgl32.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)
	return mgl32.Vec3{cp * cy, sp, cp * sy}.Mul(c.Distance)
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.offset().Mul(-1).Normalize()
}

// Right returns the unit vector to the right of the view, parallel to the
// ground.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

// Orbit rotates around the target. Pitch is clamped short of straight up or
// down, and yaw wraps to [0, 2pi).
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	c.clamp()
}

// Zoom scales the distance by factor, clamped to the distance limits.
// Factors below 1 move closer.
func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance *= factor
	c.clamp()
}

// Pan moves the target along the ground-parallel right axis and world up.
func (c *Camera) Pan(right, up float32) {
	c.Target = c.Target.Add(c.Right().Mul(right)).Add(mgl32.Vec3{0, up, 0})
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *Camera) clamp() {
	c.Pitch = clampf(c.Pitch, -maxPitch, maxPitch)
	c.Yaw = math32.Mod(c.Yaw, 2*math32.Pi)
	if c.Yaw < 0 {
		c.Yaw += 2 * math32.Pi
	}
	c.Distance = clampf(c.Distance, c.MinDistance, c.MaxDistance)
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
