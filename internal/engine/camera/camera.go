// Package camera provides the orbit camera used by the tile viewer.
package camera

import (
	gomath "math"

	vmath "github.com/dyfios/webverse-worldengine/pkg/math"
)

// Orbit orbits around a center point using spherical coordinates.
type Orbit struct {
	Center vmath.Vec3

	Distance float32
	Pitch    float32 // radians, clamped
	Yaw      float32 // radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit creates an orbit camera with viewer defaults.
func NewOrbit(center vmath.Vec3, distance float32) *Orbit {
	return &Orbit{
		Center:          center,
		Distance:        distance,
		Pitch:           0.7,
		MinDistance:     1,
		MaxDistance:     10000,
		MinPitch:        0.05,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *Orbit) Position() vmath.Vec3 {
	cosP := float32(gomath.Cos(float64(c.Pitch)))
	return c.Center.Add(vmath.Vec3{
		X: c.Distance * cosP * float32(gomath.Sin(float64(c.Yaw))),
		Y: c.Distance * float32(gomath.Sin(float64(c.Pitch))),
		Z: c.Distance * cosP * float32(gomath.Cos(float64(c.Yaw))),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *Orbit) ViewMatrix() vmath.Mat4 {
	return vmath.LookAt(c.Position(), c.Center, vmath.Vec3{Y: 1})
}

// Drag updates rotation from a mouse drag delta.
func (c *Orbit) Drag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// Zoom updates distance from a scroll wheel delta.
func (c *Orbit) Zoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
