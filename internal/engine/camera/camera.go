// Package camera provides the perspective camera and the strategies that
// move it.
package camera

import (
	"github.com/Faultbox/orrery/pkg/math"
)

// Camera is a perspective camera. Orientation is expressed as the point it
// looks at.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FovDegrees float32
	Aspect     float32
	Near       float32
	Far        float32
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fovDegrees, aspect, near, far float32) *Camera {
	return &Camera{
		Target:     math.V3(0, 0, -1),
		Up:         math.V3(0, 1, 0),
		FovDegrees: fovDegrees,
		Aspect:     aspect,
		Near:       near,
		Far:        far,
	}
}

// SetViewport recomputes the aspect ratio. A zero height is ignored.
func (c *Camera) SetViewport(width, height int) {
	if height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Direction returns the unit view direction. A camera whose target equals
// its position looks down -Z.
func (c *Camera) Direction() math.Vec3 {
	d := c.Target.Sub(c.Position)
	if d.Length() == 0 {
		return math.V3(0, 0, -1)
	}
	return d.Normalize()
}

// Right returns the unit vector pointing to the camera's right.
func (c *Camera) Right() math.Vec3 {
	return c.Direction().Cross(c.Up).Normalize()
}

// LookAt points the camera at target without moving it.
func (c *Camera) LookAt(target math.Vec3) {
	c.Target = target
}

// Translate moves the camera and its target by delta, keeping orientation.
func (c *Camera) Translate(delta math.Vec3) {
	c.Position = c.Position.Add(delta)
	c.Target = c.Target.Add(delta)
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Direction()), c.Up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.DegToRad(c.FovDegrees), c.Aspect, c.Near, c.Far)
}

// Strategy moves a camera once per tick.
type Strategy interface {
	Update(cam *Camera, dt float32)
}

// Resizer is implemented by strategies that track the viewport size.
type Resizer interface {
	HandleResize(width, height int)
}
