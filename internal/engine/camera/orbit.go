package camera

import (
	"github.com/Faultbox/orrery/pkg/math"
)

// OrbitStrategy orbits the camera around a center point.
//
// Input is queued by Rotate, Zoom and Pan and consumed on the next Update.
// Update derives the spherical coordinates from the camera's current
// position, so edits made to the camera between ticks are kept.
type OrbitStrategy struct {
	Center math.Vec3

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPolar    float32 // radians from +Y
	MaxPolar    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	PanSensitivity  float32

	yaw, pitch float32
	zoom       float32
	panX, panY float32
}

// NewOrbitStrategy creates an orbit strategy around center with default settings.
func NewOrbitStrategy(center math.Vec3) *OrbitStrategy {
	return &OrbitStrategy{
		Center:          center,
		MinDistance:     1,
		MaxDistance:     500,
		MinPolar:        0.01,
		MaxPolar:        math.Pi - 0.01,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSensitivity:  0.002,
	}
}

// Rotate queues a drag of (deltaX, deltaY) pixels.
func (o *OrbitStrategy) Rotate(deltaX, deltaY float32) {
	o.yaw += deltaX
	o.pitch += deltaY
}

// Zoom queues a scroll wheel delta. Positive values move closer.
func (o *OrbitStrategy) Zoom(delta float32) {
	o.zoom += delta
}

// Pan queues a drag that moves the center in the view plane.
func (o *OrbitStrategy) Pan(deltaX, deltaY float32) {
	o.panX += deltaX
	o.panY += deltaY
}

// Update applies queued input. dt is ignored; orbiting follows input only.
func (o *OrbitStrategy) Update(cam *Camera, _ float32) {
	radius, phi, theta := math.ToSpherical(cam.Position.Sub(o.Center))
	if radius == 0 {
		radius = o.MinDistance
		phi = math.HalfPi
	}

	theta -= o.yaw * o.DragSensitivity
	phi = math.Clamp(phi-o.pitch*o.DragSensitivity, o.MinPolar, o.MaxPolar)

	radius -= o.zoom * radius * o.ZoomSensitivity
	radius = math.Clamp(radius, o.MinDistance, o.MaxDistance)

	if o.panX != 0 || o.panY != 0 {
		right := cam.Right()
		up := right.Cross(cam.Direction())
		scale := radius * o.PanSensitivity
		o.Center = o.Center.
			Add(right.Scale(-o.panX * scale)).
			Add(up.Scale(o.panY * scale))
	}

	cam.Position = o.Center.Add(math.Spherical(radius, phi, theta))
	cam.Target = o.Center

	o.yaw, o.pitch, o.zoom, o.panX, o.panY = 0, 0, 0, 0, 0
}
