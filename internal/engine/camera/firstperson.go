package camera

import (
	"github.com/Faultbox/orrery/pkg/math"
)

// Move is a held movement key.
type Move int

const (
	MoveForward Move = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	moveCount
)

// FirstPersonStrategy flies the camera with held keys and looks toward the
// pointer. Both are integrated over the tick's elapsed time.
type FirstPersonStrategy struct {
	MovementSpeed float32 // units per second
	LookSpeed     float32 // degrees per pixel per second

	LookVertical bool
	AutoForward  bool
	ActiveLook   bool

	ConstrainVertical bool
	VerticalMin       float32 // polar angle, radians
	VerticalMax       float32

	held [moveCount]bool

	pointerX, pointerY float32
	viewHalfX          float32
	viewHalfY          float32

	lat, lon    float32
	initialized bool
}

// NewFirstPersonStrategy creates a first-person strategy with the usual
// fly-through defaults.
func NewFirstPersonStrategy() *FirstPersonStrategy {
	return &FirstPersonStrategy{
		MovementSpeed: 1,
		LookSpeed:     0.005,
		LookVertical:  true,
		ActiveLook:    true,
		VerticalMin:   0,
		VerticalMax:   math.Pi,
	}
}

// SetMove records whether a movement key is held.
func (f *FirstPersonStrategy) SetMove(m Move, held bool) {
	if m < 0 || m >= moveCount {
		return
	}
	f.held[m] = held
}

// Holding reports whether a movement key is held.
func (f *FirstPersonStrategy) Holding(m Move) bool {
	if m < 0 || m >= moveCount {
		return false
	}
	return f.held[m]
}

// pointerLimit bounds a usable pointer coordinate in pixels. ImGui reports
// -FLT_MAX while the pointer is outside the window.
const pointerLimit = 1 << 20

// SetPointer records the pointer position in window pixels. A non-finite or
// out-of-range position centers the pointer instead.
func (f *FirstPersonStrategy) SetPointer(x, y float32) {
	if !validCoord(x) || !validCoord(y) {
		f.ClearPointer()
		return
	}
	f.pointerX = x - f.viewHalfX
	f.pointerY = y - f.viewHalfY
}

// ClearPointer centers the pointer so the camera stops turning.
func (f *FirstPersonStrategy) ClearPointer() {
	f.pointerX, f.pointerY = 0, 0
}

// NaN fails both comparisons.
func validCoord(v float32) bool {
	return v > -pointerLimit && v < pointerLimit
}

// Pointer returns the pointer offset from the viewport center.
func (f *FirstPersonStrategy) Pointer() (x, y float32) {
	return f.pointerX, f.pointerY
}

// HandleResize records the viewport center used for pointer offsets.
func (f *FirstPersonStrategy) HandleResize(width, height int) {
	f.viewHalfX = float32(width) / 2
	f.viewHalfY = float32(height) / 2
}

// Update moves then turns the camera.
func (f *FirstPersonStrategy) Update(cam *Camera, dt float32) {
	if !f.initialized {
		f.orientFrom(cam)
	}

	step := dt * f.MovementSpeed
	dir := cam.Direction()
	right := cam.Right()
	up := right.Cross(dir)

	var delta math.Vec3
	if f.held[MoveForward] || (f.AutoForward && !f.held[MoveBackward]) {
		delta = delta.Add(dir.Scale(step))
	}
	if f.held[MoveBackward] {
		delta = delta.Sub(dir.Scale(step))
	}
	if f.held[MoveLeft] {
		delta = delta.Sub(right.Scale(step))
	}
	if f.held[MoveRight] {
		delta = delta.Add(right.Scale(step))
	}
	if f.held[MoveUp] {
		delta = delta.Add(up.Scale(step))
	}
	if f.held[MoveDown] {
		delta = delta.Sub(up.Scale(step))
	}
	cam.Position = cam.Position.Add(delta)

	look := dt * f.LookSpeed
	if !f.ActiveLook {
		look = 0
	}
	verticalRatio := float32(1)
	if f.ConstrainVertical && f.VerticalMax != f.VerticalMin {
		verticalRatio = math.Pi / (f.VerticalMax - f.VerticalMin)
	}

	f.lon -= f.pointerX * look
	if f.LookVertical {
		f.lat -= f.pointerY * look * verticalRatio
	}
	f.lat = math.Clamp(f.lat, -85, 85)

	phi := math.DegToRad(90 - f.lat)
	theta := math.DegToRad(f.lon)
	if f.ConstrainVertical {
		phi = f.VerticalMin + phi/math.Pi*(f.VerticalMax-f.VerticalMin)
	}

	cam.Target = cam.Position.Add(math.Spherical(1, phi, theta))
}

// orientFrom seeds lat/lon from the camera's current view direction.
func (f *FirstPersonStrategy) orientFrom(cam *Camera) {
	_, phi, theta := math.ToSpherical(cam.Direction())
	f.lat = 90 - math.RadToDeg(phi)
	f.lon = math.RadToDeg(theta)
	f.initialized = true
}
