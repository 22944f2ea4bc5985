// Package input routes polled keyboard and pointer state to the camera rig.
package input

import (
	"github.com/Faultbox/orrery/internal/engine/camera"
)

// Key identifies a keyboard key the viewer reacts to.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyR
	KeyF
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF12
	keyCount
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Source is the per-frame input state.
type Source interface {
	// KeyDown reports whether the key is held.
	KeyDown(k Key) bool
	// KeyPressed reports whether the key went down this frame.
	KeyPressed(k Key) bool
	ButtonDown(b Button) bool
	// Pointer returns the pointer position; ok is false while the pointer is
	// outside the window.
	Pointer() (x, y float32, ok bool)
	Wheel() float32
	// Captured reports whether a UI widget owns input this frame.
	Captured() bool
}

// moveKeys maps held keys to first-person movement.
var moveKeys = []struct {
	key  Key
	move camera.Move
}{
	{KeyW, camera.MoveForward},
	{KeyUp, camera.MoveForward},
	{KeyS, camera.MoveBackward},
	{KeyDown, camera.MoveBackward},
	{KeyA, camera.MoveLeft},
	{KeyLeft, camera.MoveLeft},
	{KeyD, camera.MoveRight},
	{KeyRight, camera.MoveRight},
	{KeyR, camera.MoveUp},
	{KeyF, camera.MoveDown},
}

// Router polls a Source once per frame and feeds the rig's strategies.
type Router struct {
	src         Source
	keys        *camera.KeyBinding
	orbit       *camera.OrbitStrategy
	firstPerson *camera.FirstPersonStrategy

	// OnScreenshot is called when the screenshot key is pressed.
	OnScreenshot func()

	lastX, lastY float32
	hasLast      bool
}

// NewRouter creates a router for every strategy registered on the rig.
func NewRouter(src Source, rig *camera.Rig) *Router {
	r := &Router{src: src, keys: rig.Keys()}
	for _, s := range rig.Strategies() {
		switch v := s.(type) {
		case *camera.OrbitStrategy:
			r.orbit = v
		case *camera.FirstPersonStrategy:
			r.firstPerson = v
		}
	}
	return r
}

// Poll reads the source and queues input. Call once per frame before the tick.
func (r *Router) Poll() {
	x, y, inside := r.src.Pointer()
	dx, dy := float32(0), float32(0)
	if inside && r.hasLast {
		dx, dy = x-r.lastX, y-r.lastY
	}
	r.lastX, r.lastY, r.hasLast = x, y, inside

	if r.src.KeyPressed(KeyF12) && r.OnScreenshot != nil {
		r.OnScreenshot()
	}

	if r.src.Captured() {
		r.releaseMoves()
		return
	}

	if r.src.KeyPressed(KeyW) {
		r.keys.Press()
	}

	if fp := r.firstPerson; fp != nil {
		for _, m := range moveKeys {
			fp.SetMove(m.move, false)
		}
		for _, m := range moveKeys {
			if r.src.KeyDown(m.key) {
				fp.SetMove(m.move, true)
			}
		}
		if inside {
			fp.SetPointer(x, y)
		} else {
			fp.ClearPointer()
		}
	}

	if o := r.orbit; o != nil {
		if r.src.ButtonDown(ButtonLeft) {
			o.Rotate(dx, dy)
		}
		if r.src.ButtonDown(ButtonRight) {
			o.Pan(dx, dy)
		}
		if w := r.src.Wheel(); w != 0 {
			o.Zoom(w)
		}
	}
}

func (r *Router) releaseMoves() {
	if r.firstPerson == nil {
		return
	}
	for _, m := range moveKeys {
		r.firstPerson.SetMove(m.move, false)
	}
}
