package camera

import (
	"github.com/Faultbox/orrery/pkg/math"
)

// DefaultStep is the distance one key press moves the camera along -Z.
const DefaultStep = 0.1

// KeyBinding turns discrete key presses into camera steps along world -Z.
// Presses are queued and applied once per tick.
type KeyBinding struct {
	Step    float32
	pending int
}

// NewKeyBinding creates a binding with DefaultStep.
func NewKeyBinding() *KeyBinding {
	return &KeyBinding{Step: DefaultStep}
}

// Press queues one step.
func (k *KeyBinding) Press() {
	k.pending++
}

// Pending returns the number of queued steps.
func (k *KeyBinding) Pending() int {
	return k.pending
}

// Apply moves the camera by every queued step and clears the queue.
func (k *KeyBinding) Apply(cam *Camera) {
	if k.pending == 0 {
		return
	}
	cam.Translate(math.V3(0, 0, -k.Step*float32(k.pending)))
	k.pending = 0
}
