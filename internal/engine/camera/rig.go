package camera

// Rig owns one camera, its strategies and the forward key binding.
// Exactly one strategy is active when any are registered.
type Rig struct {
	camera     *Camera
	strategies []Strategy
	active     Strategy
	keys       *KeyBinding

	width, height int
}

// NewRig creates a rig. The first strategy starts active.
func NewRig(cam *Camera, strategies ...Strategy) *Rig {
	r := &Rig{
		camera:     cam,
		strategies: strategies,
		keys:       NewKeyBinding(),
	}
	if len(strategies) > 0 {
		r.active = strategies[0]
	}
	return r
}

// Camera returns the rig's camera.
func (r *Rig) Camera() *Camera {
	return r.camera
}

// Keys returns the forward key binding.
func (r *Rig) Keys() *KeyBinding {
	return r.keys
}

// Active returns the active strategy, or nil when none are registered.
func (r *Rig) Active() Strategy {
	return r.active
}

// Strategies returns the registered strategies.
func (r *Rig) Strategies() []Strategy {
	return r.strategies
}

// Activate makes s the active strategy. It reports false if s is not
// registered. A newly active Resizer is told the last known viewport size.
func (r *Rig) Activate(s Strategy) bool {
	for _, registered := range r.strategies {
		if registered != s {
			continue
		}
		if r.active != s {
			r.active = s
			if rs, ok := s.(Resizer); ok && r.width > 0 {
				rs.HandleResize(r.width, r.height)
			}
		}
		return true
	}
	return false
}

// Update runs the active strategy, then applies queued key steps.
func (r *Rig) Update(dt float32) {
	if r.active != nil {
		r.active.Update(r.camera, dt)
	}
	r.keys.Apply(r.camera)
}

// Resize updates the camera aspect and notifies the active strategy.
func (r *Rig) Resize(width, height int) {
	r.width, r.height = width, height
	r.camera.SetViewport(width, height)
	if rs, ok := r.active.(Resizer); ok {
		rs.HandleResize(width, height)
	}
}
