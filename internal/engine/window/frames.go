package window

import "time"

// Hooks are called by the host around each frame's tick.
type Hooks struct {
	// Resize runs before the tick when the framebuffer size changed.
	Resize func(width, height int)
	// Input runs before the tick.
	Input func()
	// Draw runs after the tick to lay out the UI.
	Draw func()
}

// Frames is the per-frame scheduler behind the host. One callback may be
// pending at a time; Step runs it once and clears it.
type Frames struct {
	pending func(now time.Time)
	width   int
	height  int
	frames  uint64
}

// RequestFrame stores cb for the next frame, replacing any pending callback.
func (f *Frames) RequestFrame(cb func(now time.Time)) {
	f.pending = cb
}

// Pending reports whether a callback is waiting for the next frame.
func (f *Frames) Pending() bool {
	return f.pending != nil
}

// Size returns the last framebuffer size seen by Step.
func (f *Frames) Size() (width, height int) {
	return f.width, f.height
}

// Count returns the number of frames stepped.
func (f *Frames) Count() uint64 {
	return f.frames
}

// Step runs one frame at the given framebuffer size.
func (f *Frames) Step(now time.Time, width, height int, hooks Hooks) {
	f.frames++

	if width != f.width || height != f.height {
		f.width, f.height = width, height
		if hooks.Resize != nil && width > 0 && height > 0 {
			hooks.Resize(width, height)
		}
	}

	if hooks.Input != nil {
		hooks.Input()
	}

	if cb := f.pending; cb != nil {
		f.pending = nil
		cb(now)
	}

	if hooks.Draw != nil {
		hooks.Draw()
	}
}
