package clock

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
)

// FPSCounter counts completed frames over one-second windows.
type FPSCounter struct {
	now func() time.Time

	frames    int
	fps       float64
	frameTime time.Duration
	window    time.Time
	last      time.Time
}

// NewFPSCounter creates a counter using the wall clock.
func NewFPSCounter() *FPSCounter {
	return NewFPSCounterWithClock(time.Now)
}

// NewFPSCounterWithClock creates a counter reading time from now.
func NewFPSCounterWithClock(now func() time.Time) *FPSCounter {
	t := now()
	return &FPSCounter{now: now, window: t, last: t}
}

// Update records one frame. Once per second it publishes the rate and logs it.
func (f *FPSCounter) Update() {
	t := f.now()
	f.frameTime = t.Sub(f.last)
	f.last = t
	f.frames++

	if elapsed := t.Sub(f.window); elapsed >= time.Second {
		f.fps = float64(f.frames) / elapsed.Seconds()
		logger.Debug("fps",
			zap.Int("count", f.frames),
			zap.String("dt", fmt.Sprintf("%.2fms", float64(f.frameTime.Microseconds())/1000)))
		f.frames = 0
		f.window = t
	}
}

// FPS returns the rate measured over the last full window.
func (f *FPSCounter) FPS() float64 {
	return f.fps
}

// FrameTime returns the duration of the most recent frame.
func (f *FPSCounter) FrameTime() time.Duration {
	return f.frameTime
}
