// Package clock drives the per-frame update: spin bodies, move the camera,
// render, report.
package clock

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
)

// ErrAlreadyRunning is returned by Start on a running clock.
var ErrAlreadyRunning = errors.New("clock already running")

// Scheduler invokes a callback once on the next display refresh.
type Scheduler interface {
	RequestFrame(cb func(now time.Time))
}

// Renderer draws the graph from the camera.
type Renderer interface {
	Render(graph *scene.Graph, cam *camera.Camera) error
}

// Stats is signalled once per completed tick.
type Stats interface {
	Update()
}

// State of the clock.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Options tune tick behavior.
type Options struct {
	// TimeScaled multiplies spin rates by dt*60 instead of adding them once
	// per tick, so rotation speed no longer depends on refresh rate.
	TimeScaled bool

	// MaxDelta bounds the elapsed time handed to the rig, for ticks after
	// the window was hidden. Zero means unbounded.
	MaxDelta time.Duration
}

// Clock runs the tick loop on a Scheduler.
type Clock struct {
	scheduler Scheduler
	graph     *scene.Graph
	rig       *camera.Rig
	renderer  Renderer
	stats     Stats
	opts      Options

	state State
	last  time.Time
	ticks uint64
}

// New creates an idle clock. stats may be nil.
func New(s Scheduler, graph *scene.Graph, rig *camera.Rig, r Renderer, stats Stats, opts Options) *Clock {
	return &Clock{
		scheduler: s,
		graph:     graph,
		rig:       rig,
		renderer:  r,
		stats:     stats,
		opts:      opts,
	}
}

// Start schedules the first tick. The clock never stops; it ends with the process.
func (c *Clock) Start() error {
	if c.state == Running {
		return ErrAlreadyRunning
	}
	c.state = Running
	c.scheduler.RequestFrame(c.tick)
	return nil
}

// State returns the current state.
func (c *Clock) State() State {
	return c.state
}

// Ticks returns the number of ticks run.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

func (c *Clock) tick(now time.Time) {
	// Re-register before anything that can fail.
	c.scheduler.RequestFrame(c.tick)
	c.ticks++

	var dt float32
	if !c.last.IsZero() {
		elapsed := now.Sub(c.last)
		if c.opts.MaxDelta > 0 && elapsed > c.opts.MaxDelta {
			elapsed = c.opts.MaxDelta
		}
		dt = float32(elapsed.Seconds())
	}
	c.last = now

	c.spin(dt)

	if c.rig != nil {
		c.rig.Update(dt)
	}

	if err := c.render(); err != nil {
		logger.Error("render failed", zap.Uint64("tick", c.ticks), zap.Error(err))
		return
	}

	if c.stats != nil {
		c.stats.Update()
	}
}

func (c *Clock) spin(dt float32) {
	for _, b := range c.graph.Bodies() {
		if b.SpinRate == 0 {
			continue
		}
		if c.opts.TimeScaled {
			b.Rotation.Y += b.SpinRate * dt * 60
		} else {
			b.Rotation.Y += b.SpinRate
		}
	}
}

func (c *Clock) render() (err error) {
	if c.renderer == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panic: %v", r)
		}
	}()

	var cam *camera.Camera
	if c.rig != nil {
		cam = c.rig.Camera()
	}
	return c.renderer.Render(c.graph, cam)
}
