// Package ui provides the debug panel and overlays drawn with Dear ImGui.
package ui

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/scene"
)

// Control is a bounded numeric slider bound to a live value.
type Control struct {
	Label string
	Value *float32
	Min   float32
	Max   float32
	Step  float32
}

// Set writes v to the bound value, snapped to Step from Min and clamped to
// [Min, Max]. It returns the stored value.
func (c *Control) Set(v float32) float32 {
	if c.Step > 0 {
		v = c.Min + math32.Round((v-c.Min)/c.Step)*c.Step
	}
	v = max(c.Min, min(c.Max, v))
	*c.Value = v
	return v
}

// Get returns the bound value.
func (c *Control) Get() float32 {
	return *c.Value
}

// Folder groups controls under a collapsible header.
type Folder struct {
	Name     string
	Open     bool
	Controls []*Control
}

// Add appends a control bound to v.
func (f *Folder) Add(label string, v *float32, lo, hi, step float32) *Control {
	c := &Control{Label: label, Value: v, Min: lo, Max: hi, Step: step}
	f.Controls = append(f.Controls, c)
	return c
}

// Control returns the control with the given label, or nil.
func (f *Folder) Control(label string) *Control {
	for _, c := range f.Controls {
		if c.Label == label {
			return c
		}
	}
	return nil
}

// Panel is a window of folders.
type Panel struct {
	Title   string
	Visible bool
	Folders []*Folder
}

// NewPanel creates a visible, empty panel.
func NewPanel(title string) *Panel {
	return &Panel{Title: title, Visible: true}
}

// AddFolder appends a folder, open by default.
func (p *Panel) AddFolder(name string) *Folder {
	f := &Folder{Name: name, Open: true}
	p.Folders = append(p.Folders, f)
	return f
}

// Folder returns the folder with the given name, or nil.
func (p *Panel) Folder(name string) *Folder {
	for _, f := range p.Folders {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Slider ranges used by the default folders.
const (
	PositionRange = 30
	PositionStep  = 0.01
	IntensityMax  = 5
	IntensityStep = 0.01
)

// AddCameraFolder binds the camera position.
func (p *Panel) AddCameraFolder(cam *camera.Camera) *Folder {
	f := p.AddFolder("Camera")
	f.Add("x", &cam.Position.X, -PositionRange, PositionRange, PositionStep)
	f.Add("y", &cam.Position.Y, -PositionRange, PositionRange, PositionStep)
	f.Add("z", &cam.Position.Z, -PositionRange, PositionRange, PositionStep)
	return f
}

// AddLightFolder binds a light's intensity and, for positioned lights, its position.
func (p *Panel) AddLightFolder(l *scene.LightSource) *Folder {
	f := p.AddFolder(l.Name)
	f.Open = false
	f.Add("intensity", &l.Intensity, 0, IntensityMax, IntensityStep)
	if l.Kind == scene.LightAmbient {
		return f
	}
	f.Add("x", &l.Position.X, -PositionRange, PositionRange, PositionStep)
	f.Add("y", &l.Position.Y, -PositionRange, PositionRange, PositionStep)
	f.Add("z", &l.Position.Z, -PositionRange, PositionRange, PositionStep)
	return f
}
