package ui

import (
	"testing"
	"time"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestControlSetClampsAndSnaps(t *testing.T) {
	var v float32
	c := &Control{Label: "x", Value: &v, Min: -30, Max: 30, Step: 0.01}

	tests := []struct {
		in, want float32
	}{
		{12.345678, 12.35},
		{-31, -30},
		{45, 30},
		{0.004, 0},
	}
	for _, tt := range tests {
		got := c.Set(tt.in)
		if !approx(got, tt.want) || !approx(v, tt.want) {
			t.Errorf("Set(%v) = %v (stored %v), want %v", tt.in, got, v, tt.want)
		}
	}
}

func TestControlWithoutStep(t *testing.T) {
	var v float32
	c := &Control{Value: &v, Min: 0, Max: 5}
	if got := c.Set(1.2345); got != 1.2345 {
		t.Errorf("Set = %v, want unsnapped 1.2345", got)
	}
}

func TestCameraFolderEditsLiveCamera(t *testing.T) {
	cam := camera.NewPerspective(75, 1, 0.1, 1000)
	cam.Position = math.V3(30, 15, 17)

	p := NewPanel("Debug")
	f := p.AddCameraFolder(cam)

	if len(f.Controls) != 3 {
		t.Fatalf("controls = %d, want 3", len(f.Controls))
	}
	for _, c := range f.Controls {
		if c.Min != -30 || c.Max != 30 || c.Step != 0.01 {
			t.Errorf("%s range = [%v, %v] step %v", c.Label, c.Min, c.Max, c.Step)
		}
	}

	f.Control("z").Set(5)
	if cam.Position.Z != 5 {
		t.Errorf("camera z = %v, want 5", cam.Position.Z)
	}
	if got := f.Control("x").Get(); got != 30 {
		t.Errorf("x = %v, want 30", got)
	}
	if p.Folder("Camera") != f {
		t.Error("Folder lookup failed")
	}
	if p.Folder("missing") != nil || f.Control("w") != nil {
		t.Error("missing lookups should return nil")
	}
}

func TestLightFolders(t *testing.T) {
	p := NewPanel("Debug")
	point := scene.NewPointLight("sun light", 3, 100, math.V3(10, 0, 15))
	ambient := scene.NewAmbientLight("ambient", 0.3)

	pf := p.AddLightFolder(point)
	af := p.AddLightFolder(ambient)

	if len(pf.Controls) != 4 {
		t.Errorf("point controls = %d, want 4", len(pf.Controls))
	}
	if len(af.Controls) != 1 {
		t.Errorf("ambient controls = %d, want 1", len(af.Controls))
	}

	pf.Control("intensity").Set(9)
	if point.Intensity != 5 {
		t.Errorf("intensity = %v, want clamped to 5", point.Intensity)
	}
	pf.Control("y").Set(-2.5)
	if point.Position.Y != -2.5 {
		t.Errorf("light y = %v, want -2.5", point.Position.Y)
	}
}

func TestFormatFPS(t *testing.T) {
	if got := FormatFPS(59.7, 16750*time.Microsecond); got != "FPS: 60 (16.75ms)" {
		t.Errorf("FormatFPS = %q", got)
	}
}
