package app

import (
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/ui"
	"github.com/Faultbox/orrery/internal/scene"
)

// NewRig creates the camera for v with both control strategies registered
// and the configured one active.
func NewRig(controls string, v *Variant, width, height int) *camera.Rig {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	cam := camera.NewPerspective(FovDegrees, aspect, Near, Far)
	cam.Position = v.CameraPosition
	cam.LookAt(v.Center)

	orbit := camera.NewOrbitStrategy(v.Center)
	firstPerson := camera.NewFirstPersonStrategy()

	rig := camera.NewRig(cam, orbit, firstPerson)
	if controls == config.ControlsFirstPerson {
		rig.Activate(firstPerson)
	}
	rig.Resize(width, height)
	return rig
}

// NewPanel builds the debug panel: the camera position, then one folder per light.
func NewPanel(cam *camera.Camera, graph *scene.Graph) *ui.Panel {
	p := ui.NewPanel("Debug")
	p.AddCameraFolder(cam)
	for _, l := range graph.Lights() {
		p.AddLightFolder(l)
	}
	return p
}
