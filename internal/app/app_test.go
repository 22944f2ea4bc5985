package app

import (
	"testing"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

func countKinds(g *scene.Graph) map[scene.Kind]int {
	out := make(map[scene.Kind]int)
	for _, b := range g.Bodies() {
		out[b.Kind]++
	}
	return out
}

func TestBuildSolar(t *testing.T) {
	v, err := BuildVariant(config.VariantSolar, nil)
	if err != nil {
		t.Fatal(err)
	}

	kinds := countKinds(v.Graph)
	for _, k := range []scene.Kind{scene.KindSun, scene.KindEarth, scene.KindClouds, scene.KindStars} {
		if kinds[k] != 1 {
			t.Errorf("%v count = %d, want 1", k, kinds[k])
		}
	}

	lights := v.Graph.Lights()
	if len(lights) != 2 {
		t.Fatalf("lights = %d, want 2", len(lights))
	}
	positions := []math.Vec3{math.V3(-10, 0, -15), math.V3(10, 0, 15)}
	for i, l := range lights {
		if l.Kind != scene.LightPoint || l.Intensity != 3 || l.Distance != 100 {
			t.Errorf("light %d = %+v", i, l)
		}
		if l.Position != positions[i] {
			t.Errorf("light %d position = %v, want %v", i, l.Position, positions[i])
		}
	}
	if v.CameraPosition != math.V3(30, 15, 17) {
		t.Errorf("camera = %v", v.CameraPosition)
	}
}

func TestBuildEarth(t *testing.T) {
	v, err := BuildVariant(config.VariantEarth, nil)
	if err != nil {
		t.Fatal(err)
	}

	var earth, clouds *scene.Body
	for _, b := range v.Graph.Bodies() {
		switch b.Kind {
		case scene.KindEarth:
			earth = b
		case scene.KindClouds:
			clouds = b
		}
	}
	if earth == nil || clouds == nil {
		t.Fatal("earth variant needs earth and clouds")
	}
	if earth.Geometry.Radius != 0.8 {
		t.Errorf("earth radius = %v, want 0.8", earth.Geometry.Radius)
	}
	if earth.Position != math.V3(-5, 0, -3) || clouds.Position != earth.Position {
		t.Errorf("positions earth=%v clouds=%v", earth.Position, clouds.Position)
	}
	if clouds.Geometry.Radius <= earth.Geometry.Radius {
		t.Errorf("clouds radius %v should exceed earth %v", clouds.Geometry.Radius, earth.Geometry.Radius)
	}

	var ambient, directional int
	for _, l := range v.Graph.Lights() {
		switch l.Kind {
		case scene.LightAmbient:
			ambient++
			if l.Intensity != 0.3 {
				t.Errorf("ambient intensity = %v", l.Intensity)
			}
		case scene.LightDirectional:
			directional++
			if l.Target != earth {
				t.Error("directional light should target the earth")
			}
		}
	}
	if ambient != 1 || directional != 1 {
		t.Errorf("ambient=%d directional=%d", ambient, directional)
	}
}

func TestBuildRooms(t *testing.T) {
	v, err := BuildVariant(config.VariantRooms, nil)
	if err != nil {
		t.Fatal(err)
	}

	kinds := countKinds(v.Graph)
	if kinds[scene.KindWall] != 12 {
		t.Errorf("walls = %d, want 12", kinds[scene.KindWall])
	}
	if kinds[scene.KindStars] != 1 {
		t.Errorf("stars = %d, want 1", kinds[scene.KindStars])
	}
	if kinds[scene.KindHelper] != 1 {
		t.Errorf("helpers = %d, want 1", kinds[scene.KindHelper])
	}

	var area *scene.LightSource
	for _, l := range v.Graph.Lights() {
		if l.Kind == scene.LightAreaRect {
			area = l
		}
	}
	if area == nil {
		t.Fatal("rooms variant needs an area light")
	}
	if area.Helper == nil || area.Helper.Anchor() != area {
		t.Error("area light helper not anchored")
	}
}

func TestBuildVariantUnknown(t *testing.T) {
	if _, err := BuildVariant("nebula", nil); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestNewRigControls(t *testing.T) {
	v, _ := BuildVariant(config.VariantSolar, nil)

	orbitRig := NewRig(config.ControlsOrbit, v, 1600, 600)
	if _, ok := orbitRig.Active().(*camera.OrbitStrategy); !ok {
		t.Errorf("active = %T, want orbit", orbitRig.Active())
	}
	if len(orbitRig.Strategies()) != 2 {
		t.Errorf("strategies = %d, want 2", len(orbitRig.Strategies()))
	}

	cam := orbitRig.Camera()
	if cam.FovDegrees != 75 || cam.Near != 0.1 || cam.Far != 1000 {
		t.Errorf("projection = %v/%v/%v", cam.FovDegrees, cam.Near, cam.Far)
	}
	if d := cam.Aspect - 1600.0/600.0; d > 1e-4 || d < -1e-4 {
		t.Errorf("aspect = %v", cam.Aspect)
	}
	if cam.Position != v.CameraPosition {
		t.Errorf("position = %v", cam.Position)
	}

	fpRig := NewRig(config.ControlsFirstPerson, v, 800, 600)
	if _, ok := fpRig.Active().(*camera.FirstPersonStrategy); !ok {
		t.Errorf("active = %T, want first person", fpRig.Active())
	}
}

func TestNewPanelFolders(t *testing.T) {
	v, _ := BuildVariant(config.VariantSolar, nil)
	rig := NewRig(config.ControlsOrbit, v, 800, 600)
	p := NewPanel(rig.Camera(), v.Graph)

	if len(p.Folders) != 1+len(v.Graph.Lights()) {
		t.Fatalf("folders = %d", len(p.Folders))
	}
	p.Folder("Camera").Control("y").Set(-40)
	if rig.Camera().Position.Y != -30 {
		t.Errorf("camera y = %v, want clamped -30", rig.Camera().Position.Y)
	}
	p.Folder("sun light").Control("intensity").Set(1.234)
	if got := v.Graph.Lights()[1].Intensity; got < 1.229 || got > 1.231 {
		t.Errorf("sun light intensity = %v, want 1.23", got)
	}
}
