package lighting

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestPointLightBufferPacking(t *testing.T) {
	b := NewPointLightBuffer()
	b.AddLight(FromSource(scene.NewPointLight("earth", 3, 100, math.V3(-10, 0, -15))))
	b.AddLight(FromSource(scene.NewPointLight("sun", 3, 100, math.V3(10, 0, 15))))

	pos := b.GetPositions()
	if len(pos) != MaxPointLights*3 {
		t.Fatalf("positions len = %d, want %d", len(pos), MaxPointLights*3)
	}
	want := []float32{-10, 0, -15, 10, 0, 15}
	for i, v := range want {
		if pos[i] != v {
			t.Errorf("positions[%d] = %v, want %v", i, pos[i], v)
		}
	}
	for i := len(want); i < len(pos); i++ {
		if pos[i] != 0 {
			t.Fatalf("padding[%d] = %v, want 0", i, pos[i])
		}
	}

	colors := b.GetColors()
	if colors[0] != 3 || colors[4] != 3 {
		t.Errorf("colors = %v, want white * 3", colors[:6])
	}

	ranges := b.GetRanges()
	if ranges[0] != 100 || ranges[1] != 100 || ranges[2] != 0 {
		t.Errorf("ranges = %v", ranges[:3])
	}
}

func TestPointLightBufferFull(t *testing.T) {
	b := NewPointLightBuffer()
	for i := 0; i < MaxPointLights; i++ {
		if !b.AddLight(PointLight{}) {
			t.Fatalf("AddLight %d failed early", i)
		}
	}
	if b.AddLight(PointLight{}) {
		t.Error("AddLight should fail when full")
	}
	b.Clear()
	if b.Count != 0 || len(b.Lights) != 0 {
		t.Errorf("after Clear count=%d len=%d", b.Count, len(b.Lights))
	}
}

func TestColorVec(t *testing.T) {
	c := ColorVec(color.RGBA{R: 255, G: 0, B: 0x7f, A: 255})
	if c[0] != 1 || c[1] != 0 || !approx(c[2], 127.0/255) {
		t.Errorf("ColorVec = %v", c)
	}
}

func TestCollect(t *testing.T) {
	target := scene.NewBody("earth", scene.KindEarth, scene.Sphere(0.8, 32, 32), scene.NewMaterial(scene.ShadingPhong))
	target.Position = math.V3(0, 0, 0)

	lights := []*scene.LightSource{
		scene.NewAmbientLight("ambient", 0.3),
		scene.NewAmbientLight("fill", 0.2),
		scene.NewPointLight("sun", 3, 100, math.V3(10, 0, 15)),
		scene.NewDirectionalLight("key", 2, math.V3(0, 10, 0), target),
		scene.NewAreaLight("panel", 1, 2, 3, math.V3(10, 0, 0), target),
	}

	env := NewEnvironment()
	env.Collect(lights)

	for i, v := range env.Ambient {
		if !approx(v, 0.5) {
			t.Errorf("ambient[%d] = %v, want 0.5", i, v)
		}
	}
	if env.Points.Count != 1 {
		t.Errorf("points = %d, want 1", env.Points.Count)
	}
	if env.DirectionalCount() != 2 {
		t.Fatalf("directional = %d, want 2", env.DirectionalCount())
	}

	key := env.Directional[0]
	if !math.V3(key.Direction[0], key.Direction[1], key.Direction[2]).ApproxEqual(math.V3(0, 1, 0), 1e-4) {
		t.Errorf("key direction = %v, want toward the light (+Y)", key.Direction)
	}
	if key.Color[0] != 2 {
		t.Errorf("key color = %v, want 2", key.Color)
	}

	panel := env.Directional[1]
	if !approx(panel.Color[0], 6) {
		t.Errorf("area light gain = %v, want intensity * area = 6", panel.Color[0])
	}
	if panel.Direction[0] <= 0 {
		t.Errorf("panel direction = %v, want +X", panel.Direction)
	}

	dirs := env.GetDirections()
	if len(dirs) != MaxDirectionalLights*3 || !approx(dirs[1], 1) {
		t.Errorf("directions = %v", dirs)
	}
	if cols := env.GetDirectionalColors(); !approx(cols[3], 6) {
		t.Errorf("directional colors = %v", cols)
	}

	// Collect replaces rather than appends.
	env.Collect(lights[:1])
	if env.Points.Count != 0 || env.DirectionalCount() != 0 || !approx(env.Ambient[0], 0.3) {
		t.Errorf("recollect: points=%d dirs=%d ambient=%v", env.Points.Count, env.DirectionalCount(), env.Ambient)
	}
}

func TestCollectDropsExtraLights(t *testing.T) {
	var lights []*scene.LightSource
	for i := 0; i < MaxPointLights+2; i++ {
		lights = append(lights, scene.NewPointLight(fmt.Sprintf("p%d", i), 1, 0, math.Vec3{}))
	}
	for i := 0; i < MaxDirectionalLights+1; i++ {
		lights = append(lights, scene.NewDirectionalLight(fmt.Sprintf("d%d", i), 1, math.V3(0, 1, 0), nil))
	}

	env := NewEnvironment()
	env.Collect(lights)

	if env.Points.Count != MaxPointLights {
		t.Errorf("points = %d, want %d", env.Points.Count, MaxPointLights)
	}
	if env.DirectionalCount() != MaxDirectionalLights {
		t.Errorf("directional = %d, want %d", env.DirectionalCount(), MaxDirectionalLights)
	}
}
