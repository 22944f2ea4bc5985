package scene

import (
	"image"
	"testing"

	"github.com/Faultbox/orrery/pkg/math"
)

func TestAreaHelperFacesTarget(t *testing.T) {
	floor := NewBody("floor", KindWall, Plane(8, 8), NewMaterial(ShadingPhong))
	floor.Position = math.V3(0, 0, 4)
	light := NewAreaLight("area", 1, 2, 2, math.V3(0, 7.5, 4), floor)
	helper := light.AttachHelper()

	if got := helper.FrontNormal(); !got.ApproxEqual(math.V3(0, -1, 0), 1e-4) {
		t.Errorf("helper normal = %v, want straight down", got)
	}
	if got := helper.WorldPosition(); !got.ApproxEqual(light.Position, 1e-5) {
		t.Errorf("helper position = %v, want %v", got, light.Position)
	}

	point := NewPointLight("bulb", 1, 0, math.V3(1, 2, 3))
	bulb := point.AttachHelper()
	if got := bulb.WorldMatrix().TransformDirection(math.V3(0, 0, 1)); !got.ApproxEqual(math.V3(0, 0, 1), 1e-5) {
		t.Errorf("point helper should not rotate, +Z became %v", got)
	}
}

func TestGraphOrderAndSplit(t *testing.T) {
	g := NewGraph()
	sun := NewBody("sun", KindSun, Sphere(3, 32, 32), NewMaterial(ShadingPhong))
	light := NewPointLight("sun light", 3, 100, math.V3(10, 0, 15))
	earth := NewBody("earth", KindEarth, Sphere(3, 32, 32), NewMaterial(ShadingPhong))

	g.Add(sun, light, earth)
	g.Add(nil, (*Body)(nil))

	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}
	if len(g.Bodies()) != 2 || len(g.Lights()) != 1 {
		t.Errorf("got %d bodies and %d lights, want 2 and 1", len(g.Bodies()), len(g.Lights()))
	}

	var visited []Entity
	g.ForEach(func(e Entity) { visited = append(visited, e) })
	want := []Entity{sun, light, earth}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("ForEach[%d] = %v, want %v", i, visited[i], want[i])
		}
	}

	all := g.All()
	all[0] = nil
	if g.All()[0] != Entity(sun) {
		t.Error("All() must return a copy")
	}
}

func TestMaterialSlots(t *testing.T) {
	m := NewMaterial(ShadingPhong)
	if m.Textured() {
		t.Error("new material should not be textured")
	}

	tex := &Texture{Name: "a.png", Image: image.NewRGBA(image.Rect(0, 0, 1, 1))}
	m.SetMap(Map, tex)
	if !m.Textured() || m.Texture(Map) != tex {
		t.Error("expected map to be published")
	}

	m.Degrade()
	if m.Textured() || !m.Degraded() {
		t.Error("degraded material must not report a color map")
	}
	if m.Texture(Map) != nil {
		t.Error("degrade should clear the color map")
	}
}

func TestSideVisible(t *testing.T) {
	n := math.V3(0, 0, 1)
	front := math.V3(0, 0, 5)
	behind := math.V3(0, 0, -5)

	tests := []struct {
		side  Side
		toEye math.Vec3
		want  bool
	}{
		{FrontSide, front, true},
		{FrontSide, behind, false},
		{BackSide, front, false},
		{BackSide, behind, true},
		{DoubleSide, front, true},
		{DoubleSide, behind, true},
	}
	for _, tt := range tests {
		if got := tt.side.Visible(n, tt.toEye); got != tt.want {
			t.Errorf("%v.Visible(%v) = %v, want %v", tt.side, tt.toEye, got, tt.want)
		}
	}
}

func TestSphereSurfaceVisibility(t *testing.T) {
	outward := NewBody("ball", KindEarth, Sphere(3, 32, 32), NewMaterial(ShadingPhong))
	inward := NewBody("sky", KindStars, Sphere(200, 64, 64), NewMaterial(ShadingBasic))
	inward.Material.Side = BackSide

	inside := math.V3(30, 15, 17)
	outside := math.V3(0, 0, 500)

	if !inward.SurfaceVisibleFrom(inside) {
		t.Error("inward sphere should be visible from inside")
	}
	if inward.SurfaceVisibleFrom(outside) {
		t.Error("inward sphere should not be visible from outside")
	}
	if !outward.SurfaceVisibleFrom(outside) {
		t.Error("outward sphere should be visible from outside")
	}
	if outward.SurfaceVisibleFrom(math.V3(0, 1, 0)) {
		t.Error("outward sphere should not be visible from inside")
	}
}

func TestWorldMatrixParentAndAnchor(t *testing.T) {
	parent := NewBody("parent", KindEarth, Sphere(1, 8, 8), NewMaterial(ShadingPhong))
	parent.Position = math.V3(10, 0, 0)
	child := NewBody("child", KindClouds, Sphere(1, 8, 8), NewMaterial(ShadingPhong))
	child.Position = math.V3(0, 2, 0)
	parent.Attach(child)

	if got := child.WorldPosition(); !got.ApproxEqual(math.V3(10, 2, 0), 1e-5) {
		t.Errorf("child world position = %v, want (10, 2, 0)", got)
	}

	light := NewAreaLight("area", 1, 2, 1, math.V3(0, 3, 0), nil)
	helper := light.AttachHelper()
	if light.Helper != helper || helper.Anchor() != light {
		t.Fatal("helper not linked to light")
	}
	if helper.Geometry.Type != GeometryPlane || helper.Geometry.Width != 2 {
		t.Errorf("area helper geometry = %+v", helper.Geometry)
	}

	light.Position = math.V3(1, 4, 1)
	if got := helper.WorldPosition(); got != math.V3(1, 4, 1) {
		t.Errorf("helper should follow light, got %v", got)
	}
	if helper.Position != (math.Vec3{}) {
		t.Error("helper local position must stay untouched")
	}

	// With no target the light aims at the origin.
	if got, want := helper.FrontNormal(), light.Direction(); !got.ApproxEqual(want, 1e-4) {
		t.Errorf("area helper faces %v, want light direction %v", got, want)
	}
}

func TestLightDirection(t *testing.T) {
	target := NewBody("t", KindEarth, Sphere(1, 8, 8), NewMaterial(ShadingPhong))
	target.Position = math.V3(0, 0, -10)

	dir := NewDirectionalLight("d", 1, math.V3(0, 0, 0), target)
	if got := dir.Direction(); !got.ApproxEqual(math.V3(0, 0, -1), 1e-6) {
		t.Errorf("Direction() = %v, want (0, 0, -1)", got)
	}

	if got := NewPointLight("p", 1, 0, math.V3(1, 1, 1)).Direction(); got != (math.Vec3{}) {
		t.Errorf("point light should have no direction, got %v", got)
	}
}
