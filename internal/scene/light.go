package scene

import (
	"image/color"

	"github.com/Faultbox/orrery/pkg/math"
)

// LightKind is the falloff and directionality model of a light.
type LightKind int

const (
	LightPoint LightKind = iota
	LightDirectional
	LightAmbient
	LightAreaRect
)

func (k LightKind) String() string {
	switch k {
	case LightPoint:
		return "point"
	case LightDirectional:
		return "directional"
	case LightAmbient:
		return "ambient"
	case LightAreaRect:
		return "area"
	default:
		return "unknown"
	}
}

// LightSource illuminates the scene. Intensity and Position may be edited
// live from the debug panel; the frame loop never touches them.
type LightSource struct {
	Name      string
	Kind      LightKind
	Color     color.RGBA
	Intensity float32

	// Distance is the point light range; zero means no cutoff.
	Distance float32

	Position math.Vec3

	// Width and Height size an area light.
	Width  float32
	Height float32

	// Target is the body a directional or area light points at. Nil aims
	// at the world origin.
	Target *Body

	// Helper is an optional body that visualizes the light.
	Helper *Body
}

var white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// NewPointLight returns a white point light.
func NewPointLight(name string, intensity, distance float32, pos math.Vec3) *LightSource {
	return &LightSource{
		Name:      name,
		Kind:      LightPoint,
		Color:     white,
		Intensity: intensity,
		Distance:  distance,
		Position:  pos,
	}
}

// NewDirectionalLight returns a white directional light shining from pos
// toward target.
func NewDirectionalLight(name string, intensity float32, pos math.Vec3, target *Body) *LightSource {
	return &LightSource{
		Name:      name,
		Kind:      LightDirectional,
		Color:     white,
		Intensity: intensity,
		Position:  pos,
		Target:    target,
	}
}

// NewAmbientLight returns a white ambient light.
func NewAmbientLight(name string, intensity float32) *LightSource {
	return &LightSource{
		Name:      name,
		Kind:      LightAmbient,
		Color:     white,
		Intensity: intensity,
	}
}

// NewAreaLight returns a rectangular area light of the given size.
func NewAreaLight(name string, intensity, width, height float32, pos math.Vec3, target *Body) *LightSource {
	return &LightSource{
		Name:      name,
		Kind:      LightAreaRect,
		Color:     white,
		Intensity: intensity,
		Position:  pos,
		Width:     width,
		Height:    height,
		Target:    target,
	}
}

func (*LightSource) entity() {}

// TargetPosition returns where the light points.
func (l *LightSource) TargetPosition() math.Vec3 {
	if l.Target == nil {
		return math.Vec3{}
	}
	return l.Target.WorldPosition()
}

// Direction returns the unit vector the light travels along. Point and
// ambient lights have no direction and return zero.
func (l *LightSource) Direction() math.Vec3 {
	switch l.Kind {
	case LightDirectional, LightAreaRect:
		return l.TargetPosition().Sub(l.Position).Normalize()
	default:
		return math.Vec3{}
	}
}

// AttachHelper creates a flat-colored body that tracks the light position.
// Area lights get a plane of their size, other lights a small sphere.
func (l *LightSource) AttachHelper() *Body {
	mat := NewMaterial(ShadingBasic)
	mat.Color = l.Color
	mat.Side = DoubleSide

	geom := Sphere(0.2, 8, 8)
	if l.Kind == LightAreaRect {
		geom = Plane(l.Width, l.Height)
	}

	h := NewBody(l.Name+" helper", KindHelper, geom, mat)
	h.anchor = l
	l.Helper = h
	return h
}
