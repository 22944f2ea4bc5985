// Package scene holds the renderable bodies, lights and the graph that
// collects them for the renderer.
package scene

import (
	"github.com/Faultbox/orrery/pkg/math"
)

// Kind identifies what a body represents.
type Kind int

const (
	KindSun Kind = iota
	KindEarth
	KindClouds
	KindStars
	KindWall
	KindHelper
)

func (k Kind) String() string {
	switch k {
	case KindSun:
		return "sun"
	case KindEarth:
		return "earth"
	case KindClouds:
		return "clouds"
	case KindStars:
		return "stars"
	case KindWall:
		return "wall"
	case KindHelper:
		return "helper"
	default:
		return "unknown"
	}
}

// GeometryType is the primitive shape of a body.
type GeometryType int

const (
	GeometrySphere GeometryType = iota
	GeometryPlane
)

// Geometry is the shape parameters of a body. Fields not used by Type are zero.
type Geometry struct {
	Type GeometryType

	// Sphere
	Radius         float32
	WidthSegments  int
	HeightSegments int

	// Plane, lying in local XY with its front face along +Z
	Width  float32
	Height float32
}

// Sphere returns sphere geometry.
func Sphere(radius float32, widthSegments, heightSegments int) Geometry {
	return Geometry{
		Type:           GeometrySphere,
		Radius:         radius,
		WidthSegments:  widthSegments,
		HeightSegments: heightSegments,
	}
}

// Plane returns plane geometry.
func Plane(width, height float32) Geometry {
	return Geometry{Type: GeometryPlane, Width: width, Height: height}
}

// Body is a renderable object with geometry, material and transform.
type Body struct {
	Name     string
	Kind     Kind
	Geometry Geometry
	Material *Material

	Position math.Vec3
	Rotation math.Vec3 // Euler XYZ, radians

	// SpinRate is added to Rotation.Y on every frame tick. Zero means static.
	SpinRate float32

	// Parent, when set, makes Position and Rotation relative to it.
	Parent *Body

	anchor *LightSource
}

// NewBody returns a body at the origin with identity rotation.
func NewBody(name string, kind Kind, geom Geometry, mat *Material) *Body {
	return &Body{
		Name:     name,
		Kind:     kind,
		Geometry: geom,
		Material: mat,
	}
}

func (*Body) entity() {}

// Attach makes child a sub-object of b.
func (b *Body) Attach(child *Body) {
	child.Parent = b
}

// Anchor returns the light this body visualizes, if any.
func (b *Body) Anchor() *LightSource {
	return b.anchor
}

// LocalMatrix returns the transform relative to the parent.
func (b *Body) LocalMatrix() math.Mat4 {
	return math.Compose(b.Position, b.Rotation)
}

// WorldMatrix returns the transform in world space. Light helpers follow
// their light's live position; area light helpers also face its target.
func (b *Body) WorldMatrix() math.Mat4 {
	local := b.LocalMatrix()
	if b.anchor != nil {
		anchor := math.Translate(b.anchor.Position)
		if b.anchor.Kind == LightAreaRect {
			anchor = math.Compose(b.anchor.Position, math.FacingEuler(b.anchor.Direction()))
		}
		local = anchor.Mul(local)
	}
	if b.Parent != nil {
		return b.Parent.WorldMatrix().Mul(local)
	}
	return local
}

// WorldPosition returns the body origin in world space.
func (b *Body) WorldPosition() math.Vec3 {
	return b.WorldMatrix().Translation()
}

// FrontNormal returns the world-space normal of a plane's front face.
// Spheres have no single normal; the zero vector is returned.
func (b *Body) FrontNormal() math.Vec3 {
	if b.Geometry.Type != GeometryPlane {
		return math.Vec3{}
	}
	return b.WorldMatrix().TransformDirection(math.V3(0, 0, 1)).Normalize()
}

// SurfaceVisibleFrom reports whether the textured surface faces an eye at
// the given world position, honoring the material side. Spheres are tested
// at the surface point nearest the eye.
func (b *Body) SurfaceVisibleFrom(eye math.Vec3) bool {
	side := FrontSide
	if b.Material != nil {
		side = b.Material.Side
	}

	center := b.WorldPosition()
	switch b.Geometry.Type {
	case GeometrySphere:
		toEye := eye.Sub(center)
		dist := toEye.Length()
		if dist == 0 {
			// At the exact center every face points at the viewer from behind.
			return side != FrontSide
		}
		normal := toEye.Scale(1 / dist)
		surface := center.Add(normal.Scale(b.Geometry.Radius))
		return side.Visible(normal, eye.Sub(surface))
	default:
		return side.Visible(b.FrontNormal(), eye.Sub(center))
	}
}
