package scene

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/Faultbox/orrery/pkg/math"
)

// Texture is decoded pixel data ready for GPU upload.
type Texture struct {
	Name  string
	Image *image.RGBA
}

// Shading selects the lighting model.
type Shading int

const (
	// ShadingPhong is lit with diffuse and specular terms.
	ShadingPhong Shading = iota
	// ShadingBasic ignores lights and shows the raw color or map.
	ShadingBasic
)

// Side selects which faces of a surface are drawn.
type Side int

const (
	// FrontSide draws faces whose normal points toward the viewer.
	FrontSide Side = iota
	// BackSide draws the inner faces only, for surfaces seen from inside.
	BackSide
	// DoubleSide draws both.
	DoubleSide
)

func (s Side) String() string {
	switch s {
	case FrontSide:
		return "front"
	case BackSide:
		return "back"
	case DoubleSide:
		return "double"
	default:
		return "unknown"
	}
}

// Visible reports whether a face with the given outward normal is drawn
// when seen along toEye (the vector from the surface point to the eye).
func (s Side) Visible(normal, toEye math.Vec3) bool {
	d := normal.Dot(toEye)
	switch s {
	case FrontSide:
		return d > 0
	case BackSide:
		return d < 0
	default:
		return true
	}
}

// MapSlot names a texture slot on a material.
type MapSlot int

const (
	Map MapSlot = iota
	BumpMap
	SpecularMap
	mapSlotCount
)

func (m MapSlot) String() string {
	switch m {
	case Map:
		return "map"
	case BumpMap:
		return "bumpMap"
	case SpecularMap:
		return "specularMap"
	default:
		return "unknown"
	}
}

// Material describes how a body's surface is shaded.
//
// Texture slots are written by loader goroutines and read by the renderer
// without further synchronization; a nil slot means "not loaded yet".
type Material struct {
	Shading     Shading
	Color       color.RGBA
	Side        Side
	Transparent bool
	BumpScale   float32
	Specular    color.RGBA
	Shininess   float32

	maps     [mapSlotCount]atomic.Pointer[Texture]
	degraded atomic.Bool
}

// NewMaterial returns a white material with the given shading.
func NewMaterial(shading Shading) *Material {
	return &Material{
		Shading:   shading,
		Color:     color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Specular:  color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff},
		Shininess: 30,
	}
}

// SetMap publishes a loaded texture into a slot.
func (m *Material) SetMap(slot MapSlot, t *Texture) {
	m.maps[slot].Store(t)
}

// Texture returns the texture in a slot, or nil while it is pending or failed.
func (m *Material) Texture(slot MapSlot) *Texture {
	return m.maps[slot].Load()
}

// Degrade marks the color map as unresolvable. The material keeps drawing its
// flat color from then on.
func (m *Material) Degrade() {
	m.degraded.Store(true)
	m.maps[Map].Store(nil)
}

// Degraded reports whether the color map failed to load.
func (m *Material) Degraded() bool {
	return m.degraded.Load()
}

// Textured reports whether a color map is currently available.
func (m *Material) Textured() bool {
	return !m.Degraded() && m.Texture(Map) != nil
}
