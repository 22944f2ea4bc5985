// Package celestial builds the sun, earth, clouds and star skybox bodies.
package celestial

import (
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

// TextureSource resolves texture names asynchronously. done is called exactly
// once, from any goroutine, with either a texture or an error.
type TextureSource interface {
	Request(name string, done func(*scene.Texture, error))
}

// Spec holds the construction parameters of one celestial body.
type Spec struct {
	Radius   float32
	Segments int
	Position math.Vec3
	SpinRate float32

	Shading     scene.Shading
	Side        scene.Side
	Transparent bool
	Color       color.RGBA

	Map         string
	BumpMap     string
	BumpScale   float32
	SpecularMap string
	Specular    color.RGBA
}

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	grey  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// Default parameters per kind.
var (
	SunSpec = Spec{
		Radius:   3,
		Segments: 32,
		Position: math.V3(10, 0, 15),
		SpinRate: 0.003,
		Shading:  scene.ShadingPhong,
		Color:    color.RGBA{R: 0xff, G: 0xc0, B: 0x40, A: 0xff},
		Map:      "2k_sun.jpg",
	}

	EarthSpec = Spec{
		Radius:      3,
		Segments:    32,
		Position:    math.V3(-10, 0, -15),
		SpinRate:    0.005,
		Shading:     scene.ShadingPhong,
		Color:       color.RGBA{R: 0x2a, G: 0x5c, B: 0xaa, A: 0xff},
		Map:         "2k_earth_daymap.jpg",
		BumpMap:     "elev_bumps_4k.jpg",
		BumpScale:   0.005,
		SpecularMap: "water_4k.jpg",
		Specular:    grey,
	}

	CloudsSpec = Spec{
		Radius:      3.003,
		Segments:    32,
		Position:    math.V3(-10, 0, -15),
		SpinRate:    0.005,
		Shading:     scene.ShadingPhong,
		Transparent: true,
		Color:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40},
		Map:         "fair_clouds_4k.png",
	}

	StarsSpec = Spec{
		Radius:   200,
		Segments: 64,
		Shading:  scene.ShadingBasic,
		Side:     scene.BackSide,
		Color:    color.RGBA{R: 0x05, G: 0x05, B: 0x10, A: 0xff},
		Map:      "2k_stars_milky_way.jpg",
	}
)

// SpecFor returns the default spec of a celestial kind.
func SpecFor(kind scene.Kind) (Spec, bool) {
	switch kind {
	case scene.KindSun:
		return SunSpec, true
	case scene.KindEarth:
		return EarthSpec, true
	case scene.KindClouds:
		return CloudsSpec, true
	case scene.KindStars:
		return StarsSpec, true
	default:
		return Spec{}, false
	}
}

// CreateBody builds a sphere body from spec and starts loading its textures.
// The body is usable immediately; maps appear on the material as they resolve.
// A nil source leaves the body untextured.
func CreateBody(kind scene.Kind, spec Spec, textures TextureSource) *scene.Body {
	mat := scene.NewMaterial(spec.Shading)
	mat.Side = spec.Side
	mat.Transparent = spec.Transparent
	mat.BumpScale = spec.BumpScale
	if spec.Color != (color.RGBA{}) {
		mat.Color = spec.Color
	}
	if spec.Specular != (color.RGBA{}) {
		mat.Specular = spec.Specular
	}

	b := scene.NewBody(kind.String(), kind, scene.Sphere(spec.Radius, spec.Segments, spec.Segments), mat)
	b.Position = spec.Position
	b.SpinRate = spec.SpinRate

	if textures == nil {
		if spec.Map != "" {
			mat.Degrade()
		}
		return b
	}

	request(textures, mat, scene.Map, spec.Map)
	request(textures, mat, scene.BumpMap, spec.BumpMap)
	request(textures, mat, scene.SpecularMap, spec.SpecularMap)
	return b
}

func request(textures TextureSource, mat *scene.Material, slot scene.MapSlot, name string) {
	if name == "" {
		return
	}
	textures.Request(name, func(t *scene.Texture, err error) {
		if err != nil || t == nil {
			logger.Warn("texture unavailable, using flat material",
				zap.String("texture", name),
				zap.Stringer("slot", slot),
				zap.Error(err),
			)
			if slot == scene.Map {
				mat.Degrade()
			}
			return
		}
		mat.SetMap(slot, t)
	})
}

// CreateSun builds the sun with default parameters.
func CreateSun(textures TextureSource) *scene.Body {
	return CreateBody(scene.KindSun, SunSpec, textures)
}

// CreateEarth builds the earth with default parameters.
func CreateEarth(textures TextureSource) *scene.Body {
	return CreateBody(scene.KindEarth, EarthSpec, textures)
}

// CreateClouds builds the cloud layer that sits just above the earth.
func CreateClouds(textures TextureSource) *scene.Body {
	return CreateBody(scene.KindClouds, CloudsSpec, textures)
}

// CreateStars builds the star skybox, textured on its inner face.
func CreateStars(textures TextureSource) *scene.Body {
	return CreateBody(scene.KindStars, StarsSpec, textures)
}
