package app

import (
	"fmt"

	"github.com/Faultbox/orrery/internal/celestial"
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/room"
	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

// Camera projection shared by every variant.
const (
	FovDegrees = 75
	Near       = 0.1
	Far        = 1000
)

// Variant is a composed scene plus where the camera starts.
type Variant struct {
	Name  string
	Graph *scene.Graph

	// CameraPosition is the initial eye; Center is the orbit pivot and
	// initial look-at point.
	CameraPosition math.Vec3
	Center         math.Vec3

	Background [4]float32
}

// BuildVariant composes the named scene. A nil texture source leaves every
// body untextured.
func BuildVariant(name string, textures celestial.TextureSource) (*Variant, error) {
	switch name {
	case config.VariantSolar:
		return buildSolar(textures), nil
	case config.VariantEarth:
		return buildEarth(textures), nil
	case config.VariantRooms:
		return buildRooms(textures), nil
	default:
		return nil, fmt.Errorf("unknown scene variant %q", name)
	}
}

func buildSolar(textures celestial.TextureSource) *Variant {
	sun := celestial.CreateSun(textures)
	earth := celestial.CreateEarth(textures)
	clouds := celestial.CreateClouds(textures)
	stars := celestial.CreateStars(textures)

	earthLight := scene.NewPointLight("earth light", 3, 100, earth.Position)
	sunLight := scene.NewPointLight("sun light", 3, 100, sun.Position)

	g := scene.NewGraph()
	g.Add(sun, earth, clouds, stars, earthLight, sunLight)

	return &Variant{
		Name:           config.VariantSolar,
		Graph:          g,
		CameraPosition: math.V3(30, 15, 17),
		Background:     [4]float32{0, 0, 0, 1},
	}
}

// Close-up of a small earth off to one side.
func buildEarth(textures celestial.TextureSource) *Variant {
	pos := math.V3(-5, 0, -3)

	earthSpec := celestial.EarthSpec
	earthSpec.Radius = 0.8
	earthSpec.Position = pos
	earth := celestial.CreateBody(scene.KindEarth, earthSpec, textures)

	cloudSpec := celestial.CloudsSpec
	cloudSpec.Radius = 0.8 * celestial.CloudsSpec.Radius / celestial.EarthSpec.Radius
	cloudSpec.Position = pos
	clouds := celestial.CreateBody(scene.KindClouds, cloudSpec, textures)

	stars := celestial.CreateStars(textures)

	ambient := scene.NewAmbientLight("ambient", 0.3)
	sunlight := scene.NewDirectionalLight("sunlight", 1, math.V3(5, 3, 5), earth)

	g := scene.NewGraph()
	g.Add(earth, clouds, stars, ambient, sunlight)

	return &Variant{
		Name:           config.VariantEarth,
		Graph:          g,
		CameraPosition: pos.Add(math.V3(0, 0.5, 3)),
		Center:         pos,
		Background:     [4]float32{0, 0, 0, 1},
	}
}

func buildRooms(textures celestial.TextureSource) *Variant {
	cube := room.CreateCubicRoom(8, math.V3(0, 0, 4))
	attic := room.CreateRectangularRoom(5, 1, 0, math.V3(0, 0, 3))
	stars := celestial.CreateStars(textures)

	ambient := scene.NewAmbientLight("ambient", 0.3)
	area := scene.NewAreaLight("area light", 1.5, 2, 2, math.V3(0, 7.5, 4), cube.Wall(room.Floor))
	helper := area.AttachHelper()

	g := scene.NewGraph()
	g.Add(cube.Bodies()...)
	g.Add(attic.Bodies()...)
	g.Add(stars, ambient, area, helper)

	return &Variant{
		Name:           config.VariantRooms,
		Graph:          g,
		CameraPosition: math.V3(0, 4, 7),
		Center:         math.V3(0, 3, 4),
		Background:     [4]float32{0.05, 0.05, 0.08, 1},
	}
}
