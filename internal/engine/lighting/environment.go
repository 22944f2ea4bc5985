package lighting

import (
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
)

// MaxDirectionalLights is the maximum number of directional emitters,
// area lights included, supported in shaders.
const MaxDirectionalLights = 4

// DirectionalLight shines uniformly along one direction.
type DirectionalLight struct {
	Direction [3]float32 // unit vector toward the light
	Color     [3]float32 // RGB premultiplied by intensity
}

// Environment is every light in a scene, packed for one frame.
type Environment struct {
	Ambient     [3]float32
	Points      *PointLightBuffer
	Directional []DirectionalLight
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{
		Points:      NewPointLightBuffer(),
		Directional: make([]DirectionalLight, 0, MaxDirectionalLights),
	}
}

// Collect refills the environment from scene lights. Ambient lights sum.
// Area lights are approximated as directional emitters whose intensity is
// scaled by the rectangle's area. Lights beyond the shader limits are
// dropped with a warning.
func (e *Environment) Collect(lights []*scene.LightSource) {
	e.Ambient = [3]float32{}
	e.Points.Clear()
	e.Directional = e.Directional[:0]

	for _, l := range lights {
		switch l.Kind {
		case scene.LightAmbient:
			c := ColorVec(l.Color)
			for i := range e.Ambient {
				e.Ambient[i] += c[i] * l.Intensity
			}
		case scene.LightPoint:
			if !e.Points.AddLight(FromSource(l)) {
				logger.Warn("point light dropped", zap.String("name", l.Name), zap.Int("max", MaxPointLights))
			}
		case scene.LightDirectional:
			e.addDirectional(l, l.Intensity)
		case scene.LightAreaRect:
			e.addDirectional(l, l.Intensity*l.Width*l.Height)
		}
	}
}

func (e *Environment) addDirectional(l *scene.LightSource, intensity float32) {
	if len(e.Directional) >= MaxDirectionalLights {
		logger.Warn("directional light dropped", zap.String("name", l.Name), zap.Int("max", MaxDirectionalLights))
		return
	}
	c := ColorVec(l.Color)
	e.Directional = append(e.Directional, DirectionalLight{
		Direction: l.Direction().Negate().Array(),
		Color:     [3]float32{c[0] * intensity, c[1] * intensity, c[2] * intensity},
	})
}

// DirectionalCount returns the number of directional emitters.
func (e *Environment) DirectionalCount() int {
	return len(e.Directional)
}

// GetDirections returns directional light directions padded to MaxDirectionalLights.
func (e *Environment) GetDirections() []float32 {
	result := make([]float32, MaxDirectionalLights*3)
	for i, d := range e.Directional {
		copy(result[i*3:], d.Direction[:])
	}
	return result
}

// GetDirectionalColors returns directional light colors padded to MaxDirectionalLights.
func (e *Environment) GetDirectionalColors() []float32 {
	result := make([]float32, MaxDirectionalLights*3)
	for i, d := range e.Directional {
		copy(result[i*3:], d.Color[:])
	}
	return result
}
