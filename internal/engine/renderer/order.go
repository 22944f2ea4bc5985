package renderer

import (
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

// DrawOrder returns opaque bodies in graph order followed by transparent
// bodies sorted back to front from eye.
func DrawOrder(bodies []*scene.Body, eye math.Vec3) []*scene.Body {
	out := make([]*scene.Body, 0, len(bodies))
	var transparent []*scene.Body
	for _, b := range bodies {
		if b.Material != nil && b.Material.Transparent {
			transparent = append(transparent, b)
			continue
		}
		out = append(out, b)
	}

	sort.SliceStable(transparent, func(i, j int) bool {
		return transparent[i].WorldPosition().Distance(eye) > transparent[j].WorldPosition().Distance(eye)
	})
	return append(out, transparent...)
}

// CullMode returns whether face culling is enabled for a side and which
// face is culled.
func CullMode(side scene.Side) (enable bool, face uint32) {
	switch side {
	case scene.BackSide:
		return true, gl.FRONT
	case scene.DoubleSide:
		return false, gl.BACK
	default:
		return true, gl.BACK
	}
}

// MaterialOpacity returns the surface alpha multiplier. A transparent
// material takes its alpha from the color map when one is bound and from
// its base color otherwise.
func MaterialOpacity(mat *scene.Material, hasMap bool) float32 {
	if !mat.Transparent || hasMap {
		return 1
	}
	return float32(mat.Color.A) / 255
}
