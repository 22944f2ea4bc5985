// Package room builds box-shaped enclosures out of six planar walls.
package room

import (
	"image/color"

	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

// Wall names, in the order walls are stored.
const (
	Floor = iota
	Ceiling
	Right
	Left
	Far
	Near
	wallCount
)

var wallNames = [wallCount]string{"floor", "ceiling", "right", "left", "far", "near"}

// Wall colors.
var (
	floorColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	rightColor = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	leftColor  = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	endColor   = color.RGBA{R: 0x7f, G: 0x7f, B: 0xff, A: 0xff}
)

// Room is six walls enclosing a box.
type Room struct {
	Walls [wallCount]*scene.Body
}

// Bodies returns the walls as entities for a scene graph.
func (r Room) Bodies() []scene.Entity {
	out := make([]scene.Entity, 0, wallCount)
	for _, w := range r.Walls {
		out = append(out, w)
	}
	return out
}

// Wall returns a wall by index (Floor, Ceiling, ...).
func (r Room) Wall(i int) *scene.Body {
	return r.Walls[i]
}

// CreateCubicRoom returns a cube of edge length edge. The floor is centered
// on offset; the ceiling sits edge above it.
func CreateCubicRoom(edge float32, offset math.Vec3) Room {
	half := edge / 2

	var r Room
	r.Walls[Floor] = wall(Floor, edge, edge, floorColor, offset, math.V3(-math.HalfPi, 0, 0))
	r.Walls[Ceiling] = wall(Ceiling, edge, edge, floorColor, offset.Add(math.V3(0, edge, 0)), math.V3(math.HalfPi, 0, 0))
	r.Walls[Right] = wall(Right, edge, edge, rightColor, offset.Add(math.V3(half, half, 0)), math.V3(0, -math.HalfPi, 0))
	r.Walls[Left] = wall(Left, edge, edge, leftColor, offset.Add(math.V3(-half, half, 0)), math.V3(0, math.HalfPi, 0))
	r.Walls[Far] = wall(Far, edge, edge, endColor, offset.Add(math.V3(0, half, -half)), math.V3(0, 0, 0))
	r.Walls[Near] = wall(Near, edge, edge, endColor, offset.Add(math.V3(0, half, half)), math.V3(0, math.Pi, 0))
	return r
}

// CreateRectangularRoom returns a room whose floor and ceiling are
// width x height (width running along Z). Side walls are heightGap shorter
// than height, and the ceiling drops by heightGap to meet them, which gives
// attic-like rooms.
//
// The side walls span width along Z; the far and near walls span height
// along X. Dimensions are not validated.
func CreateRectangularRoom(width, height, heightGap float32, offset math.Vec3) Room {
	wallHeight := height - heightGap
	midY := height/2 - heightGap/2
	halfX := height / 2
	halfZ := width / 2

	var r Room
	r.Walls[Floor] = wall(Floor, width, height, floorColor, offset, math.V3(-math.HalfPi, 0, math.HalfPi))
	r.Walls[Ceiling] = wall(Ceiling, width, height, floorColor, offset.Add(math.V3(0, wallHeight, 0)), math.V3(math.HalfPi, 0, math.HalfPi))
	r.Walls[Right] = wall(Right, width, wallHeight, rightColor, offset.Add(math.V3(halfX, midY, 0)), math.V3(0, -math.HalfPi, 0))
	r.Walls[Left] = wall(Left, width, wallHeight, leftColor, offset.Add(math.V3(-halfX, midY, 0)), math.V3(0, math.HalfPi, 0))
	r.Walls[Far] = wall(Far, height, wallHeight, endColor, offset.Add(math.V3(0, midY, -halfZ)), math.V3(0, 0, 0))
	r.Walls[Near] = wall(Near, height, wallHeight, endColor, offset.Add(math.V3(0, midY, halfZ)), math.V3(0, math.Pi, 0))
	return r
}

func wall(which int, width, height float32, c color.RGBA, pos, rot math.Vec3) *scene.Body {
	mat := scene.NewMaterial(scene.ShadingPhong)
	mat.Color = c
	mat.Side = scene.DoubleSide

	b := scene.NewBody(wallNames[which], scene.KindWall, scene.Plane(width, height), mat)
	b.Position = pos
	b.Rotation = rot
	return b
}
