// Package mesh tessellates scene geometry into GPU-ready vertex data.
package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/internal/scene"
)

// Vertex is an interleaved mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds triangle data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// FromGeometry builds the mesh for a body's geometry.
func FromGeometry(g scene.Geometry) Mesh {
	switch g.Type {
	case scene.GeometryPlane:
		return Plane(g.Width, g.Height)
	default:
		return Sphere(g.Radius, g.WidthSegments, g.HeightSegments)
	}
}

// Sphere builds a UV sphere. Segments below 3 (width) or 2 (height) are raised
// to the minimum that still closes the surface. Texture V runs from 1 at the
// north pole to 0 at the south pole, so images must be uploaded bottom row
// first as GL expects.
func Sphere(radius float32, widthSegs, heightSegs int) Mesh {
	if widthSegs < 3 {
		widthSegs = 3
	}
	if heightSegs < 2 {
		heightSegs = 2
	}

	m := Mesh{
		Vertices: make([]Vertex, 0, (widthSegs+1)*(heightSegs+1)),
		Indices:  make([]uint32, 0, widthSegs*(heightSegs-1)*6),
	}

	rows := make([][]uint32, 0, heightSegs+1)
	for y := 0; y <= heightSegs; y++ {
		v := float32(y) / float32(heightSegs)
		theta := v * math32.Pi
		sinTheta, cosTheta := math32.Sincos(theta)

		row := make([]uint32, 0, widthSegs+1)
		for x := 0; x <= widthSegs; x++ {
			u := float32(x) / float32(widthSegs)
			phi := u * 2 * math32.Pi
			sinPhi, cosPhi := math32.Sincos(phi)

			nx := -cosPhi * sinTheta
			ny := cosTheta
			nz := sinPhi * sinTheta

			row = append(row, uint32(len(m.Vertices)))
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{radius * nx, radius * ny, radius * nz},
				Normal:   [3]float32{nx, ny, nz},
				TexCoord: [2]float32{u, 1 - v},
			})
		}
		rows = append(rows, row)
	}

	for y := 0; y < heightSegs; y++ {
		for x := 0; x < widthSegs; x++ {
			a := rows[y][x+1]
			b := rows[y][x]
			c := rows[y+1][x]
			d := rows[y+1][x+1]

			// The pole rows collapse to a point; skip their degenerate halves.
			if y != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if y != heightSegs-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}

	return m
}

// Plane builds a rectangle centered on the origin in the XY plane with its
// front face along +Z.
func Plane(width, height float32) Mesh {
	hw, hh := width/2, height/2
	n := [3]float32{0, 0, 1}

	return Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{-hw, hh, 0}, Normal: n, TexCoord: [2]float32{0, 1}},
			{Position: [3]float32{hw, hh, 0}, Normal: n, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-hw, -hh, 0}, Normal: n, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{hw, -hh, 0}, Normal: n, TexCoord: [2]float32{1, 0}},
		},
		Indices: []uint32{0, 2, 1, 2, 3, 1},
	}
}
