// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SurfaceVertexShader transforms bodies into clip space.
//
//go:embed surface.vert
var SurfaceVertexShader string

// SurfaceFragmentShader shades bodies with the Phong or basic model.
//
//go:embed surface.frag
var SurfaceFragmentShader string
