// Package renderer draws a scene graph with OpenGL into an offscreen target.
package renderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/framebuffer"
	"github.com/Faultbox/orrery/internal/engine/lighting"
	"github.com/Faultbox/orrery/internal/engine/renderer/shaders"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
)

// ErrNoCamera is returned by Render without a camera.
var ErrNoCamera = errors.New("renderer: no camera")

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// Background is the clear color, RGBA 0-1.
	Background [4]float32
}

// Renderer draws bodies lit by the scene's lights.
// IMPORTANT: Must be created AFTER the OpenGL context!
type Renderer struct {
	config  Config
	program *shader.Program
	target  *framebuffer.Framebuffer
	env     *lighting.Environment

	meshes   map[*scene.Body]*gpuMesh
	textures map[*scene.Texture]uint32
}

// New compiles the surface shader and allocates the render target.
func New(cfg Config) (*Renderer, error) {
	program, err := shader.Compile(shaders.SurfaceVertexShader, shaders.SurfaceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("surface shader: %w", err)
	}

	target, err := framebuffer.New(cfg.Width, cfg.Height)
	if err != nil {
		program.Delete()
		return nil, err
	}

	logger.Info("renderer ready",
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))

	return &Renderer{
		config:   cfg,
		program:  program,
		target:   target,
		env:      lighting.NewEnvironment(),
		meshes:   make(map[*scene.Body]*gpuMesh),
		textures: make(map[*scene.Texture]uint32),
	}, nil
}

// Resize resizes the render target.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	if r.target.Resize(width, height) {
		logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
	}
}

// Texture returns the GL texture holding the last rendered frame.
func (r *Renderer) Texture() uint32 {
	return r.target.ColorTexture()
}

// Size returns the render target size.
func (r *Renderer) Size() (width, height int) {
	return r.target.Size()
}

// Snapshot returns the last rendered frame as an image.
func (r *Renderer) Snapshot() *image.RGBA {
	return r.target.Snapshot()
}

// Render draws every body in the graph from cam.
func (r *Renderer) Render(graph *scene.Graph, cam *camera.Camera) error {
	if cam == nil {
		return ErrNoCamera
	}

	end := r.target.Begin(r.config.Background)
	defer end()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	defer gl.Disable(gl.CULL_FACE)
	defer gl.Disable(gl.BLEND)
	defer gl.DepthMask(true)

	r.env.Collect(graph.Lights())

	r.program.Use()
	r.program.SetMat4("uView", cam.ViewMatrix())
	r.program.SetMat4("uProjection", cam.ProjectionMatrix())
	r.program.SetVec3("uCameraPos", cam.Position.Array())
	r.uploadLights()

	r.program.SetInt("uMap", 0)
	r.program.SetInt("uBumpMap", 1)
	r.program.SetInt("uSpecularMap", 2)

	for _, b := range DrawOrder(graph.Bodies(), cam.Position) {
		if err := r.draw(b); err != nil {
			return fmt.Errorf("drawing %s: %w", b.Name, err)
		}
	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

func (r *Renderer) uploadLights() {
	p := r.program
	p.SetVec3("uAmbient", r.env.Ambient)

	p.SetInt("uPointLightCount", int32(r.env.Points.Count))
	p.SetVec3Array("uPointLightPositions", r.env.Points.GetPositions())
	p.SetVec3Array("uPointLightColors", r.env.Points.GetColors())
	p.SetFloatArray("uPointLightRanges", r.env.Points.GetRanges())

	p.SetInt("uDirLightCount", int32(r.env.DirectionalCount()))
	p.SetVec3Array("uDirLightDirections", r.env.GetDirections())
	p.SetVec3Array("uDirLightColors", r.env.GetDirectionalColors())
}

func (r *Renderer) draw(b *scene.Body) error {
	mat := b.Material
	if mat == nil {
		return errors.New("body has no material")
	}

	m, ok := r.meshes[b]
	if !ok {
		m = uploadMesh(b.Geometry)
		r.meshes[b] = m
	}

	enable, face := CullMode(mat.Side)
	if enable {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(face)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	if mat.Transparent {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
	} else {
		gl.Disable(gl.BLEND)
		gl.DepthMask(true)
	}

	p := r.program
	p.SetMat4("uModel", b.WorldMatrix())
	p.SetBool("uBasic", mat.Shading == scene.ShadingBasic)
	p.SetVec3("uColor", lighting.ColorVec(mat.Color))
	p.SetVec3("uSpecular", lighting.ColorVec(mat.Specular))
	p.SetFloat("uShininess", max(mat.Shininess, 1))
	p.SetFloat("uBumpScale", mat.BumpScale)

	var colorMap *scene.Texture
	if !mat.Degraded() {
		colorMap = mat.Texture(scene.Map)
	}
	hasMap := r.bind(0, colorMap)
	p.SetBool("uHasMap", hasMap)
	p.SetFloat("uOpacity", MaterialOpacity(mat, hasMap))
	p.SetBool("uHasBumpMap", r.bind(1, mat.Texture(scene.BumpMap)))
	p.SetBool("uHasSpecularMap", r.bind(2, mat.Texture(scene.SpecularMap)))

	m.draw()
	return nil
}

// bind binds a texture to a unit, uploading it on first use. It reports
// whether a texture is bound.
func (r *Renderer) bind(unit uint32, tex *scene.Texture) bool {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	if tex == nil || tex.Image == nil || len(tex.Image.Pix) == 0 {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		return false
	}

	id, ok := r.textures[tex]
	if !ok {
		id = uploadTexture(tex.Image)
		r.textures[tex] = id
		logger.Debug("texture uploaded", zap.String("name", tex.Name), zap.Uint32("id", id))
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	return true
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range r.meshes {
		m.destroy()
	}
	r.meshes = nil
	for _, id := range r.textures {
		gl.DeleteTextures(1, &id)
	}
	r.textures = nil
	r.target.Destroy()
	r.program.Delete()
}
