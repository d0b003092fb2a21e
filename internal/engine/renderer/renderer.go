// Package renderer uploads registered meshes and draws the scene graph with
// OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/satellite/internal/engine/camera"
	"github.com/Faultbox/satellite/internal/engine/lighting"
	"github.com/Faultbox/satellite/internal/engine/mesh"
	"github.com/Faultbox/satellite/internal/engine/scenegraph"
	"github.com/Faultbox/satellite/internal/engine/shader"
	"github.com/Faultbox/satellite/internal/logger"
	"github.com/Faultbox/satellite/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	// ViewportWidth and ViewportHeight are fractions of the drawable.
	ViewportWidth  float32
	ViewportHeight float32
	Background     [3]float32
	Sun            lighting.Sun
}

// material is a named shader setup meshes refer to by name.
type material struct {
	name    string
	program *shader.Program
	sunDir  math.Vec3
	ambient math.Vec3
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config    Config
	log       *zap.Logger
	viewport  camera.Rect
	materials map[string]*material
	meshes    map[string]*gpuMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		log:       logger.Named("renderer"),
		materials: make(map[string]*material),
		meshes:    make(map[string]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	program, err := shader.NewProgram(objectVertexShader, objectFragmentShader,
		"uMVP", "uNormalMatrix", "uSunDir", "uAmbient")
	if err != nil {
		return nil, fmt.Errorf("failed to create %s program: %w", mesh.DefaultMaterial, err)
	}
	r.materials[mesh.DefaultMaterial] = &material{
		name:    mesh.DefaultMaterial,
		program: program,
		sunDir:  cfg.Sun.Direction(),
		ambient: cfg.Sun.Ambient,
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Upload copies every mesh in meshes to the GPU. A mesh whose material has no
// program fails the upload.
func (r *Renderer) Upload(meshes *mesh.Registry) error {
	for _, name := range meshes.Names() {
		m, err := meshes.Get(name)
		if err != nil {
			return err
		}
		mat, ok := r.materials[m.Material]
		if !ok {
			return fmt.Errorf("mesh %q material %q: %w", m.Name, m.Material, mesh.ErrUnresolvedReference)
		}
		if old, ok := r.meshes[name]; ok {
			old.delete()
		}
		r.meshes[name] = uploadMesh(m, mat)
		r.log.Debug("mesh uploaded", zap.String("mesh", name), zap.String("material", mat.name))
	}
	return nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range r.meshes {
		m.delete()
	}
	for _, mat := range r.materials {
		mat.program.Delete()
	}
}

// Resize recomputes the viewport for a new drawable size and returns it.
func (r *Renderer) Resize(width, height int) camera.Rect {
	r.config.Width = width
	r.config.Height = height
	r.viewport = camera.Viewport(width, height, r.config.ViewportWidth, r.config.ViewportHeight)
	gl.Viewport(int32(r.viewport.X), int32(r.viewport.Y), int32(r.viewport.Width), int32(r.viewport.Height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("viewport_width", r.viewport.Width),
		zap.Int("viewport_height", r.viewport.Height),
	)
	return r.viewport
}

// Viewport returns the current viewport rectangle.
func (r *Renderer) Viewport() camera.Rect {
	return r.viewport
}

// Begin starts a new frame. The area outside the viewport is cleared black.
func (r *Renderer) Begin() {
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	vp := r.viewport
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(int32(vp.X), int32(vp.Y), int32(vp.Width), int32(vp.Height))
	bg := r.config.Background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders every node of g that carries a mesh.
func (r *Renderer) Draw(g *scenegraph.Graph, cam *camera.Camera) {
	viewProj := cam.ViewProjection()
	var bound *material

	g.Walk(func(n *scenegraph.Node) bool {
		m := n.Mesh()
		if m == nil {
			return true
		}
		gm, ok := r.meshes[m.Name]
		if !ok {
			return true
		}

		mat := gm.material
		if mat != bound {
			mat.program.Use()
			gl.Uniform3f(mat.program.Uniform("uSunDir"), mat.sunDir.X, mat.sunDir.Y, mat.sunDir.Z)
			gl.Uniform3f(mat.program.Uniform("uAmbient"), mat.ambient.X, mat.ambient.Y, mat.ambient.Z)
			bound = mat
		}

		world := n.World()
		mvp := viewProj.Mul(world)
		normal := world.NormalMatrix()
		gl.UniformMatrix4fv(mat.program.Uniform("uMVP"), 1, false, mvp.Ptr())
		gl.UniformMatrix4fv(mat.program.Uniform("uNormalMatrix"), 1, false, normal.Ptr())
		gm.draw()
		return true
	})
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.Disable(gl.SCISSOR_TEST)
}
