package graphics

import (
	"path/filepath"

	"solar-scene/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader file paths
const (
	ShadersDir = "assets/shaders"

	SceneVertShader = "main.vert"
	SceneFragShader = "main.frag"
)

// Detail selects the sphere tessellation level for a draw. Large bodies
// (sun, planet) get the finer mesh, the moon the coarser one.
type Detail int

const (
	DetailHigh Detail = iota
	DetailLow
)

// Sphere tessellation (slices x stacks), matching the quadric settings of
// the old renderer: 40x40 for sun/planet, 30x30 for the moon.
const (
	highSlices = 40
	highStacks = 40
	lowSlices  = 30
	lowStacks  = 30
)

// Renderer draws textured, point-lit spheres. All bodies share one shader
// and two unit sphere meshes; per-draw variation is the model matrix,
// texture, opacity and whether the body is lit.
type Renderer struct {
	shader *Shader
	camera *Camera

	sphereHigh *SphereMesh
	sphereLow  *SphereMesh
}

func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	vertPath := filepath.Join(ShadersDir, SceneVertShader)
	fragPath := filepath.Join(ShadersDir, SceneFragShader)
	shader, err := NewShader(vertPath, fragPath)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		shader:     shader,
		camera:     NewCamera(config.ScreenWidth, config.ScreenHeight),
		sphereHigh: NewSphereMesh(1.0, highSlices, highStacks),
		sphereLow:  NewSphereMesh(1.0, lowSlices, lowStacks),
	}

	return r, nil
}

func (r *Renderer) Camera() *Camera {
	return r.camera
}

// BeginFrame clears the framebuffer and sets the per-frame uniforms: the
// camera tracking focus at the given zoom distance, and the light fixed at
// the world origin (the sun's position).
func (r *Renderer) BeginFrame(focus mgl32.Vec3, zoom float32) {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.shader.Use()

	projection := r.camera.ProjectionMatrix()
	view := r.camera.ViewMatrix(focus, zoom)
	r.shader.SetMatrix4("proj", &projection[0])
	r.shader.SetMatrix4("view", &view[0])
	r.shader.SetVector3("lightPos", 0, 0, 0)
	r.shader.SetInt("tex", 0)
}

// DrawSphere draws one sphere under the given model matrix. Translucent
// draws leave the depth buffer untouched so bodies behind an atmosphere
// shell still render.
func (r *Renderer) DrawSphere(model mgl32.Mat4, texture uint32, detail Detail, alpha float32, lit bool) {
	r.shader.SetMatrix4("model", &model[0])
	r.shader.SetFloat("alpha", alpha)
	r.shader.SetBool("unlit", !lit)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	translucent := alpha < 1.0
	if translucent {
		gl.DepthMask(false)
	}

	mesh := r.sphereHigh
	if detail == DetailLow {
		mesh = r.sphereLow
	}
	mesh.Draw()

	if translucent {
		gl.DepthMask(true)
	}
}

// Release frees all GL objects owned by the renderer
func (r *Renderer) Release() {
	r.sphereLow.Release()
	r.sphereHigh.Release()
	r.shader.Release()
}
