package scene

import (
	"solar-scene/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun sits at the world origin and doubles as the scene's light source.
type Sun struct {
	radius  float32
	texture uint32
}

func NewSun(radius float32, texture uint32) *Sun {
	return &Sun{radius: radius, texture: texture}
}

// Update is a no-op; the sun is stationary. Kept so every body satisfies
// the same contract.
func (s *Sun) Update(f Frame) {}

// Render draws the sun unlit, since it is the light
func (s *Sun) Render(r *graphics.Renderer, parent mgl32.Mat4) {
	r.DrawSphere(parent.Mul4(scaleUniform(s.radius)), s.texture, graphics.DetailHigh, 1.0, false)
}
