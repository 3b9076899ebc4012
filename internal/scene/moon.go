package scene

import (
	"solar-scene/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Degrees the moon advances along its orbit per frame
	moonOrbitStep float32 = 0.5

	// The atmosphere shell is drawn this much larger than the body
	atmosphereShellOffset float32 = 0.05

	// Opacity of atmosphere shells
	atmosphereAlpha float32 = 0.5
)

// Moon orbits its parent planet's local origin. It has no independent
// input; everything is driven by the per-frame orbit step.
type Moon struct {
	orbitAngle float32
	distance   float32
	size       float32

	texture           uint32
	atmosphereTexture uint32
}

func NewMoon(distance, size float32, texture, atmosphereTexture uint32) *Moon {
	return &Moon{
		distance:          distance,
		size:              size,
		texture:           texture,
		atmosphereTexture: atmosphereTexture,
	}
}

// OrbitAngle returns the current orbit angle in degrees, always in [0, 360)
func (m *Moon) OrbitAngle() float32 {
	return m.orbitAngle
}

func (m *Moon) Update(f Frame) {
	m.orbitAngle = wrapAngle(m.orbitAngle + moonOrbitStep)
}

// Render draws the moon in its parent's frame: rotated along the orbit,
// translated out along X, then the body sphere and a translucent
// atmosphere shell rotating at half the orbit rate.
func (m *Moon) Render(r *graphics.Renderer, parent mgl32.Mat4) {
	orbit := parent.
		Mul4(rotateYDeg(m.orbitAngle)).
		Mul4(mgl32.Translate3D(m.distance, 0, 0))

	r.DrawSphere(orbit.Mul4(scaleUniform(m.size)), m.texture, graphics.DetailLow, 1.0, true)

	atmosphere := orbit.
		Mul4(rotateYDeg(m.orbitAngle * 0.5)).
		Mul4(scaleUniform(m.size + atmosphereShellOffset))
	r.DrawSphere(atmosphere, m.atmosphereTexture, graphics.DetailLow, atmosphereAlpha, true)
}
