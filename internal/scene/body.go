package scene

import (
	"time"

	"solar-scene/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame carries the per-frame context every body update sees. It replaces
// the hidden globals the input side used to share with the simulation: the
// loop builds one from the input state and threads it through Update.
type Frame struct {
	Now             time.Time
	LastInteraction time.Time
}

// Body is a celestial body in the scene. The set is closed: Sun, Planet,
// Moon. Update advances one frame of state; Render draws the body under
// the parent transform. Transform scoping is by construction: children
// receive a copy of the parent matrix, so nothing leaks to siblings.
type Body interface {
	Update(f Frame)
	Render(r *graphics.Renderer, parent mgl32.Mat4)
}

// wrapAngle keeps an angle in [0, 360)
func wrapAngle(a float32) float32 {
	for a >= 360 {
		a -= 360
	}
	for a < 0 {
		a += 360
	}
	return a
}

// rotateYDeg is a Y-axis rotation by an angle in degrees
func rotateYDeg(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
}

// rotateXDeg is an X-axis rotation by an angle in degrees
func rotateXDeg(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(mgl32.DegToRad(deg))
}

func scaleUniform(s float32) mgl32.Mat4 {
	return mgl32.Scale3D(s, s, s)
}
