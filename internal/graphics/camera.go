package graphics

import (
	"solar-scene/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices. The view always looks
// at the planet from straight down the +Z axis of its current position,
// at a distance equal to the current zoom.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         config.FOV,
		NearPlane:   config.NearPlane,
		FarPlane:    config.FarPlane,
	}
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewMatrix returns the view matrix for a camera tracking focus from
// (focus.x, 0, focus.z + zoom).
func (c *Camera) ViewMatrix(focus mgl32.Vec3, zoom float32) mgl32.Mat4 {
	eye := mgl32.Vec3{focus.X(), 0, focus.Z() + zoom}
	target := mgl32.Vec3{focus.X(), 0, focus.Z()}
	return mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0})
}
