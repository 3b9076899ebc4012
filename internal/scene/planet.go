package scene

import (
	"math"

	"solar-scene/internal/config"
	"solar-scene/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Degrees of passive self-rotation per frame
	passiveRotationSpeed float32 = 0.1

	// The atmosphere leads the surface by this many degrees
	atmosphereRotationLead float32 = 5.0
)

// Planet orbits the world origin on a circular path, rotates passively,
// carries the user-driven drag rotation and zoom, and owns the moon that
// orbits it. Its world position is always derived from the orbit angle;
// nothing else sets it.
type Planet struct {
	radius           float32
	atmosphereRadius float32

	texture           uint32
	atmosphereTexture uint32

	rotationY float32 // passive self-rotation, wraps mod 360

	userRotationX float32 // clamped to +/- MaxTiltDegrees, decays when idle
	userRotationY float32 // unclamped

	zoom float32

	orbitRadius float32
	orbitAngle  float32
	orbitSpeed  float32

	positionX float32
	positionZ float32

	moon *Moon
}

func NewPlanet(radius, atmosphereRadius float32, texture, atmosphereTexture uint32, moon *Moon, orbitRadius, orbitSpeed float32) *Planet {
	return &Planet{
		radius:            radius,
		atmosphereRadius:  atmosphereRadius,
		texture:           texture,
		atmosphereTexture: atmosphereTexture,
		moon:              moon,
		orbitRadius:       orbitRadius,
		orbitSpeed:        orbitSpeed,
		zoom:              config.DefaultZoom,
		positionX:         orbitRadius,
	}
}

// Update advances one frame: passive rotation, orbit position, idle decay
// of the user tilt, then the moon.
func (p *Planet) Update(f Frame) {
	p.rotationY = wrapAngle(p.rotationY + passiveRotationSpeed)

	p.orbitAngle = wrapAngle(p.orbitAngle + p.orbitSpeed)
	rad := float64(mgl32.DegToRad(p.orbitAngle))
	p.positionX = p.orbitRadius * float32(math.Cos(rad))
	p.positionZ = p.orbitRadius * float32(math.Sin(rad))

	// Return the tilt to rest once the user has been idle long enough.
	// Snapping below one step avoids oscillating around zero.
	if f.Now.Sub(f.LastInteraction) >= config.IdleReturnDelay && p.userRotationX != 0 {
		if p.userRotationX > 0 {
			p.userRotationX -= config.RotationDecayStep
		} else {
			p.userRotationX += config.RotationDecayStep
		}
		if float32(math.Abs(float64(p.userRotationX))) < config.RotationDecayStep {
			p.userRotationX = 0
		}
	}

	if p.moon != nil {
		p.moon.Update(f)
	}
}

// SetUserRotation sets the drag-driven rotation. X is clamped here so the
// invariant holds no matter what the caller accumulated.
func (p *Planet) SetUserRotation(x, y float32) {
	if x > config.MaxTiltDegrees {
		x = config.MaxTiltDegrees
	}
	if x < -config.MaxTiltDegrees {
		x = -config.MaxTiltDegrees
	}
	p.userRotationX = x
	p.userRotationY = y
}

// AdjustZoom moves the camera distance by delta and clamps it into
// [MinZoom, MaxZoom].
func (p *Planet) AdjustZoom(delta float32) {
	p.zoom += delta
	if p.zoom < config.MinZoom {
		p.zoom = config.MinZoom
	}
	if p.zoom > config.MaxZoom {
		p.zoom = config.MaxZoom
	}
}

func (p *Planet) Zoom() float32 {
	return p.zoom
}

func (p *Planet) RotationY() float32 {
	return p.rotationY
}

func (p *Planet) OrbitAngle() float32 {
	return p.orbitAngle
}

func (p *Planet) UserRotationX() float32 {
	return p.userRotationX
}

func (p *Planet) UserRotationY() float32 {
	return p.userRotationY
}

// Position returns the planet's world position, derived from the orbit
func (p *Planet) Position() mgl32.Vec3 {
	return mgl32.Vec3{p.positionX, 0, p.positionZ}
}

// ModelMatrix composes the planet transform. The order is fixed: world
// translation, user tilt (X), user spin (Y), passive spin (Y). Reordering
// changes the visible tilt.
func (p *Planet) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(p.positionX, 0, p.positionZ).
		Mul4(rotateXDeg(p.userRotationX)).
		Mul4(rotateYDeg(p.userRotationY)).
		Mul4(rotateYDeg(p.rotationY))
}

// Render draws the planet body, its atmosphere shell leading the surface
// rotation, and the moon nested in the planet's frame so it orbits the
// tilted planet rather than world space.
func (p *Planet) Render(r *graphics.Renderer, parent mgl32.Mat4) {
	model := parent.Mul4(p.ModelMatrix())

	r.DrawSphere(model.Mul4(scaleUniform(p.radius)), p.texture, graphics.DetailHigh, 1.0, true)

	atmosphere := model.
		Mul4(rotateYDeg(p.rotationY + atmosphereRotationLead)).
		Mul4(scaleUniform(p.atmosphereRadius))
	r.DrawSphere(atmosphere, p.atmosphereTexture, graphics.DetailHigh, atmosphereAlpha, true)

	if p.moon != nil {
		p.moon.Render(r, model)
	}
}
