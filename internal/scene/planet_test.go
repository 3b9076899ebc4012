package scene_test

import (
	"math"
	"testing"
	"time"

	"solar-scene/internal/config"
	"solar-scene/internal/scene"
)

func newTestPlanet() *scene.Planet {
	moon := scene.NewMoon(5.0, 0.27, 0, 0)
	return scene.NewPlanet(1.0, 1.05, 0, 0, moon, 20.0, 0.1)
}

// activeFrame is a frame where the user just interacted, so no decay runs
func activeFrame(now time.Time) scene.Frame {
	return scene.Frame{Now: now, LastInteraction: now}
}

// idleFrame is a frame where the user has been idle past the return delay
func idleFrame(now time.Time) scene.Frame {
	return scene.Frame{Now: now, LastInteraction: now.Add(-3 * time.Second)}
}

func TestPlanetRotationAndOrbitWrap(t *testing.T) {
	p := newTestPlanet()
	now := time.Now()

	for i := 0; i < 4000; i++ {
		p.Update(activeFrame(now))

		if p.RotationY() < 0 || p.RotationY() >= 360 {
			t.Fatalf("frame %d: rotationY %f out of [0,360)", i, p.RotationY())
		}
		if p.OrbitAngle() < 0 || p.OrbitAngle() >= 360 {
			t.Fatalf("frame %d: orbitAngle %f out of [0,360)", i, p.OrbitAngle())
		}
	}
}

func TestPlanetCircularOrbitInvariant(t *testing.T) {
	p := newTestPlanet()
	now := time.Now()

	// x^2 + z^2 must stay on the orbit circle for any angle
	for i := 0; i < 1000; i++ {
		p.Update(activeFrame(now))

		pos := p.Position()
		r2 := float64(pos.X()*pos.X() + pos.Z()*pos.Z())
		if math.Abs(r2-400.0) > 0.01 {
			t.Fatalf("frame %d: x^2+z^2 = %f, want 400", i, r2)
		}
	}
}

func TestPlanetOrbitPeriod(t *testing.T) {
	p := newTestPlanet()
	now := time.Now()

	// 360 degrees at 0.1 degrees per frame: one full revolution in 3600 frames
	for i := 0; i < 3600; i++ {
		p.Update(activeFrame(now))
	}

	angle := float64(p.OrbitAngle())
	// Accept wrap-around: 359.99... and 0.01 are both "back at the start"
	dist := math.Min(angle, 360-angle)
	if dist > 0.5 {
		t.Errorf("after 3600 frames orbitAngle = %f, want ~0 (mod 360)", angle)
	}

	pos := p.Position()
	if math.Abs(float64(pos.X())-20.0) > 0.2 || math.Abs(float64(pos.Z())) > 0.2 {
		t.Errorf("after full revolution position = (%f, %f), want ~(20, 0)", pos.X(), pos.Z())
	}
}

func TestPlanetIdleDecayReachesExactZero(t *testing.T) {
	p := newTestPlanet()
	now := time.Now()

	p.SetUserRotation(10.0, 0)

	prev := p.UserRotationX()
	frames := 0
	for p.UserRotationX() != 0 {
		p.Update(idleFrame(now))
		frames++

		cur := p.UserRotationX()
		if cur < 0 {
			t.Fatalf("tilt overshot past zero: %f", cur)
		}
		if cur >= prev {
			t.Fatalf("tilt did not decrease: %f -> %f", prev, cur)
		}
		prev = cur

		if frames > 100 {
			t.Fatal("tilt never reached zero")
		}
	}

	// 10.0 / 0.5 per frame
	if frames != 20 {
		t.Errorf("decay took %d frames, want 20", frames)
	}
}

func TestPlanetIdleDecaySnapsBelowStep(t *testing.T) {
	p := newTestPlanet()
	now := time.Now()

	// A value that never lands exactly on a step boundary must still snap
	// to zero instead of oscillating around it.
	p.SetUserRotation(-10.3, 0)

	for i := 0; i < 25; i++ {
		p.Update(idleFrame(now))
	}
	if p.UserRotationX() != 0 {
		t.Errorf("tilt = %f after decay, want exactly 0", p.UserRotationX())
	}
}

func TestPlanetNoDecayWhileActive(t *testing.T) {
	p := newTestPlanet()
	now := time.Now()

	p.SetUserRotation(10.0, 0)
	for i := 0; i < 50; i++ {
		p.Update(activeFrame(now))
	}
	if p.UserRotationX() != 10.0 {
		t.Errorf("tilt decayed during interaction: %f, want 10.0", p.UserRotationX())
	}
}

func TestPlanetSetUserRotationClampsTilt(t *testing.T) {
	p := newTestPlanet()

	p.SetUserRotation(100, 500)
	if p.UserRotationX() != config.MaxTiltDegrees {
		t.Errorf("tilt = %f, want %f", p.UserRotationX(), config.MaxTiltDegrees)
	}
	if p.UserRotationY() != 500 {
		t.Errorf("spin = %f, want 500 (unclamped)", p.UserRotationY())
	}

	p.SetUserRotation(-100, 0)
	if p.UserRotationX() != -config.MaxTiltDegrees {
		t.Errorf("tilt = %f, want %f", p.UserRotationX(), -config.MaxTiltDegrees)
	}
}

func TestPlanetZoomClamped(t *testing.T) {
	p := newTestPlanet()

	if p.Zoom() != config.DefaultZoom {
		t.Fatalf("initial zoom = %f, want %f", p.Zoom(), config.DefaultZoom)
	}

	p.AdjustZoom(-config.ZoomStep)
	if p.Zoom() != 4.5 {
		t.Errorf("zoom = %f after one notch in, want 4.5", p.Zoom())
	}

	p.AdjustZoom(-100)
	if p.Zoom() != config.MinZoom {
		t.Errorf("zoom = %f, want clamped to %f", p.Zoom(), config.MinZoom)
	}

	p.AdjustZoom(100)
	if p.Zoom() != config.MaxZoom {
		t.Errorf("zoom = %f, want clamped to %f", p.Zoom(), config.MaxZoom)
	}
}

func TestPlanetModelMatrixTranslation(t *testing.T) {
	p := newTestPlanet()
	now := time.Now()

	for i := 0; i < 100; i++ {
		p.Update(activeFrame(now))
	}

	m := p.ModelMatrix()
	pos := p.Position()
	// Column-major: elements 12..14 hold the translation
	if m[12] != pos.X() || m[13] != pos.Y() || m[14] != pos.Z() {
		t.Errorf("model translation (%f,%f,%f) does not match position %v",
			m[12], m[13], m[14], pos)
	}
}
