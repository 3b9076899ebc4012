package input_test

import (
	"testing"

	"solar-scene/internal/config"
	"solar-scene/internal/input"
	"solar-scene/internal/scene"
)

// recordingTarget captures what the input state pushes at it
type recordingTarget struct {
	rotX, rotY float32
	zoomDeltas []float32
}

func (r *recordingTarget) SetUserRotation(x, y float32) {
	r.rotX = x
	r.rotY = y
}

func (r *recordingTarget) AdjustZoom(delta float32) {
	r.zoomDeltas = append(r.zoomDeltas, delta)
}

func TestDragAccumulation(t *testing.T) {
	target := &recordingTarget{}
	s := input.NewState(target)

	s.BeginDrag(100, 100)
	if !s.Dragging() {
		t.Fatal("expected dragging after BeginDrag")
	}

	// dx=+10, dy=-10: spin += 10*0.5, tilt -= -10*0.5
	s.Motion(110, 90)
	if s.RotationY() != 5.0 {
		t.Errorf("rotationY = %f, want 5.0", s.RotationY())
	}
	if s.RotationX() != 5.0 {
		t.Errorf("rotationX = %f, want 5.0", s.RotationX())
	}

	// Deltas are relative to the last position, not the drag anchor
	s.Motion(120, 90)
	if s.RotationY() != 10.0 {
		t.Errorf("rotationY = %f, want 10.0", s.RotationY())
	}
	if target.rotX != 10.0 || target.rotY != 10.0 {
		t.Errorf("target got (%f, %f), want (10, 10)", target.rotX, target.rotY)
	}

	s.EndDrag()
	if s.Dragging() {
		t.Error("expected drag ended")
	}
}

func TestTiltClampedEachStep(t *testing.T) {
	target := &recordingTarget{}
	s := input.NewState(target)

	s.BeginDrag(0, 1000)
	// Dragging up in big steps; tilt must never exceed the limit after any step
	for y := float64(900); y >= 0; y -= 100 {
		s.Motion(0, y)
		if s.RotationX() > config.MaxTiltDegrees {
			t.Fatalf("tilt %f exceeds limit after step at y=%f", s.RotationX(), y)
		}
	}
	if s.RotationX() != config.MaxTiltDegrees {
		t.Errorf("tilt = %f, want clamped at %f", s.RotationX(), config.MaxTiltDegrees)
	}
	if target.rotX != config.MaxTiltDegrees {
		t.Errorf("target tilt = %f, want %f", target.rotX, config.MaxTiltDegrees)
	}

	// Spin stays unclamped
	s.Motion(2000, 0)
	if s.RotationY() != 1000.0 {
		t.Errorf("rotationY = %f, want 1000 (unclamped)", s.RotationY())
	}
}

func TestMotionWithoutDragIgnored(t *testing.T) {
	target := &recordingTarget{}
	s := input.NewState(target)

	s.Motion(500, 500)
	if s.RotationX() != 0 || s.RotationY() != 0 {
		t.Errorf("rotation changed without drag: (%f, %f)", s.RotationX(), s.RotationY())
	}
	if !s.LastInteraction().IsZero() {
		t.Error("idle timer refreshed without drag")
	}
}

func TestLastInteractionRefreshedByDragMotion(t *testing.T) {
	target := &recordingTarget{}
	s := input.NewState(target)

	if !s.LastInteraction().IsZero() {
		t.Fatal("expected zero last-interaction before any drag")
	}

	s.BeginDrag(10, 10)
	s.Motion(11, 10) // the smallest of moves still counts
	if s.LastInteraction().IsZero() {
		t.Error("drag motion did not refresh the idle timer")
	}
}

func TestScrollDirections(t *testing.T) {
	target := &recordingTarget{}
	s := input.NewState(target)

	s.Scroll(1)  // wheel up: zoom in
	s.Scroll(-1) // wheel down: zoom out
	s.Scroll(0)  // no-op

	want := []float32{-config.ZoomStep, config.ZoomStep}
	if len(target.zoomDeltas) != len(want) {
		t.Fatalf("got %d zoom adjustments, want %d", len(target.zoomDeltas), len(want))
	}
	for i := range want {
		if target.zoomDeltas[i] != want[i] {
			t.Errorf("zoom adjustment %d = %f, want %f", i, target.zoomDeltas[i], want[i])
		}
	}
}

func TestWheelZoomClampScenario(t *testing.T) {
	// Drive a real planet: from the default 5.0, one notch in gives 4.5,
	// and ten notches bottom out at the minimum zoom.
	planet := scene.NewPlanet(1.0, 1.05, 0, 0, nil, 20.0, 0.1)
	s := input.NewState(planet)

	s.Scroll(1)
	if planet.Zoom() != 4.5 {
		t.Errorf("zoom = %f after one notch, want 4.5", planet.Zoom())
	}

	for i := 0; i < 9; i++ {
		s.Scroll(1)
	}
	if planet.Zoom() != config.MinZoom {
		t.Errorf("zoom = %f after ten notches, want %f", planet.Zoom(), config.MinZoom)
	}

	// And it cannot be scrolled below the floor
	s.Scroll(1)
	if planet.Zoom() != config.MinZoom {
		t.Errorf("zoom = %f, want still %f", planet.Zoom(), config.MinZoom)
	}
}
