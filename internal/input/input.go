package input

import (
	"time"

	"solar-scene/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// ControlTarget is what mouse input drives. The planet implements it; the
// indirection keeps this package free of scene types.
type ControlTarget interface {
	SetUserRotation(x, y float32)
	AdjustZoom(delta float32)
}

// State tracks the mouse interaction: whether a drag is in progress, the
// last cursor position, the accumulated rotation, and when the user last
// interacted (read by the planet's idle-decay step). Everything runs on
// the main thread inside PollEvents, so no locking is needed.
type State struct {
	target ControlTarget

	dragging bool
	lastX    float64
	lastY    float64

	rotationX float32
	rotationY float32

	lastInteraction time.Time
}

func NewState(target ControlTarget) *State {
	return &State{target: target}
}

// BeginDrag starts a drag at the given cursor position
func (s *State) BeginDrag(x, y float64) {
	s.dragging = true
	s.lastX = x
	s.lastY = y
}

// EndDrag stops the current drag. Accumulated rotation is kept.
func (s *State) EndDrag() {
	s.dragging = false
}

// Motion handles cursor movement. Outside a drag it does nothing. During a
// drag it accumulates the delta into the rotation (horizontal unclamped,
// vertical inverted and clamped to the tilt limit), pushes it to the
// target, and refreshes the idle timer. Any drag motion, however small,
// counts as interaction.
func (s *State) Motion(x, y float64) {
	if !s.dragging {
		return
	}

	dx := x - s.lastX
	dy := y - s.lastY

	s.rotationY += float32(dx) * config.DragSensitivity
	s.rotationX -= float32(dy) * config.DragSensitivity
	if s.rotationX > config.MaxTiltDegrees {
		s.rotationX = config.MaxTiltDegrees
	}
	if s.rotationX < -config.MaxTiltDegrees {
		s.rotationX = -config.MaxTiltDegrees
	}

	s.lastX = x
	s.lastY = y

	s.target.SetUserRotation(s.rotationX, s.rotationY)
	s.lastInteraction = time.Now()
}

// Scroll handles mouse wheel input: one notch up zooms in, one notch down
// zooms out. The target clamps the resulting distance.
func (s *State) Scroll(yoff float64) {
	if yoff > 0 {
		s.target.AdjustZoom(-config.ZoomStep)
	} else if yoff < 0 {
		s.target.AdjustZoom(config.ZoomStep)
	}
}

// Dragging reports whether a drag is in progress
func (s *State) Dragging() bool {
	return s.dragging
}

// RotationX returns the accumulated (clamped) vertical rotation
func (s *State) RotationX() float32 {
	return s.rotationX
}

// RotationY returns the accumulated horizontal rotation
func (s *State) RotationY() float32 {
	return s.rotationY
}

// LastInteraction returns when the user last dragged. The zero value means
// no interaction yet.
func (s *State) LastInteraction() time.Time {
	return s.lastInteraction
}

// Install wires the GLFW mouse callbacks to this state. Only the primary
// button drags; everything else falls through ignored.
func (s *State) Install(window *glfw.Window) {
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			x, y := w.GetCursorPos()
			s.BeginDrag(x, y)
		case glfw.Release:
			s.EndDrag()
		}
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		s.Motion(xpos, ypos)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		s.Scroll(yoff)
	})
}
