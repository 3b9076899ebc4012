package game

import (
	"time"

	"solar-scene/internal/graphics"
	"solar-scene/internal/input"
	"solar-scene/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Loop runs the poll -> update -> render -> present cycle. It owns the
// top-level scene objects; the planet owns the moon.
type Loop struct {
	window   *glfw.Window
	renderer *graphics.Renderer
	input    *input.State

	sun    *scene.Sun
	planet *scene.Planet

	limiter *FPSLimiter
}

func NewLoop(window *glfw.Window, renderer *graphics.Renderer, in *input.State, sun *scene.Sun, planet *scene.Planet) *Loop {
	return &Loop{
		window:   window,
		renderer: renderer,
		input:    in,
		sun:      sun,
		planet:   planet,
		limiter:  NewFPSLimiter(),
	}
}

// Run drives the loop until the window is closed
func (l *Loop) Run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *Loop) tick() {
	glfw.PollEvents()

	f := scene.Frame{
		Now:             time.Now(),
		LastInteraction: l.input.LastInteraction(),
	}
	l.planet.Update(f)
	l.sun.Update(f)

	// The camera tracks the planet's current orbital position at the
	// current zoom distance; the light stays at the origin.
	l.renderer.BeginFrame(l.planet.Position(), l.planet.Zoom())

	world := mgl32.Ident4()
	l.sun.Render(l.renderer, world)
	l.planet.Render(l.renderer, world)

	l.window.SwapBuffers()
	l.limiter.Wait()
}
