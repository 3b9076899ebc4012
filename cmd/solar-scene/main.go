package main

import (
	"runtime"

	"solar-scene/internal/config"
	"solar-scene/internal/game"
	"solar-scene/internal/graphics"
	"solar-scene/internal/input"
	"solar-scene/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

// Texture assets, loaded relative to the working directory. The sun reuses
// the planet map and both atmospheres share the cloud map; the texture
// cache makes the reuse free.
const (
	planetTexturePath     = "map2.png"
	atmosphereTexturePath = "clouds.png"
	moonTexturePath       = "moon.jpg"
	sunTexturePath        = "map2.png"
)

// Scene parameters
const (
	planetRadius           = 1.0
	planetAtmosphereRadius = 1.05
	planetOrbitRadius      = 20.0
	planetOrbitSpeed       = 0.1

	moonDistance = 5.0
	moonSize     = 0.27

	sunRadius = 10.0
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		closer.Fatalln("failed to initialize glfw:", err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		closer.Fatalln("failed to create window:", err)
	}
	closer.Bind(window.Destroy)

	renderer, err := graphics.NewRenderer()
	if err != nil {
		closer.Fatalln("failed to initialize renderer:", err)
	}
	closer.Bind(renderer.Release)

	textures := graphics.NewTextureManager()
	closer.Bind(textures.Release)

	planetTexture, err := textures.Load(planetTexturePath)
	if err != nil {
		closer.Fatalln("failed to load texture:", err)
	}
	planetAtmosphereTexture, err := textures.Load(atmosphereTexturePath)
	if err != nil {
		closer.Fatalln("failed to load texture:", err)
	}
	moonTexture, err := textures.Load(moonTexturePath)
	if err != nil {
		closer.Fatalln("failed to load texture:", err)
	}
	moonAtmosphereTexture, err := textures.Load(atmosphereTexturePath)
	if err != nil {
		closer.Fatalln("failed to load texture:", err)
	}
	sunTexture, err := textures.Load(sunTexturePath)
	if err != nil {
		closer.Fatalln("failed to load texture:", err)
	}

	moon := scene.NewMoon(moonDistance, moonSize, moonTexture, moonAtmosphereTexture)
	planet := scene.NewPlanet(planetRadius, planetAtmosphereRadius, planetTexture, planetAtmosphereTexture, moon, planetOrbitRadius, planetOrbitSpeed)
	sun := scene.NewSun(sunRadius, sunTexture)

	in := input.NewState(planet)
	in.Install(window)

	game.NewLoop(window, renderer, in, sun, planet).Run()

	closer.Close()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle, nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// VSync; the FPS limiter takes over if a cap is configured
	glfw.SwapInterval(1)

	return window, nil
}
