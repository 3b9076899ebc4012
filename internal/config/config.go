package config

import (
	"sync"
	"time"
)

// Window and projection parameters
const (
	ScreenWidth  = 1915
	ScreenHeight = 1030
	WindowTitle  = "3D Planet and Moon with Atmospheres"

	FOV       float32 = 45.0
	NearPlane float32 = 1.0
	FarPlane  float32 = 1000.0
)

// Camera zoom limits (distance from the planet)
const (
	MinZoom     float32 = 2.1
	MaxZoom     float32 = 20.0
	DefaultZoom float32 = 5.0
	ZoomStep    float32 = 0.5
)

// Mouse interaction
const (
	// Delay before user rotation starts returning to rest
	IdleReturnDelay = 2000 * time.Millisecond

	// Degrees removed from the user tilt per frame once idle
	RotationDecayStep float32 = 0.5

	// Degrees of rotation per pixel of drag
	DragSensitivity float32 = 0.5

	// Tilt is clamped to +/- this to prevent the view flipping over
	MaxTiltDegrees float32 = 40.0
)

// FrameSettings holds runtime frame pacing configuration
type FrameSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 means uncapped; vsync paces the loop
}

var globalFrameSettings = &FrameSettings{
	fpsLimit: 0,
}

// GetFPSLimit returns the current frame rate cap (0 = uncapped)
func GetFPSLimit() int {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap. Values are clamped to [0, 240].
func SetFPSLimit(limit int) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 240 {
		limit = 240
	}

	globalFrameSettings.fpsLimit = limit
}
