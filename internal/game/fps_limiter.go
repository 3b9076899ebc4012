package game

import (
	"time"

	"solar-scene/internal/config"
)

// FPSLimiter provides high-precision frame rate limiting. With the limit
// at 0 it does nothing; vsync paces the loop instead.
type FPSLimiter struct {
	next time.Time
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame should start, using a hybrid sleep/spin
// approach for precision near the deadline.
func (f *FPSLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	// If we fell far behind, resync instead of sprinting to catch up
	if time.Until(f.next) < -target {
		f.next = time.Now().Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}
}
