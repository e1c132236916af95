package profiler

import "time"

// FrameCounter measures frame time and counts frames per whole second.
type FrameCounter struct {
	last   time.Time
	timer  float64
	frames int
	fps    int
}

// NewFrameCounter creates a counter whose first frame starts at start.
//
// Parameters:
//   - start: the time the first frame begins
//
// Returns:
//   - *FrameCounter: the new counter
func NewFrameCounter(start time.Time) *FrameCounter {
	return &FrameCounter{last: start}
}

// Tick records one frame ending at now.
//
// Parameters:
//   - now: the current time
//
// Returns:
//   - float32: seconds since the previous tick
//   - bool: true when a second has elapsed and FPS was refreshed
func (f *FrameCounter) Tick(now time.Time) (float32, bool) {
	dt := now.Sub(f.last).Seconds()
	if dt < 0 {
		dt = 0
	}
	f.last = now
	f.timer += dt
	f.frames++

	if f.timer < 1 {
		return float32(dt), false
	}
	f.fps = f.frames
	f.frames = 0
	f.timer -= 1
	// Long stalls would otherwise refresh on every following frame.
	if f.timer >= 1 {
		f.timer = 0
	}
	return float32(dt), true
}

// FPS returns the frame count of the last whole second.
func (f *FrameCounter) FPS() int {
	return f.fps
}
