// Package timing tracks frame pacing for the render loop: an FPS counter
// sampled once per second and a frame-rate cap expressed as a tick
// interval.
package timing

import "time"

const (
	// DefaultMaxFPS caps the frame rate when limiting is enabled.
	DefaultMaxFPS = 320.0
	// MinInterval is the tick floor when the limit is disabled. The
	// scheduler needs some interval; 1ms is effectively "as fast as the
	// terminal can go".
	MinInterval = time.Millisecond
	// sampleWindow is how often the FPS readout refreshes.
	sampleWindow = time.Second
)

// FrameTiming counts rendered frames and produces a smoothed FPS reading
// once per sample window.
type FrameTiming struct {
	maxFPS    float64
	limit     bool
	frames    int
	lastFPSAt time.Time
	now       func() time.Time // injectable clock for tests
}

// New creates a FrameTiming with the given cap. maxFPS values at or below
// zero fall back to the default.
func New(maxFPS float64, limit bool) *FrameTiming {
	if maxFPS <= 0 {
		maxFPS = DefaultMaxFPS
	}
	return &FrameTiming{
		maxFPS:    maxFPS,
		limit:     limit,
		lastFPSAt: time.Now(),
		now:       time.Now,
	}
}

// Frame records one rendered frame. When at least a full sample window has
// elapsed since the last reading it returns the measured FPS and true;
// otherwise it returns 0 and false.
func (t *FrameTiming) Frame() (float64, bool) {
	now := t.now()
	t.frames++

	elapsed := now.Sub(t.lastFPSAt)
	if elapsed < sampleWindow {
		return 0, false
	}

	fps := float64(t.frames) / elapsed.Seconds()
	t.frames = 0
	t.lastFPSAt = now
	return fps, true
}

// Interval returns the delay until the next frame tick should fire. With
// the limit enabled this is 1/maxFPS; otherwise the minimum interval.
func (t *FrameTiming) Interval() time.Duration {
	if !t.limit {
		return MinInterval
	}
	iv := time.Duration(float64(time.Second) / t.maxFPS)
	if iv < MinInterval {
		iv = MinInterval
	}
	return iv
}

// SetMaxFPS updates the cap, e.g. after a config reload.
func (t *FrameTiming) SetMaxFPS(maxFPS float64, limit bool) {
	if maxFPS <= 0 {
		maxFPS = DefaultMaxFPS
	}
	t.maxFPS = maxFPS
	t.limit = limit
}
