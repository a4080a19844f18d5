// Package clock owns the frame delta: the normalized time-step scalar the
// integrator multiplies by. At the reference frame rate the delta is ≈1.0;
// slower frames yield proportionally larger deltas up to a cap, and frames
// arriving faster than the target interval are skipped.
package clock

import "time"

// FrameClock measures wall-clock time between frames and converts it to a
// normalized frame delta.
type FrameClock struct {
	referenceRate float32       // frames per second at which delta == 1.0
	minInterval   time.Duration // frames shorter than this are skipped
	maxDelta      float32       // cap on the normalized delta
	last          time.Time
	now           func() time.Time
}

// Option configures a FrameClock.
type Option func(*FrameClock)

// WithMaxDelta caps the normalized delta so a stalled frame (debugger,
// window drag) cannot explode the integration step.
func WithMaxDelta(max float32) Option {
	return func(c *FrameClock) { c.maxDelta = max }
}

// WithTargetRate skips frames that arrive faster than the given rate.
// Zero disables skipping.
func WithTargetRate(fps float32) Option {
	return func(c *FrameClock) {
		if fps > 0 {
			c.minInterval = time.Duration(float64(time.Second) / float64(fps))
		} else {
			c.minInterval = 0
		}
	}
}

// withNow overrides the time source for tests.
func withNow(now func() time.Time) Option {
	return func(c *FrameClock) { c.now = now }
}

// New creates a frame clock normalized to the given reference frame rate.
func New(referenceRate float32, opts ...Option) *FrameClock {
	c := &FrameClock{
		referenceRate: referenceRate,
		maxDelta:      4.0,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.last = c.now()
	return c
}

// Tick advances the clock and returns the normalized frame delta for this
// frame. The second result is false when the frame arrived faster than the
// target interval and the update should be skipped; the elapsed time then
// carries over into the next tick.
func (c *FrameClock) Tick() (float32, bool) {
	now := c.now()
	elapsed := now.Sub(c.last)
	if c.minInterval > 0 && elapsed < c.minInterval {
		return 0, false
	}
	c.last = now

	delta := float32(elapsed.Seconds()) * c.referenceRate
	if delta > c.maxDelta {
		delta = c.maxDelta
	}
	return delta, true
}

// Reset restarts the clock from now, discarding accumulated elapsed time.
// Call after a pause so the first resumed frame is not a huge step.
func (c *FrameClock) Reset() {
	c.last = c.now()
}
