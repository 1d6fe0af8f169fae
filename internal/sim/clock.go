package sim

import "time"

// DefaultMaxDelta caps one tick at 50 ms.
const DefaultMaxDelta = 50 * time.Millisecond

// Clock measures wall time between ticks and caps it, so a slow frame
// produces one long-but-bounded tick instead of a burst of catch-up ticks.
type Clock struct {
	MaxDelta time.Duration

	now  func() time.Time
	last time.Time
}

// NewClock creates a clock capping deltas at maxDelta (DefaultMaxDelta if <= 0).
func NewClock(maxDelta time.Duration) *Clock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Clock{MaxDelta: maxDelta, now: time.Now}
}

// Tick returns the seconds elapsed since the previous call, capped at MaxDelta.
// The first call returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	c.last = t
	return c.Cap(d)
}

// Cap converts d to seconds, clamped to [0, MaxDelta].
func (c *Clock) Cap(d time.Duration) float64 {
	if d < 0 {
		d = 0
	}
	if c.MaxDelta > 0 && d > c.MaxDelta {
		d = c.MaxDelta
	}
	return d.Seconds()
}

// Reset forgets the previous tick so the next Tick returns 0.
// Front ends call it after a pause.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
