package climb

import "time"

// Clock reports how much simulated time passes per tick.
// Status effect timers advance by this amount.
type Clock interface {
	// Elapsed returns the duration of the tick being simulated.
	Elapsed() time.Duration
	// Reset marks the start of a run.
	Reset()
}

// FixedClock advances by the same step every tick, so effect durations are
// measured in ticks and runs are reproducible.
type FixedClock struct {
	Step time.Duration
}

// Elapsed implements Clock.
func (c FixedClock) Elapsed() time.Duration {
	return c.Step
}

// Reset implements Clock.
func (FixedClock) Reset() {}

// WallClock measures real time between ticks. A single step is capped at
// max so that a stalled terminal does not expire effects all at once.
type WallClock struct {
	now  func() time.Time
	last time.Time
	max  time.Duration
}

// NewWallClock creates a clock driven by now. A nil now uses time.Now.
func NewWallClock(now func() time.Time, max time.Duration) *WallClock {
	if now == nil {
		now = time.Now
	}
	return &WallClock{now: now, last: now(), max: max}
}

// Elapsed implements Clock.
func (c *WallClock) Elapsed() time.Duration {
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	if c.max > 0 && d > c.max {
		return c.max
	}
	return d
}

// Reset implements Clock.
func (c *WallClock) Reset() {
	c.last = c.now()
}
