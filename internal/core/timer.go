package core

import "time"

// Clock measures wall-clock time between frames for front-ends that do not
// receive a frame delta from their toolkit.
type Clock struct {
	last time.Time
	max  time.Duration
	now  func() time.Time
}

// NewClock returns a Clock whose deltas are capped at max. A non-positive
// max disables the cap.
func NewClock(max time.Duration) *Clock {
	return &Clock{max: max, now: time.Now}
}

// Delta returns the time elapsed since the previous call. The first call
// returns zero.
func (c *Clock) Delta() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	if c.max > 0 && d > c.max {
		return c.max
	}
	return d
}
