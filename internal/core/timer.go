package core

import "time"

// Cadence gates an action to run at most once per interval. Unlike a fixed
// step it does not accumulate debt: a late check fires once and restarts the
// interval from that moment.
type Cadence struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewCadence constructs a Cadence firing every interval. A nil clock uses
// time.Now.
func NewCadence(interval time.Duration, clock func() time.Time) *Cadence {
	if clock == nil {
		clock = time.Now
	}
	c := &Cadence{now: clock}
	c.SetInterval(interval)
	c.last = clock()
	return c
}

// SetInterval changes the minimum gap between firings. It is safe to call
// from the main loop.
func (c *Cadence) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	c.interval = interval
}

// Interval returns the minimum gap between firings.
func (c *Cadence) Interval() time.Duration { return c.interval }

// Ready reports whether at least one interval elapsed since the last firing.
// When it does, the interval restarts from now.
func (c *Cadence) Ready() bool {
	now := c.now()
	if now.Sub(c.last) < c.interval {
		return false
	}
	c.last = now
	return true
}
