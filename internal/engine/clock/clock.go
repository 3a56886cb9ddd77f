// Package clock tracks animation time for the render loop.
package clock

import "time"

// Clock measures time since Start and between successive Delta calls.
// The zero value starts automatically on first use.
type Clock struct {
	now     func() time.Time
	start   time.Time
	last    time.Time
	running bool
}

// New creates a clock using the wall clock.
func New() *Clock {
	return &Clock{now: time.Now}
}

// NewWithTime creates a clock that reads time from now. Used in tests.
func NewWithTime(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Start resets the clock to zero.
func (c *Clock) Start() {
	if c.now == nil {
		c.now = time.Now
	}
	c.start = c.now()
	c.last = c.start
	c.running = true
}

// Elapsed returns time since Start.
func (c *Clock) Elapsed() time.Duration {
	if !c.running {
		c.Start()
	}
	return c.now().Sub(c.start)
}

// Delta returns time since the previous Delta call (or Start).
func (c *Clock) Delta() time.Duration {
	if !c.running {
		c.Start()
		return 0
	}
	t := c.now()
	d := t.Sub(c.last)
	c.last = t
	return d
}
