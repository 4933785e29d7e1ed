package ui

import "time"

// Clock runs one-shot callbacks after a delay, advanced by the game
// loop's frame delta. It implements flow.Scheduler for the Ebiten host:
// instead of wall-clock timers, delays elapse in game time so they pause
// with the loop and stay deterministic in tests.
type Clock struct {
	pending []*oneShot
}

type oneShot struct {
	remaining float64
	fn        func()
}

// NewClock creates an empty clock.
func NewClock() *Clock {
	return &Clock{}
}

// After schedules fn to run once d from now in game time. There is no
// cancellation; the startup flow never needs one.
func (c *Clock) After(d time.Duration, fn func()) {
	c.pending = append(c.pending, &oneShot{
		remaining: d.Seconds(),
		fn:        fn,
	})
}

// Advance moves game time forward by dt seconds and fires every timer
// that has elapsed. Each timer fires exactly once. Callbacks run after
// the pending list is updated, so a callback may safely schedule new
// timers.
func (c *Clock) Advance(dt float64) {
	var due []func()
	kept := c.pending[:0]
	for _, t := range c.pending {
		t.remaining -= dt
		if t.remaining <= 0 {
			due = append(due, t.fn)
		} else {
			kept = append(kept, t)
		}
	}
	c.pending = kept

	for _, fn := range due {
		fn()
	}
}

// Pending returns the number of timers that have not fired yet.
func (c *Clock) Pending() int {
	return len(c.pending)
}
