package core

import "time"

// FrameClock measures per-frame delta time and paces a hand-driven loop.
// Deltas are capped at one frame so a hitch never produces a large
// integration step.
type FrameClock struct {
	frame time.Duration
	last  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock constructs a FrameClock targeting the given TPS.
func NewFrameClock(tps int) *FrameClock {
	c := &FrameClock{now: time.Now, sleep: time.Sleep}
	c.SetTPS(tps)
	return c
}

// SetTPS changes the target rate and therefore the delta cap.
func (c *FrameClock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	c.frame = time.Second / time.Duration(tps)
}

// MaxDelta returns the largest delta, in seconds, Delta will report.
func (c *FrameClock) MaxDelta() float64 { return c.frame.Seconds() }

// Delta returns the seconds elapsed since the previous call, clamped to
// [0, MaxDelta]. The first call reports zero.
func (c *FrameClock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		d = 0
	}
	if d > c.frame {
		d = c.frame
	}
	return d.Seconds()
}

// Wait sleeps for one frame.
func (c *FrameClock) Wait() {
	c.sleep(c.frame)
}
