package boy

import "time"

// Clock reports monotonic seconds from an arbitrary epoch.
type Clock interface {
	Now() float64
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// PausableClock is a monotonic clock that stands still while paused, so time
// spent paused never counts toward a state's timer.
type PausableClock struct {
	now      func() time.Time
	start    time.Time
	pausedAt time.Time
	paused   bool
	frozen   time.Duration
}

func NewPausableClock() *PausableClock {
	return newPausableClock(time.Now)
}

func newPausableClock(now func() time.Time) *PausableClock {
	return &PausableClock{now: now, start: now()}
}

func (c *PausableClock) Now() float64 {
	t := c.now()
	if c.paused {
		t = c.pausedAt
	}
	return (t.Sub(c.start) - c.frozen).Seconds()
}

// SetPaused stops or restarts the clock. Repeated calls with the same value
// are no-ops.
func (c *PausableClock) SetPaused(paused bool) {
	if paused == c.paused {
		return
	}
	if paused {
		c.pausedAt = c.now()
	} else {
		c.frozen += c.now().Sub(c.pausedAt)
	}
	c.paused = paused
}

func (c *PausableClock) Paused() bool { return c.paused }
