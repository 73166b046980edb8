package sim

import "time"

// Clock throttles host frame signals down to a fixed simulation rate.
// The host calls OnFrame every native frame; the registered callback
// runs only when enough time has elapsed since the last accepted tick.
type Clock struct {
	// Now supplies the current time. Tests replace it.
	Now func() time.Time

	interval time.Duration
	last     time.Time
	running  bool
	tick     func()
}

// NewClock creates a clock targeting the given tick rate.
func NewClock(targetFPS int) *Clock {
	if targetFPS < 1 {
		targetFPS = 30
	}
	return &Clock{
		Now:      time.Now,
		interval: time.Second / time.Duration(targetFPS),
	}
}

// Start registers the tick callback and begins accepting frames.
// Restarting after Stop resumes from whatever state the callback's
// owner retained; the clock itself carries nothing across cycles.
func (c *Clock) Start(tick func()) {
	c.tick = tick
	c.running = true
	c.last = time.Time{}
}

// Stop halts ticking. Idempotent, and safe before any Start. No
// callback runs after Stop returns, including a frame already pending.
func (c *Clock) Stop() {
	c.running = false
	c.tick = nil
}

// Running reports whether the clock is accepting frames.
func (c *Clock) Running() bool {
	return c.running
}

// OnFrame is the host's per-frame pump. Returns true when a tick ran.
func (c *Clock) OnFrame() bool {
	if !c.running || c.tick == nil {
		return false
	}
	now := c.Now()
	if !c.last.IsZero() && now.Sub(c.last) < c.interval {
		return false
	}
	c.last = now
	c.tick()
	return true
}
