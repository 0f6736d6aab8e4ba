package core

import (
	"fmt"
	"time"
)

// TimeSource supplies wall-clock readings to the frame clock.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the real monotonic clock.
type SystemTime struct{}

// Now returns the current time.
func (SystemTime) Now() time.Time {
	return time.Now()
}

// TickFunc is invoked once per logical step. tick increases by one per call;
// multiplier is the ratio of elapsed time to the nominal interval (> 1.0).
type TickFunc func(tick uint64, multiplier float64)

// FrameClock turns irregular rendering opportunities into logical ticks.
//
// Each call to Frame is one opportunity. When more than one nominal interval
// has elapsed since the previous step the clock performs exactly one step and
// reports the overshoot as the multiplier; otherwise the opportunity is
// skipped. A late frame therefore yields a bigger multiplier instead of a
// burst of catch-up steps.
type FrameClock struct {
	src      TimeSource
	callback TickFunc
	active   bool
	rate     int
	interval time.Duration
	tick     uint64
	previous time.Time
}

// NewFrameClock creates a stopped clock reading time from src.
// A nil src uses the system clock.
func NewFrameClock(src TimeSource) *FrameClock {
	if src == nil {
		src = SystemTime{}
	}
	return &FrameClock{src: src}
}

// Start begins delivering ticks to cb at the given target rate (ticks per
// second). Calling Start on a running clock or with a nil callback does nothing.
func (c *FrameClock) Start(cb TickFunc, rate int) error {
	if rate <= 0 {
		return fmt.Errorf("core: frame rate must be positive, got %d", rate)
	}
	if cb == nil || c.active {
		return nil
	}

	c.active = true
	c.callback = cb
	c.rate = rate
	c.interval = time.Second / time.Duration(rate)
	c.tick = 0
	c.previous = c.src.Now()
	return nil
}

// Stop halts further callbacks. It is safe to call from inside the callback.
func (c *FrameClock) Stop() {
	c.active = false
}

// IsActive reports whether the clock is running.
func (c *FrameClock) IsActive() bool {
	return c.active
}

// Tick returns the number of logical steps since the last Start.
func (c *FrameClock) Tick() uint64 {
	return c.tick
}

// Rate returns the target rate passed to the last Start.
func (c *FrameClock) Rate() int {
	return c.rate
}

// Interval returns the nominal duration of one logical step.
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}

// Now reads the clock's time source.
func (c *FrameClock) Now() time.Time {
	return c.src.Now()
}

// Frame handles one rendering opportunity at time now and reports whether a
// logical step was taken.
func (c *FrameClock) Frame(now time.Time) bool {
	if !c.active {
		return false
	}

	elapsed := now.Sub(c.previous)
	if elapsed <= c.interval {
		return false
	}

	// Consume whole intervals only; the remainder counts toward the next step.
	c.previous = now.Add(-(elapsed % c.interval))
	c.tick++
	c.callback(c.tick, float64(elapsed)/float64(c.interval))
	return true
}
