package input

import (
	"math"
	"sync/atomic"
	"time"
)

// Clock is the time source a controller stamps activations with. Now returns
// monotonic seconds since an arbitrary epoch.
type Clock interface {
	Now() float64
}

// FrameClock is a fixed-step clock advanced once per logic frame.
type FrameClock struct {
	bits atomic.Uint64
}

// NewFrameClock returns a clock reading start.
func NewFrameClock(start float64) *FrameClock {
	c := &FrameClock{}
	c.Set(start)
	return c
}

// Advance moves the clock forward by dt seconds and returns the new time.
// Negative steps are ignored.
func (c *FrameClock) Advance(dt float64) float64 {
	for {
		old := c.bits.Load()
		now := math.Float64frombits(old)
		if dt <= 0 {
			return now
		}
		next := now + dt
		if c.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Set jumps the clock to t.
func (c *FrameClock) Set(t float64) {
	c.bits.Store(math.Float64bits(t))
}

func (c *FrameClock) Now() float64 {
	return math.Float64frombits(c.bits.Load())
}

// SystemClock reads wall time relative to its creation.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
