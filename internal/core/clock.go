package core

import "math/rand"

// Clock is the engine's source of time and randomness.
// Cooldowns and spawn intervals are timestamp comparisons against Now.
type Clock interface {
	// Now returns monotonic elapsed time in seconds.
	Now() float64
	// RandInt returns a uniform random integer in [lo, hi] (inclusive).
	RandInt(lo, hi int) int
}

// FrameClock derives time from the number of simulation ticks, so a run is
// reproducible from its seed and input sequence regardless of wall time.
type FrameClock struct {
	frames   uint64
	tickRate int
	rng      *rand.Rand
}

// NewFrameClock creates a clock advancing 1/tickRate seconds per tick.
func NewFrameClock(tickRate int, seed int64) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{
		tickRate: tickRate,
		rng:      rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
	}
}

// Advance moves the clock forward by one tick.
func (c *FrameClock) Advance() {
	c.frames++
}

// Frames returns the number of ticks elapsed.
func (c *FrameClock) Frames() uint64 {
	return c.frames
}

// Now returns elapsed time in seconds.
func (c *FrameClock) Now() float64 {
	return float64(c.frames) / float64(c.tickRate)
}

// RandInt returns a uniform random integer in [lo, hi].
func (c *FrameClock) RandInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + c.rng.Intn(hi-lo+1)
}
