package game

import "time"

// Clock turns host timestamps into per-tick deltas in milliseconds
type Clock struct {
	last    float64
	lastAt  time.Time
	started bool
}

// Delta takes an animation-frame timestamp in milliseconds and returns the time since the previous one.
// The first call and any timestamp that goes backwards yield zero.
func (c *Clock) Delta(timestampMs float64) float64 {
	if !c.started {
		c.started = true
		c.last = timestampMs
		return 0
	}
	delta := timestampMs - c.last
	c.last = timestampMs
	if delta < 0 {
		return 0
	}
	return delta
}

// Since is Delta for wall-clock hosts
func (c *Clock) Since(now time.Time) float64 {
	if c.lastAt.IsZero() {
		c.lastAt = now
		return 0
	}
	delta := now.Sub(c.lastAt)
	c.lastAt = now
	if delta < 0 {
		return 0
	}
	return float64(delta) / float64(time.Millisecond)
}

// Reset forgets the previous timestamp
func (c *Clock) Reset() {
	*c = Clock{}
}
