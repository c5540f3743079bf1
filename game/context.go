package game

import (
	"math/rand"
)

// RandomSource supplies uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded math/rand source
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Context is the shared state entities read during an update.
// It is passed into every update call and never stored inside an entity.
type Context struct {
	Config *Config
	Rand   RandomSource

	// Speed is the current world scroll speed in pixels per frame
	Speed float64

	// State holds the counters entities may change (ammo)
	State *Scoreboard
}

// Steps converts a millisecond delta into reference frames
func (c *Context) Steps(deltaTime float64) float64 {
	return c.Config.Steps(deltaTime)
}

// between returns a uniform value in [lo, hi)
func (c *Context) between(lo, hi float64) float64 {
	return lo + c.Rand.Float64()*(hi-lo)
}

// intn returns a uniform integer in [0, n)
func (c *Context) intn(n int) int {
	if n <= 1 {
		return 0
	}
	v := int(c.Rand.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
