package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 5, 5}, true},
		{"touching right edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"touching bottom edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"apart horizontally", Rect{0, 0, 10, 10}, Rect{30, 0, 10, 10}, false},
		{"apart vertically", Rect{0, 0, 10, 10}, Rect{0, -30, 10, 10}, false},
		{"thin projectile through box", Rect{50, 50, 10, 3}, Rect{0, 0, 213, 169}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collides(tt.a, tt.b))
		})
	}
}

func TestCollidesIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randomRect := func() Rect {
		return Rect{
			X:      rng.Float64()*200 - 100,
			Y:      rng.Float64()*200 - 100,
			Width:  rng.Float64() * 80,
			Height: rng.Float64() * 80,
		}
	}

	hits := 0
	for i := 0; i < 5000; i++ {
		a, b := randomRect(), randomRect()
		ab := Collides(a, b)
		assert.Equal(t, ab, Collides(b, a), "a=%+v b=%+v", a, b)
		if ab {
			hits++
		}
	}
	assert.Greater(t, hits, 0, "sample should contain overlapping pairs")
}
