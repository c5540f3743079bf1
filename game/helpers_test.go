package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays values in order and then repeats the last one
type scriptedRand struct {
	values []float64
	next   int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.values) == 0 {
		return 0.5
	}
	if s.next >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.next]
	s.next++
	return v
}

func constRand(v float64) *scriptedRand {
	return &scriptedRand{values: []float64{v}}
}

// frame is one reference frame in milliseconds
var frame = DefaultConfig().FrameDurationMs

func newTestGame(t *testing.T, rng RandomSource) *Game {
	t.Helper()
	if rng == nil {
		rng = constRand(0.5)
	}
	g, err := NewGame(DefaultConfig(), rng)
	require.NoError(t, err)
	return g
}

// placeEnemy puts an enemy of the given kind at an exact spot
func placeEnemy(g *Game, kind EnemyKind, x, y float64) *Enemy {
	cfg := GetEnemyTypeConfig(kind)
	e := &Enemy{
		Kind:   kind,
		Rect:   Rect{X: x, Y: y, Width: cfg.Width, Height: cfg.Height},
		SpeedX: -cfg.SpeedBase,
		Lives:  cfg.Lives,
		Score:  cfg.Score,
		anim:   animator{MaxFrame: enemyMaxFrame},
	}
	g.world.AddEnemy(e)
	return e
}

// aimAt adds a projectile that will still be inside the enemy after one frame of movement
func aimAt(g *Game, e *Enemy) *Projectile {
	p := NewProjectile(e.X+e.Width*0.5, e.Y+e.Height*0.5)
	g.player.Projectiles = append(g.player.Projectiles, p)
	return p
}
