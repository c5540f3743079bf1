package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickEnemyKindWeights(t *testing.T) {
	tests := []struct {
		r    float64
		want EnemyKind
	}{
		{0, EnemyAngler1},
		{0.29, EnemyAngler1},
		{0.3, EnemyAngler2},
		{0.59, EnemyAngler2},
		{0.6, EnemyHiveWhale},
		{0.69, EnemyHiveWhale},
		{0.7, EnemyLuckyFish},
		{0.999, EnemyLuckyFish},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PickEnemyKind(tt.r), "r=%v", tt.r)
	}

	for r := 0.0; r < 1; r += 0.001 {
		require.NotEqual(t, EnemyDrone, PickEnemyKind(r), "drones only come from hive whales")
	}
}

func TestEnemyTypeTable(t *testing.T) {
	whale := GetEnemyTypeConfig(EnemyHiveWhale)
	assert.Equal(t, 15, whale.Lives)
	assert.Equal(t, 400.0, whale.Width)

	lucky := GetEnemyTypeConfig(EnemyLuckyFish)
	assert.Equal(t, 3, lucky.Lives)
	assert.Equal(t, 15, lucky.Score)

	for k := EnemyKind(0); k < EnemyKindCount; k++ {
		cfg := GetEnemyTypeConfig(k)
		assert.Equal(t, k, cfg.Kind)
		assert.Positive(t, cfg.Lives, k.String())
		assert.Positive(t, cfg.Rows, k.String())
	}
}

func TestNewEnemySpawnPosition(t *testing.T) {
	cfg := DefaultConfig()
	for _, r := range []float64{0, 0.5, 0.999} {
		ctx := &Context{Config: &cfg, Rand: constRand(r), Speed: 1}
		for k := EnemyAngler1; k <= EnemyHiveWhale; k++ {
			e := NewEnemy(ctx, k)
			assert.Equal(t, cfg.FieldWidth, e.X)
			assert.GreaterOrEqual(t, e.Y, 0.0)
			assert.LessOrEqual(t, e.Y+e.Height, cfg.FieldHeight*0.95, "%s must clear the bottom edge", k)
			assert.Less(t, e.SpeedX, 0.0)
			assert.Less(t, e.FrameY, GetEnemyTypeConfig(k).Rows)
		}
	}
}

func TestEnemyUpdateScrollsAndExpires(t *testing.T) {
	cfg := DefaultConfig()
	ctx := &Context{Config: &cfg, Rand: constRand(0), Speed: 1}
	e := NewDrone(ctx, 10, 100)
	assert.Equal(t, -0.5, e.SpeedX)

	e.Update(ctx, frame)
	assert.InDelta(t, 10-1.5, e.X, 1e-9)
	assert.False(t, e.Removable)

	e.Update(ctx, frame*200)
	assert.True(t, e.OffScreen())
	assert.True(t, e.Removable)
}

func TestEnemyUpdateZeroDelta(t *testing.T) {
	cfg := DefaultConfig()
	ctx := &Context{Config: &cfg, Rand: constRand(0.3), Speed: 1}
	e := NewEnemy(ctx, EnemyAngler2)
	before := *e

	e.Update(ctx, 0)
	assert.Equal(t, before, *e)
}
