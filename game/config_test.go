package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigPresetsAreValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	require.NoError(t, SimplifiedConfig().Validate())

	simple := SimplifiedConfig()
	assert.Equal(t, 1500.0, simple.FieldWidth)
	assert.Equal(t, 500.0, simple.FieldHeight)
	assert.Equal(t, 50.0, simple.MaxAmmo)
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.FieldWidth = 0 }},
		{"negative height", func(c *Config) { c.FieldHeight = -500 }},
		{"zero frame duration", func(c *Config) { c.FrameDurationMs = 0 }},
		{"zero max ammo", func(c *Config) { c.MaxAmmo = 0 }},
		{"zero ammo interval", func(c *Config) { c.AmmoIntervalMs = 0 }},
		{"negative enemy interval", func(c *Config) { c.EnemyIntervalMs = -1 }},
		{"zero time limit", func(c *Config) { c.TimeLimitMs = 0 }},
		{"zero winning score", func(c *Config) { c.WinningScore = 0 }},
		{"start ammo above max", func(c *Config) { c.StartAmmo = c.MaxAmmo + 1 }},
		{"negative start ammo", func(c *Config) { c.StartAmmo = -1 }},
		{"negative scroll", func(c *Config) { c.ScrollSpeed = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			g, err := NewGame(cfg, constRand(0.5))
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewGameRequiresRandomSource(t *testing.T) {
	_, err := NewGame(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, nil)
	sb := g.Scoreboard()

	assert.Equal(t, 20.0, sb.Ammo)
	assert.Equal(t, 30.0, sb.MaxAmmo)
	assert.Equal(t, 0, sb.Score)
	assert.False(t, g.GameOver())
	assert.Equal(t, OutcomePlaying, g.Outcome())
	assert.Empty(t, g.World().Enemies)
	assert.Equal(t, Rect{X: 20, Y: 100, Width: 120, Height: 190}, g.Player().Rect)
}
