package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mechtide/game"
)

func newSeededGame(t *testing.T, seed int64) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.DefaultConfig(), game.NewRandomSource(seed))
	require.NoError(t, err)
	return g
}

func TestPlayRunsToCompletion(t *testing.T) {
	g := newSeededGame(t, 3)

	r := play(g, &autopilot{fireEvery: 10}, &game.Clock{}, fixedFrames(1000.0/60.0), 1_000_000)

	require.True(t, g.GameOver())
	assert.NotEqual(t, game.OutcomePlaying, r.Outcome)
	assert.Positive(t, r.Stats.ShotsFired)
	assert.Equal(t, r.Ticks, r.Stats.Ticks)
	if r.Outcome == game.OutcomeLost {
		assert.GreaterOrEqual(t, r.GameTime, 60000.0)
	} else {
		assert.GreaterOrEqual(t, r.Score, 300)
	}
	assert.Contains(t, r.String(), r.Outcome.String())
}

func TestPlayIsDeterministic(t *testing.T) {
	run := func() result {
		g := newSeededGame(t, 11)
		rng := game.NewRandomSource(5)
		return play(g, &autopilot{fireEvery: 7}, &game.Clock{}, jitteredFrames(rng, 40), 1_000_000)
	}
	assert.Equal(t, run(), run())
}

func TestPlayStopsAtMaxTicks(t *testing.T) {
	g := newSeededGame(t, 1)

	r := play(g, &autopilot{}, &game.Clock{}, fixedFrames(1), 100)
	assert.Equal(t, 100, r.Ticks)
	assert.False(t, g.GameOver())
	assert.Equal(t, game.OutcomePlaying, r.Outcome)
	assert.Zero(t, r.Stats.ShotsFired, "a zero cadence never fires")
}

func TestPlayResetsClockBetweenGames(t *testing.T) {
	var clock game.Clock
	next := fixedFrames(20)

	g := newSeededGame(t, 2)
	play(g, &autopilot{}, &clock, next, 10)
	assert.InDelta(t, 9*20.0, g.Scoreboard().GameTime, 1e-9, "the first tick only starts the clock")

	// The timeline keeps running, the new game still starts from zero
	g.Reset()
	play(g, &autopilot{}, &clock, next, 10)
	assert.InDelta(t, 9*20.0, g.Scoreboard().GameTime, 1e-9)
}

func TestTimelinesAdvance(t *testing.T) {
	next := fixedFrames(16)
	assert.Equal(t, 16.0, next())
	assert.Equal(t, 32.0, next())

	jittered := jitteredFrames(game.NewRandomSource(4), 40)
	prev := jittered()
	for i := 0; i < 50; i++ {
		now := jittered()
		assert.GreaterOrEqual(t, now, prev)
		assert.LessOrEqual(t, now-prev, 40.0)
		prev = now
	}
}

func TestAutopilotSteersTowardsTarget(t *testing.T) {
	g := newSeededGame(t, 1)
	pilot := &autopilot{fireEvery: 1}

	pilot.steer(g)
	assert.False(t, g.Input().MoveUp)
	assert.False(t, g.Input().MoveDown)

	// Wait for the first scheduled spawn
	for len(g.World().Enemies) == 0 {
		g.Tick(100)
	}
	target := g.World().Enemies[0]
	_, ty := target.Center()
	_, py := g.Player().Center()

	pilot.steer(g)
	if ty > py+aimDeadZone {
		assert.True(t, g.Input().MoveDown)
	} else if ty < py-aimDeadZone {
		assert.True(t, g.Input().MoveUp)
	}
	assert.Same(t, target, nearestEnemyAhead(g))
}
