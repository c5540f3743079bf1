package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotDrawOrder(t *testing.T) {
	g := newTestGame(t, nil)
	target := placeEnemy(g, EnemyAngler1, 600, 250)
	target.Lives = 1
	aimAt(g, target)
	placeEnemy(g, EnemyLuckyFish, 900, 50)
	g.Input().PressFire()
	g.Tick(frame)

	snap := g.Snapshot()
	items := snap.Items
	require.NotEmpty(t, items)

	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Layer, items[i].Layer, "item %d out of order", i)
	}

	counts := map[DrawLayer]int{}
	for _, item := range items {
		counts[item.Layer]++
	}
	assert.Equal(t, 3, counts[LayerBackground])
	assert.Equal(t, 1, counts[LayerPlayer])
	assert.Equal(t, 1, counts[LayerEnemy])
	assert.Equal(t, 1, counts[LayerExplosion])
	assert.Equal(t, 2, counts[LayerParticle])
	assert.Equal(t, 1, counts[LayerForeground])

	last := items[len(items)-1]
	assert.Equal(t, SpriteLayer4, last.Sprite)
	assert.True(t, last.Wrap)

	assert.Equal(t, g.Player().Rect, snap.Player)
	assert.Equal(t, 1200.0, snap.FieldWidth)
}

func TestSnapshotHUD(t *testing.T) {
	g := newTestGame(t, nil)
	g.Scoreboard().Ammo = 7.6
	g.Tick(1500)

	hud := g.Snapshot().HUD
	assert.Equal(t, 7, hud.Ammo)
	assert.Equal(t, 59, hud.RemainingSecs)
	assert.False(t, hud.GameOver)
	assert.Equal(t, OutcomePlaying, hud.Outcome)

	headline, sub := hud.Message()
	assert.Empty(t, headline)
	assert.Empty(t, sub)

	won := HUD{GameOver: true, Outcome: OutcomeWon}
	headline, sub = won.Message()
	assert.Equal(t, "You Win!", headline)
	assert.Equal(t, "Well Done", sub)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, nil)
	placeEnemy(g, EnemyAngler2, 600, 100)
	snap := g.Snapshot()

	for i := range snap.Items {
		snap.Items[i].X = -1
	}
	assert.Equal(t, 600.0, g.World().Enemies[0].X)
}

func TestCompactKeepsOrder(t *testing.T) {
	a, b, c, d := &Enemy{Lives: 1}, &Enemy{Removable: true}, &Enemy{Lives: 3}, &Enemy{Removable: true}
	items := []*Enemy{a, b, c, d}

	kept := compact(items, func(e *Enemy) bool { return e.Removable })
	assert.Equal(t, []*Enemy{a, c}, kept)
	assert.Nil(t, items[2])
	assert.Nil(t, items[3])
}
