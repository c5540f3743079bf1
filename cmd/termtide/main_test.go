package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mechtide/game"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(game.DefaultConfig(), game.NewRandomSource(1))
	require.NoError(t, err)
	return g
}

func rowText(screen tcell.Screen, row, cols int) string {
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		mainc, _, _, _ := screen.GetContent(x, row)
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func TestRendererDrawsPlayerAndHUD(t *testing.T) {
	screen := newSimScreen(t, 120, 51)
	g := newTestGame(t)

	NewTerminalRenderer(screen).Draw(g.Snapshot())

	// Player box (20,100)-(140,290) on a 10px per cell grid
	mainc, _, _, _ := screen.GetContent(5, 15)
	assert.Equal(t, '#', mainc)
	mainc, _, _, _ = screen.GetContent(60, 15)
	assert.Equal(t, ' ', mainc)

	hud := rowText(screen, 50, 120)
	assert.Contains(t, hud, "Score: 0")
	assert.Contains(t, hud, "Ammo: "+strings.Repeat("|", 20))
	assert.Contains(t, hud, "Time remaining: 60s")
}

func TestRendererShowsEndMessage(t *testing.T) {
	screen := newSimScreen(t, 120, 51)
	g := newTestGame(t)
	g.Tick(60001)

	NewTerminalRenderer(screen).Draw(g.Snapshot())

	assert.Contains(t, rowText(screen, 25, 120), "You lose! Try again")
}

func TestRendererSkipsTinyScreens(t *testing.T) {
	screen := newSimScreen(t, 10, 1)
	g := newTestGame(t)

	assert.NotPanics(t, func() { NewTerminalRenderer(screen).Draw(g.Snapshot()) })
}

func TestKeyAdapterHoldWindow(t *testing.T) {
	var keys keyAdapter
	in := &game.InputState{}
	now := time.Unix(100, 0)

	keys.handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), in, now)
	keys.apply(in, now.Add(50*time.Millisecond))
	assert.True(t, in.MoveUp)
	assert.False(t, in.MoveDown)

	keys.apply(in, now.Add(holdWindow))
	assert.False(t, in.MoveUp, "the hold expires without a repeat")

	keys.handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), in, now)
	keys.handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), in, now)
	keys.apply(in, now)
	assert.False(t, in.MoveUp, "the opposite key cancels the hold")
	assert.True(t, in.MoveDown)
}

func TestKeyAdapterActions(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want action
	}{
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actionQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), actionQuit},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), actionQuit},
		{"r restarts", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), actionRestart},
		{"space fires", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), actionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var keys keyAdapter
			assert.Equal(t, tt.want, keys.handle(tt.ev, &game.InputState{}, time.Now()))
		})
	}
}

func TestTerminalHostFiresAndRestarts(t *testing.T) {
	screen := newSimScreen(t, 120, 51)
	g := newTestGame(t)
	h := newTerminalHost(screen, g)
	now := time.Unix(100, 0)

	assert.True(t, h.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), now))
	h.step(now)
	assert.Len(t, g.Player().Projectiles, 1)

	// Restart is ignored while playing
	h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), now)
	assert.Len(t, g.Player().Projectiles, 1)

	g.Tick(60001)
	h.step(now.Add(16 * time.Millisecond))
	require.True(t, h.reported)

	h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), now)
	assert.False(t, g.GameOver())
	assert.Empty(t, g.Player().Projectiles)
	assert.False(t, h.reported)

	assert.False(t, h.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now))
}
