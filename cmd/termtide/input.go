package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"mechtide/game"
)

// holdWindow is how long an arrow press counts as held. Terminals report
// no key release, so auto-repeat keeps re-arming it.
const holdWindow = 150 * time.Millisecond

// action is what a key event asks the host to do
type action int

const (
	actionNone action = iota
	actionQuit
	actionRestart
)

// keyAdapter turns terminal key events into the game's input state
type keyAdapter struct {
	upUntil   time.Time
	downUntil time.Time
}

// handle records one event and reports any host-level action
func (k *keyAdapter) handle(ev *tcell.EventKey, in *game.InputState, now time.Time) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		k.upUntil, k.downUntil = now.Add(holdWindow), time.Time{}
	case tcell.KeyDown:
		k.downUntil, k.upUntil = now.Add(holdWindow), time.Time{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			in.PressFire()
		case 'd', 'D':
			in.PressToggleDebug()
		case 'r', 'R':
			return actionRestart
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

// apply sets the held movement keys for the tick about to run
func (k *keyAdapter) apply(in *game.InputState, now time.Time) {
	in.MoveUp = now.Before(k.upUntil)
	in.MoveDown = now.Before(k.downUntil)
}
