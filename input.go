package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mechtide/game"
)

// readInput copies the keyboard into the game's input state.
// Arrow keys are held, space and D count once per press.
func readInput(in *game.InputState) {
	in.MoveUp = ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	in.MoveDown = ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.PressFire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		in.PressToggleDebug()
	}
}

// handleHostKeys processes keys the simulation never sees: restart and fullscreen toggle
func (h *host) handleHostKeys() {
	// R restarts only once the game is over
	if h.game.GameOver() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.restart()
	}

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		log.Printf("Fullscreen: %t", fullscreen)
	}
}
