package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mechtide/game"
)

// host adapts the simulation to ebiten's Update/Draw/Layout loop
type host struct {
	game     *game.Game
	clock    game.Clock
	renderer *Renderer
	monitor  fpsMonitor
	profiler *Profiler // nil disables captures

	reported bool // Outcome of the current game has been logged
}

func newHost(g *game.Game, renderer *Renderer, profiler *Profiler) *host {
	return &host{
		game:     g,
		renderer: renderer,
		profiler: profiler,
	}
}

// Update advances the simulation by the wall time since the previous update
func (h *host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	deltaTime := h.clock.Since(time.Now())
	if h.monitor.observe(deltaTime) {
		h.captureProfile()
	}

	// Clamp delta time to prevent large jumps
	if deltaTime > maxFrameDeltaMs {
		deltaTime = maxFrameDeltaMs
	}

	h.handleHostKeys()
	readInput(h.game.Input())
	h.game.Tick(deltaTime)
	h.reportOutcome()
	return nil
}

// Draw renders the latest snapshot
func (h *host) Draw(screen *ebiten.Image) {
	h.renderer.Draw(screen, h.game.Snapshot())
}

// Layout keeps the logical screen at the field size and lets ebiten scale it
func (h *host) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := h.game.Config()
	return int(cfg.FieldWidth), int(cfg.FieldHeight)
}

func (h *host) captureProfile() {
	if h.profiler == nil {
		return
	}
	log.Printf("FPS drop detected (%.0f FPS), saving performance profile", h.monitor.fps)
	if err := h.profiler.Capture(loadOf(h.game, h.monitor.fps)); err != nil {
		log.Printf("Failed to capture profile: %v", err)
	}
}

func (h *host) restart() {
	h.game.Reset()
	h.clock.Reset()
	h.reported = false
	log.Printf("Game restarted")
}

func (h *host) reportOutcome() {
	if h.reported || !h.game.GameOver() {
		return
	}
	h.reported = true
	sb := h.game.Scoreboard()
	log.Printf("Game over: %s with score %d after %.1fs", h.game.Outcome(), sb.Score, sb.GameTime/1000)
}
