package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"mechtide/game"
	"mechtide/internal/settings"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// terminalHost runs the simulation in a terminal
type terminalHost struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *TerminalRenderer
	keys     keyAdapter
	clock    game.Clock
	reported bool
}

func newTerminalHost(screen tcell.Screen, g *game.Game) *terminalHost {
	return &terminalHost{
		screen:   screen,
		game:     g,
		renderer: NewTerminalRenderer(screen),
	}
}

// handleEvent applies one terminal event and reports whether to keep running
func (h *terminalHost) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch h.keys.handle(ev, h.game.Input(), now) {
		case actionQuit:
			return false
		case actionRestart:
			if h.game.GameOver() {
				h.game.Reset()
				h.clock.Reset()
				h.reported = false
			}
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// step advances the game by the wall time since the previous step and redraws
func (h *terminalHost) step(now time.Time) {
	h.keys.apply(h.game.Input(), now)
	h.game.Tick(h.clock.Since(now))
	h.renderer.Draw(h.game.Snapshot())

	if h.game.GameOver() && !h.reported {
		h.reported = true
		log.Printf("Game over: %s with score %d", h.game.Outcome(), h.game.Scoreboard().Score)
	}
}

func (h *terminalHost) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			h.step(now)
		}
	}
}

func main() {
	opts, err := settings.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	opts.RegisterFlags(flag.CommandLine)
	logFile := flag.String("log", "termtide.log", "file receiving log output while the screen is in use")
	flag.Parse()

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer f.Close()
	log.SetOutput(f)

	g, err := opts.NewGame()
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	log.Printf("Starting termtide (%s variant)", opts.Variant)
	h := newTerminalHost(screen, g)
	h.run()
	screen.Fini()

	sb := g.Scoreboard()
	fmt.Printf("Final score: %d (%s)\n", sb.Score, g.Outcome())
}
