package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"mechtide/internal/settings"
)

func main() {
	opts, err := settings.Load(envFile)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	opts.RegisterFlags(flag.CommandLine)
	profileDir := flag.String("profile", "", "capture CPU profiles into this directory when the frame rate drops")
	flag.Parse()

	g, err := opts.NewGame()
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	config := g.Config()

	var profiler *Profiler
	if *profileDir != "" {
		profiler, err = NewProfiler(*profileDir)
		if err != nil {
			log.Fatalf("Failed to create profiler: %v", err)
		}
	}

	catalog := NewSpriteCatalog(opts.AssetDir)
	found, total := catalog.Preload()
	log.Printf("Starting %s (%s variant, %d/%d sprites resolved)", windowTitle, opts.Variant, found, total)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizable(true)

	h := newHost(g, NewRenderer(catalog, NewHUD()), profiler)
	if err := ebiten.RunGame(h); err != nil {
		log.Fatal(err)
	}
}
