package main

import (
	"image/color"

	"golang.org/x/image/colornames"

	"mechtide/game"
)

// Host timing constants
const (
	maxFrameDeltaMs  = 100.0 // Longer pauses are replayed as a single 100 ms step
	fpsSampleSeconds = 0.5
	fpsDropThreshold = 45.0
	fpsWarmupSeconds = 3.0
	debugStrokeWidth = 1.0
	windowTitle      = "Mechtide"
	envFile          = ".env"
)

// HUD layout constants
const (
	hudMarginX      = 20.0
	hudScoreY       = 20.0
	hudAmmoY        = 50.0
	hudAmmoStep     = 5.0
	hudAmmoWidth    = 3.0
	hudAmmoHeight   = 20.0
	hudTimerY       = 80.0
	hudTextScale    = 2.0
	hudHeadlineSize = 5.0
	hudShadowOffset = 2.0
	hudMessageGap   = 20.0
)

// Color constants
var (
	colorBackground  = color.NRGBA{R: 4, G: 38, B: 64, A: 255}
	colorText        = colornames.White
	colorTextShadow  = colornames.Black
	colorAmmo        = colornames.White
	colorAmmoPowered = color.NRGBA{R: 255, G: 255, B: 189, A: 255}
	colorDebugBox    = colornames.White
)

// spriteFallbackColors paints sprites whose image could not be resolved.
// Background layers have no fallback and are skipped.
var spriteFallbackColors = [game.SpriteCount]color.Color{
	game.SpritePlayer:         colornames.Steelblue,
	game.SpriteProjectile:     colornames.Yellow,
	game.SpriteAngler1:        colornames.Seagreen,
	game.SpriteAngler2:        colornames.Mediumseagreen,
	game.SpriteLucky:          colornames.Gold,
	game.SpriteHiveWhale:      colornames.Slategray,
	game.SpriteDrone:          colornames.Indianred,
	game.SpriteGears:          colornames.Darkgoldenrod,
	game.SpriteSmokeExplosion: colornames.Lightgray,
	game.SpriteFireExplosion:  colornames.Orangered,
}

func fallbackColor(sprite game.SpriteID) color.Color {
	if sprite < 0 || sprite >= game.SpriteCount {
		return nil
	}
	return spriteFallbackColors[sprite]
}
