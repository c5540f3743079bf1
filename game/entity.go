package game

import "math"

// Rect is an axis-aligned bounding box in field coordinates
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width*0.5, r.Y + r.Height*0.5
}

// Bounded is anything with a collision box
type Bounded interface {
	Bounds() Rect
}

// SpriteID identifies an image the host resolves through its asset catalog.
// The core never loads or decodes images.
type SpriteID int

const (
	SpriteNone SpriteID = iota
	SpriteLayer1
	SpriteLayer2
	SpriteLayer3
	SpriteLayer4
	SpritePlayer
	SpriteProjectile
	SpriteAngler1
	SpriteAngler2
	SpriteLucky
	SpriteHiveWhale
	SpriteDrone
	SpriteGears
	SpriteSmokeExplosion
	SpriteFireExplosion
	SpriteCount // Total number of sprite identifiers
)

var spriteNames = [SpriteCount]string{
	SpriteNone:           "none",
	SpriteLayer1:         "layer1",
	SpriteLayer2:         "layer2",
	SpriteLayer3:         "layer3",
	SpriteLayer4:         "layer4",
	SpritePlayer:         "player",
	SpriteProjectile:     "projectile",
	SpriteAngler1:        "angler1",
	SpriteAngler2:        "angler2",
	SpriteLucky:          "lucky",
	SpriteHiveWhale:      "hiveWhale",
	SpriteDrone:          "drone",
	SpriteGears:          "gears",
	SpriteSmokeExplosion: "smokeExplosion",
	SpriteFireExplosion:  "fireExplosion",
}

// String returns the asset name of the sprite
func (s SpriteID) String() string {
	if s < 0 || s >= SpriteCount {
		return "unknown"
	}
	return spriteNames[s]
}

// animator advances a looping sprite frame at the reference frame rate
type animator struct {
	Frame    int
	MaxFrame int
	timer    float64
}

func (a *animator) advance(deltaTime, frameDuration float64) {
	a.timer += deltaTime
	if a.timer < frameDuration {
		return
	}
	if math.IsInf(a.timer, 0) {
		a.timer = 0
		return
	}
	// Reduce in float space, a huge timer would overflow an int step count
	frames := float64(a.MaxFrame + 1)
	steps := int(math.Mod(math.Floor(a.timer/frameDuration), frames))
	a.timer = math.Mod(a.timer, frameDuration)
	a.Frame = (a.Frame + steps) % (a.MaxFrame + 1)
}
