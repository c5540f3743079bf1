package game

import "math"

const (
	layerWidth  = 1768.0
	layerHeight = 500.0
)

// Layer is a horizontally wrapping background tile
type Layer struct {
	Sprite        SpriteID
	X, Y          float64
	Width, Height float64
	SpeedModifier float64
}

func newLayer(sprite SpriteID, speedModifier float64) *Layer {
	return &Layer{
		Sprite:        sprite,
		Width:         layerWidth,
		Height:        layerHeight,
		SpeedModifier: speedModifier,
	}
}

// Update scrolls the layer and wraps it once a full tile has passed
func (l *Layer) Update(ctx *Context, deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	l.X -= ctx.Speed * l.SpeedModifier * ctx.Steps(deltaTime)
	if l.X <= -l.Width {
		l.X = math.Mod(l.X, l.Width)
	}
}

// Background holds the parallax layers behind the action and the one in front of it
type Background struct {
	Layers     []*Layer
	Foreground *Layer
}

// NewBackground creates the four parallax layers
func NewBackground() *Background {
	return &Background{
		Layers: []*Layer{
			newLayer(SpriteLayer1, 0.2),
			newLayer(SpriteLayer2, 0.4),
			newLayer(SpriteLayer3, 1),
		},
		Foreground: newLayer(SpriteLayer4, 1.5),
	}
}

// Update scrolls every layer
func (b *Background) Update(ctx *Context, deltaTime float64) {
	for _, layer := range b.Layers {
		layer.Update(ctx, deltaTime)
	}
	b.Foreground.Update(ctx, deltaTime)
}
