package game

import "math"

// DrawLayer groups draw items in painting order
type DrawLayer int

const (
	LayerBackground DrawLayer = iota
	LayerPlayer
	LayerProjectile
	LayerEnemy
	LayerExplosion
	LayerParticle
	LayerForeground
)

// DrawItem carries everything a renderer needs to paint one sprite.
// For particles X and Y are the centre and Angle the rotation; everything else is top-left.
type DrawItem struct {
	Layer  DrawLayer
	Sprite SpriteID
	X, Y   float64
	Width  float64
	Height float64
	FrameX int
	FrameY int
	Angle  float64

	// Wrap asks for a second copy one tile width to the right
	Wrap bool

	// Lives is shown next to enemies in debug mode, -1 otherwise
	Lives int
}

// HUD is the text and ammo state shown over the playfield
type HUD struct {
	Score         int
	Ammo          int
	PowerUp       bool
	RemainingSecs int
	GameOver      bool
	Outcome       Outcome
	Debug         bool
}

// Message returns the headline and subtitle for the end screen
func (h HUD) Message() (string, string) {
	switch h.Outcome {
	case OutcomeWon:
		return "You Win!", "Well Done"
	case OutcomeLost:
		return "You lose!", "Try again"
	default:
		return "", ""
	}
}

// Snapshot is a read-only copy of everything visible after a tick
type Snapshot struct {
	FieldWidth  float64
	FieldHeight float64
	Items       []DrawItem
	Player      Rect
	HUD         HUD
}

// Snapshot copies the visible state in drawing order: background layers, player and its
// projectiles, enemies, explosions, particles, then the foreground layer.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	items := make([]DrawItem, 0, 8+len(g.player.Projectiles)+len(w.Enemies)+len(w.Explosions)+len(w.Particles))

	for _, layer := range g.background.Layers {
		items = append(items, layerItem(LayerBackground, layer))
	}

	items = append(items, DrawItem{
		Layer:  LayerPlayer,
		Sprite: SpritePlayer,
		X:      g.player.X,
		Y:      g.player.Y,
		Width:  g.player.Width,
		Height: g.player.Height,
		FrameX: g.player.Frame(),
		FrameY: g.player.FrameRow(),
		Lives:  -1,
	})
	for _, p := range g.player.Projectiles {
		items = append(items, DrawItem{
			Layer:  LayerProjectile,
			Sprite: SpriteProjectile,
			X:      p.X,
			Y:      p.Y,
			Width:  p.Width,
			Height: p.Height,
			Lives:  -1,
		})
	}

	for _, e := range w.Enemies {
		lives := -1
		if g.debug {
			lives = e.Lives
		}
		items = append(items, DrawItem{
			Layer:  LayerEnemy,
			Sprite: GetEnemyTypeConfig(e.Kind).Sprite,
			X:      e.X,
			Y:      e.Y,
			Width:  e.Width,
			Height: e.Height,
			FrameX: e.Frame(),
			FrameY: e.FrameY,
			Lives:  lives,
		})
	}

	for _, e := range w.Explosions {
		items = append(items, DrawItem{
			Layer:  LayerExplosion,
			Sprite: e.Kind.Sprite(),
			X:      e.X,
			Y:      e.Y,
			Width:  e.Width,
			Height: e.Height,
			FrameX: e.FrameX,
			Lives:  -1,
		})
	}

	for _, p := range w.Particles {
		items = append(items, DrawItem{
			Layer:  LayerParticle,
			Sprite: SpriteGears,
			X:      p.X,
			Y:      p.Y,
			Width:  p.Size,
			Height: p.Size,
			FrameX: p.FrameX,
			FrameY: p.FrameY,
			Angle:  p.Angle,
			Lives:  -1,
		})
	}

	items = append(items, layerItem(LayerForeground, g.background.Foreground))

	sb := g.scoreboard
	return Snapshot{
		FieldWidth:  g.config.FieldWidth,
		FieldHeight: g.config.FieldHeight,
		Items:       items,
		Player:      g.player.Rect,
		HUD: HUD{
			Score:         sb.Score,
			Ammo:          sb.Rounds(),
			PowerUp:       g.player.PowerUp,
			RemainingSecs: int(math.Round(sb.RemainingMs() / 1000)),
			GameOver:      sb.GameOver,
			Outcome:       sb.Outcome(),
			Debug:         g.debug,
		},
	}
}

func layerItem(drawLayer DrawLayer, l *Layer) DrawItem {
	return DrawItem{
		Layer:  drawLayer,
		Sprite: l.Sprite,
		X:      l.X,
		Y:      l.Y,
		Width:  l.Width,
		Height: l.Height,
		Wrap:   true,
		Lives:  -1,
	}
}
