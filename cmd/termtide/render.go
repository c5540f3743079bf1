package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"mechtide/game"
)

// glyph is how one sprite looks in the terminal
type glyph struct {
	r     rune
	style tcell.Style
}

var (
	styleSea      = tcell.StyleDefault.Background(tcell.NewRGBColor(4, 38, 64))
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleHeadline = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)
)

var glyphs = map[game.SpriteID]glyph{
	game.SpriteLayer4:         {'~', styleSea.Foreground(tcell.ColorDarkCyan)},
	game.SpritePlayer:         {'#', styleSea.Foreground(tcell.ColorSteelBlue)},
	game.SpriteProjectile:     {'-', styleSea.Foreground(tcell.ColorYellow)},
	game.SpriteAngler1:        {'A', styleSea.Foreground(tcell.ColorSeaGreen)},
	game.SpriteAngler2:        {'a', styleSea.Foreground(tcell.ColorMediumSeaGreen)},
	game.SpriteLucky:          {'$', styleSea.Foreground(tcell.ColorGold)},
	game.SpriteHiveWhale:      {'W', styleSea.Foreground(tcell.ColorSlateGray)},
	game.SpriteDrone:          {'d', styleSea.Foreground(tcell.ColorIndianRed)},
	game.SpriteGears:          {'o', styleSea.Foreground(tcell.ColorDarkGoldenrod)},
	game.SpriteSmokeExplosion: {'*', styleSea.Foreground(tcell.ColorLightGray)},
	game.SpriteFireExplosion:  {'*', styleSea.Foreground(tcell.ColorOrangeRed)},
}

// TerminalRenderer maps the playfield onto a grid of cells, keeping the last row for the HUD
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer drawing into screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Draw paints one snapshot and shows it
func (r *TerminalRenderer) Draw(snap game.Snapshot) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	fieldRows := rows - 1
	sx := float64(cols) / snap.FieldWidth
	sy := float64(fieldRows) / snap.FieldHeight

	r.screen.Clear()
	r.fill(0, 0, cols, fieldRows, ' ', styleSea)

	for _, item := range snap.Items {
		g, ok := glyphs[item.Sprite]
		if !ok {
			continue
		}
		x, y, w, h := item.X, item.Y, item.Width, item.Height
		if item.Layer == game.LayerParticle {
			x, y = x-w*0.5, y-h*0.5
		}
		if item.Layer == game.LayerForeground {
			// Only the seabed strip of the front layer is drawn
			y, h = snap.FieldHeight-h*0.08, h*0.08
			w = snap.FieldWidth
			x = 0
		}

		c0, r0 := int(math.Floor(x*sx)), int(math.Floor(y*sy))
		c1, r1 := int(math.Ceil((x+w)*sx)), int(math.Ceil((y+h)*sy))
		if c1 <= c0 {
			c1 = c0 + 1
		}
		if r1 <= r0 {
			r1 = r0 + 1
		}
		r.fill(c0, r0, min(c1, cols), min(r1, fieldRows), g.r, g.style)

		if snap.HUD.Debug && item.Lives >= 0 {
			r.text(max(c0, 0), max(r0, 0), fmt.Sprintf("%d", item.Lives), styleHUD)
		}
	}

	r.drawHUD(snap, cols, rows-1)
	r.screen.Show()
}

func (r *TerminalRenderer) drawHUD(snap game.Snapshot, cols, row int) {
	hud := snap.HUD
	r.fill(0, row, cols, row+1, ' ', styleHUD)

	ammo := strings.Repeat("|", hud.Ammo)
	if hud.PowerUp {
		ammo += " POWER"
	}
	line := fmt.Sprintf("Score: %d  Ammo: %s  Time remaining: %ds", hud.Score, ammo, hud.RemainingSecs)
	if hud.Debug {
		line += "  [debug]"
	}
	r.text(0, row, line, styleHUD)

	if hud.GameOver {
		headline, subtitle := hud.Message()
		msg := fmt.Sprintf(" %s %s  (r restart, q quit) ", headline, subtitle)
		r.text(max((cols-len(msg))/2, 0), (row)/2, msg, styleHeadline)
	}
}

// fill sets every cell of [c0,c1)×[r0,r1) clipped to the screen
func (r *TerminalRenderer) fill(c0, r0, c1, r1 int, ch rune, style tcell.Style) {
	for y := max(r0, 0); y < r1; y++ {
		for x := max(c0, 0); x < c1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
