package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"mechtide/game"
)

// HUD draws score, ammo, timer and the end-of-game message
type HUD struct {
	face *text.GoXFace
}

// NewHUD creates a HUD using the built-in bitmap font
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Draw renders the HUD for one snapshot
func (h *HUD) Draw(screen *ebiten.Image, snap game.Snapshot) {
	hud := snap.HUD

	h.drawShadowed(screen, fmt.Sprintf("Score: %d", hud.Score), hudMarginX, hudScoreY, hudTextScale, text.AlignStart)

	var ammoColor color.Color = colorAmmo
	if hud.PowerUp {
		ammoColor = colorAmmoPowered
	}
	for i := 0; i < hud.Ammo; i++ {
		x := hudMarginX + hudAmmoStep*float64(i)
		vector.DrawFilledRect(screen, float32(x), hudAmmoY, hudAmmoWidth, hudAmmoHeight, ammoColor, false)
	}

	h.drawShadowed(screen, fmt.Sprintf("Time remaining: %ds", hud.RemainingSecs), hudMarginX, hudTimerY, hudTextScale, text.AlignStart)

	if hud.GameOver {
		headline, subtitle := hud.Message()
		cx, cy := snap.FieldWidth*0.5, snap.FieldHeight*0.5
		h.drawShadowed(screen, headline, cx, cy-hudMessageGap-13*hudHeadlineSize, hudHeadlineSize, text.AlignCenter)
		h.drawShadowed(screen, subtitle, cx, cy+hudMessageGap, hudTextScale, text.AlignCenter)
	}
}

// drawLabel draws small unshadowed text, used for debug lives counters
func (h *HUD) drawLabel(screen *ebiten.Image, s string, x, y float64) {
	h.drawText(screen, s, x, y, hudTextScale, text.AlignStart, colorText)
}

func (h *HUD) drawShadowed(screen *ebiten.Image, s string, x, y, scale float64, align text.Align) {
	h.drawText(screen, s, x+hudShadowOffset, y+hudShadowOffset, scale, align, colorTextShadow)
	h.drawText(screen, s, x, y, scale, align, colorText)
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y, scale float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(screen, s, h.face, op)
}
