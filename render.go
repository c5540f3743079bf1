package main

import (
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mechtide/game"
)

// Renderer paints a snapshot's draw list onto the screen
type Renderer struct {
	catalog *SpriteCatalog
	hud     *HUD
}

// NewRenderer creates a new renderer
func NewRenderer(catalog *SpriteCatalog, hud *HUD) *Renderer {
	return &Renderer{
		catalog: catalog,
		hud:     hud,
	}
}

// Draw paints the items in order. The HUD goes on top of the background
// layers and under everything else.
func (r *Renderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(colorBackground)

	hudDrawn := false
	for _, item := range snap.Items {
		if !hudDrawn && item.Layer != game.LayerBackground {
			r.hud.Draw(screen, snap)
			hudDrawn = true
		}
		r.drawItem(screen, item)
		if snap.HUD.Debug {
			r.drawDebug(screen, item)
		}
	}
	if !hudDrawn {
		r.hud.Draw(screen, snap)
	}
}

func (r *Renderer) drawItem(screen *ebiten.Image, item game.DrawItem) {
	img := r.catalog.Image(item.Sprite)
	if item.Layer == game.LayerParticle {
		r.drawParticle(screen, img, item)
		return
	}

	r.drawSprite(screen, img, item, item.X)
	if item.Wrap {
		r.drawSprite(screen, img, item, item.X+item.Width)
	}
}

func (r *Renderer) drawSprite(screen, img *ebiten.Image, item game.DrawItem, x float64) {
	if img == nil {
		if clr := fallbackColor(item.Sprite); clr != nil {
			vector.DrawFilledRect(screen, float32(x), float32(item.Y), float32(item.Width), float32(item.Height), clr, false)
		}
		return
	}

	frame := spriteFrame(img, item.Sprite, item.FrameX, item.FrameY)
	size := frame.Bounds().Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(item.Width/float64(size.X), item.Height/float64(size.Y))
	op.GeoM.Translate(x, item.Y)
	screen.DrawImage(frame, op)
}

// drawParticle draws a gear centred on its position, rotated by its angle
func (r *Renderer) drawParticle(screen, img *ebiten.Image, item game.DrawItem) {
	if img == nil {
		half := item.Width * 0.5
		vector.DrawFilledRect(screen, float32(item.X-half), float32(item.Y-half), float32(item.Width), float32(item.Height), fallbackColor(item.Sprite), false)
		return
	}

	frame := spriteFrame(img, item.Sprite, item.FrameX, item.FrameY)
	size := frame.Bounds().Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(size.X)*0.5, -float64(size.Y)*0.5)
	op.GeoM.Scale(item.Width/float64(size.X), item.Height/float64(size.Y))
	op.GeoM.Rotate(item.Angle)
	op.GeoM.Translate(item.X, item.Y)
	screen.DrawImage(frame, op)
}

// drawDebug outlines collision boxes and labels enemies with their lives
func (r *Renderer) drawDebug(screen *ebiten.Image, item game.DrawItem) {
	switch item.Layer {
	case game.LayerPlayer, game.LayerProjectile, game.LayerEnemy:
		vector.StrokeRect(screen, float32(item.X), float32(item.Y), float32(item.Width), float32(item.Height), debugStrokeWidth, colorDebugBox, false)
	}
	if item.Lives >= 0 {
		r.hud.drawLabel(screen, strconv.Itoa(item.Lives), item.X, item.Y)
	}
}

// spriteFrame cuts cell (fx, fy) out of the sprite's sheet. Images that
// hold fewer cells than requested are used whole.
func spriteFrame(img *ebiten.Image, sprite game.SpriteID, fx, fy int) *ebiten.Image {
	sheet := game.SheetOf(sprite)
	b := img.Bounds()
	cw, ch := int(sheet.CellWidth), int(sheet.CellHeight)
	x0, y0 := b.Min.X+fx*cw, b.Min.Y+fy*ch
	if cw <= 0 || ch <= 0 || x0+cw > b.Max.X || y0+ch > b.Max.Y {
		return img
	}
	return img.SubImage(image.Rect(x0, y0, x0+cw, y0+ch)).(*ebiten.Image)
}
