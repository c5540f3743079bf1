package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"mechtide/game"
)

// placeholderColors gives every sprite sheet a recognisable fill
var placeholderColors = map[game.SpriteID]color.RGBA{
	game.SpriteLayer1:         colornames.Midnightblue,
	game.SpriteLayer2:         colornames.Darkslateblue,
	game.SpriteLayer3:         colornames.Teal,
	game.SpriteLayer4:         colornames.Darkolivegreen,
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

// layerBands is the height of the visible band drawn into each background layer,
// the rest stays transparent so the layers behind show through
var layerBands = map[game.SpriteID]float64{
	game.SpriteLayer2: 0.35,
	game.SpriteLayer3: 0.2,
	game.SpriteLayer4: 0.08,
}

func createPlaceholderSheet(filename string, sheet game.Sheet, clr color.RGBA, band float64) error {
	width, height := sheet.Size()
	if width == 0 || height == 0 {
		return fmt.Errorf("sprite has an empty sheet")
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	if band > 0 {
		top := height - int(float64(height)*band)
		draw.Draw(img, image.Rect(0, top, width, height), image.NewUniform(clr), image.Point{}, draw.Src)
		return writePNG(filename, img)
	}

	// One cell per frame, a little brighter along the row so animation is visible
	cw, ch := int(sheet.CellWidth), int(sheet.CellHeight)
	outline := color.RGBA{A: 255}
	for row := 0; row < sheet.Rows; row++ {
		for col := 0; col < sheet.Columns; col++ {
			cell := image.Rect(col*cw, row*ch, (col+1)*cw, (row+1)*ch)
			draw.Draw(img, cell, image.NewUniform(shade(clr, col, sheet.Columns)), image.Point{}, draw.Src)
			drawOutline(img, cell, outline)
		}
	}
	return writePNG(filename, img)
}

// shade brightens clr towards white by the frame's position in the row
func shade(clr color.RGBA, frame, frames int) color.RGBA {
	if frames <= 1 {
		return clr
	}
	t := 0.4 * float64(frame) / float64(frames-1)
	mix := func(c uint8) uint8 {
		return uint8(float64(c) + (255-float64(c))*t)
	}
	return color.RGBA{R: mix(clr.R), G: mix(clr.G), B: mix(clr.B), A: clr.A}
}

func drawOutline(img *image.RGBA, r image.Rectangle, clr color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, clr)
		img.Set(x, r.Max.Y-1, clr)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, clr)
		img.Set(r.Max.X-1, y, clr)
	}
}

func writePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func main() {
	dir := flag.String("dir", "assets", "directory the PNG sheets are written to")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *dir, err)
	}

	for id := game.SpriteNone + 1; id < game.SpriteCount; id++ {
		filename := filepath.Join(*dir, id.String()+".png")
		if err := createPlaceholderSheet(filename, game.SheetOf(id), placeholderColors[id], layerBands[id]); err != nil {
			log.Fatalf("Failed to write %s: %v", filename, err)
		}
		log.Printf("Wrote %s", filename)
	}
}
