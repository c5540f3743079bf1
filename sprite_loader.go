package main

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"mechtide/game"
)

//go:embed assets/svg/*.svg
var svgAssets embed.FS

// SpriteCatalog resolves sprite identifiers to images. A PNG named after the
// sprite in the asset directory wins over the embedded SVG. Unresolvable
// sprites are cached as nil and reported once.
type SpriteCatalog struct {
	dir    string
	images *intmap.Map[game.SpriteID, *ebiten.Image]
}

// NewSpriteCatalog creates a catalog reading PNG files from dir
func NewSpriteCatalog(dir string) *SpriteCatalog {
	return &SpriteCatalog{
		dir:    dir,
		images: intmap.New[game.SpriteID, *ebiten.Image](int(game.SpriteCount)),
	}
}

// Image returns the image for a sprite, or nil when it has none
func (c *SpriteCatalog) Image(id game.SpriteID) *ebiten.Image {
	if img, ok := c.images.Get(id); ok {
		return img
	}

	img, err := c.load(id)
	if err != nil {
		log.Printf("Sprite %s unavailable, drawing placeholder: %v", id, err)
	}
	c.images.Put(id, img)
	return img
}

// Preload resolves every sprite up front and reports how many have an image
func (c *SpriteCatalog) Preload() (found, total int) {
	for id := game.SpriteNone + 1; id < game.SpriteCount; id++ {
		total++
		if c.Image(id) != nil {
			found++
		}
	}
	return found, total
}

func (c *SpriteCatalog) load(id game.SpriteID) (*ebiten.Image, error) {
	img, err := loadPNG(filepath.Join(c.dir, id.String()+".png"))
	if err == nil {
		return ebiten.NewImageFromImage(img), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	// Embedded SVGs hold a single frame at the sheet's cell size
	data, err := svgAssets.ReadFile("assets/svg/" + id.String() + ".svg")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no %s.png in %s and no embedded fallback", id, c.dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded svg: %w", err)
	}
	sheet := game.SheetOf(id)
	raster, err := svgToImage(data, int(sheet.CellWidth), int(sheet.CellHeight))
	if err != nil {
		return nil, fmt.Errorf("failed to rasterise %s.svg: %w", id, err)
	}
	return ebiten.NewImageFromImage(raster), nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// svgToImage rasterises SVG data at the given size
func svgToImage(svgData []byte, width, height int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
