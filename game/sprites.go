package game

// Sheet is the frame grid of a sprite image
type Sheet struct {
	CellWidth  float64
	CellHeight float64
	Columns    int
	Rows       int
}

// Size returns the pixel size of the whole sheet
func (s Sheet) Size() (int, int) {
	return int(s.CellWidth) * s.Columns, int(s.CellHeight) * s.Rows
}

// SheetOf returns the frame grid a host should expect for a sprite
func SheetOf(id SpriteID) Sheet {
	switch id {
	case SpriteLayer1, SpriteLayer2, SpriteLayer3, SpriteLayer4:
		return Sheet{CellWidth: layerWidth, CellHeight: layerHeight, Columns: 1, Rows: 1}
	case SpritePlayer:
		return Sheet{CellWidth: playerWidth, CellHeight: playerHeight, Columns: playerMaxFrame + 1, Rows: 2}
	case SpriteProjectile:
		return Sheet{CellWidth: projectileWidth, CellHeight: projectileHeight, Columns: 1, Rows: 1}
	case SpriteGears:
		return Sheet{CellWidth: particleSpriteSize, CellHeight: particleSpriteSize, Columns: particleSheetCells, Rows: particleSheetCells}
	case SpriteSmokeExplosion, SpriteFireExplosion:
		return Sheet{CellWidth: explosionSize, CellHeight: explosionSize, Columns: explosionMaxFrame + 1, Rows: 1}
	}

	for k := EnemyKind(0); k < EnemyKindCount; k++ {
		cfg := enemyTypeConfigs[k]
		if cfg.Sprite == id {
			return Sheet{CellWidth: cfg.Width, CellHeight: cfg.Height, Columns: enemyMaxFrame + 1, Rows: cfg.Rows}
		}
	}
	return Sheet{}
}
