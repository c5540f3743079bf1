package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSheetOf(t *testing.T) {
	tests := []struct {
		id            SpriteID
		cellW, cellH  float64
		columns, rows int
	}{
		{SpriteLayer2, 1768, 500, 1, 1},
		{SpritePlayer, 120, 190, 38, 2},
		{SpriteProjectile, 10, 3, 1, 1},
		{SpriteAngler1, 228, 169, 38, 3},
		{SpriteHiveWhale, 400, 227, 38, 1},
		{SpriteDrone, 115, 95, 38, 2},
		{SpriteGears, 50, 50, 3, 3},
		{SpriteFireExplosion, 200, 200, 9, 1},
		{SpriteNone, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			sheet := SheetOf(tt.id)
			assert.Equal(t, Sheet{CellWidth: tt.cellW, CellHeight: tt.cellH, Columns: tt.columns, Rows: tt.rows}, sheet)
		})
	}

	w, h := SheetOf(SpriteLucky).Size()
	assert.Equal(t, 99*38, w)
	assert.Equal(t, 95*2, h)
}

func TestSpriteNames(t *testing.T) {
	for id := SpriteNone; id < SpriteCount; id++ {
		assert.NotEmpty(t, id.String())
	}
	assert.Equal(t, "hiveWhale", SpriteHiveWhale.String())
	assert.Equal(t, "unknown", SpriteCount.String())
}
