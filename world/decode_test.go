package world

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/escape-artist/entity"
	"github.com/lixenwraith/escape-artist/parameter"
)

// blankRoom returns an all-floor room image
func blankRoom() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, parameter.RoomSize, parameter.RoomSize))
	for y := 0; y < parameter.RoomSize; y++ {
		for x := 0; x < parameter.RoomSize; x++ {
			img.Set(x, y, FloorColor())
		}
	}
	return img
}

func mark(t *testing.T, img *image.RGBA, kind entity.Kind, col, row int) {
	t.Helper()
	c, ok := MarkerColor(kind)
	require.True(t, ok, "no colour for %s", kind)
	img.Set(col, row, c)
}

func TestDecodeIdempotent(t *testing.T) {
	src := blankRoom()
	src.Set(0, 0, WallColor())
	mark(t, src, entity.KindEnemy, 3, 4)
	mark(t, src, entity.KindRotator, 7, 1)

	first, err := Decode(src)
	require.NoError(t, err)
	second, err := Decode(src)
	require.NoError(t, err)

	assert.Equal(t, first.Grid, second.Grid)
	assert.Equal(t, first.Spawns, second.Spawns)
	assert.Equal(t, first.Image.Pix, second.Image.Pix)

	// Row-major scan order
	assert.Equal(t, []Spawn{
		{Kind: entity.KindRotator, Col: 7, Row: 1},
		{Kind: entity.KindEnemy, Col: 3, Row: 4},
	}, first.Spawns)

	assert.Equal(t, TileWall, first.Grid[0][0])
	assert.Equal(t, TileFloor, first.Grid[4][3])
	assert.Equal(t, FloorColor(), first.Image.RGBAAt(3, 4))

	// Source keeps its markers
	red, _ := MarkerColor(entity.KindEnemy)
	assert.Equal(t, red, src.RGBAAt(3, 4))
}

func TestDecodeUnmappedColorIsFloor(t *testing.T) {
	src := blankRoom()
	src.Set(5, 5, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	room, err := Decode(src)
	require.NoError(t, err)
	assert.Equal(t, TileFloor, room.Grid[5][5])
	assert.Empty(t, room.Spawns)
}

func TestDecodeEveryMarker(t *testing.T) {
	for kind := entity.KindEnemy; kind <= entity.KindBoss; kind++ {
		src := blankRoom()
		mark(t, src, kind, 2, 9)
		room, err := Decode(src)
		require.NoError(t, err)
		require.Len(t, room.Spawns, 1, kind.String())
		assert.Equal(t, kind, room.Spawns[0].Kind)
	}
}

func TestDecodeSubImage(t *testing.T) {
	sheet := image.NewRGBA(image.Rect(0, 0, 2*parameter.RoomSize, parameter.RoomSize))
	room := blankRoom()
	room.Set(1, 2, WallColor())
	for y := 0; y < parameter.RoomSize; y++ {
		for x := 0; x < parameter.RoomSize; x++ {
			sheet.Set(parameter.RoomSize+x, y, room.At(x, y))
		}
	}
	tile := sheet.SubImage(image.Rect(parameter.RoomSize, 0, 2*parameter.RoomSize, parameter.RoomSize))

	decoded, err := Decode(tile)
	require.NoError(t, err)
	assert.Equal(t, TileWall, decoded.Grid[2][1])
	assert.Equal(t, TileFloor, decoded.Grid[0][0])
}

func TestDecodeRejectsWrongSize(t *testing.T) {
	_, err := Decode(image.NewRGBA(image.Rect(0, 0, 10, 20)))
	assert.Error(t, err)
}
