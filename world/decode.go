package world

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/lixenwraith/escape-artist/entity"
	"github.com/lixenwraith/escape-artist/parameter"
)

// TileType is the static semantic of one room cell
type TileType uint8

const (
	TileFloor TileType = iota
	TileWall
)

// Grid is the tile layout of one room, indexed [row][col]
type Grid [parameter.RoomSize][parameter.RoomSize]TileType

// Spawn is a marker found while decoding a room
type Spawn struct {
	Kind     entity.Kind
	Col, Row int
}

// Room is the decoded form of a room image
type Room struct {
	Grid   Grid
	Spawns []Spawn
	// Image is the room bitmap with every marker painted over as floor
	Image *image.RGBA
}

type rgb [3]uint8

var (
	floorColor = rgb{255, 255, 255}
	wallColor  = rgb{0, 0, 0}
)

// markers maps reserved colours to the entity they spawn
var markers = map[rgb]entity.Kind{
	{255, 0, 0}:     entity.KindEnemy,
	{100, 0, 0}:     entity.KindEnemyReverse,
	{0, 255, 0}:     entity.KindRotator,
	{255, 255, 0}:   entity.KindTreasure,
	{150, 90, 60}:   entity.KindDialog,
	{0, 0, 255}:     entity.KindStairs,
	{200, 200, 0}:   entity.KindReplicator,
	{200, 255, 0}:   entity.KindEscaper,
	{150, 150, 150}: entity.KindSignpost1,
	{120, 120, 120}: entity.KindSignpost2,
	{255, 0, 255}:   entity.KindBoss,
}

// tiles maps every non-marker colour with a meaning; anything else is floor
var tiles = map[rgb]TileType{
	wallColor:  TileWall,
	floorColor: TileFloor,
}

func toRGB(c color.Color) rgb {
	r := color.RGBAModel.Convert(c).(color.RGBA)
	return rgb{r.R, r.G, r.B}
}

// MarkerColor returns the colour that encodes kind in a room image
func MarkerColor(kind entity.Kind) (color.RGBA, bool) {
	for c, k := range markers {
		if k == kind {
			return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}, true
		}
	}
	return color.RGBA{}, false
}

// WallColor and FloorColor return the tile colours of a room image
func WallColor() color.RGBA  { return color.RGBA{R: wallColor[0], G: wallColor[1], B: wallColor[2], A: 255} }
func FloorColor() color.RGBA { return color.RGBA{R: floorColor[0], G: floorColor[1], B: floorColor[2], A: 255} }

// Decode reads a room image into its tile grid and marker spawns
// The source image is never modified, so decoding the same image twice yields the same room
func Decode(src image.Image) (Room, error) {
	b := src.Bounds()
	if b.Dx() != parameter.RoomSize || b.Dy() != parameter.RoomSize {
		return Room{}, fmt.Errorf("room image is %dx%d, want %dx%d", b.Dx(), b.Dy(), parameter.RoomSize, parameter.RoomSize)
	}

	img := image.NewRGBA(image.Rect(0, 0, parameter.RoomSize, parameter.RoomSize))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)

	var room Room
	for row := 0; row < parameter.RoomSize; row++ {
		for col := 0; col < parameter.RoomSize; col++ {
			c := toRGB(img.At(col, row))
			if kind, ok := markers[c]; ok {
				room.Spawns = append(room.Spawns, Spawn{Kind: kind, Col: col, Row: row})
				img.Set(col, row, FloorColor())
				c = floorColor
			}
			room.Grid[row][col] = tiles[c]
		}
	}
	room.Image = img
	return room, nil
}
