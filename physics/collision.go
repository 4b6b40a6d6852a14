package physics

import (
	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

// Terrain is the read-only tile view entities collide against
type Terrain interface {
	// IsWall reports whether the tile at (col, row) is solid; out of bounds is never a wall
	IsWall(col, row int) bool
}

// dynamicSamples are the per-axis offsets of the 3x3 probe grid used against solid bodies
var dynamicSamples = [3]int{
	parameter.CollisionInset,
	parameter.TileSize / 2,
	parameter.TileSize - parameter.CollisionInset,
}

// TouchingTiles returns the tile cells covered by the inset footprint of an entity at (x, y)
func TouchingTiles(x, y int) []vmath.Point {
	const t = parameter.TileSize
	const inset = parameter.CollisionInset

	c0 := vmath.FloorDiv(x+inset, t)
	c1 := vmath.FloorDiv(x+t-inset, t)
	r0 := vmath.FloorDiv(y+inset, t)
	r1 := vmath.FloorDiv(y+t-inset, t)

	cells := make([]vmath.Point, 0, 4)
	for c := c0; c <= c1; c++ {
		for r := r0; r <= r1; r++ {
			cells = append(cells, vmath.Point{X: c, Y: r})
		}
	}
	return cells
}

// TouchingTile reports whether the footprint at (x, y) overlaps any wall tile
func TouchingTile(x, y int, terrain Terrain) bool {
	for _, cell := range TouchingTiles(x, y) {
		if terrain.IsWall(cell.X, cell.Y) {
			return true
		}
	}
	return false
}

// TouchingDynamic samples a 3x3 grid across the footprint at (x, y) against every solid entity except exclude
func TouchingDynamic(reg *engine.Registry, x, y int, exclude engine.ID) bool {
	for _, s := range reg.Solids() {
		if exclude != 0 && s.ID() == exclude {
			continue
		}
		b := s.Bounds()
		for _, ox := range dynamicSamples {
			for _, oy := range dynamicSamples {
				if b.Contains(x+ox, y+oy) {
					return true
				}
			}
		}
	}
	return false
}

// PointTouchingDynamic reports whether a single point lies inside a solid entity other than exclude
func PointTouchingDynamic(reg *engine.Registry, x, y int, exclude engine.ID) bool {
	for _, s := range reg.Solids() {
		if exclude != 0 && s.ID() == exclude {
			continue
		}
		if s.Bounds().Contains(x, y) {
			return true
		}
	}
	return false
}

// Blocked reports whether an entity at (x, y) would overlap a wall or a solid body
func Blocked(reg *engine.Registry, terrain Terrain, x, y int, exclude engine.ID) bool {
	return TouchingTile(x, y, terrain) || TouchingDynamic(reg, x, y, exclude)
}

// OnGround checks the two foot samples one pixel below the inset footprint
func OnGround(reg *engine.Registry, terrain Terrain, x, y int, exclude engine.ID) bool {
	const t = parameter.TileSize
	const inset = parameter.CollisionInset

	footY := y + t - 1
	feet := [2]int{x + inset, x + t - inset}
	for _, fx := range feet {
		if terrain.IsWall(vmath.FloorDiv(fx, t), vmath.FloorDiv(footY, t)) {
			return true
		}
		if PointTouchingDynamic(reg, fx, footY, exclude) {
			return true
		}
	}
	return false
}

// Overlapping reports whether two tile-sized footprints at a and b share any pixel
func Overlapping(a, b vmath.Point) bool {
	return vmath.RectAt(a.X, a.Y, parameter.TileSize).Overlaps(vmath.RectAt(b.X, b.Y, parameter.TileSize))
}

// TouchingItem reports whether a tile-sized item at item is touched by an entity at actor
// Either the item's leading edge or its midpoint must fall inside the actor's span on both axes
func TouchingItem(actor, item vmath.Point) bool {
	const t = parameter.TileSize
	within := func(lo, v int) bool { return lo <= v && v <= lo+t }
	return (within(actor.X, item.X) || within(actor.X, item.X+t/2)) &&
		(within(actor.Y, item.Y) || within(actor.Y, item.Y+t/2))
}
