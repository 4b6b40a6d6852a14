package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

const T = parameter.TileSize

// gridTerrain is a sparse wall set with bounds; out of bounds is never a wall
type gridTerrain struct {
	walls map[vmath.Point]bool
}

func newTerrain() *gridTerrain {
	return &gridTerrain{walls: make(map[vmath.Point]bool)}
}

func (g *gridTerrain) wall(col, row int) *gridTerrain {
	g.walls[vmath.Point{X: col, Y: row}] = true
	return g
}

func (g *gridTerrain) floor(row int) *gridTerrain {
	for c := 0; c < parameter.RoomSize; c++ {
		g.wall(c, row)
	}
	return g
}

func (g *gridTerrain) IsWall(col, row int) bool {
	if col < 0 || row < 0 || col >= parameter.RoomSize || row >= parameter.RoomSize {
		return false
	}
	return g.walls[vmath.Point{X: col, Y: row}]
}

// block is a solid tile-sized body
type block struct {
	engine.Base
	at vmath.Point
}

func (b *block) Update() bool          { return true }
func (b *block) Render(engine.Surface) {}
func (b *block) Depth() int            { return 0 }
func (b *block) Tags() engine.Tag      { return engine.TagSolid }
func (b *block) Bounds() vmath.Rect    { return vmath.RectAt(b.at.X, b.at.Y, T) }

func TestTouchingTilesInset(t *testing.T) {
	// Exactly tile-aligned footprint samples one cell thanks to the inset
	assert.Len(t, TouchingTiles(40, 40), 1)
	// Straddling both axes samples four cells
	assert.Len(t, TouchingTiles(50, 50), 4)
	// Negative offsets floor toward the tile above/left
	cells := TouchingTiles(-10, 0)
	assert.Contains(t, cells, vmath.Point{X: -1, Y: 0})
	assert.Contains(t, cells, vmath.Point{X: 0, Y: 0})
}

func TestTouchingTile(t *testing.T) {
	terrain := newTerrain().wall(3, 3)

	assert.True(t, TouchingTile(3*T, 3*T, terrain))
	// Two pixels of overlap are forgiven by the inset
	assert.False(t, TouchingTile(2*T+1, 3*T, terrain))
	assert.True(t, TouchingTile(2*T+3, 3*T, terrain))
	// Out of bounds never collides
	assert.False(t, TouchingTile(-5*T, -5*T, terrain))
}

func TestTouchingDynamicExcludesSelf(t *testing.T) {
	reg := engine.NewRegistry()
	b := &block{at: vmath.Point{X: 100, Y: 100}}
	reg.Add(b)

	assert.True(t, TouchingDynamic(reg, 95, 95, 0))
	assert.False(t, TouchingDynamic(reg, 100, 100, b.ID()))
	assert.False(t, TouchingDynamic(reg, 100, 121, 0))
}

func TestOnGround(t *testing.T) {
	reg := engine.NewRegistry()
	terrain := newTerrain().floor(10)

	standing := 10*T - T + 1
	assert.True(t, OnGround(reg, terrain, 60, standing, 0))
	assert.False(t, OnGround(reg, terrain, 60, standing-1, 0))

	// Standing on a solid body counts as ground
	b := &block{at: vmath.Point{X: 200, Y: 100}}
	reg.Add(b)
	assert.True(t, OnGround(reg, newTerrain(), 200, 100-T+1, 0))
	assert.False(t, OnGround(reg, newTerrain(), 200, 100-T+1, b.ID()))
}

func TestResolveVerticalNeverTunnels(t *testing.T) {
	reg := engine.NewRegistry()
	const floorRow = 10
	terrain := newTerrain().floor(floorRow)
	blocked := func(x, y int) bool { return Blocked(reg, terrain, x, y, 0) }

	for startY := 5 * T; startY < floorRow*T-T; startY++ {
		for dy := 1; dy <= T; dy++ {
			y := startY
			vy := dy
			// Fall until resting, like the per-tick controller does
			for i := 0; i < 100; i++ {
				res := ResolveVertical(60, y, vy, blocked)
				y = res.Y
				if res.Hit {
					vy = 0
					break
				}
			}
			require.Zero(t, vy, "start=%d dy=%d never landed", startY, dy)
			// Inset footprint bottom is strictly above the floor tile
			assert.Less(t, y+T-parameter.CollisionInset, floorRow*T, "start=%d dy=%d", startY, dy)
			assert.False(t, TouchingTile(60, y, terrain))
			assert.True(t, OnGround(reg, terrain, 60, y, 0))
		}
	}
}

func TestResolveVerticalCeiling(t *testing.T) {
	reg := engine.NewRegistry()
	terrain := newTerrain().floor(2)
	blocked := func(x, y int) bool { return Blocked(reg, terrain, x, y, 0) }

	res := ResolveVertical(60, 3*T, -T+1, blocked)
	assert.True(t, res.Hit)
	assert.Greater(t, res.Y+parameter.CollisionInset, 3*T-1)
}

func TestResolveHorizontal(t *testing.T) {
	reg := engine.NewRegistry()
	terrain := newTerrain().wall(5, 3)
	blocked := func(x, y int) bool { return Blocked(reg, terrain, x, y, 0) }

	// Walking right into the wall stops flush against it
	x := ResolveHorizontal(3*T+17, 3*T, 5, blocked)
	assert.False(t, blocked(x, 3*T))
	assert.True(t, blocked(x+1, 3*T))

	// Free movement applies the full delta
	assert.Equal(t, 40-5, ResolveHorizontal(40, 3*T, -5, blocked))

	// Zero delta never loops, even when embedded
	assert.Equal(t, 5*T, ResolveHorizontal(5*T, 3*T, 0, blocked))
}

func TestClampFall(t *testing.T) {
	assert.Equal(t, parameter.MaxFallSpeed, ClampFall(100))
	assert.Equal(t, -parameter.MaxFallSpeed, ClampFall(-100))
	assert.Equal(t, 7, ClampFall(7))
}

func TestTouchingItem(t *testing.T) {
	actor := vmath.Point{X: 100, Y: 100}
	assert.True(t, TouchingItem(actor, actor))
	assert.True(t, TouchingItem(actor, vmath.Point{X: 120, Y: 120}))
	// Midpoint reaches into the actor from the left
	assert.True(t, TouchingItem(actor, vmath.Point{X: 90, Y: 100}))
	assert.False(t, TouchingItem(actor, vmath.Point{X: 79, Y: 100}))
	assert.False(t, TouchingItem(actor, vmath.Point{X: 121, Y: 100}))
	assert.False(t, TouchingItem(actor, vmath.Point{X: 100, Y: 121}))
}
