package world

import (
	"fmt"
	"log"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/entity"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

var (
	cellFloor = vmath.Point{X: 0, Y: 0}
	cellWall  = vmath.Point{X: 1, Y: 0}
)

// Map is the room-paging world model
// It owns the active tile grid and the per-room cache of cacheable entities
type Map struct {
	sheets    engine.SheetProvider
	mapSheet  string
	tileSheet string

	reg     *engine.Registry
	factory *entity.Factory

	coord  engine.RoomCoord
	room   Room
	loaded bool

	// cols, rows is the world extent in rooms
	cols, rows int

	// cache holds each departed room's cacheable entities exactly as they were left
	cache map[engine.RoomCoord][]engine.Entity
}

// NewMap creates an unloaded map; call Enter to load the first room
func NewMap(sheets engine.SheetProvider, reg *engine.Registry, factory *entity.Factory, mapSheet, tileSheet string) (*Map, error) {
	cols, rows, err := sheets.Size(mapSheet)
	if err != nil {
		return nil, fmt.Errorf("world sheet: %w", err)
	}
	return &Map{
		sheets:    sheets,
		mapSheet:  mapSheet,
		tileSheet: tileSheet,
		reg:       reg,
		factory:   factory,
		cols:      cols,
		rows:      rows,
		cache:     make(map[engine.RoomCoord][]engine.Entity),
	}, nil
}

// Coord returns the active room coordinate
func (m *Map) Coord() engine.RoomCoord { return m.coord }

// Grid returns the active tile grid
func (m *Map) Grid() Grid { return m.room.Grid }

// HasRoom reports whether c lies inside the world sheet
func (m *Map) HasRoom(c engine.RoomCoord) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < m.cols && c.Row < m.rows
}

// IsWall is a bounds-checked tile lookup; out of bounds is never a wall
func (m *Map) IsWall(col, row int) bool {
	if col < 0 || row < 0 || col >= parameter.RoomSize || row >= parameter.RoomSize {
		return false
	}
	return m.room.Grid[row][col] == TileWall
}

// Cached reports whether a room has a cache entry
func (m *Map) Cached(c engine.RoomCoord) bool {
	_, ok := m.cache[c]
	return ok
}

// CrossBoundary moves by a relative room offset; (0, 0) is a no-op
func (m *Map) CrossBoundary(dx, dy int) error {
	if dx == 0 && dy == 0 {
		return nil
	}
	return m.transition(m.coord.Add(dx, dy))
}

// Enter loads an absolute room, even if it is the active one
func (m *Map) Enter(c engine.RoomCoord) error {
	return m.transition(c)
}

// transition caches the current room, then decodes next and restores its cached entities
// Non-cacheable markers (the boss) are spawned fresh on every entry
func (m *Map) transition(next engine.RoomCoord) error {
	if !m.HasRoom(next) {
		return fmt.Errorf("room %s outside world %dx%d", next, m.cols, m.rows)
	}
	img, err := m.sheets.Tile(m.mapSheet, next.Col, next.Row)
	if err != nil {
		return fmt.Errorf("load room %s: %w", next, err)
	}
	room, err := Decode(img)
	if err != nil {
		return fmt.Errorf("decode room %s: %w", next, err)
	}

	if m.loaded {
		m.cache[m.coord] = m.reg.RemoveWhere(engine.WithTag(engine.TagCacheable))
		m.reg.RemoveWhere(func(e engine.Entity) bool {
			return e.Tags()&(engine.TagReplicated|engine.TagRoomScoped) != 0
		})
	}

	prev := m.coord
	m.coord = next
	m.room = room
	m.loaded = true

	cached, hit := m.cache[next]
	if hit {
		for _, e := range cached {
			m.reg.Add(e)
		}
		delete(m.cache, next)
	}

	for _, s := range room.Spawns {
		if hit && s.Kind.Cacheable() {
			continue
		}
		e, err := m.factory.Build(s.Kind, s.Col, s.Row, next)
		if err != nil {
			return fmt.Errorf("room %s spawn %s: %w", next, s.Kind, err)
		}
		m.reg.Add(e)
	}

	log.Printf("room %s -> %s (cached=%t, entities=%d)", prev, next, hit, m.reg.Len())
	return nil
}

// Render draws the floor and wall tiles of the active room
func (m *Map) Render(s engine.Surface) {
	for row := 0; row < parameter.RoomSize; row++ {
		for col := 0; col < parameter.RoomSize; col++ {
			cell := cellFloor
			if m.room.Grid[row][col] == TileWall {
				cell = cellWall
			}
			sp := engine.Sprite{Sheet: m.tileSheet, X: cell.X, Y: cell.Y}
			s.DrawSprite(sp, col*parameter.TileSize, row*parameter.TileSize, engine.DrawOpts{})
		}
	}
}
