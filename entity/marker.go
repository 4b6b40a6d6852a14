package entity

import (
	"strings"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

// tilePos converts a tile coordinate to its top-left pixel
func tilePos(col, row int) vmath.Point {
	return vmath.Point{X: col * parameter.TileSize, Y: row * parameter.TileSize}
}

// Rotator is a fixed teleport anchor
type Rotator struct {
	engine.Base
	env *Env
	pos vmath.Point
}

func NewRotator(env *Env, col, row int) *Rotator {
	return &Rotator{env: env, pos: tilePos(col, row)}
}

func (r *Rotator) Pos() vmath.Point                 { return r.pos }
func (r *Rotator) EscapePoint() (vmath.Point, bool) { return r.pos, true }
func (r *Rotator) Update() bool                     { return true }
func (r *Rotator) Depth() int                       { return parameter.DepthWorld }
func (r *Rotator) Tags() engine.Tag                 { return engine.TagCacheable }

func (r *Rotator) Render(s engine.Surface) {
	s.DrawSprite(r.env.sprite(cellRotator), r.pos.X, r.pos.Y, engine.DrawOpts{})
}

// Stairs switch the character to ladder movement while touched
type Stairs struct {
	engine.Base
	env *Env
	pos vmath.Point
}

func NewStairs(env *Env, col, row int) *Stairs {
	return &Stairs{env: env, pos: tilePos(col, row)}
}

func (s *Stairs) Pos() vmath.Point { return s.pos }
func (s *Stairs) Update() bool     { return true }
func (s *Stairs) Depth() int       { return parameter.DepthWorld }
func (s *Stairs) Tags() engine.Tag { return engine.TagCacheable | engine.TagStairs }

func (s *Stairs) Render(surf engine.Surface) {
	surf.DrawSprite(s.env.sprite(cellStairs), s.pos.X, s.pos.Y, engine.DrawOpts{})
}

func isSignpost(kind string) bool {
	return strings.HasPrefix(kind, "signpost")
}

// Pickup is a collectible item; it disappears once taken except for signposts,
// which stay and replay their text on every fresh touch
type Pickup struct {
	engine.Base
	env  *Env
	pos  vmath.Point
	kind string

	// touching is the previous tick's contact, so signposts fire on the edge only
	touching bool
}

func NewPickup(env *Env, col, row int, kind string) *Pickup {
	return &Pickup{env: env, pos: tilePos(col, row), kind: kind}
}

func (p *Pickup) Pos() vmath.Point { return p.pos }
func (p *Pickup) Kind() string     { return p.kind }

func (p *Pickup) Update() bool {
	c := p.env.Char
	if c == nil {
		return true
	}
	touching := c.Touches(p.pos)
	fresh := touching && !p.touching
	p.touching = touching
	if !fresh {
		return true
	}
	c.GetItem(p.kind)
	return isSignpost(p.kind)
}

func (p *Pickup) Depth() int       { return parameter.DepthWorld }
func (p *Pickup) Tags() engine.Tag { return engine.TagCacheable }

func (p *Pickup) Render(s engine.Surface) {
	cell := cellItem
	switch {
	case p.kind == parameter.ItemTreasure:
		cell = cellTreasure
	case isSignpost(p.kind):
		cell = cellSignpost
	}
	s.DrawSprite(p.env.sprite(cell), p.pos.X, p.pos.Y, engine.DrawOpts{})
}

// DialogTrigger starts a room conversation and moves the checkpoint when touched
// Touching one consumes every trigger of the same kind
type DialogTrigger struct {
	engine.Base
	env  *Env
	pos  vmath.Point
	room engine.RoomCoord
	kind string
}

// NewDialogTrigger creates a trigger whose dialog kind is the room it was decoded in
func NewDialogTrigger(env *Env, col, row int, room engine.RoomCoord) *DialogTrigger {
	return &DialogTrigger{env: env, pos: tilePos(col, row), room: room, kind: room.String()}
}

func (d *DialogTrigger) Pos() vmath.Point { return d.pos }
func (d *DialogTrigger) Kind() string     { return d.kind }

func (d *DialogTrigger) Update() bool {
	c := d.env.Char
	if c == nil || !c.Touches(d.pos) {
		return true
	}
	c.SetDeathPoint()
	d.env.Dialog.Start(d.kind)
	d.env.Reg.Emit(engine.Event{Type: engine.EventCheckpoint, Payload: d.room})

	kind := d.kind
	d.env.Reg.RequestRemoval(func(e engine.Entity) bool {
		other, ok := e.(*DialogTrigger)
		return ok && other.kind == kind
	})
	return true
}

func (d *DialogTrigger) Depth() int            { return parameter.DepthWorld }
func (d *DialogTrigger) Tags() engine.Tag      { return engine.TagCacheable }
func (d *DialogTrigger) Render(engine.Surface) {}
