package entity

import (
	"github.com/lixenwraith/escape-artist/config"
	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/physics"
	"github.com/lixenwraith/escape-artist/vmath"
)

const msgIntruder = "Intruder!"

// Enemy patrols through cyclic orders and hurts the character on sight
// Position and heading are fixed-point in tenths of a pixel so turns ease smoothly
type Enemy struct {
	engine.Base
	env *Env

	// fx, fy are the position in tenths of a pixel
	fx, fy  int
	heading vmath.Point
	orders  []config.Order
	which   int
	ticks   int

	health       int
	sightTiles   int
	flickerTicks int
	// flicker counts down the death blink, -1 while alive
	flicker      int
}

// NewEnemy places an enemy at tile (col, row)
// The reverse variant starts on its second order facing the opposite way
func NewEnemy(env *Env, col, row int, reverse bool) *Enemy {
	cfg := env.Config.Enemy
	e := &Enemy{
		env:          env,
		fx:           col * parameter.TileSize * parameter.HeadingScale,
		fy:           row * parameter.TileSize * parameter.HeadingScale,
		orders:       cfg.Orders,
		health:       cfg.Health,
		sightTiles:   cfg.LOSTiles,
		flickerTicks: cfg.FlickerTicks,
		flicker:      -1,
	}
	if reverse && len(e.orders) > 1 {
		e.which = 1
	}
	e.heading = e.target()
	return e
}

func (e *Enemy) target() vmath.Point {
	o := e.orders[e.which]
	return vmath.Point{X: o.DX * parameter.HeadingScale, Y: o.DY * parameter.HeadingScale}
}

// Pos returns the pixel position
func (e *Enemy) Pos() vmath.Point {
	return vmath.Point{
		X: vmath.FloorDiv(e.fx, parameter.HeadingScale),
		Y: vmath.FloorDiv(e.fy, parameter.HeadingScale),
	}
}

// Order returns the active order index
func (e *Enemy) Order() int { return e.which }

// Heading returns the current heading in tenths of a pixel per tick
func (e *Enemy) Heading() vmath.Point { return e.heading }

func (e *Enemy) Health() int { return e.health }

// Dying reports whether the death blink is running
func (e *Enemy) Dying() bool { return e.flicker >= 0 }

func (e *Enemy) Update() bool {
	if e.health <= 0 && e.flicker < 0 {
		e.flicker = e.flickerTicks
		e.env.Reg.Emit(engine.Event{Type: engine.EventEnemyKilled})
	}
	if e.flicker >= 0 {
		e.flicker--
		return e.flicker > 0
	}

	if e.spots() {
		e.env.Char.Hurt(1, SourceEnemy)
		e.env.say(msgIntruder, e)
	}

	e.fx += e.heading.X
	e.fy += e.heading.Y
	e.ticks++

	goal := e.target()
	if e.heading == goal && e.ticks >= e.orders[e.which].Ticks {
		e.which = (e.which + 1) % len(e.orders)
		e.ticks = 0
		goal = e.target()
	}
	if e.heading != goal {
		e.heading.X += vmath.Sign(goal.X-e.heading.X) * parameter.HeadingStep
		e.heading.Y += vmath.Sign(goal.Y-e.heading.Y) * parameter.HeadingStep
	}
	return true
}

// spots reports whether the character touches the enemy or its line of sight
func (e *Enemy) spots() bool {
	c := e.env.Char
	if c == nil {
		return false
	}
	if c.Touches(e.Pos()) {
		return true
	}
	for _, p := range e.sightLine() {
		if c.Touches(p) {
			return true
		}
	}
	return false
}

// sightLine returns the tiles seen along the heading, stopping before the first wall
func (e *Enemy) sightLine() []vmath.Point {
	pos := e.Pos()
	line := make([]vmath.Point, 0, e.sightTiles)
	for d := 1; d <= e.sightTiles; d++ {
		p := vmath.Point{
			X: pos.X + parameter.TileSize*d*e.heading.X/parameter.HeadingScale,
			Y: pos.Y + parameter.TileSize*d*e.heading.Y/parameter.HeadingScale,
		}
		if physics.TouchingTile(p.X, p.Y, e.env.Terrain) {
			break
		}
		line = append(line, p)
	}
	return line
}

// Damage subtracts health; the death blink starts on the next tick
func (e *Enemy) Damage(amount int) {
	e.health -= amount
}

func (e *Enemy) Bounds() vmath.Rect {
	p := e.Pos()
	return vmath.RectAt(p.X, p.Y, parameter.TileSize)
}

// EscapePoint exposes a live enemy as a teleport pivot once the character holds the escaper
func (e *Enemy) EscapePoint() (vmath.Point, bool) {
	if e.health <= 0 || e.env.Char == nil || !e.env.Char.HasEscaper() {
		return vmath.Point{}, false
	}
	return e.Pos(), true
}

func (e *Enemy) Depth() int { return parameter.DepthWorld }

func (e *Enemy) Tags() engine.Tag { return engine.TagCacheable | engine.TagHostile }

func (e *Enemy) Render(s engine.Surface) {
	if e.flicker >= 0 {
		if e.flicker%3 != 0 {
			return
		}
	}
	p := e.Pos()
	s.DrawSprite(e.env.sprite(cellEnemy), p.X, p.Y, engine.DrawOpts{FlipX: e.heading.X > 0})
	if e.flicker >= 0 {
		return
	}
	for _, sp := range e.sightLine() {
		s.DrawSprite(e.env.sprite(cellSight), sp.X, sp.Y, engine.DrawOpts{Ghost: true})
	}
}
