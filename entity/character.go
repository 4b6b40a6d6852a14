package entity

import (
	"fmt"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/physics"
	"github.com/lixenwraith/escape-artist/vmath"
)

// Rooms is the slice of the world model the character drives
type Rooms interface {
	Coord() engine.RoomCoord
	HasRoom(c engine.RoomCoord) bool
	// CrossBoundary moves by a relative room offset
	CrossBoundary(dx, dy int) error
	// Enter loads an absolute room coordinate
	Enter(c engine.RoomCoord) error
}

// Outcome tells the session which transition a character tick caused
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeTeleported starts the post-teleport blur
	OutcomeTeleported
	// OutcomeDied starts the respawn fade
	OutcomeDied
	// OutcomeRejected is a refused teleport; nothing moved
	OutcomeRejected
)

// Source classifies what hurt the character
type Source int

const (
	// SourceEnemy relocates the character to its restore point
	SourceEnemy Source = iota
	SourceBoss
	SourceHazard
)

// Feedback messages
const (
	msgNoTarget   = "I can't without a target."
	msgOutOfSight = "I can't see there!"
	msgWall       = "I can't go there!"
	msgOwnBody    = "My own dead body would kill me!"
)

var hurtMessages = [...]string{"Ouch!", "Ow!", "Yowch!", "Oof!"}

// safeProbeAttempts bounds the random fallback search for a free respawn spot
const safeProbeAttempts = 64

type checkpoint struct {
	room engine.RoomCoord
	pos  vmath.Point
}

// Character is the single player-controlled entity of a session
// It is driven by the session after the registry pass and never registered itself
type Character struct {
	env   *Env
	rooms Rooms

	X, Y   int
	VX, VY int

	Health    int
	MaxHealth int

	speed, jump, gravity int

	items    []string
	restore  vmath.Point
	death    checkpoint
	onGround bool

	flicker    int
	facingLeft bool
	climbing   bool
	animTicks  int

	// Mirror preview, valid while hasTarget
	hasTarget bool
	ghostX    int
}

// NewCharacter creates the character at the configured start and binds it to env
func NewCharacter(env *Env, rooms Rooms) *Character {
	cfg := env.Config
	c := &Character{
		env:        env,
		rooms:      rooms,
		X:          cfg.Character.StartX,
		Y:          cfg.Character.StartY,
		Health:     cfg.Character.MaxHealth,
		MaxHealth:  cfg.Character.MaxHealth,
		speed:      cfg.Physics.Speed,
		jump:       cfg.Physics.Jump,
		gravity:    cfg.Physics.Gravity,
		items:      append([]string(nil), cfg.Character.Items...),
		facingLeft: true,
	}
	c.restore = c.Pos()
	c.death = checkpoint{
		room: engine.RoomCoord{Col: cfg.Character.StartRoom[0], Row: cfg.Character.StartRoom[1]},
		pos:  c.Pos(),
	}
	env.Char = c
	return c
}

// Pos returns the top-left pixel of the footprint
func (c *Character) Pos() vmath.Point {
	return vmath.Point{X: c.X, Y: c.Y}
}

// Bounds returns the tile-sized footprint
func (c *Character) Bounds() vmath.Rect {
	return vmath.RectAt(c.X, c.Y, parameter.TileSize)
}

// Touches reports whether a tile-sized item at p is in reach
func (c *Character) Touches(p vmath.Point) bool {
	return physics.TouchingItem(c.Pos(), p)
}

// OnGround reports the grounded state as of the last tick
func (c *Character) OnGround() bool { return c.onGround }

// Mirror returns the previewed teleport x, valid only when ok
func (c *Character) Mirror() (x int, ok bool) { return c.ghostX, c.hasTarget }

// Update advances the character one tick
func (c *Character) Update(in engine.Input) (Outcome, error) {
	if c.Health < 0 {
		if err := c.Die(); err != nil {
			return OutcomeNone, err
		}
		return OutcomeDied, nil
	}
	if c.flicker > 0 {
		c.flicker--
	}

	onStairs := c.env.Reg.Any(func(e engine.Entity) bool {
		s, ok := e.(*Stairs)
		return ok && c.Touches(s.pos)
	})

	c.VY += c.gravity
	c.climbing = false
	if onStairs {
		c.VY = (axis(in, engine.ActionDown) - axis(in, engine.ActionUp)) * c.speed
		c.climbing = c.VY != 0
	} else if in.JustPressed(engine.ActionJump) && c.onGround {
		c.VY = -c.jump
	}
	c.VY = physics.ClampFall(c.VY)

	dx := (axis(in, engine.ActionRight)-axis(in, engine.ActionLeft))*c.speed + c.VX
	dy := c.VY

	if dx != 0 || c.climbing {
		c.animTicks++
	}
	if dx != 0 {
		c.facingLeft = dx < 0
	}

	newScreen, err := c.crossRooms(&dx, &dy)
	if err != nil {
		return OutcomeNone, err
	}

	blocked := func(x, y int) bool { return c.env.blocked(x, y, 0) }
	c.X = physics.ResolveHorizontal(c.X, c.Y, dx, blocked)
	res := physics.ResolveVertical(c.X, c.Y, dy, blocked)
	c.Y = res.Y
	if res.Hit {
		if dy > 0 && !c.onGround {
			c.env.Audio.Play(engine.SoundLand)
		}
		c.VY = 0
	}
	c.onGround = physics.OnGround(c.env.Reg, c.env.Terrain, c.X, c.Y, 0)

	if newScreen {
		c.env.Reg.RemoveWhere(engine.WithTag(engine.TagReplicated))
		c.SetRestorePoint()
	}

	return c.teleport(in), nil
}

func axis(in engine.Input, a engine.Action) int {
	if in.Held(a) {
		return 1
	}
	return 0
}

// crossRooms moves to the neighbouring room when the step would leave this one
// The in-room position is re-anchored so the step lands on the far edge of the new room
// Edges with no room behind them clamp the step instead
func (c *Character) crossRooms(dx, dy *int) (bool, error) {
	nx, ny := c.X+*dx, c.Y+*dy
	if inRoom(nx, ny) {
		return false, nil
	}

	mapDX := vmath.FloorDiv(nx, parameter.RoomSpan)
	mapDY := vmath.FloorDiv(ny, parameter.RoomSpan)
	if !c.rooms.HasRoom(c.rooms.Coord().Add(mapDX, mapDY)) {
		*dx = vmath.Clamp(nx, 0, parameter.RoomSpan-1) - c.X
		clampedY := vmath.Clamp(ny, 0, parameter.RoomSpan-1)
		if clampedY != ny {
			c.VY = 0
		}
		*dy = clampedY - c.Y
		return false, nil
	}

	if err := c.rooms.CrossBoundary(mapDX, mapDY); err != nil {
		return false, fmt.Errorf("cross room boundary: %w", err)
	}
	c.X -= mapDX * parameter.RoomSpan
	c.Y -= mapDY * parameter.RoomSpan
	return true, nil
}

// inRoom reports whether a footprint at (x, y) lies fully inside the room
func inRoom(x, y int) bool {
	return x >= 0 && y >= 0 && x < parameter.RoomSpan && y < parameter.RoomSpan
}

// teleport previews the mirror position and performs the jump on a completed teleport press
func (c *Character) teleport(in engine.Input) Outcome {
	released := in.Released(engine.ActionTeleport)

	target, ok := c.env.Reg.NearestEscapeTarget(c.Pos())
	c.hasTarget = ok
	if !ok {
		if released {
			c.reject(msgNoTarget)
			return OutcomeRejected
		}
		return OutcomeNone
	}

	pivot, _ := target.EscapePoint()
	c.ghostX = vmath.Mirror(c.X, pivot.X)
	if !released {
		return OutcomeNone
	}

	mirror := c.ghostX
	switch {
	case c.HasReplicator() && vmath.Abs(mirror-c.X) < parameter.TileSize+1:
		c.reject(msgOwnBody)
		return OutcomeRejected
	case mirror < 0 || mirror >= parameter.RoomSpan:
		c.reject(msgOutOfSight)
		return OutcomeRejected
	case c.env.blocked(mirror, c.Y, 0):
		c.reject(msgWall)
		return OutcomeRejected
	}

	old := c.Pos()
	c.X = mirror
	c.env.Audio.Play(engine.SoundEscape)
	if c.HasReplicator() {
		c.env.Reg.Add(NewReplicated(c.env, old))
	}
	return OutcomeTeleported
}

func (c *Character) reject(msg string) {
	c.env.say(msg, c)
	c.env.Audio.Play(engine.SoundReject)
}

// Hurt applies damage, keeping health within [CharacterMinHealth, MaxHealth]
// Enemy hits send the character back to the restore point
func (c *Character) Hurt(amount int, source Source) {
	c.Health -= amount
	if c.Health < parameter.CharacterMinHealth {
		c.Health = parameter.CharacterMinHealth
	}
	c.flicker = parameter.FlickerTicks

	c.env.say(hurtMessages[c.env.RNG.Intn(len(hurtMessages))], c)
	c.env.Audio.Play(engine.SoundHurt)

	if source == SourceEnemy {
		p := c.safeRestorePoint()
		c.X, c.Y = p.X, p.Y
		c.VX, c.VY = 0, 0
	}
}

// safeRestorePoint probes upward from the restore point one tile at a time,
// then falls back to random in-room positions
func (c *Character) safeRestorePoint() vmath.Point {
	for y := c.restore.Y; y >= 0; y -= parameter.TileSize {
		if !c.env.blocked(c.restore.X, y, 0) {
			return vmath.Point{X: c.restore.X, Y: y}
		}
	}
	room := vmath.Rect{Width: parameter.RoomSpan, Height: parameter.RoomSpan}
	for i := 0; i < safeProbeAttempts; i++ {
		p := vmath.AreaRandomPoint(room, c.env.RNG)
		if !c.env.blocked(p.X, p.Y, 0) {
			return p
		}
	}
	return c.restore
}

// Die restores health and returns the character to the last checkpoint
// Transient entities (feedback, bodies, boss, hazards) are purged before the room reloads
func (c *Character) Die() error {
	c.Health = c.MaxHealth
	c.X, c.Y = c.death.pos.X, c.death.pos.Y
	c.VX, c.VY = 0, 0
	c.flicker = 0
	c.env.Reg.RemoveWhere(func(e engine.Entity) bool {
		return e.Tags()&(engine.TagTransient|engine.TagReplicated) != 0
	})
	if err := c.rooms.Enter(c.death.room); err != nil {
		return fmt.Errorf("respawn: %w", err)
	}
	c.SetRestorePoint()
	return nil
}

// SetDeathPoint records the current room and position as the respawn checkpoint
func (c *Character) SetDeathPoint() {
	c.death = checkpoint{room: c.rooms.Coord(), pos: c.Pos()}
}

// DeathPoint returns the checkpoint room and position
func (c *Character) DeathPoint() (engine.RoomCoord, vmath.Point) {
	return c.death.room, c.death.pos
}

// SetRestorePoint records the current position as the enemy-hit return spot
func (c *Character) SetRestorePoint() {
	c.restore = c.Pos()
}

// GetItem adds an item to the inventory
// The first pickup of a kind plays its dialog, signposts replay it every time
// Only treasure stacks
func (c *Character) GetItem(kind string) {
	first := !c.HasItem(kind)
	if first || isSignpost(kind) {
		c.env.Dialog.Start(kind)
	}
	if !first && kind != parameter.ItemTreasure {
		return
	}
	c.items = append(c.items, kind)
	c.env.Audio.Play(engine.SoundCollect)
}

// HasItem reports whether at least one item of kind is held
func (c *Character) HasItem(kind string) bool {
	for _, it := range c.items {
		if it == kind {
			return true
		}
	}
	return false
}

// Gold returns the number of treasures collected
func (c *Character) Gold() int {
	n := 0
	for _, it := range c.items {
		if it == parameter.ItemTreasure {
			n++
		}
	}
	return n
}

func (c *Character) HasReplicator() bool { return c.HasItem(parameter.ItemReplicator) }
func (c *Character) HasEscaper() bool    { return c.HasItem(parameter.ItemEscaper) }

// Flickering reports whether the post-hurt blink is running
func (c *Character) Flickering() bool { return c.flicker > 0 }

// Render draws the character and, while a target exists, the mirror ghost
func (c *Character) Render(s engine.Surface) {
	if c.hasTarget {
		s.DrawSprite(c.env.sprite(cellGhost), c.ghostX, c.Y, engine.DrawOpts{Ghost: true})
	}
	if flickerHidden(c.flicker) {
		return
	}

	frame0, frame1 := cellWalk0, cellWalk1
	if c.climbing {
		frame0, frame1 = cellClimb0, cellClimb1
	}
	cell := frame0
	if (c.animTicks/5)%2 == 1 {
		cell = frame1
	}
	s.DrawSprite(c.env.sprite(cell), c.X, c.Y, engine.DrawOpts{FlipX: !c.facingLeft})
}
