package entity

import (
	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/physics"
	"github.com/lixenwraith/escape-artist/vmath"
)

// Replicated is a dropped body left behind by a teleport, or a falling boss hazard
// Bodies only fall; they block movement and crush hostiles they land on
// The explosive variant passes through bodies and hurts the character instead
type Replicated struct {
	engine.Base
	env *Env

	X, Y      int
	vy        int
	age       int
	onGround  bool
	explosive bool
}

// NewReplicated drops a body at p
func NewReplicated(env *Env, p vmath.Point) *Replicated {
	return &Replicated{env: env, X: p.X, Y: p.Y}
}

// NewExplosive drops a boss hazard at p
func NewExplosive(env *Env, p vmath.Point) *Replicated {
	return &Replicated{env: env, X: p.X, Y: p.Y, explosive: true}
}

func (r *Replicated) Pos() vmath.Point { return vmath.Point{X: r.X, Y: r.Y} }

// Age returns ticks since the body was dropped
func (r *Replicated) Age() int { return r.age }

func (r *Replicated) Explosive() bool { return r.explosive }

func (r *Replicated) Update() bool {
	r.age++

	r.vy = physics.ClampFall(r.vy + parameter.Gravity)
	landed := false
	for i := 0; i < r.vy; i++ {
		r.Y++
		if r.hit() {
			r.Y--
			r.vy = 0
			landed = true
			break
		}
	}
	if landed && !r.onGround && !r.explosive {
		r.env.Audio.Play(engine.SoundLand)
	}
	r.onGround = landed || physics.OnGround(r.env.Reg, r.env.Terrain, r.X, r.Y, r.ID())

	if r.explosive {
		if c := r.env.Char; c != nil && physics.Overlapping(r.Pos(), c.Pos()) {
			c.Hurt(1, SourceHazard)
			return false
		}
		// Hazards burst on the floor
		return !r.onGround && r.age < parameter.BodyMaxAge
	}

	for _, e := range r.env.Reg.QueryTag(engine.TagHostile) {
		d, ok := e.(engine.Damageable)
		if !ok || !d.Bounds().Overlaps(r.Bounds()) {
			continue
		}
		d.Damage(1)
		r.age = parameter.BodyMaxAge
	}
	return r.age < parameter.BodyMaxAge
}

// hit reports whether the body at its current position collides while falling
func (r *Replicated) hit() bool {
	if r.explosive {
		return physics.TouchingTile(r.X, r.Y, r.env.Terrain)
	}
	if r.env.blocked(r.X, r.Y, r.ID()) {
		return true
	}
	c := r.env.Char
	return c != nil && physics.Overlapping(r.Pos(), c.Pos())
}

func (r *Replicated) Bounds() vmath.Rect {
	return vmath.RectAt(r.X, r.Y, parameter.TileSize)
}

func (r *Replicated) Depth() int { return parameter.DepthOverlay }

func (r *Replicated) Tags() engine.Tag {
	if r.explosive {
		return engine.TagTransient | engine.TagRoomScoped
	}
	return engine.TagReplicated | engine.TagSolid | engine.TagTransient
}

func (r *Replicated) Render(s engine.Surface) {
	if r.age > parameter.BodyFadeAge && r.age%3 == 0 {
		return
	}
	cell := cellBody
	if r.explosive {
		cell = cellHazard
	}
	s.DrawSprite(r.env.sprite(cell), r.X, r.Y, engine.DrawOpts{})
}
