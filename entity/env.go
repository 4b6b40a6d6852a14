package entity

import (
	"github.com/lixenwraith/escape-artist/config"
	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/physics"
	"github.com/lixenwraith/escape-artist/vmath"
)

// Env is the shared collaborator set world entities are built with
// Owned by the session; Terrain and Char are filled in once the map and character exist
type Env struct {
	Reg     *engine.Registry
	Terrain physics.Terrain
	Char    *Character
	Audio   engine.Audio
	Dialog  engine.Dialog
	RNG     *vmath.FastRand
	Config  *config.Config
	Sheet   string
}

// blocked reports whether a tile-sized footprint at (x, y) hits a wall or a solid body other than self
func (env *Env) blocked(x, y int, self engine.ID) bool {
	return physics.Blocked(env.Reg, env.Terrain, x, y, self)
}

// sprite addresses a cell of the tile sheet
func (env *Env) sprite(cell vmath.Point) engine.Sprite {
	return engine.Sprite{Sheet: env.Sheet, X: cell.X, Y: cell.Y}
}

// say spawns floating feedback text above follow
func (env *Env) say(text string, follow Anchor) {
	env.Reg.Add(NewHoverText(text, follow))
}

// Sheet cells of the default art
var (
	cellWalk0     = vmath.Point{X: 0, Y: 3}
	cellWalk1     = vmath.Point{X: 1, Y: 3}
	cellClimb0    = vmath.Point{X: 0, Y: 4}
	cellClimb1    = vmath.Point{X: 1, Y: 4}
	cellGhost     = vmath.Point{X: 1, Y: 1}
	cellEnemy     = vmath.Point{X: 0, Y: 1}
	cellSight     = vmath.Point{X: 3, Y: 1}
	cellRotator   = vmath.Point{X: 2, Y: 1}
	cellItem      = vmath.Point{X: 1, Y: 2}
	cellTreasure  = vmath.Point{X: 2, Y: 3}
	cellSignpost  = vmath.Point{X: 3, Y: 2}
	cellBody      = vmath.Point{X: 2, Y: 2}
	cellStairs    = vmath.Point{X: 0, Y: 2}
	cellIndicator = vmath.Point{X: 2, Y: 4}
	cellHeart     = vmath.Point{X: 2, Y: 0}
	cellHeartLost = vmath.Point{X: 3, Y: 0}
	cellBoss      = vmath.Point{X: 3, Y: 3}
	cellHazard    = vmath.Point{X: 3, Y: 4}
)

// ParticleSheet holds the ambient mote sprite
const ParticleSheet = "particle.png"

// Anchor is anything hover text can follow
type Anchor interface {
	Pos() vmath.Point
}

// FixedAnchor pins hover text to a point
type FixedAnchor vmath.Point

func (a FixedAnchor) Pos() vmath.Point { return vmath.Point(a) }

// flickerHidden reports whether a blinking entity skips this frame
func flickerHidden(ticks int) bool {
	return ticks > 0 && ticks%3 == 0
}
