package entity

import (
	"github.com/lixenwraith/escape-artist/config"
	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

// Boss runs a timed phase list: move phases slide it around, drop phases rain hazards
type Boss struct {
	engine.Base
	env *Env

	X, Y   int
	health int
	speed  int

	phases []config.Phase
	phase  int
	ticks  int

	// lanes already used in the current drop streak, most recent last
	history  []int
	defeated bool
}

// NewBoss places the boss with its top-left at tile (col, row)
func NewBoss(env *Env, col, row int) *Boss {
	cfg := env.Config.Boss
	return &Boss{
		env:    env,
		X:      col * parameter.TileSize,
		Y:      row * parameter.TileSize,
		health: cfg.Health,
		speed:  cfg.Speed,
		phases: cfg.Phases,
	}
}

func (b *Boss) Pos() vmath.Point { return vmath.Point{X: b.X, Y: b.Y} }

func (b *Boss) Health() int { return b.health }

// Phase returns the active phase index
func (b *Boss) Phase() int { return b.phase }

// History returns the lanes used in the current drop streak
func (b *Boss) History() []int { return b.history }

func (b *Boss) Update() bool {
	if b.health <= 0 {
		if !b.defeated {
			b.defeated = true
			b.env.Reg.Emit(engine.Event{Type: engine.EventBossDefeated})
		}
		return false
	}

	if c := b.env.Char; c != nil && b.Bounds().Overlaps(c.Bounds()) {
		c.Hurt(1, SourceBoss)
	}

	p := b.phases[b.phase]
	switch p.Kind {
	case config.PhaseMove:
		b.X = vmath.Clamp(b.X+p.DX*b.speed, parameter.TileSize, parameter.RoomPixels-parameter.TileSize-parameter.BossSize)
		b.Y = vmath.Clamp(b.Y+p.DY*b.speed, parameter.TileSize, parameter.RoomPixels-parameter.TileSize-parameter.BossSize)
	case config.PhaseDrop:
		if b.ticks%p.Interval == 0 {
			lane := b.nextLane()
			b.env.Reg.Add(NewExplosive(b.env, vmath.Point{X: lane * parameter.TileSize, Y: parameter.TileSize}))
		}
	}

	b.ticks++
	if b.ticks >= p.Ticks {
		b.ticks = 0
		b.phase = (b.phase + 1) % len(b.phases)
		if b.phases[b.phase].Kind != config.PhaseDrop {
			b.history = b.history[:0]
		}
	}
	return true
}

// nextLane picks a random drop column not yet used in this streak
// Once every lane has been used the streak restarts, keeping only the last lane excluded
func (b *Boss) nextLane() int {
	free := b.freeLanes()
	if len(free) == 0 {
		b.history = b.history[len(b.history)-1:]
		free = b.freeLanes()
	}
	lane := free[b.env.RNG.Intn(len(free))]
	b.history = append(b.history, lane)
	return lane
}

func (b *Boss) freeLanes() []int {
	used := make(map[int]bool, len(b.history))
	for _, l := range b.history {
		used[l] = true
	}
	free := make([]int, 0, parameter.BossLaneMax-parameter.BossLaneMin+1)
	for l := parameter.BossLaneMin; l <= parameter.BossLaneMax; l++ {
		if !used[l] {
			free = append(free, l)
		}
	}
	return free
}

func (b *Boss) Damage(amount int) {
	b.health -= amount
}

func (b *Boss) Bounds() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, Width: parameter.BossSize, Height: parameter.BossSize}
}

func (b *Boss) Depth() int { return parameter.DepthWorld }

func (b *Boss) Tags() engine.Tag {
	return engine.TagTransient | engine.TagHostile | engine.TagRoomScoped
}

func (b *Boss) Render(s engine.Surface) {
	s.DrawSprite(b.env.sprite(cellBoss), b.X, b.Y, engine.DrawOpts{Scale: parameter.BossSize / parameter.TileSize})
}
