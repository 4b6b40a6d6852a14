package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

func TestDialogTriggerConsumesKind(t *testing.T) {
	f := newFixture()
	f.step()
	room := engine.RoomCoord{Col: 0, Row: 0}
	other := engine.RoomCoord{Col: 1, Row: 0}

	touched := NewDialogTrigger(f.env, 2, floorRow-1, room)
	same1 := NewDialogTrigger(f.env, 10, 5, room)
	same2 := NewDialogTrigger(f.env, 15, 8, room)
	different := NewDialogTrigger(f.env, 12, 12, other)
	for _, d := range []*DialogTrigger{same1, touched, different, same2} {
		f.env.Reg.Add(d)
	}

	f.env.Reg.UpdateAll()

	for _, d := range []*DialogTrigger{touched, same1, same2} {
		assert.False(t, f.env.Reg.Contains(d), "trigger of kind %s at %v must be consumed", d.Kind(), d.Pos())
	}
	assert.True(t, f.env.Reg.Contains(different))
	assert.Equal(t, []string{"0,0"}, f.dialog.Started)

	deathRoom, deathPos := f.char.DeathPoint()
	assert.Equal(t, room, deathRoom)
	assert.Equal(t, f.char.Pos(), deathPos)

	evs := f.env.Reg.DrainEvents()
	require.Len(t, evs, 1)
	assert.Equal(t, engine.EventCheckpoint, evs[0].Type)
	assert.Equal(t, room, evs[0].Payload)
}

func TestPickupCollectedOnce(t *testing.T) {
	f := newFixture()
	f.step()
	p := NewPickup(f.env, 2, floorRow-1, parameter.ItemTreasure)
	f.env.Reg.Add(p)

	f.env.Reg.UpdateAll()
	assert.False(t, f.env.Reg.Contains(p))
	assert.Equal(t, 1, f.char.Gold())
	assert.Contains(t, f.audio.Played, engine.SoundCollect)
}

func TestSignpostReplaysOnFreshTouch(t *testing.T) {
	f := newFixture()
	f.step()
	p := NewPickup(f.env, 2, floorRow-1, parameter.ItemSignpost1)
	f.env.Reg.Add(p)

	f.env.Reg.UpdateAll()
	f.env.Reg.UpdateAll()
	assert.True(t, f.env.Reg.Contains(p))
	assert.Len(t, f.dialog.Started, 1, "standing on a signpost reads it once")

	f.char.X = 10 * T
	f.env.Reg.UpdateAll()
	f.char.X = 2 * T
	f.env.Reg.UpdateAll()
	assert.Len(t, f.dialog.Started, 2)
}

func TestReplicatedBodyCrushesEnemy(t *testing.T) {
	f := newFixture()
	e := NewEnemy(f.env, 10, 8, false)
	f.env.Reg.Add(e)
	body := NewReplicated(f.env, vmath.Point{X: 10 * T, Y: 8*T - T})
	f.env.Reg.Add(body)

	assert.False(t, body.Update())
	assert.Equal(t, 0, e.Health())
}

func TestReplicatedBodyLandsAndExpires(t *testing.T) {
	f := newFixture()
	body := NewReplicated(f.env, vmath.Point{X: 10 * T, Y: 0})
	f.env.Reg.Add(body)

	for i := 1; i < parameter.BodyMaxAge; i++ {
		require.True(t, body.Update(), "age %d", i)
	}
	assert.Equal(t, standY, body.Y)
	assert.Contains(t, f.audio.Played, engine.SoundLand)
	assert.False(t, body.Update())
}

func TestReplicatedBodyIsSolid(t *testing.T) {
	f := newFixture()
	body := NewReplicated(f.env, vmath.Point{X: 10 * T, Y: standY})
	f.env.Reg.Add(body)

	assert.True(t, f.env.blocked(10*T, standY, 0))
	assert.False(t, f.env.blocked(10*T, standY, body.ID()))

	// A second body stacks on the first
	top := NewReplicated(f.env, vmath.Point{X: 10 * T, Y: 0})
	f.env.Reg.Add(top)
	for i := 0; i < 20; i++ {
		top.Update()
	}
	assert.Equal(t, standY-T+1, top.Y)
}

func TestExplosiveHurtsCharacter(t *testing.T) {
	f := newFixture()
	f.step()
	hazard := NewExplosive(f.env, vmath.Point{X: 2 * T, Y: standY - T})
	f.env.Reg.Add(hazard)

	assert.False(t, hazard.Update())
	assert.Equal(t, f.char.MaxHealth-1, f.char.Health)
	assert.False(t, hazard.Tags().Has(engine.TagSolid))
}

func TestExplosiveBurstsOnFloor(t *testing.T) {
	f := newFixture()
	hazard := NewExplosive(f.env, vmath.Point{X: 10 * T, Y: 0})

	alive := 0
	for hazard.Update() {
		alive++
		require.Less(t, alive, parameter.BodyMaxAge)
	}
	assert.Equal(t, standY, hazard.Y)
	assert.Equal(t, f.char.MaxHealth, f.char.Health)
}

func TestHoverTextLifetime(t *testing.T) {
	h := NewHoverText("Ow!", FixedAnchor{X: 5, Y: 50})
	for i := 1; i < 3*parameter.HoverTextTicksPerRune; i++ {
		require.True(t, h.Update())
	}
	assert.False(t, h.Update())

	s := &engine.RecordingSurface{}
	h.Render(s)
	assert.Equal(t, []string{"Ow!"}, s.Texts)
}

func TestIndicatorAndHUD(t *testing.T) {
	f := newFixture()
	s := &engine.RecordingSurface{}

	NewIndicator(f.env).Render(s)
	assert.Empty(t, s.Sprites)

	f.env.Reg.Add(NewRotator(f.env, 7, 2))
	NewIndicator(f.env).Render(s)
	require.Len(t, s.Sprites, 1)
	assert.Equal(t, 7*T, s.Sprites[0].X)

	s = &engine.RecordingSurface{}
	f.char.GetItem(parameter.ItemTreasure)
	f.char.Hurt(1, SourceBoss)
	NewHUD(f.env).Render(s)
	require.Len(t, s.Sprites, f.char.MaxHealth+1)
	assert.Equal(t, cellHeart.X, s.Sprites[0].Sprite.X)
	assert.Equal(t, cellHeartLost.X, s.Sprites[f.char.MaxHealth-1].Sprite.X)
}

func TestParticleGenerator(t *testing.T) {
	f := newFixture()
	origin := vmath.Point{X: 100, Y: 100}

	off := NewParticleGenerator(f.env, origin, 1)
	for i := 0; i < 50; i++ {
		off.Update()
	}
	assert.Zero(t, f.env.Reg.Len(), "rate 0 disables emission")

	f.env.Config.Particles.Rate = 1
	on := NewParticleGenerator(f.env, origin, 1)
	on.Update()
	particles := ofType[*Particle](f.env.Reg)
	require.Len(t, particles, 1)

	p := particles[0]
	ticks := 0
	for p.Update() {
		ticks++
		assert.LessOrEqual(t, p.Pos().Y, origin.Y)
		assert.InDelta(t, origin.X, p.Pos().X, parameter.ParticleWobble+1)
	}
	assert.Less(t, ticks, parameter.ParticleLifespan+parameter.ParticleMinAge)
}

func TestFactoryBuildsEveryKind(t *testing.T) {
	f := newFixture()
	fac := NewFactory(f.env)
	room := engine.RoomCoord{Col: 3, Row: 1}

	for k := KindEnemy; k <= KindBoss; k++ {
		e, err := fac.Build(k, 4, 5, room)
		require.NoError(t, err, k.String())
		assert.Equal(t, k.Cacheable(), e.Tags().Has(engine.TagCacheable), k.String())
	}

	trigger, err := fac.Build(KindDialog, 1, 1, room)
	require.NoError(t, err)
	assert.Equal(t, "3,1", trigger.(*DialogTrigger).Kind())

	_, err = fac.Build(Kind(200), 0, 0, room)
	assert.Error(t, err)
}
