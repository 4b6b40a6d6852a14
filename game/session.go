package game

import (
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/lixenwraith/escape-artist/config"
	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/entity"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/status"
	"github.com/lixenwraith/escape-artist/vmath"
	"github.com/lixenwraith/escape-artist/world"
)

// Conversation is the dialog collaborator the session steps through
type Conversation interface {
	engine.Dialog
	// Advance moves to the next line, returns false once the conversation is over
	Advance() bool
}

// Options carries the collaborators a session is built from
type Options struct {
	Config *config.Config
	Sheets engine.SheetProvider
	Audio  engine.Audio
	Dialog Conversation
	// Metrics is optional
	Metrics *status.Registry
	Seed    uint64
}

// Session owns one run of the game: registry, room model, character and the state machine around them
type Session struct {
	ID uuid.UUID

	cfg     *config.Config
	reg     *engine.Registry
	env     *entity.Env
	world   *world.Map
	char    *entity.Character
	dialog  Conversation
	metrics *status.Registry

	state State
	// timer counts down the active timed state
	timer int
	ticks uint64
	quit  bool
}

// NewSession wires a session and enters the start room
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Sheets == nil || opts.Dialog == nil {
		return nil, fmt.Errorf("session needs a sheet provider and a dialog")
	}
	audio := opts.Audio
	if audio == nil {
		audio = engine.NopAudio{}
	}

	reg := engine.NewRegistry()
	env := &entity.Env{
		Reg:    reg,
		Audio:  audio,
		Dialog: opts.Dialog,
		RNG:    vmath.NewFastRand(opts.Seed),
		Config: cfg,
		Sheet:  cfg.World.TileSheet,
	}

	m, err := world.NewMap(opts.Sheets, reg, entity.NewFactory(env), cfg.World.MapSheet, cfg.World.TileSheet)
	if err != nil {
		return nil, fmt.Errorf("session map: %w", err)
	}
	env.Terrain = m

	s := &Session{
		ID:      uuid.New(),
		cfg:     cfg,
		reg:     reg,
		env:     env,
		world:   m,
		char:    entity.NewCharacter(env, m),
		dialog:  opts.Dialog,
		metrics: opts.Metrics,
	}

	start := engine.RoomCoord{Col: cfg.Character.StartRoom[0], Row: cfg.Character.StartRoom[1]}
	if err := m.Enter(start); err != nil {
		return nil, fmt.Errorf("session start room: %w", err)
	}

	reg.Add(entity.NewIndicator(env))
	reg.Add(entity.NewHUD(env))
	if cfg.Particles.Rate > 0 {
		origin := vmath.Point{X: parameter.RoomPixels / 2, Y: parameter.RoomPixels - parameter.TileSize}
		reg.Add(entity.NewParticleGenerator(env, origin, int64(opts.Seed)))
	}

	if s.dialog.Start(start.String()) {
		s.state = StateDialog
	}
	log.Printf("session %s: started in room %s (%s)", s.ID, start, s.state)
	return s, nil
}

func (s *Session) State() State                 { return s.state }
func (s *Session) Ticks() uint64                { return s.ticks }
func (s *Session) Character() *entity.Character { return s.char }
func (s *Session) Registry() *engine.Registry   { return s.reg }
func (s *Session) World() *world.Map            { return s.world }

// Done reports whether the player asked to quit
func (s *Session) Done() bool { return s.quit }

// Intensity is the strength of the active screen effect in [0, 1]
// Blur rises and falls; the death fade starts dark and clears
func (s *Session) Intensity() float64 {
	d := s.state.duration()
	if d == 0 {
		return 0
	}
	switch s.state {
	case StateBlurry:
		progress := float64(d-s.timer+1) / float64(d+1)
		return 1 - math.Abs(2*progress-1)
	default:
		return float64(s.timer) / float64(d)
	}
}

// Tick advances the session by one fixed step
// Errors are fatal: a missing asset or a failed room load
func (s *Session) Tick(in engine.Input) error {
	defer in.Flush()

	if in.Released(engine.ActionQuit) {
		s.quit = true
		return nil
	}

	switch s.state {
	case StateNormal:
		if err := s.step(in); err != nil {
			return err
		}
	case StateDialog:
		if !s.dialog.Active() || (in.Released(engine.ActionConfirm) && !s.dialog.Advance()) {
			s.enter(StateNormal)
		}
	case StateBlurry, StateDeath:
		s.timer--
		if s.timer <= 0 {
			s.resume()
		}
	case StateVictory:
	}

	s.ticks++
	if s.metrics != nil {
		s.metrics.Tick()
		s.metrics.SetLive(s.reg.Len())
	}
	return nil
}

// step runs the registry pass, then the character, then reacts to what happened
func (s *Session) step(in engine.Input) error {
	before := s.world.Coord()

	s.reg.UpdateAll()
	out, err := s.char.Update(in)
	if err != nil {
		return fmt.Errorf("session %s tick %d: %w", s.ID, s.ticks, err)
	}

	if s.world.Coord() != before {
		s.count((*status.Registry).Transition)
	}

	switch out {
	case entity.OutcomeTeleported:
		s.count(func(m *status.Registry) { m.Teleport(status.ResultOK) })
		s.enter(StateBlurry)
	case entity.OutcomeRejected:
		s.count(func(m *status.Registry) { m.Teleport(status.ResultRejected) })
	case entity.OutcomeDied:
		s.count((*status.Registry).Death)
		log.Printf("session %s: died, respawn in room %s", s.ID, s.world.Coord())
		s.enter(StateDeath)
	}

	for _, ev := range s.reg.DrainEvents() {
		switch ev.Type {
		case engine.EventBossDefeated:
			log.Printf("session %s: boss defeated after %d ticks", s.ID, s.ticks)
			s.enter(StateVictory)
		case engine.EventCheckpoint:
			log.Printf("session %s: checkpoint %v", s.ID, ev.Payload)
		case engine.EventEnemyKilled:
			s.count((*status.Registry).EnemyKilled)
		}
	}

	if s.state == StateNormal && s.dialog.Active() {
		s.enter(StateDialog)
	}
	return nil
}

func (s *Session) count(fn func(*status.Registry)) {
	if s.metrics != nil {
		fn(s.metrics)
	}
}

// enter switches state; victory is final
func (s *Session) enter(next State) {
	if s.state == StateVictory {
		return
	}
	s.state = next
	s.timer = next.duration()
}

// resume leaves a timed state, straight into a conversation if one was started meanwhile
func (s *Session) resume() {
	if s.dialog.Active() {
		s.enter(StateDialog)
		return
	}
	s.enter(StateNormal)
}

// Render draws the room, then entities by depth, then the character on top
func (s *Session) Render(surf engine.Surface) error {
	s.world.Render(surf)
	s.reg.RenderAll(surf)
	s.char.Render(surf)
	return surf.Err()
}
