package engine

import (
	"image/color"

	"github.com/lixenwraith/escape-artist/vmath"
)

// RecordingSurface captures draw calls; used by tests across packages
type RecordingSurface struct {
	Sprites []SpriteDraw
	Texts   []string
}

// SpriteDraw is one recorded DrawSprite call
type SpriteDraw struct {
	Sprite Sprite
	X, Y   int
	Opts   DrawOpts
}

func (s *RecordingSurface) DrawSprite(sp Sprite, x, y int, opts DrawOpts) {
	s.Sprites = append(s.Sprites, SpriteDraw{Sprite: sp, X: x, Y: y, Opts: opts})
}

func (s *RecordingSurface) DrawText(text string, _ vmath.Rect, _, _ color.RGBA) {
	s.Texts = append(s.Texts, text)
}

func (s *RecordingSurface) Err() error { return nil }

// ScriptedInput is a settable Input for tests and replays
type ScriptedInput struct {
	held     [ActionCount]bool
	pressed  [ActionCount]bool
	released [ActionCount]bool
}

// SetHeld sets continuous hold state
func (in *ScriptedInput) SetHeld(a Action, held bool) {
	in.held[a] = held
}

// Press marks a fresh press this tick
func (in *ScriptedInput) Press(a Action) {
	in.pressed[a] = true
}

// Release queues a completed press
func (in *ScriptedInput) Release(a Action) {
	in.released[a] = true
}

func (in *ScriptedInput) Held(a Action) bool        { return in.held[a] }
func (in *ScriptedInput) JustPressed(a Action) bool { return in.pressed[a] }

func (in *ScriptedInput) Released(a Action) bool {
	r := in.released[a]
	in.released[a] = false
	return r
}

func (in *ScriptedInput) Flush() {
	in.pressed = [ActionCount]bool{}
	in.released = [ActionCount]bool{}
}

// RecordingAudio counts played cues
type RecordingAudio struct {
	Played []Sound
}

func (a *RecordingAudio) Play(s Sound) {
	a.Played = append(a.Played, s)
}

// StubDialog accepts every key and records it
type StubDialog struct {
	Started []string
	active  bool
}

func (d *StubDialog) Start(key string) bool {
	d.Started = append(d.Started, key)
	d.active = true
	return true
}

func (d *StubDialog) Active() bool { return d.active }

// Close ends the current conversation
func (d *StubDialog) Close() { d.active = false }
