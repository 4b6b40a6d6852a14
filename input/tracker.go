package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/escape-artist/engine"
)

var _ engine.Input = (*Tracker)(nil)

// Tracker turns terminal key events into the held/pressed/released view the simulation reads
// Terminals never report key-up, so an action stays held while presses or auto-repeats keep
// arriving and is released once none arrived for the timeout
type Tracker struct {
	keys    *KeyTable
	clock   engine.TimeProvider
	timeout time.Duration

	lastSeen [engine.ActionCount]time.Time
	held     [engine.ActionCount]bool
	pressed  [engine.ActionCount]bool
	released [engine.ActionCount]bool
}

// NewTracker creates a tracker resolving keys through kt
func NewTracker(kt *KeyTable, clock engine.TimeProvider, timeout time.Duration) *Tracker {
	return &Tracker{keys: kt, clock: clock, timeout: timeout}
}

// HandleKey records a key event and returns the command it is bound to, if any
func (t *Tracker) HandleKey(ev *tcell.EventKey) Command {
	e := t.keys.Lookup(ev)
	if e.Action != engine.ActionNone {
		t.press(e.Action)
	}
	return e.Command
}

func (t *Tracker) press(a engine.Action) {
	t.lastSeen[a] = t.clock.Now()
	if !t.held[a] {
		t.held[a] = true
		t.pressed[a] = true
	}
}

// Expire releases every action whose key went quiet; call once before each step
func (t *Tracker) Expire() {
	now := t.clock.Now()
	for a := range t.held {
		if t.held[a] && now.Sub(t.lastSeen[a]) >= t.timeout {
			t.held[a] = false
			t.released[a] = true
		}
	}
}

// Reset drops all key state, e.g. after the terminal lost focus
func (t *Tracker) Reset() {
	t.held = [engine.ActionCount]bool{}
	t.pressed = [engine.ActionCount]bool{}
	t.released = [engine.ActionCount]bool{}
}

func (t *Tracker) Held(a engine.Action) bool        { return t.held[a] }
func (t *Tracker) JustPressed(a engine.Action) bool { return t.pressed[a] }

// Released reports a release edge once; the read consumes it
func (t *Tracker) Released(a engine.Action) bool {
	r := t.released[a]
	t.released[a] = false
	return r
}

// Flush clears the edges of the step just run
func (t *Tracker) Flush() {
	t.pressed = [engine.ActionCount]bool{}
	t.released = [engine.ActionCount]bool{}
}
