package input

import "github.com/lixenwraith/escape-artist/engine"

// Command is a key binding handled outside the simulation
type Command uint8

const (
	CommandNone Command = iota
	CommandToggleMute
	CommandTogglePause
)

// KeyEntry is what a key resolves to: a simulation action or a command, never both
type KeyEntry struct {
	Action  engine.Action
	Command Command
}

// bound reports whether the entry does anything
func (e KeyEntry) bound() bool {
	return e.Action != engine.ActionNone || e.Command != CommandNone
}
