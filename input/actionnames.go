package input

import (
	"sort"

	"github.com/lixenwraith/escape-artist/engine"
)

// actionRegistry maps canonical binding names to entries
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// Movement
	"left":  {Action: engine.ActionLeft},
	"right": {Action: engine.ActionRight},
	"up":    {Action: engine.ActionUp},
	"down":  {Action: engine.ActionDown},
	"jump":  {Action: engine.ActionJump},

	// Abilities
	"teleport": {Action: engine.ActionTeleport},

	// System
	"confirm":     {Action: engine.ActionConfirm},
	"quit":        {Action: engine.ActionQuit},
	"toggle_mute":  {Command: CommandToggleMute},
	"toggle_pause": {Command: CommandTogglePause},
}

// ActionEntry resolves a canonical action name to its KeyEntry
// Returns zero KeyEntry and false if name is unknown
func ActionEntry(name string) (KeyEntry, bool) {
	entry, ok := actionRegistry[name]
	return entry, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
