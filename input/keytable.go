package input

import (
	"maps"
	"sort"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/escape-artist/engine"
)

// KeyTable maps physical keys to bindings
type KeyTable struct {
	// Special keys (arrows, Enter, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, matched case-insensitively when no exact entry exists
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:  {Action: engine.ActionLeft},
			tcell.KeyRight: {Action: engine.ActionRight},
			tcell.KeyUp:    {Action: engine.ActionUp},
			tcell.KeyDown:  {Action: engine.ActionDown},
			tcell.KeyEnter: {Action: engine.ActionConfirm},
			tcell.KeyTab:   {Action: engine.ActionTeleport},
			tcell.KeyCtrlC: {Action: engine.ActionQuit},
			tcell.KeyCtrlQ: {Action: engine.ActionQuit},
			tcell.KeyCtrlS: {Command: CommandToggleMute},
		},
		Runes: map[rune]KeyEntry{
			'a': {Action: engine.ActionLeft},
			'd': {Action: engine.ActionRight},
			'w': {Action: engine.ActionUp},
			's': {Action: engine.ActionDown},
			' ': {Action: engine.ActionJump},
			'k': {Action: engine.ActionJump},
			'e': {Action: engine.ActionTeleport},
			'x': {Action: engine.ActionTeleport},
			'q': {Action: engine.ActionQuit},
			'm': {Command: CommandToggleMute},
			'p': {Command: CommandTogglePause},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event; unbound keys return a zero entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	if ev.Key() != tcell.KeyRune {
		return kt.SpecialKeys[ev.Key()]
	}
	r := ev.Rune()
	if e, ok := kt.Runes[r]; ok {
		return e
	}
	// Shift or caps lock should not change what a letter does
	return kt.Runes[unicode.ToLower(r)]
}

// Keys returns every key bound to action, for help text
func (kt *KeyTable) Keys(action engine.Action) []string {
	var names []string
	for k, e := range kt.SpecialKeys {
		if e.Action == action {
			names = append(names, tcell.KeyNames[k])
		}
	}
	for r, e := range kt.Runes {
		if e.Action == action {
			names = append(names, runeName(r))
		}
	}
	sort.Strings(names)
	return names
}
