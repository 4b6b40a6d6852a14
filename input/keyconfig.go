package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeys indexes tcell key names case-insensitively ("left", "enter", "ctrl-c")
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses the [keys] table of the config into a sparse override KeyTable
// Keys are single characters, rune aliases or tcell key names; values are action names
// Returns error on unknown action or key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	// Sorted for a stable first error
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, keyStr := range names {
		entry, err := resolveAction(bindings[keyStr])
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		if k, ok := specialKeys[strings.ToLower(keyStr)]; ok && len([]rune(keyStr)) > 1 {
			kt.SpecialKeys[k] = entry
			continue
		}
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}
		kt.Runes[r] = entry
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}

// runeName is the inverse of resolveRune
func runeName(r rune) string {
	for name, ar := range runeAliases {
		if ar == r {
			return name
		}
	}
	return string(r)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if !v.bound() {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}

// NewKeyTable builds the effective bindings from the config [keys] table
func NewKeyTable(bindings map[string]string) (*KeyTable, error) {
	override, err := LoadKeyConfig(bindings)
	if err != nil {
		return nil, err
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}
