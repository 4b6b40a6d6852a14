package dialog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScript []byte

// Line is one box of narration
type Line struct {
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
}

// Script maps a dialog key (room "col,row" or item kind) to its lines
type Script map[string][]Line

// Default returns the built-in narration
func Default() (Script, error) {
	s, err := decode(defaultScript)
	if err != nil {
		return nil, fmt.Errorf("built-in dialog: %w", err)
	}
	return s, nil
}

// Parse decodes YAML over the built-in narration; keys present in data replace whole conversations
func Parse(data []byte) (Script, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}
	override, err := decode(data)
	if err != nil {
		return nil, err
	}
	for k, lines := range override {
		base[k] = lines
	}
	return base, nil
}

// Load reads a dialog file; an empty path returns the built-in narration
func Load(path string) (Script, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dialog read: %w", err)
	}
	return Parse(data)
}

func decode(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("dialog parse: %w", err)
	}
	if s == nil {
		s = Script{}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects conversations that could not be shown
func (s Script) Validate() error {
	for _, k := range s.Keys() {
		if k == "" {
			return errors.New("dialog: empty key")
		}
		lines := s[k]
		if len(lines) == 0 {
			return fmt.Errorf("dialog %q: no lines", k)
		}
		for i, l := range lines {
			if l.Text == "" {
				return fmt.Errorf("dialog %q line %d: empty text", k, i)
			}
		}
	}
	return nil
}

// Keys returns the dialog keys, sorted
func (s Script) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
