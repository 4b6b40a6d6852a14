package dialog

import "log"

// Player steps through one conversation at a time
type Player struct {
	script Script
	key    string
	pos    int
	active bool
}

// NewPlayer creates an idle player over script
func NewPlayer(script Script) *Player {
	return &Player{script: script}
}

// Start opens the conversation for key from its first line
// Returns false, leaving any open conversation untouched, if the script has nothing for key
func (p *Player) Start(key string) bool {
	if len(p.script[key]) == 0 {
		return false
	}
	p.key, p.pos, p.active = key, 0, true
	log.Printf("dialog: start %q", key)
	return true
}

func (p *Player) Active() bool { return p.active }

// Advance moves to the next line; returns false and closes once the last line was shown
func (p *Player) Advance() bool {
	if !p.active {
		return false
	}
	p.pos++
	if p.pos >= len(p.script[p.key]) {
		p.active, p.pos = false, 0
		return false
	}
	return true
}

// Current returns the line on screen
func (p *Player) Current() (Line, bool) {
	if !p.active {
		return Line{}, false
	}
	return p.script[p.key][p.pos], true
}

// Key returns the open conversation's key, empty when idle
func (p *Player) Key() string {
	if !p.active {
		return ""
	}
	return p.key
}
