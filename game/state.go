package game

import (
	"fmt"

	"github.com/lixenwraith/escape-artist/parameter"
)

// State is the session-level mode wrapped around the simulation
type State uint8

const (
	// StateNormal runs the simulation
	StateNormal State = iota
	// StateDialog freezes the simulation while a conversation plays
	StateDialog
	// StateBlurry is the short post-teleport effect; the simulation is frozen
	StateBlurry
	// StateDeath is the respawn fade; the simulation is frozen
	StateDeath
	// StateVictory is terminal
	StateVictory
)

var stateNames = [...]string{
	StateNormal:  "normal",
	StateDialog:  "dialog",
	StateBlurry:  "blurry",
	StateDeath:   "death",
	StateVictory: "victory",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", s)
}

// duration returns the length of a timed state, 0 for untimed ones
func (s State) duration() int {
	switch s {
	case StateBlurry:
		return parameter.BlurTicks
	case StateDeath:
		return parameter.DeathFadeTicks
	}
	return 0
}
