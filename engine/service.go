package engine

import (
	"image"
	"image/color"

	"github.com/lixenwraith/escape-artist/vmath"
)

// Sprite addresses one tile of a sprite sheet
type Sprite struct {
	Sheet string
	X, Y  int
}

// DrawOpts modifies how a sprite is drawn
type DrawOpts struct {
	FlipX bool
	// Ghost draws a faint preview (mirror destination)
	Ghost bool
	// Scale is an integer magnification, 0 and 1 both mean none
	Scale int
}

// Surface is the render target entities draw on, in room pixel coordinates
// Implementations keep the first error (sticky) and ignore further draws after it
type Surface interface {
	DrawSprite(sp Sprite, x, y int, opts DrawOpts)
	DrawText(text string, box vmath.Rect, fg, bg color.RGBA)
	Err() error
}

// SheetProvider returns tile images keyed by (sheet, x, y)
// An unknown sheet is a packaging error and must be reported, never substituted
type SheetProvider interface {
	Tile(sheet string, x, y int) (image.Image, error)
	// Size returns the sheet extent in tiles
	Size(sheet string) (cols, rows int, err error)
}

// Action is a logical input, decoupled from physical keys
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionJump
	ActionTeleport
	ActionConfirm
	ActionQuit
	actionCount
)

// ActionCount is the number of defined actions
const ActionCount = int(actionCount)

// Input exposes the per-tick input snapshot
type Input interface {
	// Held reports continuous hold state for movement axes
	Held(a Action) bool
	// JustPressed reports a press that started this tick
	JustPressed(a Action) bool
	// Released reports a completed press; consumed by the first caller
	Released(a Action) bool
	// Flush clears edge-triggered state; called once per tick by the driver
	Flush()
}

// Sound names a fire-and-forget audio cue
type Sound uint8

const (
	SoundLand Sound = iota
	SoundEscape
	SoundCollect
	SoundHurt
	SoundReject
)

// Audio plays cues without blocking the tick
type Audio interface {
	Play(s Sound)
}

// Dialog starts scripted conversations by key (room coordinate or item name)
type Dialog interface {
	// Start returns false if the key has no script
	Start(key string) bool
	Active() bool
}

// NopAudio discards every cue
type NopAudio struct{}

func (NopAudio) Play(Sound) {}
