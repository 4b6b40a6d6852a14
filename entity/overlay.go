package entity

import (
	"image/color"
	"unicode/utf8"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

var (
	hoverFg = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	hoverBg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// HoverText is short-lived feedback text floating above an anchor
type HoverText struct {
	engine.Base
	text     string
	follow   Anchor
	lifespan int
}

// NewHoverText lives two ticks per rune of text
func NewHoverText(text string, follow Anchor) *HoverText {
	return &HoverText{
		text:     text,
		follow:   follow,
		lifespan: utf8.RuneCountInString(text) * parameter.HoverTextTicksPerRune,
	}
}

func (h *HoverText) Text() string { return h.text }

func (h *HoverText) Update() bool {
	h.lifespan--
	return h.lifespan > 0
}

func (h *HoverText) Depth() int { return parameter.DepthWorld }

func (h *HoverText) Tags() engine.Tag { return engine.TagTransient | engine.TagRoomScoped }

func (h *HoverText) Render(s engine.Surface) {
	p := h.follow.Pos()
	box := vmath.Rect{
		X:      p.X - parameter.HoverTextWidth/2,
		Y:      p.Y - utf8.RuneCountInString(h.text),
		Width:  parameter.HoverTextWidth,
		Height: parameter.HoverTextHeight,
	}
	if box.X < 0 {
		box.X = 0
	}
	s.DrawText(h.text, box, hoverFg, hoverBg)
}

// Indicator marks the character's current teleport pivot
type Indicator struct {
	engine.Base
	env *Env
}

func NewIndicator(env *Env) *Indicator {
	return &Indicator{env: env}
}

func (i *Indicator) Update() bool     { return true }
func (i *Indicator) Depth() int       { return parameter.DepthOverlay }
func (i *Indicator) Tags() engine.Tag { return 0 }

func (i *Indicator) Render(s engine.Surface) {
	if i.env.Char == nil {
		return
	}
	target, ok := i.env.Reg.NearestEscapeTarget(i.env.Char.Pos())
	if !ok {
		return
	}
	p, _ := target.EscapePoint()
	s.DrawSprite(i.env.sprite(cellIndicator), p.X, p.Y, engine.DrawOpts{Scale: 2})
}

// HUD draws hearts and collected treasure
type HUD struct {
	engine.Base
	env *Env
}

func NewHUD(env *Env) *HUD {
	return &HUD{env: env}
}

func (h *HUD) Update() bool     { return true }
func (h *HUD) Depth() int       { return parameter.DepthOverlay }
func (h *HUD) Tags() engine.Tag { return 0 }

func (h *HUD) Render(s engine.Surface) {
	c := h.env.Char
	if c == nil {
		return
	}
	const t = parameter.TileSize
	for i := 0; i < c.MaxHealth; i++ {
		cell := cellHeartLost
		if c.Health > i {
			cell = cellHeart
		}
		s.DrawSprite(h.env.sprite(cell), t+i*t, t, engine.DrawOpts{})
	}
	for i := 0; i < c.Gold(); i++ {
		s.DrawSprite(h.env.sprite(cellTreasure), t+i*t, 2*t, engine.DrawOpts{})
	}
}
