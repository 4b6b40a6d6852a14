package render

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

const (
	// tileCols is the number of terminal columns one tile spans, keeping tiles roughly square
	tileCols = 2
	// PanelRows is the text area under the room
	PanelRows = 4
)

// Layout of the composited frame in terminal cells
const (
	ViewCols = parameter.RoomSize * tileCols
	ViewRows = parameter.RoomSize
)

type spriteColor struct {
	c       colorful.Color
	visible bool
}

// Terminal is the engine.Surface drawing a room onto a tcell screen
// Every sprite becomes a block of its average colour; the first error of a frame is kept and later draws are ignored
type Terminal struct {
	screen tcell.Screen
	sheets engine.SheetProvider
	buf    *Buffer

	sprites map[engine.Sprite]spriteColor
	glyphs  map[string]rune
	err     error
}

// NewTerminal creates a surface over screen that resolves sprites through sheets
func NewTerminal(screen tcell.Screen, sheets engine.SheetProvider) *Terminal {
	return &Terminal{
		screen:  screen,
		sheets:  sheets,
		buf:     NewBuffer(ViewCols, ViewRows+PanelRows),
		sprites: make(map[engine.Sprite]spriteColor),
		glyphs:  make(map[string]rune),
	}
}

// SetGlyph draws every sprite of sheet as a single glyph instead of a colour block
func (t *Terminal) SetGlyph(sheet string, r rune) {
	t.glyphs[sheet] = r
}

// Buffer exposes the frame being composed
func (t *Terminal) Buffer() *Buffer { return t.buf }

// cellOf maps a room pixel to the nearest terminal cell
func cellOf(x, y int) (col, row int) {
	T := parameter.TileSize
	return vmath.FloorDiv(x*tileCols+T/2, T), vmath.FloorDiv(y+T/2, T)
}

// Begin starts a new frame, dropping the previous frame's error
func (t *Terminal) Begin() {
	t.buf.Clear()
	t.err = nil
}

func (t *Terminal) spriteColor(sp engine.Sprite) (spriteColor, error) {
	if sc, ok := t.sprites[sp]; ok {
		return sc, nil
	}
	img, err := t.sheets.Tile(sp.Sheet, sp.X, sp.Y)
	if err != nil {
		return spriteColor{}, fmt.Errorf("sprite %s (%d, %d): %w", sp.Sheet, sp.X, sp.Y, err)
	}
	c, ok := averageColor(img)
	sc := spriteColor{c: c, visible: ok}
	t.sprites[sp] = sc
	return sc, nil
}

func (t *Terminal) DrawSprite(sp engine.Sprite, x, y int, opts engine.DrawOpts) {
	if t.err != nil {
		return
	}
	sc, err := t.spriteColor(sp)
	if err != nil {
		t.err = err
		return
	}
	if !sc.visible {
		return
	}

	col, row := cellOf(x, y)
	if r, ok := t.glyphs[sp.Sheet]; ok {
		t.buf.SetRune(col, row, r, sc.c)
		return
	}

	scale := max(opts.Scale, 1)
	for dy := 0; dy < scale; dy++ {
		for dx := 0; dx < scale*tileCols; dx++ {
			if opts.Ghost {
				t.buf.BlendBg(col+dx, row+dy, blend(sc.c, ColorGhost, 0.5), ghostAlpha)
				continue
			}
			t.buf.SetBg(col+dx, row+dy, sc.c)
		}
	}
}

func (t *Terminal) DrawText(text string, box vmath.Rect, fg, bg color.RGBA) {
	if t.err != nil {
		return
	}
	col, row := cellOf(box.X, box.Y)
	width := box.Width * tileCols / parameter.TileSize
	t.text(col, row, width, text, toColorful(fg), toColorful(bg))
}

// Panel writes wrapped text into the area under the room, replacing what was there
func (t *Terminal) Panel(text string, fg, bg colorful.Color) {
	for r := 0; r < PanelRows; r++ {
		for c := 0; c < ViewCols; c++ {
			t.buf.SetBg(c, ViewRows+r, bg)
		}
	}
	t.text(0, ViewRows, ViewCols, text, fg, bg)
}

// text draws wrapped lines with a filled background, at most to the bottom of the buffer
func (t *Terminal) text(col, row, width int, text string, fg, bg colorful.Color) {
	_, height := t.buf.Size()
	for i, line := range Wrap(text, width) {
		y := row + i
		if y >= height {
			return
		}
		for c := 0; c < width; c++ {
			t.buf.SetBg(col+c, y, bg)
		}
		x := col
		for _, r := range line {
			t.buf.SetRune(x, y, r, fg)
			x += runewidth.RuneWidth(r)
		}
	}
}

// Fade darkens the whole frame toward black
func (t *Terminal) Fade(amount float64) {
	if amount <= 0 {
		return
	}
	t.buf.Apply(func(c colorful.Color) colorful.Color { return blend(c, ColorBlack, amount) })
}

// Blur washes the frame out, desaturating and smearing cells into their right neighbour
func (t *Terminal) Blur(amount float64) {
	if amount <= 0 {
		return
	}
	t.buf.Apply(func(c colorful.Color) colorful.Color { return desaturate(c, amount) })
	w, h := t.buf.Size()
	for y := 0; y < h; y++ {
		for x := w - 1; x > 0; x-- {
			t.buf.BlendBg(x, y, t.buf.At(x-1, y).Bg, amount/2)
		}
	}
}

func (t *Terminal) Err() error { return t.err }

// Show centres the frame on the screen and displays it
func (t *Terminal) Show() {
	w, h := t.buf.Size()
	sw, sh := t.screen.Size()
	ox, oy := max((sw-w)/2, 0), max((sh-h)/2, 0)

	t.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(ColorBlack)))
	t.buf.Flush(t.screen, ox, oy)
	t.screen.Show()
}
