package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
}

var emptyCell = Cell{Rune: ' ', Fg: ColorBackground, Bg: ColorBackground}

// Buffer is a compositor over a fixed grid of cells
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{cells: make([]Cell, width*height), width: width, height: height}
	b.Clear()
	return b
}

func (b *Buffer) Size() (int, int) { return b.width, b.height }

// Clear resets all cells using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y); out of bounds reads as empty
func (b *Buffer) At(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// SetBg paints an opaque background, clearing the glyph
func (b *Buffer) SetBg(x, y int, bg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: ' ', Fg: bg, Bg: bg}
}

// BlendBg tints the background by alpha, keeping the glyph
func (b *Buffer) BlendBg(x, y int, bg colorful.Color, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = blend(c.Bg, bg, alpha)
}

// SetRune writes a glyph and foreground, keeping the background
func (b *Buffer) SetRune(x, y int, r rune, fg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// Apply transforms every cell's colours in place
func (b *Buffer) Apply(fn func(colorful.Color) colorful.Color) {
	for i := range b.cells {
		b.cells[i].Fg = fn(b.cells[i].Fg)
		b.cells[i].Bg = fn(b.cells[i].Bg)
	}
}

// Flush writes the buffer to the screen at offset (ox, oy)
func (b *Buffer) Flush(screen tcell.Screen, ox, oy int) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(toTcell(c.Fg)).Background(toTcell(c.Bg))
			screen.SetContent(ox+x, oy+y, c.Rune, nil, style)
		}
	}
}
