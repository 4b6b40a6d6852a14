package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io/fs"
	"sync"
)

// ErrUnknownSheet is returned for a sheet that is neither registered nor present on disk
var ErrUnknownSheet = errors.New("unknown tile sheet")

// SheetCache loads PNG tile sheets on first use and serves fixed-size cells from them
type SheetCache struct {
	mu     sync.Mutex
	fsys   fs.FS
	cell   int
	sheets map[string]*image.RGBA
}

// NewSheetCache serves cell×cell tiles from PNG files in fsys; fsys may be nil
func NewSheetCache(fsys fs.FS, cell int) *SheetCache {
	return &SheetCache{fsys: fsys, cell: cell, sheets: make(map[string]*image.RGBA)}
}

// Register installs an in-memory sheet, replacing any cached one
func (c *SheetCache) Register(name string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sheets[name] = toRGBA(img)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

func (c *SheetCache) sheet(name string) (*image.RGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.sheets[name]; ok {
		return img, nil
	}
	if c.fsys == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSheet)
	}
	f, err := c.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownSheet)
		}
		return nil, fmt.Errorf("open sheet %q: %w", name, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sheet %q: %w", name, err)
	}
	rgba := toRGBA(img)
	c.sheets[name] = rgba
	return rgba, nil
}

// Size returns the sheet extent in cells
func (c *SheetCache) Size(name string) (cols, rows int, err error) {
	img, err := c.sheet(name)
	if err != nil {
		return 0, 0, err
	}
	b := img.Bounds()
	return b.Dx() / c.cell, b.Dy() / c.cell, nil
}

// Tile returns cell (x, y) of a sheet as a sub-image sharing the sheet's pixels
func (c *SheetCache) Tile(name string, x, y int) (image.Image, error) {
	img, err := c.sheet(name)
	if err != nil {
		return nil, err
	}
	r := image.Rect(x*c.cell, y*c.cell, (x+1)*c.cell, (y+1)*c.cell)
	if x < 0 || y < 0 || !r.In(img.Bounds()) {
		return nil, fmt.Errorf("sheet %q has no tile (%d, %d)", name, x, y)
	}
	return img.SubImage(r), nil
}
