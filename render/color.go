package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Frame colours
var (
	ColorBackground = colorful.Color{R: 0.10, G: 0.11, B: 0.15}
	ColorBlack      = colorful.Color{}
	ColorGhost      = colorful.Color{R: 0.75, G: 0.85, B: 1}

	// Narration box
	ColorDialogFg = colorful.Color{R: 0.04, G: 0.04, B: 0.04}
	ColorDialogBg = colorful.Color{R: 0.82, G: 1, B: 1}

	ColorStatusFg = colorful.Color{R: 0.6, G: 0.62, B: 0.7}
)

// ghostAlpha is how strongly a ghost sprite tints the cell under it
const ghostAlpha = 0.35

// toColorful converts any image colour, ignoring alpha
func toColorful(c color.Color) colorful.Color {
	cc, _ := colorful.MakeColor(opaque(c))
	return cc
}

func opaque(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}
}

// toTcell converts to a 24-bit terminal colour
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// averageColor returns the mean of the non-transparent pixels of img
// ok is false for a fully transparent image
func averageColor(img image.Image) (avg colorful.Color, ok bool) {
	var r, g, b float64
	n := 0
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.At(x, y)
			if _, _, _, a := px.RGBA(); a == 0 {
				continue
			}
			c := toColorful(px)
			r += c.R
			g += c.G
			b += c.B
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: r / float64(n), G: g / float64(n), B: b / float64(n)}, true
}

// blend mixes src over dst by alpha in linear RGB
func blend(dst, src colorful.Color, alpha float64) colorful.Color {
	switch {
	case alpha <= 0:
		return dst
	case alpha >= 1:
		return src
	}
	return dst.BlendLinearRgb(src, alpha)
}

// desaturate pulls c toward its own grey by amount
func desaturate(c colorful.Color, amount float64) colorful.Color {
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s*(1-amount), l)
}
