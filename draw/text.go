package draw

import (
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ParseFont parses TrueType font data.
func ParseFont(data []byte) (*truetype.Font, error) {
	return freetype.ParseFont(data)
}

// Text renders s onto dst with the given TrueType font. The point (x, y) is
// the baseline origin of the first glyph, size is in points at 72 DPI.
func Text(dst Image, f *truetype.Font, size float64, x, y int, c color.Color, s string) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	_, err := ctx.DrawString(s, freetype.Pt(x, y))
	return err
}

// BasicText renders s onto dst with the fixed 7x13 bitmap face. The point
// (x, y) is the baseline origin of the first glyph.
func BasicText(dst Image, x, y int, c color.Color, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
