package pixel

import (
	"errors"
	"image"
	"image/color"

	"github.com/BeatGlow/raster/draw"
)

// Surface errors.
var (
	ErrSize    = errors.New("pixel: surface dimensions must be positive")
	ErrClaimed = errors.New("pixel: surface is already driven by a cursor")
)

// Surface is a dense buffer of color values indexed by (x, y), stored in
// row-major order.
//
// Plotting uses the Foreground color and honors the per-axis wraparound
// flags. Every channel of every stored color is expected to stay at or
// below Depth; Plot and Clear maintain this as long as Foreground and
// Background do.
type Surface struct {
	// Depth is the maximum channel value, up to 65535.
	Depth uint16

	// XWrap and YWrap enable wraparound addressing per axis.
	XWrap, YWrap bool

	// Foreground is the color written by Plot.
	Foreground RGB

	// Background is the color written by Clear.
	Background RGB

	// Pix holds the pixels in row-major order, index = y*width + x.
	Pix []RGB

	width, height int
	claimed       bool
}

// New creates a surface of the given dimensions with all pixels set to the
// background color. The default background is black, the default foreground
// is full white (all channels equal to depth).
func New(height, width int, depth uint16) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrSize
	}
	return &Surface{
		Depth:      depth,
		Foreground: RGB{R: depth, G: depth, B: depth},
		Pix:        make([]RGB, width*height),
		width:      width,
		height:     height,
	}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Plot sets the pixel at (x, y) to the foreground color.
//
// On an axis with wraparound enabled, the coordinate is reduced modulo the
// axis extent, always yielding a non-negative result. On an axis without
// wraparound, an out-of-range coordinate makes the call a no-op.
func (s *Surface) Plot(x, y int) {
	if (!s.XWrap && (x < 0 || x >= s.width)) || (!s.YWrap && (y < 0 || y >= s.height)) {
		return
	}
	x = wrap(x, s.width)
	y = wrap(y, s.height)
	s.Pix[y*s.width+x] = s.Foreground
}

func wrap(v, extent int) int {
	if v >= 0 && v < extent {
		return v
	}
	v %= extent
	if v < 0 {
		v += extent
	}
	return v
}

// Clear overwrites every pixel with the background color.
func (s *Surface) Clear() {
	bg := s.Background
	for i := range s.Pix {
		s.Pix[i] = bg
	}
}

// Fill overwrites every pixel with the given color.
func (s *Surface) Fill(c RGB) {
	for i := range s.Pix {
		s.Pix[i] = c
	}
}

// Claim marks the surface as exclusively driven by a stateful cursor.
// It fails if the surface is already claimed. Release returns the claim.
func (s *Surface) Claim() error {
	if s.claimed {
		return ErrClaimed
	}
	s.claimed = true
	return nil
}

// Release returns a claim taken with Claim.
func (s *Surface) Release() {
	s.claimed = false
}

// ColorModel implements the [image.Image] interface.
func (s *Surface) ColorModel() color.Model {
	return Model
}

// Bounds implements the [image.Image] interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// At implements the [image.Image] interface.
func (s *Surface) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(s.Bounds()) {
		return color.Transparent
	}
	return s.Pix[y*s.width+x]
}

// Set implements the [draw.Image] interface. Colors from other models are
// scaled onto the [0, Depth] channel range.
func (s *Surface) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(s.Bounds()) {
		return
	}
	s.Pix[y*s.width+x] = s.convert(c)
}

func (s *Surface) convert(c color.Color) RGB {
	if c, ok := c.(RGB); ok {
		return c.Clamp(s.Depth)
	}
	r, g, b, _ := c.RGBA()
	return RGB{
		R: scale(r, s.Depth),
		G: scale(g, s.Depth),
		B: scale(b, s.Depth),
	}
}

// Interface checks.
var (
	_ image.Image  = (*Surface)(nil)
	_ draw.Image   = (*Surface)(nil)
	_ draw.Plotter = (*Surface)(nil)
)
