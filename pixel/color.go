package pixel

import "image/color"

// Model converts any [color.Color] to RGB.
var Model color.Model = color.ModelFunc(rgbModel)

// RGB is a red-green-blue color with up to 16 bits per channel.
//
// Channel values are relative to the depth of the surface that stores them:
// a channel equal to the surface depth is full intensity. The zero value is
// black.
type RGB struct {
	R, G, B uint16
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	return uint32(c.R), uint32(c.G), uint32(c.B), 0xffff
}

func rgbModel(c color.Color) color.Color {
	if c, ok := c.(RGB); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: uint16(r), G: uint16(g), B: uint16(b)}
}

// Gray returns the gray level y on all three channels.
func Gray(y uint16) RGB {
	return RGB{R: y, G: y, B: y}
}

// scale maps a 16-bit channel value onto the [0, depth] range.
func scale(v uint32, depth uint16) uint16 {
	return uint16(v * uint32(depth) / 0xffff)
}

func clampChannel(v, depth uint16) uint16 {
	if v > depth {
		return depth
	}
	return v
}

// Clamp returns c with every channel limited to depth.
func (c RGB) Clamp(depth uint16) RGB {
	return RGB{
		R: clampChannel(c.R, depth),
		G: clampChannel(c.G, depth),
		B: clampChannel(c.B, depth),
	}
}
