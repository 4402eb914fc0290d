// Package pixel implements the color value and pixel surface used by the
// raster engine.
//
// The Surface type is compatible with Go's native [color.Color] and
// [image.Image] / [draw.Image] interfaces.
package pixel
