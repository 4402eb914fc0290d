// Package draw rasterizes lines and simple shapes onto a plottable surface.
package draw

import (
	"image"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Plotter is a surface that can plot single pixels in its current
// foreground color. Coordinates outside the surface are handled by the
// surface's own addressing policy (wraparound or silent drop).
type Plotter interface {
	Plot(x, y int)
}

// Draw calls [draw.Draw] from the standard library.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op draw.Op) {
	draw.Draw(dst, r, src, sp, op)
}
