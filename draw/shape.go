package draw

import "image"

// Rectangle draws the outline of a rectangle.
func Rectangle(dst Plotter, r image.Rectangle) {
	Line(dst, float64(r.Min.X), float64(r.Min.Y), float64(r.Max.X-1), float64(r.Min.Y))
	Line(dst, float64(r.Min.X), float64(r.Max.Y-1), float64(r.Max.X-1), float64(r.Max.Y-1))
	Line(dst, float64(r.Min.X), float64(r.Min.Y), float64(r.Min.X), float64(r.Max.Y-1))
	Line(dst, float64(r.Max.X-1), float64(r.Min.Y), float64(r.Max.X-1), float64(r.Max.Y-1))
}

// Box draws a filled rectangle.
func Box(dst Plotter, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		Line(dst, float64(r.Min.X), float64(y), float64(r.Max.X-1), float64(y))
	}
}

// Polyline draws segments connecting consecutive points.
func Polyline(dst Plotter, pts ...image.Point) {
	for i := 1; i < len(pts); i++ {
		Line(dst,
			float64(pts[i-1].X), float64(pts[i-1].Y),
			float64(pts[i].X), float64(pts[i].Y))
	}
}

// Circle draws a circle outline around (x0, y0) using the midpoint
// algorithm.
func Circle(dst Plotter, x0, y0, radius int) {
	if radius < 0 {
		return
	}
	dst.Plot(x0, y0+radius)
	dst.Plot(x0, y0-radius)
	dst.Plot(x0+radius, y0)
	dst.Plot(x0-radius, y0)

	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		dst.Plot(x0+x, y0+y)
		dst.Plot(x0-x, y0+y)
		dst.Plot(x0+x, y0-y)
		dst.Plot(x0-x, y0-y)
		dst.Plot(x0+y, y0+x)
		dst.Plot(x0-y, y0+x)
		dst.Plot(x0+y, y0-x)
		dst.Plot(x0-y, y0-x)
	}
}
