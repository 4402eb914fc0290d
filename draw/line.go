package draw

import "math"

// Line draws a straight segment between two real-valued endpoints.
//
// The endpoints are rounded to the nearest integer and the segment is walked
// with integer steps only, advancing one pixel along the major axis per
// iteration. The decision variable is always updated by twice the
// directional delta; halving it distorts the slope.
func Line(dst Plotter, x0, y0, x1, y1 float64) {
	// Always walk left to right.
	if x0 > x1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	ix0, iy0 := round(x0), round(y0)
	ix1, iy1 := round(x1), round(y1)

	dy, ndx := iy1-iy0, -(ix1 - ix0)

	switch {
	case ndx == 0: // vertical
		if iy0 > iy1 {
			iy0, iy1 = iy1, iy0
		}
		for y := iy0; y <= iy1; y++ {
			dst.Plot(ix0, y)
		}

	case dy == 0: // horizontal, x already ordered
		for x := ix0; x <= ix1; x++ {
			dst.Plot(x, iy0)
		}

	case abs(dy) < ix1-ix0:
		// Octants 1 and 8: one pixel per x.
		d := 2*dy + ndx
		yInc := 1
		if dy < 0 {
			// Octant 8: dy is negative, flip it to balance out with ndx.
			yInc, dy = -1, -dy
		}
		y := iy0
		for x := ix0; x <= ix1; x++ {
			dst.Plot(x, y)
			if d > 0 {
				y += yInc
				d += 2 * ndx
			}
			d += 2 * dy
		}

	default:
		// Octants 2 and 7: one pixel per y.
		d := -2*ndx - dy
		x, xInc := ix0, 1
		ystart, yend := iy0, iy1
		if dy < 0 {
			// Octant 7: reflect over y=-x, starting from the right endpoint.
			xInc, x = -1, ix0-ndx
			ystart, yend, dy = iy1, iy0, -dy
		}
		for y := ystart; y <= yend; y++ {
			dst.Plot(x, y)
			if d > 0 {
				x += xInc
				d -= 2 * dy
			}
			d -= 2 * ndx
		}
	}
}

// LinePolar draws a segment of the given magnitude from (x0, y0) at an angle
// measured counter-clockwise in degrees from the positive x axis. It returns
// the computed second endpoint.
func LinePolar(dst Plotter, x0, y0, angle, mag float64) (x1, y1 float64) {
	dx, dy := PolarToXY(mag, angle)
	x1, y1 = x0+dx, y0+dy
	Line(dst, x0, y0, x1, y1)
	return x1, y1
}

// PolarToXY converts a magnitude and an angle in degrees to cartesian deltas.
func PolarToXY(mag, angle float64) (dx, dy float64) {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return cos * mag, sin * mag
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
