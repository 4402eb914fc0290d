package draw

import (
	"errors"

	"github.com/BeatGlow/raster/geom"
)

// Edge matrix errors.
var (
	ErrOddEdgeCount = errors.New("draw: edge matrix must have an even number of rows")
	ErrShortEdge    = errors.New("draw: edge matrix rows need at least x, y and z values")
)

// Edges renders an edge matrix: consecutive row pairs (2i, 2i+1) are the
// endpoints of one segment. The first two values of each row are the x and y
// coordinates; the third (z) is ignored by this 2D renderer.
func Edges(dst Plotter, m *geom.Matrix) error {
	rows, cols := m.Dims()
	if rows%2 != 0 {
		return ErrOddEdgeCount
	}
	if rows > 0 && cols < 3 {
		return ErrShortEdge
	}

	var p0 []float64
	for p := range m.ByRow() {
		if p0 == nil {
			p0 = p
			continue
		}
		Line(dst, p0[0], p0[1], p[0], p[1])
		p0 = nil
	}
	return nil
}
