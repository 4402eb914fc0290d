package draw

import (
	"errors"
	"image"
	"testing"

	"github.com/BeatGlow/raster/geom"
)

func edgeMatrix(t *testing.T, points ...[]float64) *geom.Matrix {
	t.Helper()
	m, err := geom.New(0, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range points {
		if err := m.AppendEdge(p); err != nil {
			t.Fatal(err)
		}
	}
	return m
}

func TestEdges(t *testing.T) {
	m := edgeMatrix(t,
		[]float64{0, 0, 0},
		[]float64{3, 0, 0},
		[]float64{0, 2, 5}, // z values are ignored
		[]float64{0, 5, -5},
	)

	r := newRecorder()
	if err := Edges(r, m); err != nil {
		t.Fatal(err)
	}

	for x := 0; x <= 3; x++ {
		if !r.pts[image.Pt(x, 0)] {
			t.Errorf("missing pixel (%d, 0)", x)
		}
	}
	for y := 2; y <= 5; y++ {
		if !r.pts[image.Pt(0, y)] {
			t.Errorf("missing pixel (0, %d)", y)
		}
	}
	if len(r.pts) != 8 {
		t.Errorf("expected 8 pixels, got %d", len(r.pts))
	}
}

func TestEdgesOddRowCount(t *testing.T) {
	m := edgeMatrix(t,
		[]float64{0, 0, 0},
		[]float64{3, 0, 0},
		[]float64{0, 2, 0},
	)

	if err := Edges(newRecorder(), m); !errors.Is(err, ErrOddEdgeCount) {
		t.Errorf("expected ErrOddEdgeCount, got %v", err)
	}
}

func TestEdgesShortRows(t *testing.T) {
	m, err := geom.New(2, 2, []float64{0, 0, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := Edges(newRecorder(), m); !errors.Is(err, ErrShortEdge) {
		t.Errorf("expected ErrShortEdge, got %v", err)
	}
}

func TestEdgesEmpty(t *testing.T) {
	m, err := geom.New(0, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	r := newRecorder()
	if err := Edges(r, m); err != nil {
		t.Fatal(err)
	}
	if len(r.pts) != 0 {
		t.Errorf("expected no pixels, got %v", r.pts)
	}
}
