package draw

import (
	"image"
	"testing"
)

func TestRectangle(t *testing.T) {
	r := newRecorder()
	Rectangle(r, image.Rect(0, 0, 4, 3))

	want := []image.Point{
		{0, 0}, {1, 0}, {2, 0}, {3, 0},
		{0, 1}, {3, 1},
		{0, 2}, {1, 2}, {2, 2}, {3, 2},
	}
	if len(r.pts) != len(want) {
		t.Fatalf("expected %d pixels, got %d: %v", len(want), len(r.pts), r.pts)
	}
	for _, p := range want {
		if !r.pts[p] {
			t.Errorf("missing pixel %v", p)
		}
	}
}

func TestBox(t *testing.T) {
	r := newRecorder()
	Box(r, image.Rect(1, 1, 4, 4))

	if len(r.pts) != 9 {
		t.Fatalf("expected 9 pixels, got %d", len(r.pts))
	}
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			if !r.pts[image.Pt(x, y)] {
				t.Errorf("missing pixel (%d, %d)", x, y)
			}
		}
	}
}

func TestPolyline(t *testing.T) {
	r := newRecorder()
	Polyline(r, image.Pt(0, 0), image.Pt(3, 0), image.Pt(3, 3))

	for x := 0; x <= 3; x++ {
		if !r.pts[image.Pt(x, 0)] {
			t.Errorf("missing pixel (%d, 0)", x)
		}
	}
	for y := 0; y <= 3; y++ {
		if !r.pts[image.Pt(3, y)] {
			t.Errorf("missing pixel (3, %d)", y)
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	const x0, y0, radius = 10, 10, 7

	r := newRecorder()
	Circle(r, x0, y0, radius)

	if !r.pts[image.Pt(x0, y0+radius)] || !r.pts[image.Pt(x0, y0-radius)] ||
		!r.pts[image.Pt(x0+radius, y0)] || !r.pts[image.Pt(x0-radius, y0)] {
		t.Error("missing cardinal points")
	}

	// Every plotted point must have its mirror in both axes.
	for p := range r.pts {
		dx, dy := p.X-x0, p.Y-y0
		for _, q := range []image.Point{
			{x0 - dx, y0 + dy},
			{x0 + dx, y0 - dy},
			{x0 + dy, y0 + dx},
		} {
			if !r.pts[q] {
				t.Errorf("point %v has no mirror %v", p, q)
			}
		}
	}
}

func TestCircleDegenerate(t *testing.T) {
	r := newRecorder()
	Circle(r, 5, 5, 0)
	if len(r.pts) != 1 || !r.pts[image.Pt(5, 5)] {
		t.Errorf("radius 0 should plot the center only, got %v", r.pts)
	}

	r = newRecorder()
	Circle(r, 5, 5, -1)
	if len(r.pts) != 0 {
		t.Errorf("negative radius should plot nothing, got %v", r.pts)
	}
}
