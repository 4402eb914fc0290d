package raster

import (
	"errors"
	"math"
	"testing"

	"github.com/BeatGlow/raster/pixel"
)

func testSurface(t *testing.T) *pixel.Surface {
	t.Helper()
	s, err := pixel.New(16, 16, 255)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func countForeground(s *pixel.Surface) int {
	var n int
	for _, p := range s.Pix {
		if p == s.Foreground {
			n++
		}
	}
	return n
}

func TestTurtleClaim(t *testing.T) {
	s := testSurface(t)

	first, err := NewTurtle(s, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewTurtle(s, 0, 0); !errors.Is(err, pixel.ErrClaimed) {
		t.Errorf("expected ErrClaimed for a second turtle, got %v", err)
	}

	got := first.Surface()
	if got != s {
		t.Error("Surface did not return the original surface")
	}
	if _, err := NewTurtle(s, 0, 0); err != nil {
		t.Errorf("expected claim after release, got %v", err)
	}
}

func TestTurtleForward(t *testing.T) {
	s := testSurface(t)
	tu, err := NewTurtle(s, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Pen up: movement only.
	tu.Forward(5)
	if x, y := tu.Position(); math.Abs(x-7) > 1e-9 || math.Abs(y-2) > 1e-9 {
		t.Errorf("expected position (7, 2), got (%v, %v)", x, y)
	}
	if n := countForeground(tu.Surface()); n != 0 {
		t.Errorf("pen-up movement drew %d pixels", n)
	}
}

func TestTurtleDraws(t *testing.T) {
	s := testSurface(t)
	tu, err := NewTurtle(s, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	tu.Down = true
	tu.Forward(5)

	s = tu.Surface()
	for x := 2; x <= 7; x++ {
		if s.Pix[2*16+x] != s.Foreground {
			t.Errorf("missing pixel (%d, 2)", x)
		}
	}
}

func TestTurtleTurn(t *testing.T) {
	s := testSurface(t)
	tu, err := NewTurtle(s, 8, 8)
	if err != nil {
		t.Fatal(err)
	}

	tu.Turn(90)
	tu.Forward(4)
	if x, y := tu.Position(); math.Abs(x-8) > 1e-9 || math.Abs(y-12) > 1e-9 {
		t.Errorf("expected position (8, 12), got (%v, %v)", x, y)
	}

	tu.Turn(300)
	if tu.Heading != 30 {
		t.Errorf("expected heading to wrap to 30, got %v", tu.Heading)
	}
}

func TestTurtleMoveTo(t *testing.T) {
	s := testSurface(t)
	tu, err := NewTurtle(s, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	tu.Down = true
	tu.MoveTo(3, 3)

	s = tu.Surface()
	for i := 0; i <= 3; i++ {
		if s.Pix[i*16+i] != s.Foreground {
			t.Errorf("missing pixel (%d, %d)", i, i)
		}
	}
}

func TestTurtleColor(t *testing.T) {
	s := testSurface(t)
	tu, err := NewTurtle(s, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	c := pixel.RGB{R: 200, G: 100}
	tu.SetColor(c)
	if tu.Color() != c {
		t.Errorf("expected color %v, got %v", c, tu.Color())
	}
	if s.Foreground != c {
		t.Error("SetColor did not update the surface foreground")
	}
}
