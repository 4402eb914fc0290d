package raster

import (
	"math"

	"github.com/BeatGlow/raster/draw"
	"github.com/BeatGlow/raster/pixel"
)

// Turtle is a stateful drawing cursor: a position, a heading in degrees
// counter-clockwise from the positive x axis, and a pen that draws lines on
// the underlying surface while down.
//
// A turtle takes exclusive ownership of its surface; at most one turtle may
// drive a surface at a time. Surface consumes the turtle and hands the
// surface back.
type Turtle struct {
	// Heading in degrees, counter-clockwise from the positive x axis.
	Heading float64

	// Down is the pen state; while down, movement draws.
	Down bool

	x, y float64
	s    *pixel.Surface
}

// NewTurtle places a turtle on the surface. It fails with
// [pixel.ErrClaimed] if another cursor already drives the surface.
func NewTurtle(s *pixel.Surface, x, y float64) (*Turtle, error) {
	if err := s.Claim(); err != nil {
		return nil, err
	}
	return &Turtle{x: x, y: y, s: s}, nil
}

// Position returns the current position.
func (t *Turtle) Position() (x, y float64) {
	return t.x, t.y
}

// Forward moves the turtle the given number of steps along its heading,
// drawing a line if the pen is down.
func (t *Turtle) Forward(steps int) {
	dx, dy := draw.PolarToXY(float64(steps), t.Heading)
	t.MoveTo(t.x+dx, t.y+dy)
}

// Turn rotates the heading counter-clockwise by the given degrees.
func (t *Turtle) Turn(deg float64) {
	t.Heading = math.Mod(t.Heading+deg, 360)
}

// MoveTo moves the turtle to (x, y), drawing a line if the pen is down.
func (t *Turtle) MoveTo(x, y float64) {
	if t.Down {
		draw.Line(t.s, t.x, t.y, x, y)
	}
	t.x, t.y = x, y
}

// SetColor changes the surface foreground color the pen draws with.
func (t *Turtle) SetColor(c pixel.RGB) {
	t.s.Foreground = c
}

// Color returns the current pen color.
func (t *Turtle) Color() pixel.RGB {
	return t.s.Foreground
}

// Surface consumes the turtle and returns its surface. The turtle must not
// be used afterwards; the surface is free to be claimed by a new cursor.
func (t *Turtle) Surface() *pixel.Surface {
	s := t.s
	t.s = nil
	s.Release()
	return s
}
