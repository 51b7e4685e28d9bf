// Package bresenham implements a bidirectional line stepper with the
// Bresenham algorithm. Besides stepping forward and backward along a
// line, the stepper can step perpendicular to it, away from a point on
// the inside of the line.
package bresenham

import (
	"errors"
	"fmt"
	"image"
	"iter"
)

var (
	// ErrStepMagnitude is returned when a step moves more than one
	// unit along the line.
	ErrStepMagnitude = errors.New("bresenham: invalid travel step")
	// ErrAxisMismatch is returned when the outward direction lies on
	// the major axis of the line.
	ErrAxisMismatch = errors.New("bresenham: outward step on major axis")
)

// Line steps along the line from one endpoint to another. The zero
// value is not useful; use New. Line contains no references, so a copy
// steps independently of the original.
type Line struct {
	loc0, loc1 image.Point
	// xStep, yStep is the direction from loc0 towards loc1.
	xStep, yStep int
	// xDelta, yDelta is the absolute line vector.
	xDelta, yDelta int
	// steep is true if the major axis is y.
	steep bool
	// xOut, yOut is the outward direction. It is zero on the
	// major axis.
	xOut, yOut int

	loc     image.Point
	travel  int
	outward int
	// err is the minor axis error, in the range [0, major delta).
	err int
}

// New returns a stepper positioned at p0 for the line from p0 to p1.
// The outward direction is chosen on the minor axis, away from the side
// of the line that contains inside.
func New(p0, p1, inside image.Point) Line {
	l := Line{
		loc0:   p0,
		loc1:   p1,
		xStep:  -1,
		yStep:  -1,
		xDelta: abs(p1.X - p0.X),
		yDelta: abs(p1.Y - p0.Y),
		loc:    p0,
	}
	if p0.X < p1.X {
		l.xStep = +1
	}
	if p0.Y < p1.Y {
		l.yStep = +1
	}
	l.steep = l.yDelta > l.xDelta

	// Orient the line up (steep) or left before taking the cross
	// product, so its sign depends only on the side of inside.
	beg, end := p0, p1
	if l.steep {
		if p0.Y >= p1.Y {
			beg, end = p1, p0
		}
	} else {
		if p0.X <= p1.X {
			beg, end = p1, p0
		}
	}
	d, in := end.Sub(beg), inside.Sub(end)
	out := -1
	if d.X*in.Y-d.Y*in.X > 0 {
		out = +1
	}
	if l.steep {
		l.xOut = out
		l.err = l.yDelta / 2
	} else {
		l.yOut = out
		l.err = l.xDelta / 2
	}
	return l
}

// Step moves the stepper one unit along the line, forward towards the
// end point if travel is 1 and backward if travel is -1, followed by
// outward steps away from the inside of the line.
func (l *Line) Step(travel, outward int) error {
	if travel >= 2 || travel <= -2 {
		return fmt.Errorf("%w: %d", ErrStepMagnitude, travel)
	}
	switch {
	case travel > 0:
		l.travel++
		if l.steep {
			l.loc.Y += l.yStep
			l.err -= l.xDelta
			if l.err < 0 {
				l.loc.X += l.xStep
				l.err += l.yDelta
			}
		} else {
			l.loc.X += l.xStep
			l.err -= l.yDelta
			if l.err < 0 {
				l.loc.Y += l.yStep
				l.err += l.xDelta
			}
		}
	case travel < 0:
		l.travel--
		if l.steep {
			l.loc.Y -= l.yStep
			l.err += l.xDelta
			if l.err >= l.yDelta {
				l.loc.X -= l.xStep
				l.err -= l.yDelta
			}
		} else {
			l.loc.X -= l.xStep
			l.err += l.yDelta
			if l.err >= l.xDelta {
				l.loc.Y -= l.yStep
				l.err -= l.xDelta
			}
		}
	}
	for range max(outward, 0) {
		l.outward++
		l.loc.X += l.xOut
		l.loc.Y += l.yOut
	}
	return nil
}

// StepTo steps along the line towards target and returns the travel
// taken and the number of outward steps that remain to reach target.
// The outward steps are not taken. Target must be within one unit of
// the current location along the major axis.
func (l *Line) StepTo(target image.Point) (travel, outward int, err error) {
	if l.steep {
		if l.yOut != 0 {
			return 0, 0, ErrAxisMismatch
		}
		travel = l.loc.Y - target.Y
		if l.yStep > 0 {
			travel = -travel
		}
		if err := l.Step(travel, 0); err != nil {
			return 0, 0, err
		}
		outward = l.loc.X - target.X
		if l.xOut > 0 {
			outward = -outward
		}
	} else {
		if l.xOut != 0 {
			return 0, 0, ErrAxisMismatch
		}
		travel = l.loc.X - target.X
		if l.xStep > 0 {
			travel = -travel
		}
		if err := l.Step(travel, 0); err != nil {
			return 0, 0, err
		}
		outward = l.loc.Y - target.Y
		if l.yOut > 0 {
			outward = -outward
		}
	}
	return travel, outward, nil
}

// Points iterates over the current location and the locations of the
// forward steps until the end point. It steps a copy of l.
func (l Line) Points() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		if !yield(l.loc) {
			return
		}
		for l.travel < l.Len() {
			l.Step(1, 0)
			if !yield(l.loc) {
				return
			}
		}
	}
}

// Loc returns the current location.
func (l *Line) Loc() image.Point {
	return l.loc
}

// Start returns the line start point.
func (l *Line) Start() image.Point {
	return l.loc0
}

// End returns the line end point.
func (l *Line) End() image.Point {
	return l.loc1
}

// Travel returns the signed number of steps taken along the line.
func (l *Line) Travel() int {
	return l.travel
}

// Outward returns the number of outward steps taken.
func (l *Line) Outward() int {
	return l.outward
}

// Steep reports whether the major axis is y.
func (l *Line) Steep() bool {
	return l.steep
}

// Dir returns the unit direction from the start towards the end point,
// per axis.
func (l *Line) Dir() image.Point {
	return image.Pt(l.xStep, l.yStep)
}

// Delta returns the absolute line vector.
func (l *Line) Delta() image.Point {
	return image.Pt(l.xDelta, l.yDelta)
}

// Out returns the outward unit step.
func (l *Line) Out() image.Point {
	return image.Pt(l.xOut, l.yOut)
}

// Len returns the number of forward steps from the start to the end
// point.
func (l *Line) Len() int {
	if l.steep {
		return l.yDelta
	}
	return l.xDelta
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
