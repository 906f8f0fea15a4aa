package internal

import "math"

// ErrorBound tracks a conservative upper bound on the maximum squared
// distance from a growing point set to an evolving best-fit line. Rather
// than remembering the points, it keeps a bounding rectangle in the local
// coordinates of the current reference line; when the line changes, the old
// rectangle's corners are re-expressed in the new system and absorbed into
// the new rectangle.
//
// The bound is deliberately loose: it bounds distance to the *current* line
// even for points added under earlier lines, and rectangle corners only
// accumulate slack. It never shrinks as the set grows, which is exactly the
// monotonicity the engine's early exit relies on.
type ErrorBound struct {
	line           *Line
	s0, s1, t0, t1 float64
}

// NewErrorBound starts the box as a single point in the seed line's local
// coordinates.
func NewErrorBound(line *Line, p *Point) *ErrorBound {
	s, t := line.Map(p)
	return &ErrorBound{line: line, s0: s, s1: s, t0: t, t1: t}
}

// Extend absorbs one more point and switches the reference line.
func (e *ErrorBound) Extend(line *Line, p *Point) {
	s, t := line.Map(p)
	s0, s1, t0, t1 := s, s, t, t
	corners := [4][2]float64{
		{e.s0, e.t0},
		{e.s1, e.t0},
		{e.s1, e.t1},
		{e.s0, e.t1},
	}
	for _, corner := range corners {
		cs, ct := e.line.Remap(line, corner[0], corner[1])
		s0 = math.Min(s0, cs)
		s1 = math.Max(s1, cs)
		t0 = math.Min(t0, ct)
		t1 = math.Max(t1, ct)
	}
	e.line = line
	e.s0, e.s1, e.t0, e.t1 = s0, s1, t0, t1
}

// Error returns the upper bound on squared cartesian distance from any
// point ever absorbed to the current reference line. Local t is not a
// distance, so the extreme t is scaled by the squared normal length.
func (e *ErrorBound) Error() float64 {
	tt := math.Max(e.t0*e.t0, e.t1*e.t1)
	return tt * (e.line.A*e.line.A + e.line.B*e.line.B)
}

// Corners returns the rectangle's corners in cartesian space, in
// counterclockwise order. For diagnostic display only.
func (e *ErrorBound) Corners() [4]*Point {
	return [4]*Point{
		e.line.Unmap(e.s0, e.t0),
		e.line.Unmap(e.s1, e.t0),
		e.line.Unmap(e.s1, e.t1),
		e.line.Unmap(e.s0, e.t1),
	}
}
