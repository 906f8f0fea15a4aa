package internal

import "math"

// Line is the implicit line a·x + b·y + c = 0. The coefficient vector (A, B)
// must be nonzero; NewLine enforces this, and the fitter never produces a
// degenerate line (it falls back to a fixed default instead).
//
// A line carries a local coordinate system: the origin is the projection of
// the cartesian origin onto the line, the tangent is (−b, a) and the normal
// is (a, b). Neither is unit length in general, so local coordinates are not
// distances; the squared cartesian distance of a point with local
// coordinates (s, t) to the line is t²·(a²+b²).
type Line struct {
	A, B, C float64
}

func NewLine(a, b, c float64) *Line {
	if a == 0 && b == 0 {
		fatalf("degenerate line: a and b cannot both be zero")
	}
	return &Line{a, b, c}
}

func (l *Line) normSq() float64 {
	return l.A*l.A + l.B*l.B
}

// Origin is the projection of the cartesian origin onto the line.
func (l *Line) Origin() *Point {
	k := -l.C / l.normSq()
	return &Point{X: k * l.A, Y: k * l.B}
}

func (l *Line) Tangent() *Point {
	return &Point{X: -l.B, Y: l.A}
}

func (l *Line) Normal() *Point {
	return &Point{X: l.A, Y: l.B}
}

// Map converts a cartesian point to the line's local coordinates (s, t),
// such that cartesian = origin + s·tangent + t·normal.
func (l *Line) Map(p *Point) (s, t float64) {
	o := l.Origin()
	dx := p.X - o.X
	dy := p.Y - o.Y
	n := l.normSq()
	s = (-l.B*dx + l.A*dy) / n
	t = (l.A*dx + l.B*dy) / n
	return s, t
}

// Unmap is the exact inverse of Map.
func (l *Line) Unmap(s, t float64) *Point {
	o := l.Origin()
	return &Point{
		X: o.X - s*l.B + t*l.A,
		Y: o.Y + s*l.A + t*l.B,
	}
}

// Remap re-expresses local coordinates of this line in the system of
// another. Used to carry a bounding rectangle over when the reference line
// changes.
func (l *Line) Remap(to *Line, s, t float64) (float64, float64) {
	return to.Map(l.Unmap(s, t))
}

// Project returns the orthogonal projection of p onto the line.
func (l *Line) Project(p *Point) *Point {
	s, _ := l.Map(p)
	return l.Unmap(s, 0)
}

// Intersect computes the crossing point of two lines by solving the 2×2
// system with Gaussian elimination under full pivoting (row and column
// swaps). If the lines are parallel the result carries infinities, and if
// they are coincident it carries NaNs; callers must check IsSingular before
// using the point.
func Intersect(l1, l2 *Line) *Point {
	// Augmented matrix for a1·x + b1·y = −c1, a2·x + b2·y = −c2.
	m := [2][3]float64{
		{l1.A, l1.B, -l1.C},
		{l2.A, l2.B, -l2.C},
	}

	// Bring the largest-magnitude coefficient to m[0][0]. Because (a, b) is
	// nonzero for both lines, the pivot is nonzero.
	pr, pc := 0, 0
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if math.Abs(m[r][c]) > math.Abs(m[pr][pc]) {
				pr, pc = r, c
			}
		}
	}
	if pr == 1 {
		m[0], m[1] = m[1], m[0]
	}
	swapped := pc == 1 // columns swapped, so the solution comes out (y, x)
	if swapped {
		m[0][0], m[0][1] = m[0][1], m[0][0]
		m[1][0], m[1][1] = m[1][1], m[1][0]
	}

	// Eliminate and back-substitute. When the rows are proportional the
	// second division is k/0 or 0/0, which is exactly the Inf/NaN signal we
	// want, so there is no separate singularity branch.
	f := m[1][0] / m[0][0]
	m[1][1] -= f * m[0][1]
	m[1][2] -= f * m[0][2]
	v1 := m[1][2] / m[1][1]
	v0 := (m[0][2] - m[0][1]*v1) / m[0][0]
	if swapped {
		v0, v1 = v1, v0
	}
	return &Point{X: v0, Y: v1}
}
