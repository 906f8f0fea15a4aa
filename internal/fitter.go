package internal

import "math"

// fitEpsilon guards the degenerate branch of FitRange: when every point in
// the range is numerically coincident, both scatter terms vanish.
const fitEpsilon = 1e-12

// LineFitter answers "least-squares line for index range [i, j]" in O(1)
// over a point sequence fed to it one at a time. It keeps five running
// prefix sums (Σx, Σy, Σx², Σy², Σxy); a range sum is the difference of two
// prefix entries. The fitted line minimizes summed squared perpendicular
// distance, not vertical offsets, so it is rotation invariant.
type LineFitter struct {
	sx, sy, sxx, syy, sxy []float64
}

func NewLineFitter() *LineFitter {
	return &LineFitter{
		sx:  []float64{0},
		sy:  []float64{0},
		sxx: []float64{0},
		syy: []float64{0},
		sxy: []float64{0},
	}
}

func (f *LineFitter) Len() int {
	return len(f.sx) - 1
}

func (f *LineFitter) Append(p *Point) {
	k := len(f.sx) - 1
	f.sx = append(f.sx, f.sx[k]+p.X)
	f.sy = append(f.sy, f.sy[k]+p.Y)
	f.sxx = append(f.sxx, f.sxx[k]+p.X*p.X)
	f.syy = append(f.syy, f.syy[k]+p.Y*p.Y)
	f.sxy = append(f.sxy, f.sxy[k]+p.X*p.Y)
}

// FitRange returns the least-squares line for points i..j inclusive.
func (f *LineFitter) FitRange(i, j int) *Line {
	if i < 0 || j < i || j >= f.Len() {
		fatalf("fit range [%d, %d] out of bounds for %d points", i, j, f.Len())
	}
	n := float64(j - i + 1)
	sx := f.sx[j+1] - f.sx[i]
	sy := f.sy[j+1] - f.sy[i]
	sxx := f.sxx[j+1] - f.sxx[i]
	syy := f.syy[j+1] - f.syy[i]
	sxy := f.sxy[j+1] - f.sxy[i]

	// Scatter terms, clamped against rounding: n·Var(x) and n·Var(y) scaled
	// by n. Exact zero is meaningful (all x equal / all y equal).
	fa := math.Max(n*sxx-sx*sx, 0)
	fb := math.Max(n*syy-sy*sy, 0)
	if fa < fitEpsilon && fb < fitEpsilon {
		// One point, or all points numerically coincident. Any line through
		// the mean minimizes the error; keep a fixed default.
		return &Line{A: -1, B: -1, C: (sx + sy) / n}
	}
	fab := n*sxy - sx*sy

	// The line's normal is the eigenvector of the scatter matrix
	// [[fa, fab], [fab, fb]] for its smallest eigenvalue. Zeroing the
	// partials of the error functional gives two equivalent closed forms,
	// one with a = 1 and one with b = 1; pick by comparing fa and fb so the
	// denominator is bounded away from zero by |fa − fb|.
	lambda := (fa + fb - math.Hypot(fa-fb, 2*fab)) / 2
	var a, b float64
	if fa < fb {
		a = 1
		if fab != 0 {
			b = fab / (lambda - fb)
		}
	} else {
		b = 1
		if fab != 0 {
			a = fab / (lambda - fa)
		}
	}
	return &Line{A: a, B: b, C: -(a*sx + b*sy) / n}
}

// Fit returns the least-squares line over the whole appended sequence.
func (f *LineFitter) Fit() *Line {
	return f.FitRange(0, f.Len()-1)
}
