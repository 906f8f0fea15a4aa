package internal

import "math"

const Tolerance = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
// Without this, predicates disagree on points that are meant to coincide.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Side returns the cross product of (b−a) and (p−a). Positive means p is
// left of the directed line a→b, negative means right, zero collinear.
func Side(a, b, p *Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// SegmentsIntersect reports whether segment ab crosses segment cd, endpoints
// included. The general case is the usual pair of opposite-side tests; when
// all four points are collinear the side tests carry no information and we
// fall back to interval overlap along the dominant axis.
func SegmentsIntersect(a, b, c, d *Point) bool {
	abc := Side(a, b, c)
	abd := Side(a, b, d)
	if abc == 0 && abd == 0 {
		if math.Abs(b.X-a.X) >= math.Abs(b.Y-a.Y) {
			return math.Min(a.X, b.X) <= math.Max(c.X, d.X) &&
				math.Min(c.X, d.X) <= math.Max(a.X, b.X)
		}
		return math.Min(a.Y, b.Y) <= math.Max(c.Y, d.Y) &&
			math.Min(c.Y, d.Y) <= math.Max(a.Y, b.Y)
	}
	cda := Side(c, d, a)
	cdb := Side(c, d, b)
	return abc*abd <= 0 && cda*cdb <= 0
}

func (p *Point) DistSq(q *Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// IsSingular reports whether the point carries infinite or NaN coordinates,
// which is how Intersect signals parallel or coincident lines.
func (p *Point) IsSingular() bool {
	return math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) ||
		math.IsNaN(p.X) || math.IsNaN(p.Y)
}
