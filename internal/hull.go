package internal

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/streamline/dbg"
)

// HullNode is one vertex currently on the convex hull, linked to its
// counterclockwise neighbors. Nodes are never reused: when a vertex is
// superseded its node is detached, and both links go nil. Callers hold on
// to the node returned by Offer and check Valid later, which is how the
// engine asks "does this point still independently define a hull vertex".
type HullNode struct {
	Point      *Point
	prev, next *HullNode
}

// Valid reports whether the node is still on the hull.
func (n *HullNode) Valid() bool {
	return n != nil && n.prev != nil && n.next != nil
}

func (n *HullNode) Prev() *HullNode { return n.prev }
func (n *HullNode) Next() *HullNode { return n.next }

func (n *HullNode) detach() {
	n.prev = nil
	n.next = nil
}

func (n *HullNode) DbgName() string {
	name := dbg.Name(n)
	if n.Valid() {
		return aurora.Green(name).String()
	}
	return aurora.Red(name).String()
}

// Hull maintains the counterclockwise convex hull of a simple polyline as
// its points arrive one at a time, in amortized constant time per point
// (Melkman). `first` is always the node of the most recently accepted
// point; both tangent walks start there, which is what bounds their length.
//
// Correctness depends on the points being offered in the order they occur
// along a simple polyline. The engine guarantees this by never offering
// points from segments it already knows to self-intersect.
type Hull struct {
	first *HullNode
	count int
}

func NewHull() *Hull {
	return &Hull{}
}

func (h *Hull) Count() int       { return h.count }
func (h *Hull) First() *HullNode { return h.first }

// Offer adds a point to the hull. It returns the node created for p, or nil
// if p lies inside (or on the boundary of) the current hull and the hull is
// unchanged.
func (h *Hull) Offer(p *Point) *HullNode {
	switch h.count {
	case 0:
		node := &HullNode{Point: p}
		node.prev = node
		node.next = node
		h.first = node
		h.count = 1
		return node
	case 1:
		node := &HullNode{Point: p, prev: h.first, next: h.first}
		h.first.prev = node
		h.first.next = node
		h.first = node
		h.count = 2
		return node
	case 2:
		return h.offerToTwoGon(p)
	default:
		return h.offerToPolygon(p)
	}
}

// With two points held the hull is a 2-gon; a third point either forms the
// first real triangle or is collinear with the pair.
func (h *Hull) offerToTwoGon(p *Point) *HullNode {
	a := h.first
	b := h.first.next
	s := Side(a.Point, b.Point, p)

	if s == 0 {
		// Collinear: one of the three points sits between the other two and
		// is redundant. Drop it and keep a 2-gon.
		if between(p, a.Point, b.Point) {
			return nil
		}
		var keep *HullNode
		if between(b.Point, a.Point, p) {
			keep = a
			b.detach()
		} else {
			keep = b
			a.detach()
		}
		node := &HullNode{Point: p, prev: keep, next: keep}
		keep.prev = node
		keep.next = node
		h.first = node
		return node
	}

	node := &HullNode{Point: p}
	if s > 0 {
		// p left of a→b: counterclockwise order is a, b, p.
		node.prev = b
		node.next = a
		a.prev = node
		b.next = node
	} else {
		// p right of a→b: counterclockwise order is a, p, b.
		node.prev = a
		node.next = b
		a.next = node
		b.prev = node
	}
	h.first = node
	h.count = 3
	return node
}

func (h *Hull) offerToPolygon(p *Point) *HullNode {
	// Tangent walks outward from the most recent hull point. Each walk
	// continues while p extends the hull past the edge it is looking at.
	// The step guards terminate walks that would otherwise cycle on fully
	// collinear degenerate hulls.
	n0 := h.first
	for steps := 0; steps < h.count && Side(n0.Point, n0.prev.Point, p) >= 0; steps++ {
		n0 = n0.prev
	}
	n1 := h.first
	for steps := 0; steps < h.count && Side(n1.Point, n1.next.Point, p) <= 0; steps++ {
		n1 = n1.next
	}
	if n0 == h.first && n1 == h.first {
		// Neither walk moved: p is inside the hull or on its boundary.
		return nil
	}

	// p is outside. Every node strictly between the tangent points (in
	// counterclockwise order from n0 to n1) is shadowed by p; detach them
	// and splice p in.
	removed := 0
	for n := n0.next; n != n1; {
		next := n.next
		n.detach()
		removed++
		n = next
	}
	node := &HullNode{Point: p, prev: n0, next: n1}
	n0.next = node
	n1.prev = node
	h.first = node
	h.count += 1 - removed
	return node
}

// Points returns the hull vertices in counterclockwise order, starting from
// the most recently accepted point.
func (h *Hull) Points() []*Point {
	if h.count == 0 {
		return nil
	}
	points := make([]*Point, 0, h.count)
	n := h.first
	for i := 0; i < h.count; i++ {
		points = append(points, n.Point)
		n = n.next
	}
	return points
}

func (h *Hull) String() string {
	if h.count == 0 {
		return "Hull[]"
	}
	var parts []string
	n := h.first
	for i := 0; i < h.count; i++ {
		parts = append(parts, n.DbgName())
		n = n.next
	}
	return "Hull[" + strings.Join(parts, " → ") + "]"
}

// IsPioneer reports whether the hull node's point projects to an extremal
// position on the line among the hull's points: both hull neighbors must
// project to the same side of the node's own projection, or coincide with
// it. A detached node is never a pioneer.
func IsPioneer(l *Line, n *HullNode) bool {
	if !n.Valid() {
		return false
	}
	tx, ty := -l.B, l.A
	d1 := tx*(n.prev.Point.X-n.Point.X) + ty*(n.prev.Point.Y-n.Point.Y)
	d2 := tx*(n.next.Point.X-n.Point.X) + ty*(n.next.Point.Y-n.Point.Y)
	return d1*d2 >= 0
}

// Is m between a and b along their common line? Endpoints count.
func between(m, a, b *Point) bool {
	return (m.X-a.X)*(m.X-b.X)+(m.Y-a.Y)*(m.Y-b.Y) <= 0
}
