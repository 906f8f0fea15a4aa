package internal

// PathObserver receives change notifications from a Path. Observers are
// notified in registration order, which is how the engine guarantees its
// fitter is current before anything downstream runs.
type PathObserver interface {
	PointAppended(p *Point)
	PathCleared()
}

// Path is an ordered, append-only sequence of points with an explicit full
// clear. Insertion order is the only order. The engine observes a path, it
// never mutates one.
type Path struct {
	points    []*Point
	observers []PathObserver
}

func NewPath() *Path {
	return &Path{}
}

func (p *Path) Len() int {
	return len(p.points)
}

func (p *Path) At(i int) *Point {
	if i < 0 || i >= len(p.points) {
		fatalf("path index %d out of range for %d points", i, len(p.points))
	}
	return p.points[i]
}

// Observe registers an observer. There is no unregister; a path and its
// observers share a lifetime.
func (p *Path) Observe(o PathObserver) {
	p.observers = append(p.observers, o)
}

func (p *Path) Append(pt *Point) {
	p.points = append(p.points, pt)
	for _, o := range p.observers {
		o.PointAppended(pt)
	}
}

func (p *Path) Clear() {
	p.points = nil
	for _, o := range p.observers {
		o.PathCleared()
	}
}
