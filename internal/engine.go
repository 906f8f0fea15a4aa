package internal

// Engine maintains, after every appended point, the optimal simplified
// representation of the path so far: the fewest-vertex chain of admissible
// segments from index 0 to the newest index. A segment (i, j) is admissible
// when the subpath it replaces is simple, the least-squares line fitted to
// points i..j stays within the deviation threshold of all of them, and both
// endpoints are pioneers of that line (extremal along it). Admissibility is
// decided with a backward scan whose three stopping rules are each monotone
// in i, so the scan is exact despite being able to stop early.
//
// The engine is strictly sequential: one append at a time, no concurrency.
type Engine struct {
	threshold float64
	fitter    *LineFitter
	points    []*Point
	tags      []*PointTag
	trace     []TraceEvent

	// Retained from the most recent scan, for diagnostics only.
	hull *Hull
	box  *ErrorBound
}

func NewEngine(threshold float64) *Engine {
	if !(threshold > 0) {
		fatalf("threshold must be positive, got %v", threshold)
	}
	return &Engine{
		threshold: threshold,
		fitter:    NewLineFitter(),
	}
}

// Attach constructs an engine over an existing path, replaying its current
// contents as if the engine had observed every append, then subscribes for
// future changes.
func Attach(path *Path, threshold float64) *Engine {
	e := NewEngine(threshold)
	for i := 0; i < path.Len(); i++ {
		e.PointAppended(path.At(i))
	}
	path.Observe(e)
	return e
}

func (e *Engine) Len() int           { return len(e.points) }
func (e *Engine) Threshold() float64 { return e.threshold }

// Tag returns a copy of the shortest-path record for index i.
func (e *Engine) Tag(i int) PointTag {
	if i < 0 || i >= len(e.tags) {
		fatalf("tag index %d out of range for %d points", i, len(e.tags))
	}
	return *e.tags[i]
}

// Trace returns the outcome of every candidate index considered while
// processing the most recent point, oldest-considered last. Diagnostic
// only; the scan never reads it. The returned slice is a copy, so it stays
// intact across later appends.
func (e *Engine) Trace() []TraceEvent {
	return append([]TraceEvent(nil), e.trace...)
}

// PointAppended implements PathObserver. This is the whole online step: the
// fitter absorbs the point first, then the scan walks candidate start
// indices backward from the new point, and the new point's tag records the
// best predecessor found.
func (e *Engine) PointAppended(p *Point) {
	e.fitter.Append(p)
	e.points = append(e.points, p)
	e.trace = e.trace[:0]

	j := len(e.points) - 1
	if j == 0 {
		e.tags = append(e.tags, &PointTag{Dist: 0, Next: -1})
		e.hull = nil
		e.box = nil
		return
	}

	box := NewErrorBound(e.fitter.FitRange(j, j), p)
	hull := NewHull()
	nj := hull.Offer(p)
	e.hull = hull
	e.box = box

	// Tentative best: the adjacent predecessor, which is always admissible.
	best := j - 1
	bestDist := e.tags[j-1].Dist
	limit := e.threshold * e.threshold

	for i := j - 1; i >= 0; i-- {
		// A segment whose start is cut can never head an admissible segment
		// again, and neither can anything before it: the subpath would
		// contain the crossing. Detecting a fresh crossing against the
		// newest segment cuts i for good.
		if e.tags[i].Cut ||
			(i < j-2 && SegmentsIntersect(e.points[i], e.points[i+1], e.points[j-1], e.points[j])) {
			e.tags[i].Cut = true
			e.record(i, Cut)
			break
		}

		line := e.fitter.FitRange(i, j)
		box.Extend(line, e.points[i])
		if box.Error() > limit {
			// The bound only grows as the range widens; no smaller i can
			// come back under the threshold.
			e.record(i, Threshold)
			break
		}

		ni := hull.Offer(e.points[i])
		if ni == nil || !IsPioneer(line, ni) {
			// Failing the pioneer test at i is local to i; a smaller i may
			// still pass.
			e.record(i, PioneerWeak)
			continue
		}
		if !IsPioneer(line, nj) {
			// Once the fixed endpoint j stops being extremal it does not
			// recover as the fit keeps shifting with smaller i.
			e.record(i, PioneerStrong)
			break
		}

		e.record(i, Accept)
		if e.tags[i].Dist < bestDist {
			best = i
			bestDist = e.tags[i].Dist
		}
	}

	// Oldest-considered entries go last.
	for l, r := 0, len(e.trace)-1; l < r; l, r = l+1, r-1 {
		e.trace[l], e.trace[r] = e.trace[r], e.trace[l]
	}

	e.tags = append(e.tags, &PointTag{Dist: bestDist + 1, Next: best})
}

// PathCleared implements PathObserver.
func (e *Engine) PathCleared() {
	e.fitter = NewLineFitter()
	e.points = nil
	e.tags = nil
	e.trace = nil
	e.hull = nil
	e.box = nil
}

func (e *Engine) record(i int, kind TraceKind) {
	e.trace = append(e.trace, TraceEvent{Index: i, Kind: kind})
}

// Simplified reconstructs the simplified polyline for the path processed so
// far. It is a pure read: walk the predecessor links back from the last
// index, fit a line per chosen segment, and emit the intersections of
// consecutive fitted lines. The endpoints are projections of the original
// endpoints onto their boundary lines.
//
// When two consecutive fitted lines are parallel or coincident, or their
// intersection lands further than 2·threshold from the shared original
// vertex, the original vertex is emitted instead. That vertex is then only
// guaranteed to be within 2× threshold of the input, a known approximation.
func (e *Engine) Simplified() []*Point {
	n := len(e.points)
	if n <= 1 {
		return append([]*Point(nil), e.points...)
	}

	var chain []int
	for i := n - 1; ; i = e.tags[i].Next {
		chain = append(chain, i)
		if i == 0 {
			break
		}
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}

	m := len(chain) - 1
	lines := make([]*Line, m)
	for k := 0; k < m; k++ {
		lines[k] = e.fitter.FitRange(chain[k], chain[k+1])
	}

	limit := 4 * e.threshold * e.threshold
	out := make([]*Point, 0, m+1)
	out = append(out, lines[0].Project(e.points[0]))
	for k := 1; k < m; k++ {
		shared := e.points[chain[k]]
		p := Intersect(lines[k-1], lines[k])
		if p.IsSingular() || p.DistSq(shared) > limit {
			out = append(out, &Point{X: shared.X, Y: shared.Y})
		} else {
			out = append(out, p)
		}
	}
	out = append(out, lines[m-1].Project(e.points[n-1]))
	return out
}
