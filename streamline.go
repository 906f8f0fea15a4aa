// Online simplification of polygonal lines.
//
// This package consumes a polyline one point at a time and maintains, after
// every point, the simplified polyline with the fewest vertices whose
// deviation from the input stays within a distance threshold. Unlike batch
// simplifiers (Douglas-Peucker and friends), the result is optimal for every
// prefix and is updated incrementally as points arrive, so it is suited to
// simplifying strokes while they are being drawn.
//
// The input polyline must be simple (non-self-intersecting) for the
// simplified output to be; the engine detects crossings and refuses to
// bridge across them, but it does not repair them.
package streamline

import "github.com/osuushi/streamline/internal"

type Point = internal.Point
type Path = internal.Path
type TraceEvent = internal.TraceEvent
type TraceKind = internal.TraceKind

// Outcomes recorded in the trace for each candidate segment considered
// while processing a point.
const (
	Accept        = internal.Accept
	Cut           = internal.Cut
	Threshold     = internal.Threshold
	PioneerWeak   = internal.PioneerWeak
	PioneerStrong = internal.PioneerStrong
)

func NewPath() *Path {
	return internal.NewPath()
}

// Simplifier binds an engine to a path and converts the engine's internal
// panics into errors at the API boundary.
type Simplifier struct {
	path   *Path
	engine *internal.Engine
}

// New creates a simplifier over its own empty path. The threshold is the
// maximum deviation distance; it must be positive.
func New(threshold float64) (s *Simplifier, err error) {
	return Attach(internal.NewPath(), threshold)
}

// Attach builds a simplifier against an existing path, replaying its
// current contents so the state matches an engine that had observed every
// append since the path's creation. Future appends to the path are picked
// up automatically.
func Attach(path *Path, threshold float64) (s *Simplifier, err error) {
	defer func() {
		if recovered := internal.HandleSimplifyPanicRecover(recover()); recovered != nil {
			s = nil
			err = recovered
		}
	}()
	return &Simplifier{path: path, engine: internal.Attach(path, threshold)}, nil
}

// Path returns the underlying path. Appending to it feeds the simplifier.
func (s *Simplifier) Path() *Path {
	return s.path
}

// Append adds a point to the underlying path, and so to the engine.
func (s *Simplifier) Append(x, y float64) (err error) {
	defer func() {
		if recovered := internal.HandleSimplifyPanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()
	s.path.Append(&Point{X: x, Y: y})
	return nil
}

// Clear empties the path and resets the engine.
func (s *Simplifier) Clear() {
	s.path.Clear()
}

// Simplified returns the current simplified polyline. For paths of zero or
// one points it equals the original.
func (s *Simplifier) Simplified() (points []*Point, err error) {
	defer func() {
		if recovered := internal.HandleSimplifyPanicRecover(recover()); recovered != nil {
			points = nil
			err = recovered
		}
	}()
	return s.engine.Simplified(), nil
}

// Trace returns the diagnostic events for the most recent append, oldest
// considered candidate last.
func (s *Simplifier) Trace() []TraceEvent {
	return s.engine.Trace()
}

// DebugDraw dumps the engine state as an image to the terminal (iTerm
// only). For debugging.
func (s *Simplifier) DebugDraw(scale float64) {
	s.engine.DebugDraw(scale)
}
