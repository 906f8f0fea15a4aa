package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRejectsBadThreshold(t *testing.T) {
	assert.Panics(t, func() { NewEngine(0) })
	assert.Panics(t, func() { NewEngine(-1) })
	assert.Panics(t, func() { NewEngine(math.NaN()) })
}

func TestEngineTrivialPaths(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		e := NewEngine(1)
		assert.Empty(t, e.Simplified())
	})

	t.Run("single point", func(t *testing.T) {
		e := NewEngine(1)
		e.PointAppended(&Point{3, 4})
		out := e.Simplified()
		require.Len(t, out, 1)
		assert.Equal(t, 3.0, out[0].X)
		assert.Equal(t, 4.0, out[0].Y)
		assert.Empty(t, e.Trace(), "nothing to scan for the first point")
	})

	t.Run("two points", func(t *testing.T) {
		e := NewEngine(1)
		e.PointAppended(&Point{0, 0})
		e.PointAppended(&Point{10, 0})
		out := e.Simplified()
		require.Len(t, out, 2)
		assert.InDelta(t, 0, out[0].X, 1e-9)
		assert.InDelta(t, 10, out[1].X, 1e-9)
	})
}

func TestEngineCollapsesNearLine(t *testing.T) {
	e := NewEngine(0.5)
	for _, p := range []*Point{{0, 0}, {1, 0.1}, {2, -0.1}, {3, 0}} {
		e.PointAppended(p)
	}

	assert.Equal(t, 1, e.Tag(3).Dist, "one segment spans the whole path")
	assert.Equal(t, 0, e.Tag(3).Next)

	out := e.Simplified()
	require.Len(t, out, 2)
	assert.InDelta(t, 0, out[0].X, 0.5)
	assert.InDelta(t, 0, out[0].Y, 0.5)
	assert.InDelta(t, 3, out[1].X, 0.5)
	assert.InDelta(t, 0, out[1].Y, 0.5)
}

func TestEngineKeepsSharpCorner(t *testing.T) {
	e := NewEngine(0.1)
	for _, p := range []*Point{{0, 0}, {5, 0}, {5, 5}} {
		e.PointAppended(p)
	}

	out := e.Simplified()
	require.Len(t, out, 3)
	// Both legs are exact two-point fits, so the corner is recovered exactly
	assert.InDelta(t, 5, out[1].X, 1e-6)
	assert.InDelta(t, 0, out[1].Y, 1e-6)
	assert.InDelta(t, 0, out[0].X, 1e-6)
	assert.InDelta(t, 5, out[2].Y, 1e-6)
}

func TestEngineHugeThreshold(t *testing.T) {
	// With an effectively infinite threshold only the pioneer rules matter,
	// and a monotone wiggle collapses to a single segment.
	e := NewEngine(1e9)
	for i := 0; i < 30; i++ {
		x := float64(i)
		e.PointAppended(&Point{x, math.Sin(x / 3)})
	}
	assert.Equal(t, 1, e.Tag(e.Len()-1).Dist)
	assert.Len(t, e.Simplified(), 2)
}

func TestEngineTinyThreshold(t *testing.T) {
	// A hard zigzag under a tiny threshold keeps every vertex, and the
	// reconstruction reproduces the input since every fit is a two-point
	// exact line.
	points := []*Point{}
	for i := 0; i < 12; i++ {
		points = append(points, &Point{float64(i), float64(i % 2)})
	}
	e := NewEngine(1e-3)
	for _, p := range points {
		e.PointAppended(p)
	}

	out := e.Simplified()
	require.Len(t, out, len(points))
	for i, p := range points {
		assert.InDelta(t, p.X, out[i].X, 1e-6)
		assert.InDelta(t, p.Y, out[i].Y, 1e-6)
	}
}

func TestEngineDistMonotone(t *testing.T) {
	// A prefix of an admissible chain is admissible, so dist never decreases
	// as the path grows; and the adjacent predecessor is always admissible,
	// so each point's segment count exceeds its predecessor's by at most one.
	for _, fixture := range []string{"wave", "spiral", "staircase"} {
		t.Run(fixture, func(t *testing.T) {
			e := NewEngine(3)
			for _, p := range LoadFixture(fixture) {
				e.PointAppended(p)
			}
			for j := 1; j < e.Len(); j++ {
				assert.GreaterOrEqual(t, e.Tag(j).Dist, e.Tag(j-1).Dist,
					"dist decreased at index %d", j)
				assert.LessOrEqual(t, e.Tag(j).Dist, e.Tag(j-1).Dist+1,
					"dist jumped at index %d", j)
			}
		})
	}
}

func TestEngineTraceOrder(t *testing.T) {
	e := NewEngine(2)
	for _, p := range LoadFixture("wave") {
		e.PointAppended(p)
		trace := e.Trace()
		if e.Len() < 2 {
			assert.Empty(t, trace)
			continue
		}
		require.NotEmpty(t, trace)
		// The adjacent predecessor is scanned first and reported last
		assert.Equal(t, e.Len()-2, trace[len(trace)-1].Index)
		// Scanned indices are strictly increasing in report order
		for k := 1; k < len(trace); k++ {
			assert.Less(t, trace[k-1].Index, trace[k].Index)
		}
	}
}

func TestEngineTraceSurvivesAppends(t *testing.T) {
	e := NewEngine(1)
	e.PointAppended(&Point{0, 0})
	e.PointAppended(&Point{1, 0})
	e.PointAppended(&Point{2, 0})

	held := e.Trace()
	require.NotEmpty(t, held)
	snapshot := append([]TraceEvent(nil), held...)

	e.PointAppended(&Point{3, 0})
	e.PointAppended(&Point{4, 1})
	assert.Equal(t, snapshot, held, "a held trace must not alias later scans")
}

func TestEngineCutIsSticky(t *testing.T) {
	e := NewEngine(100)
	// The last segment crosses back over the first one
	for _, p := range []*Point{{0, 0}, {10, 0}, {10, 10}, {5, -5}} {
		e.PointAppended(p)
	}

	require.True(t, e.Tag(0).Cut, "crossed segment start should be cut")
	trace := e.Trace()
	require.NotEmpty(t, trace)
	assert.Equal(t, TraceEvent{Index: 0, Kind: Cut}, trace[0])

	// The mark survives later appends even though the crossing segment is no
	// longer the newest one
	e.PointAppended(&Point{0, -5})
	assert.True(t, e.Tag(0).Cut)
	out := e.Simplified()
	assert.GreaterOrEqual(t, len(out), 2)
}

func TestEngineSimplifiedStaysClose(t *testing.T) {
	for _, c := range []struct {
		fixture   string
		threshold float64
	}{
		{"wave", 3},
		{"spiral", 2},
		{"staircase", 1},
	} {
		t.Run(c.fixture, func(t *testing.T) {
			points := LoadFixture(c.fixture)
			e := NewEngine(c.threshold)
			for _, p := range points {
				e.PointAppended(p)
			}

			out := e.Simplified()
			require.GreaterOrEqual(t, len(out), 2)
			assert.Less(t, len(out), len(points), "should drop some vertices")

			// Fitted lines stay within threshold of their points, and the
			// vertex fallback caps corner drift, so 2x is the end-to-end
			// guarantee.
			for _, p := range points {
				assert.LessOrEqual(t, distToPolyline(p, out), 2*c.threshold,
					"point %v strays from the simplified path", p)
			}
		})
	}
}

func TestEngineClearResets(t *testing.T) {
	path := NewPath()
	e := Attach(path, 1)
	path.Append(&Point{0, 0})
	path.Append(&Point{1, 1})
	path.Append(&Point{2, 0})
	require.Equal(t, 3, e.Len())

	path.Clear()
	assert.Equal(t, 0, e.Len())
	assert.Empty(t, e.Trace())
	assert.Empty(t, e.Simplified())

	// The engine keeps observing after a clear
	path.Append(&Point{5, 5})
	assert.Equal(t, 1, e.Len())
}

func TestAttachReplaysExistingPoints(t *testing.T) {
	points := LoadFixture("staircase")

	live := NewEngine(1.5)
	path := NewPath()
	for _, p := range points {
		live.PointAppended(p)
		path.Append(p)
	}

	attached := Attach(path, 1.5)
	require.Equal(t, live.Len(), attached.Len())
	for i := 0; i < live.Len(); i++ {
		assert.Equal(t, live.Tag(i), attached.Tag(i), "tag %d differs", i)
	}

	// Both must keep agreeing on future appends
	path.Append(&Point{500, 500})
	live.PointAppended(path.At(path.Len() - 1))
	assert.Equal(t, live.Tag(live.Len()-1), attached.Tag(attached.Len()-1))
}

func TestEngineTagBounds(t *testing.T) {
	e := NewEngine(1)
	e.PointAppended(&Point{0, 0})
	assert.Panics(t, func() { e.Tag(1) })
	assert.Panics(t, func() { e.Tag(-1) })
}

// Helpers

func distToPolyline(p *Point, polyline []*Point) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(polyline); i++ {
		best = math.Min(best, distToSegment(p, polyline[i], polyline[i+1]))
	}
	return best
}

func distToSegment(p, a, b *Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Sqrt(p.DistSq(a))
	}
	u := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	u = math.Max(0, math.Min(1, u))
	q := &Point{X: a.X + u*dx, Y: a.Y + u*dy}
	return math.Sqrt(p.DistSq(q))
}
