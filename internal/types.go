package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

type Point struct {
	X float64
	Y float64
}

// Note that all points flowing through the engine are pointers. Identity
// matters: the hull hands back the node it created for a specific point, and
// the pioneer test is asked about that exact node later in the same scan. We
// never modify a point value once it is stored in a path.

// PointTag holds the shortest-path record for one path index. A tag is
// created when its index is first processed and, apart from Cut, never
// changes afterward.
type PointTag struct {
	// Dist is the number of segments in the shortest admissible chain from
	// index 0 to this index.
	Dist int
	// Next is the predecessor index realizing Dist, or -1 at index 0.
	Next int
	// Cut marks the segment starting at this index as permanently
	// inadmissible: it crosses a later segment, so no larger subpath
	// containing it can be simple. Once set it is never cleared.
	Cut bool
}

// The outcome of considering one candidate start index during a scan.
type TraceKind int

const (
	Accept TraceKind = iota
	Cut
	Threshold
	PioneerWeak
	PioneerStrong
)

func (k TraceKind) String() string {
	switch k {
	case Accept:
		return "ACCEPT"
	case Cut:
		return "CUT"
	case Threshold:
		return "THRESHOLD"
	case PioneerWeak:
		return "PIONEER_WEAK"
	case PioneerStrong:
		return "PIONEER_STRONG"
	}
	return "UNKNOWN"
}

// TraceEvent records the outcome for one candidate index in the most recent
// scan. The trace is purely diagnostic; the engine never reads it back.
type TraceEvent struct {
	Index int
	Kind  TraceKind
}

func (ev TraceEvent) String() string {
	label := ev.Kind.String()
	switch ev.Kind {
	case Accept:
		label = aurora.Green(label).String()
	case Cut:
		label = aurora.Red(label).String()
	case Threshold:
		label = aurora.Yellow(label).String()
	case PioneerWeak:
		label = aurora.Cyan(label).String()
	case PioneerStrong:
		label = aurora.Magenta(label).String()
	}
	return fmt.Sprintf("%d: %s", ev.Index, label)
}
