package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into point slices. It is not a full svg
// reader; it finds the single <polyline> element in the file and converts
// its points attribute. If anything goes wrong, it bails out of the test
// run.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension. All of them are simple (non-self-crossing) polylines.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) != 1 {
		log.Fatalf("Expected exactly one polyline in fixture %q, found %d", name, len(polylines))
	}

	pointStrings := strings.Split(polylines[0].Attributes["points"], " ")
	points := make([]*Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &Point{X: x, Y: y})
	}
	return points
}
