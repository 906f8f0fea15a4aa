package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/streamline"
)

// Demo of online polyline simplification. Input on stdin should be newline
// separated points in the form "x y". The simplified polyline is written to
// stdout in the same form. The input should be simple (non-self-crossing);
// crossings are tolerated but fence off part of the path from
// simplification.

var (
	threshold = kingpin.Flag("threshold", "Maximum deviation distance.").Default("1").Float64()
	pngPath   = kingpin.Flag("png", "Render the original and simplified polylines to this PNG file.").String()
	debug     = kingpin.Flag("debug", "Print the engine trace for the final point and dump a state image to the terminal (iTerm only).").Bool()
)

func main() {
	kingpin.Parse()

	s, err := streamline.New(*threshold)
	if err != nil {
		kingpin.Fatalf("%v", err)
	}

	points := readPoints(os.Stdin)
	for _, p := range points {
		if err := s.Append(p.X, p.Y); err != nil {
			kingpin.Fatalf("appending %v: %v", p, err)
		}
	}

	simplified, err := s.Simplified()
	if err != nil {
		kingpin.Fatalf("%v", err)
	}
	for _, p := range simplified {
		fmt.Printf("%g %g\n", p.X, p.Y)
	}
	fmt.Fprintf(os.Stderr, "%d points in, %d points out\n", len(points), len(simplified))

	if *debug {
		for _, ev := range s.Trace() {
			fmt.Fprintln(os.Stderr, ev)
		}
		s.DebugDraw(10)
	}

	if *pngPath != "" {
		if err := renderPNG(*pngPath, points, simplified); err != nil {
			kingpin.Fatalf("rendering %s: %v", *pngPath, err)
		}
	}
}

func readPoints(in *os.File) []*streamline.Point {
	var points []*streamline.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			kingpin.Fatalf("invalid point line %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			kingpin.Fatalf("invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			kingpin.Fatalf("invalid y value %q: %v", parts[1], err)
		}
		points = append(points, &streamline.Point{X: x, Y: y})
	}
	return points
}

// Render the original polyline in gray and the simplified one in green,
// scaled to fit an 800px canvas.
func renderPNG(path string, original, simplified []*streamline.Point) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range original {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	const size = 800.0
	const padding = 40.0
	scale := (size - 2*padding) / math.Max(maxX-minX, maxY-minY)

	c := gg.NewContext(int(size), int(size))
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, size, size)
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, size)
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	c.SetRGB(0.5, 0.5, 0.5)
	strokePolyline(c, original)
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 0)
	strokePolyline(c, simplified)

	return c.SavePNG(path)
}

func strokePolyline(c *gg.Context, points []*streamline.Point) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.Stroke()
}
