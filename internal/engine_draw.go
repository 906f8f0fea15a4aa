package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/streamline/dbg"
)

// Padding around the drawing so hull tangents and box corners outside the
// path's bounding box stay visible
const dbgDrawPadding = 60

// DebugDraw renders the engine's current state for debugging: the original
// path, the simplified path, the scan hull and error box left over from the
// most recent append. The image is saved to /tmp and printed to the
// terminal (iTerm only).
func (e *Engine) DebugDraw(scale float64) {
	if len(e.points) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range e.points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Original path in gray, with a dot per point
	c.SetLineWidth(1)
	c.SetRGB(0.5, 0.5, 0.5)
	drawPolyline(c, e.points)
	c.Stroke()
	for _, p := range e.points {
		c.DrawCircle(p.X, p.Y, 2/scale)
	}
	c.Fill()

	// Scan hull from the most recent append, in blue
	if e.hull != nil && e.hull.Count() >= 2 {
		hullPoints := e.hull.Points()
		c.SetRGBA(0.3, 0.4, 1, 0.8)
		drawPolyline(c, hullPoints)
		c.LineTo(hullPoints[0].X, hullPoints[0].Y)
		c.Stroke()
	}

	// Error box corners from the most recent append, in yellow
	if e.box != nil {
		corners := e.box.Corners()
		c.SetRGBA(1, 1, 0, 0.6)
		c.MoveTo(corners[0].X, corners[0].Y)
		for _, p := range corners[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.Stroke()
	}

	// Simplified path in green, on top
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 0)
	drawPolyline(c, e.Simplified())
	c.Stroke()

	// Label the hull vertices so they can be matched against trace output
	if e.hull != nil {
		c.SetRGB(1, 1, 1)
		for _, n := range e.hull.nodes() {
			x, y := c.TransformPoint(n.Point.X, n.Point.Y)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(n), x, y-8, 0.5, 0.5)
			c.Pop()
		}
	}

	c.SavePNG("/tmp/streamline.png")
	imgcat.CatFile("/tmp/streamline.png", os.Stdout)
}

func drawPolyline(c *gg.Context, points []*Point) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
}

func (h *Hull) nodes() []*HullNode {
	nodes := make([]*HullNode, 0, h.count)
	n := h.first
	for i := 0; i < h.count; i++ {
		nodes = append(nodes, n)
		n = n.next
	}
	return nodes
}
