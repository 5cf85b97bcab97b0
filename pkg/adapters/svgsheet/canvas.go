// Package svgsheet renders drawings as SVG documents over an io.Writer.
package svgsheet

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"
	"github.com/pppp606/kamon/pkg/domain"
	"github.com/pppp606/kamon/pkg/ports"
)

const (
	strokeColor = "#1a1a1a"
	strokeWidth = 1.0

	// boundsPadding keeps strokes at the sheet edge from being clipped.
	boundsPadding = 10.0
)

// Canvas is an SVG serialization surface. All draw calls stream markup
// to the writer; the first write error is retained and reported by Err.
type Canvas struct {
	w   io.Writer
	err error
}

var _ ports.Renderer = (*Canvas)(nil)

// New creates a canvas over the writer. Call Start before drawing and
// Finish after.
func New(w io.Writer) *Canvas {
	return &Canvas{w: w}
}

func (c *Canvas) printf(format string, a ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, a...)
}

// Start opens the SVG document with the given view box.
func (c *Canvas) Start(viewBox geom.Rect) {
	c.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

// Finish closes the SVG document.
func (c *Canvas) Finish() {
	c.printf("</svg>\n")
}

// Begin opens a state-scoping group.
func (c *Canvas) Begin() {
	c.printf("<g>\n")
}

// End closes the group opened by Begin.
func (c *Canvas) End() {
	c.printf("</g>\n")
}

// DrawMarker paints one division marker as a filled dot.
func (c *Canvas) DrawMarker(p domain.Point, color string, size float64) {
	c.printf("<circle cx='%f' cy='%f' r='%f' fill='%s' stroke='none'/>\n",
		p.X, p.Y, size/2, color)
}

// DrawLine paints a committed segment.
func (c *Canvas) DrawLine(a, b domain.Point) {
	c.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' style='stroke: %s; stroke-width: %f; stroke-linecap: round'/>\n",
		a.X, a.Y, b.X, b.Y, strokeColor, strokeWidth)
}

// DrawCircle paints a committed compass arc as its full circle.
func (c *Canvas) DrawCircle(center domain.Point, radius float64) {
	c.printf("<circle cx='%f' cy='%f' r='%f' style='stroke: %s; stroke-width: %f; fill: none'/>\n",
		center.X, center.Y, radius, strokeColor, strokeWidth)
}

// Err returns the first write error encountered, if any.
func (c *Canvas) Err() error {
	return c.err
}

// Export writes a complete SVG sheet: the snapshot's lines and arcs,
// then the division markers. A zero-area bounds rect is replaced by the
// padded bounding box of the content.
func Export(w io.Writer, snap domain.Snapshot, points []domain.Point, style domain.MarkerStyle, bounds geom.Rect) error {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		bounds = contentBounds(snap, points)
	}
	style = style.Resolved()

	c := New(w)
	c.Start(bounds)

	for _, l := range snap.Lines {
		a, okA := l.FirstPoint()
		b, okB := l.SecondPoint()
		if okA && okB {
			c.DrawLine(a, b)
		}
	}
	for _, arc := range snap.Arcs {
		center, ok := arc.Center()
		radius, okR := arc.Radius()
		if ok && okR {
			c.DrawCircle(center, radius)
		}
	}

	if len(points) > 0 {
		c.Begin()
		for _, p := range points {
			c.DrawMarker(p, style.Color, style.Size)
		}
		c.End()
	}

	c.Finish()
	return c.Err()
}

func contentBounds(snap domain.Snapshot, points []domain.Point) geom.Rect {
	coords := make([]domain.Point, 0, 2*len(snap.Lines)+2*len(snap.Arcs)+len(points))

	for _, l := range snap.Lines {
		if a, ok := l.FirstPoint(); ok {
			coords = append(coords, a)
		}
		if b, ok := l.SecondPoint(); ok {
			coords = append(coords, b)
		}
	}
	for _, arc := range snap.Arcs {
		center, ok := arc.Center()
		radius, okR := arc.Radius()
		if ok && okR {
			coords = append(coords,
				domain.Pt(center.X-radius, center.Y-radius),
				domain.Pt(center.X+radius, center.Y+radius),
			)
		}
	}
	coords = append(coords, points...)

	if len(coords) == 0 {
		return geom.Rect{Min: domain.Pt(0, 0), Max: domain.Pt(100, 100)}
	}

	r := geom.Rect{Min: coords[0], Max: coords[0]}
	for _, p := range coords[1:] {
		r.ExpandToContainCoord(p)
	}
	r.Min = r.Min.Minus(domain.Pt(boundsPadding, boundsPadding))
	r.Max = r.Max.Plus(domain.Pt(boundsPadding, boundsPadding))
	return r
}
