// Package pdfsheet renders drawings onto an A4 PDF sheet via gofpdf.
package pdfsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
	"github.com/jung-kurt/gofpdf"
	"github.com/pppp606/kamon/pkg/domain"
	"github.com/pppp606/kamon/pkg/ports"
)

const (
	pageMargin  = 15.0 // mm
	strokeWidth = 0.4  // mm
)

// Sheet maps drawing coordinates onto one A4 page. The whole bounds
// rect is scaled uniformly to fit inside the page margins.
type Sheet struct {
	pdf    *gofpdf.Fpdf
	origin domain.Point
	scale  float64
}

var _ ports.Renderer = (*Sheet)(nil)

// NewSheet creates a one-page sheet fitted to the given drawing bounds.
func NewSheet(bounds geom.Rect) *Sheet {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	usableW := pageW - 2*pageMargin
	usableH := pageH - 2*pageMargin

	scale := 1.0
	if bounds.Width() > 0 && bounds.Height() > 0 {
		scale = usableW / bounds.Width()
		if s := usableH / bounds.Height(); s < scale {
			scale = s
		}
	}

	s := &Sheet{pdf: pdf, origin: bounds.Min, scale: scale}
	s.resetStroke()
	return s
}

func (s *Sheet) resetStroke() {
	s.pdf.SetDrawColor(26, 26, 26)
	s.pdf.SetLineWidth(strokeWidth)
}

func (s *Sheet) project(p domain.Point) (float64, float64) {
	return pageMargin + (p.X-s.origin.X)*s.scale,
		pageMargin + (p.Y-s.origin.Y)*s.scale
}

// Begin opens a marker-drawing scope.
func (s *Sheet) Begin() {}

// End closes the scope opened by Begin, restoring the stroke defaults
// that marker fills may have replaced.
func (s *Sheet) End() {
	s.resetStroke()
}

// DrawMarker paints one division marker as a filled dot.
func (s *Sheet) DrawMarker(p domain.Point, color string, size float64) {
	r, g, b := hexColor(color)
	s.pdf.SetFillColor(r, g, b)
	x, y := s.project(p)
	s.pdf.Circle(x, y, size/2*s.scale, "F")
}

// DrawLine paints a committed segment.
func (s *Sheet) DrawLine(a, b domain.Point) {
	x1, y1 := s.project(a)
	x2, y2 := s.project(b)
	s.pdf.Line(x1, y1, x2, y2)
}

// DrawCircle paints a committed compass arc as its full circle.
func (s *Sheet) DrawCircle(center domain.Point, radius float64) {
	x, y := s.project(center)
	s.pdf.Circle(x, y, radius*s.scale, "D")
}

// Output writes the finished PDF document.
func (s *Sheet) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// Export writes a complete PDF sheet: the snapshot's lines and arcs,
// then the division markers. A zero-area bounds rect is replaced by the
// bounding box of the content.
func Export(w io.Writer, snap domain.Snapshot, points []domain.Point, style domain.MarkerStyle, bounds geom.Rect) error {
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		bounds = contentBounds(snap, points)
	}
	style = style.Resolved()

	sheet := NewSheet(bounds)
	for _, l := range snap.Lines {
		a, okA := l.FirstPoint()
		b, okB := l.SecondPoint()
		if okA && okB {
			sheet.DrawLine(a, b)
		}
	}
	for _, arc := range snap.Arcs {
		center, ok := arc.Center()
		radius, okR := arc.Radius()
		if ok && okR {
			sheet.DrawCircle(center, radius)
		}
	}

	if len(points) > 0 {
		sheet.Begin()
		for _, p := range points {
			sheet.DrawMarker(p, style.Color, style.Size)
		}
		sheet.End()
	}

	return sheet.Output(w)
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
	return r
}

// hexColor parses "#rrggbb" into RGB components, falling back to the
// default marker color for anything unparseable.
func hexColor(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return hexColor(domain.DefaultMarkerColor)
	}
	return r, g, b
}
