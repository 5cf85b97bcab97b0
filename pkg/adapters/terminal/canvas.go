// Package terminal renders drawings as a colored cell grid for the CLI
// preview: Bresenham-rasterized lines, midpoint circles, and termenv
// colored division markers.
package terminal

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jbeda/geom"
	"github.com/muesli/termenv"
	"github.com/pppp606/kamon/pkg/domain"
	"github.com/pppp606/kamon/pkg/ports"
)

const (
	markerRune = '◆'
	circleRune = '·'
)

type cell struct {
	ch    rune
	color string
}

// Canvas is a fixed-size cell grid mapping the drawing bounds onto
// terminal cells.
type Canvas struct {
	cols, rows int
	bounds     geom.Rect
	profile    termenv.Profile
	cells      []cell
}

var _ ports.Renderer = (*Canvas)(nil)

// Option configures the Canvas.
type Option func(*Canvas)

// WithProfile forces a termenv color profile. Tests use termenv.Ascii
// for byte-stable output.
func WithProfile(p termenv.Profile) Option {
	return func(c *Canvas) {
		c.profile = p
	}
}

// New creates a canvas of cols x rows cells covering the given drawing
// bounds.
func New(cols, rows int, bounds geom.Rect, opts ...Option) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	c := &Canvas{
		cols:    cols,
		rows:    rows,
		bounds:  bounds,
		profile: termenv.ColorProfile(),
		cells:   make([]cell, cols*rows),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// project maps a drawing point to a cell coordinate.
func (c *Canvas) project(p domain.Point) (int, int) {
	w := c.bounds.Width()
	h := c.bounds.Height()
	col, row := 0, 0
	if w > 0 {
		col = int(math.Round((p.X - c.bounds.Min.X) / w * float64(c.cols-1)))
	}
	if h > 0 {
		row = int(math.Round((p.Y - c.bounds.Min.Y) / h * float64(c.rows-1)))
	}
	return col, row
}

func (c *Canvas) plot(col, row int, ch rune, color string) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = cell{ch: ch, color: color}
}

// Begin opens a marker-drawing scope. The cell buffer carries no pen
// state, so the bracket is a structural no-op.
func (c *Canvas) Begin() {}

// End closes the scope opened by Begin.
func (c *Canvas) End() {}

// DrawMarker plots one division marker cell. Marker size has no cell
// representation and is ignored.
func (c *Canvas) DrawMarker(p domain.Point, color string, size float64) {
	col, row := c.project(p)
	c.plot(col, row, markerRune, color)
}

// DrawLine rasterizes a segment with Bresenham's algorithm, choosing a
// box-drawing rune from the segment direction.
func (c *Canvas) DrawLine(a, b domain.Point) {
	x0, y0 := c.project(a)
	x1, y1 := c.project(b)
	ch := lineRune(x1-x0, y1-y0)

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	// Capped at dx+dy+2 iterations to prevent infinite loops.
	for i := 0; i < dx+dy+2; i++ {
		c.plot(x, y, ch, "")
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawCircle rasterizes a circle with the midpoint algorithm.
func (c *Canvas) DrawCircle(center domain.Point, radius float64) {
	cx, cy := c.project(center)
	edge, _ := c.project(domain.Pt(center.X+radius, center.Y))
	r := edge - cx
	if r <= 0 {
		c.plot(cx, cy, circleRune, "")
		return
	}

	x, y := r, 0
	d := 1 - r
	for x >= y {
		for _, o := range [][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			c.plot(cx+o[0], cy+o[1], circleRune, "")
		}
		y++
		if d <= 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// Render writes the grid to w, one line per cell row.
func (c *Canvas) Render(w io.Writer) error {
	var sb strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			switch {
			case cl.ch == 0:
				sb.WriteByte(' ')
			case cl.color == "":
				sb.WriteRune(cl.ch)
			default:
				sb.WriteString(c.profile.String(string(cl.ch)).
					Foreground(c.profile.Color(cl.color)).
					String())
			}
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("render canvas: %w", err)
	}
	return nil
}

// RenderSnapshot paints a whole snapshot plus division markers and
// writes the result to w.
func RenderSnapshot(w io.Writer, snap domain.Snapshot, points []domain.Point, style domain.MarkerStyle, cols, rows int, bounds geom.Rect, opts ...Option) error {
	c := New(cols, rows, bounds, opts...)
	style = style.Resolved()

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
	return c.Render(w)
}

// lineRune picks a box-drawing character for the direction (dx, dy).
func lineRune(dx, dy int) rune {
	if dy == 0 {
		return '─'
	}
	if dx == 0 {
		return '│'
	}
	if (dx > 0) == (dy > 0) {
		return '\\'
	}
	return '/'
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
