// Package division implements the stateful division-mode controller:
// one selected element, a live set of equal-division guide points, and
// nearest-point hit-testing over them.
package division

import (
	"fmt"

	"github.com/pppp606/kamon/pkg/domain"
	"github.com/pppp606/kamon/pkg/ports"
)

// Mode tracks the active division selection. While active, points is
// always the correct division of the selected element for the current
// count; while inactive, no element is selected and points is empty.
//
// Mode holds a reference to the externally-owned element for selection
// purposes only; it never mutates it.
type Mode struct {
	active   bool
	selected domain.Element
	count    int
	points   []domain.Point
}

// NewMode creates an inactive controller with the default count of 2.
func NewMode() *Mode {
	return &Mode{count: 2}
}

// Active reports whether a selection is live.
func (m *Mode) Active() bool {
	return m.active
}

// SelectedElement returns the live selection, if any.
func (m *Mode) SelectedElement() (domain.Element, bool) {
	if !m.active {
		return domain.Element{}, false
	}
	return m.selected, true
}

// Divisions returns the current division count.
func (m *Mode) Divisions() int {
	return m.count
}

// Points returns a copy of the computed division points.
func (m *Mode) Points() []domain.Point {
	out := make([]domain.Point, len(m.points))
	copy(out, m.points)
	return out
}

// Activate selects an element and computes its division points.
// It fails for an unknown element kind, a non-positive count, or an
// incomplete element; on failure the previous mode state is untouched.
func (m *Mode) Activate(el domain.Element, divisions int) error {
	switch el.Kind {
	case domain.KindLine, domain.KindArc:
	default:
		return fmt.Errorf("activate division: %w: %q", domain.ErrUnsupportedElement, el.Kind)
	}
	if divisions <= 0 {
		return fmt.Errorf("activate division: %w: got %d", domain.ErrInvalidDivisions, divisions)
	}

	points, err := el.Divide(divisions)
	if err != nil {
		return err
	}

	m.selected = el
	m.count = divisions
	m.points = points
	m.active = true
	return nil
}

// SetDivisions re-validates n and recomputes the points against the
// current selection. While inactive it is a silent no-op returning nil:
// there is no selection to recompute against.
func (m *Mode) SetDivisions(n int) error {
	if !m.active {
		return nil
	}
	if n <= 0 {
		return fmt.Errorf("set divisions: %w: got %d", domain.ErrInvalidDivisions, n)
	}

	points, err := m.selected.Divide(n)
	if err != nil {
		return err
	}

	m.count = n
	m.points = points
	return nil
}

// Deactivate clears the selection and its points. Idempotent.
func (m *Mode) Deactivate() {
	m.active = false
	m.selected = domain.Element{}
	m.points = nil
}

// ClosestPoint returns the stored division point nearest to query,
// provided that distance is within threshold. Ties break toward the
// earlier point in computation order. ok is false when nothing is in
// range or there are no points.
func (m *Mode) ClosestPoint(query domain.Point, threshold float64) (domain.Point, bool) {
	best := -1
	bestDist := 0.0
	for i, p := range m.points {
		d := p.DistanceFrom(query)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 || bestDist > threshold {
		return domain.Point{}, false
	}
	return m.points[best], true
}

// Draw issues one marker per division point inside a single Begin/End
// bracket on the surface. Zero-value style fields take the package
// defaults. When inactive or without points it makes no surface calls
// at all.
func (m *Mode) Draw(s ports.Surface, style domain.MarkerStyle) {
	if !m.active || len(m.points) == 0 {
		return
	}
	style = style.Resolved()

	s.Begin()
	defer s.End()
	for _, p := range m.points {
		s.DrawMarker(p, style.Color, style.Size)
	}
}
