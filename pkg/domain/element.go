package domain

import "fmt"

// ElementKind tags the constructible primitive kinds.
type ElementKind string

const (
	KindLine ElementKind = "line"
	KindArc  ElementKind = "arc"
)

// Element is the closed tagged union over the drawable primitives.
// Exactly one of Line or Arc is non-nil, matching Kind. Operations
// switch exhaustively on Kind so adding a third primitive is a
// compile-surfaced change, not a silent fallthrough.
type Element struct {
	Kind ElementKind
	Line *Line
	Arc  *CompassArc
}

// LineElement wraps a line in the union.
func LineElement(l *Line) Element {
	return Element{Kind: KindLine, Line: l}
}

// ArcElement wraps an arc in the union.
func ArcElement(a *CompassArc) Element {
	return Element{Kind: KindArc, Arc: a}
}

// IsComplete reports completeness of the wrapped primitive.
// An unknown kind is never complete.
func (e Element) IsComplete() bool {
	switch e.Kind {
	case KindLine:
		return e.Line != nil && e.Line.IsComplete()
	case KindArc:
		return e.Arc != nil && e.Arc.IsComplete()
	default:
		return false
	}
}

// Divide computes the n-division of the wrapped primitive: the segment
// for a line, the radius segment for an arc.
func (e Element) Divide(n int) ([]Point, error) {
	switch e.Kind {
	case KindLine:
		return DivideLine(e.Line, n)
	case KindArc:
		return DivideArcRadius(e.Arc, n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedElement, e.Kind)
	}
}
