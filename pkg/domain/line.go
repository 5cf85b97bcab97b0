package domain

// Line is a straight segment under construction. Both endpoints are
// optional until set; "incomplete" is structurally distinguishable from
// "point at origin".
type Line struct {
	first  *Point
	second *Point
}

// NewLine creates an empty line with no endpoints placed.
func NewLine() *Line {
	return &Line{}
}

// LineBetween creates a completed line between two points.
func LineBetween(a, b Point) *Line {
	l := NewLine()
	l.SetFirstPoint(a.X, a.Y)
	l.SetSecondPoint(b.X, b.Y)
	return l
}

// SetFirstPoint places (or replaces) the starting endpoint.
// Any finite coordinates are accepted; no validation is performed.
func (l *Line) SetFirstPoint(x, y float64) {
	p := Pt(x, y)
	l.first = &p
}

// SetSecondPoint places (or replaces) the finishing endpoint.
func (l *Line) SetSecondPoint(x, y float64) {
	p := Pt(x, y)
	l.second = &p
}

// FirstPoint returns the starting endpoint, if placed.
func (l *Line) FirstPoint() (Point, bool) {
	if l.first == nil {
		return Point{}, false
	}
	return *l.first, true
}

// SecondPoint returns the finishing endpoint, if placed.
func (l *Line) SecondPoint() (Point, bool) {
	if l.second == nil {
		return Point{}, false
	}
	return *l.second, true
}

// IsComplete reports whether both endpoints are placed.
func (l *Line) IsComplete() bool {
	return l.first != nil && l.second != nil
}

// Length returns the segment length. ok is false while incomplete.
func (l *Line) Length() (float64, bool) {
	if !l.IsComplete() {
		return 0, false
	}
	return l.first.DistanceFrom(*l.second), true
}

// Clone returns an independent deep copy.
func (l *Line) Clone() *Line {
	c := NewLine()
	if l.first != nil {
		p := *l.first
		c.first = &p
	}
	if l.second != nil {
		p := *l.second
		c.second = &p
	}
	return c
}
