package domain

// CompassArc is a circular arc under construction: a center plus the
// point that defines both radius length and orientation. A zero-length
// radius is a valid, degenerate arc, not an error.
type CompassArc struct {
	center      *Point
	radiusPoint *Point
}

// NewCompassArc creates an empty arc with no points placed.
func NewCompassArc() *CompassArc {
	return &CompassArc{}
}

// ArcAround creates a completed arc from center and radius point.
func ArcAround(center, radiusPoint Point) *CompassArc {
	a := NewCompassArc()
	a.SetCenter(center.X, center.Y)
	a.SetRadiusPoint(radiusPoint.X, radiusPoint.Y)
	return a
}

// SetCenter places (or replaces) the compass pivot.
func (a *CompassArc) SetCenter(x, y float64) {
	p := Pt(x, y)
	a.center = &p
}

// SetRadiusPoint places (or replaces) the radius-defining point.
func (a *CompassArc) SetRadiusPoint(x, y float64) {
	p := Pt(x, y)
	a.radiusPoint = &p
}

// Center returns the compass pivot, if placed.
func (a *CompassArc) Center() (Point, bool) {
	if a.center == nil {
		return Point{}, false
	}
	return *a.center, true
}

// RadiusPoint returns the radius-defining point, if placed.
func (a *CompassArc) RadiusPoint() (Point, bool) {
	if a.radiusPoint == nil {
		return Point{}, false
	}
	return *a.radiusPoint, true
}

// IsComplete reports whether both center and radius point are placed.
func (a *CompassArc) IsComplete() bool {
	return a.center != nil && a.radiusPoint != nil
}

// Radius returns the Euclidean radius length. ok is false while incomplete.
func (a *CompassArc) Radius() (float64, bool) {
	if !a.IsComplete() {
		return 0, false
	}
	return a.center.DistanceFrom(*a.radiusPoint), true
}

// Clone returns an independent deep copy.
func (a *CompassArc) Clone() *CompassArc {
	c := NewCompassArc()
	if a.center != nil {
		p := *a.center
		c.center = &p
	}
	if a.radiusPoint != nil {
		p := *a.radiusPoint
		c.radiusPoint = &p
	}
	return c
}
