package domain

import "fmt"

// DividePoints returns the n-1 interior points that split the segment
// a->b into n equal parts, in order from a to b. n = 1 yields an empty
// slice (no interior points). When a and b coincide the direction
// vector is zero and every returned point equals a.
func DividePoints(a, b Point, n int) ([]Point, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDivisions, n)
	}

	step := b.Minus(a)
	points := make([]Point, 0, n-1)
	for k := 1; k < n; k++ {
		points = append(points, a.Plus(step.Times(float64(k)/float64(n))))
	}
	return points, nil
}

// DivideLine divides a completed line segment into n equal parts.
func DivideLine(l *Line, n int) ([]Point, error) {
	if l == nil || !l.IsComplete() {
		return nil, fmt.Errorf("divide line: %w", ErrIncompleteElement)
	}
	a, _ := l.FirstPoint()
	b, _ := l.SecondPoint()
	return DividePoints(a, b, n)
}

// DivideArcRadius divides the radius segment of a completed arc (the
// straight line from center to radius point) into n equal parts. The
// curved arc path itself is never subdivided.
func DivideArcRadius(a *CompassArc, n int) ([]Point, error) {
	if a == nil || !a.IsComplete() {
		return nil, fmt.Errorf("divide arc radius: %w", ErrIncompleteElement)
	}
	c, _ := a.Center()
	r, _ := a.RadiusPoint()
	return DividePoints(c, r, n)
}
