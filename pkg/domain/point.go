package domain

import "github.com/jbeda/geom"

// Point is the 2D coordinate currency shared by every primitive.
// It aliases geom.Coord so the whole engine gets the same vector
// algebra (Plus, Minus, Times, DistanceFrom) without conversions.
type Point = geom.Coord

// DivisionPoint is a Point in the role of a computed division marker,
// as opposed to a user-placed construction point.
type DivisionPoint = Point

// Pt builds a Point from raw coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}
