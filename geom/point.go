// Package geom holds the small amount of 2D vector arithmetic the diagram
// and arrow packages share.
package geom

import (
	"fmt"
	"math"
)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Zero is the origin.
var Zero = Point{}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q exactly, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X*(1-t) + q.X*t,
		Y: p.Y*(1-t) + q.Y*t,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}

// Ptr returns a pointer to a fresh Point, for optional fields.
func Ptr(x, y float64) *Point {
	return &Point{X: x, Y: y}
}
