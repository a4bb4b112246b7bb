package vmath

import "math"

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi

// Point is a position or displacement in surface units
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul scales both components
func (p Point) Mul(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Len returns the vector length
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Polar returns the vector of length r at angle a (radians, y down)
func Polar(a, r float64) Point {
	return Point{math.Cos(a) * r, math.Sin(a) * r}
}

// Lerp interpolates linearly between a and b, t is not clamped
func Lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ProjectAbout scales p toward center by k (k<1 pulls toward center)
// Used for depth projection where the vanishing point is the surface center
func ProjectAbout(p, center Point, k float64) Point {
	return center.Add(p.Sub(center).Mul(k))
}
