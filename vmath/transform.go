package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a 2D affine transform in homogeneous form
// Composition follows canvas semantics: each call post-multiplies, so the
// last operation applied is the first one seen by a local coordinate
type Transform struct {
	m mgl64.Mat3
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{m: mgl64.Ident3()}
}

// Translate appends a translation
func (t Transform) Translate(x, y float64) Transform {
	return Transform{m: t.m.Mul3(mgl64.Translate2D(x, y))}
}

// Rotate appends a rotation in radians (clockwise on a y-down surface)
func (t Transform) Rotate(angle float64) Transform {
	return Transform{m: t.m.Mul3(mgl64.HomogRotate2D(angle))}
}

// Scale appends a non-uniform scale
func (t Transform) Scale(sx, sy float64) Transform {
	return Transform{m: t.m.Mul3(mgl64.Scale2D(sx, sy))}
}

// Apply maps a local point into device space
func (t Transform) Apply(p Point) Point {
	v := t.m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Point{v[0], v[1]}
}

// ScaleFactor returns the geometric mean of the axis scales
// Used to size strokes and blurs that have no direction
func (t Transform) ScaleFactor() float64 {
	o := t.Apply(Point{})
	ux := t.Apply(Point{1, 0}).Sub(o).Len()
	uy := t.Apply(Point{0, 1}).Sub(o).Len()
	if ux == 0 || uy == 0 {
		return 0
	}
	return math.Sqrt(ux * uy)
}
