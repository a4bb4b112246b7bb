package canvas

import (
	"math"

	"github.com/mindfulcampus/bottlesmash/vmath"
)

const (
	curveSteps   = 12
	ellipseSteps = 36
)

type subpath struct {
	pts    []vmath.Point
	closed bool
}

// Path is a set of flattened polylines in local coordinates
// Curves are flattened on insertion so backends only see line segments
type Path struct {
	subs []subpath
}

// NewPath returns an empty path
func NewPath() *Path {
	return &Path{}
}

func (p *Path) last() *subpath {
	if len(p.subs) == 0 {
		p.subs = append(p.subs, subpath{})
	}
	return &p.subs[len(p.subs)-1]
}

func (p *Path) cursor() vmath.Point {
	sp := p.last()
	if len(sp.pts) == 0 {
		return vmath.Point{}
	}
	return sp.pts[len(sp.pts)-1]
}

// MoveTo starts a new subpath
func (p *Path) MoveTo(x, y float64) *Path {
	p.subs = append(p.subs, subpath{pts: []vmath.Point{{X: x, Y: y}}})
	return p
}

// LineTo adds a straight segment
func (p *Path) LineTo(x, y float64) *Path {
	sp := p.last()
	sp.pts = append(sp.pts, vmath.Point{X: x, Y: y})
	return p
}

// QuadTo adds a quadratic Bézier segment
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p0 := p.cursor()
	sp := p.last()
	for i := 1; i <= curveSteps; i++ {
		t := float64(i) / curveSteps
		u := 1 - t
		sp.pts = append(sp.pts, vmath.Point{
			X: u*u*p0.X + 2*u*t*cx + t*t*x,
			Y: u*u*p0.Y + 2*u*t*cy + t*t*y,
		})
	}
	return p
}

// Close marks the current subpath closed
func (p *Path) Close() *Path {
	if len(p.subs) > 0 {
		p.subs[len(p.subs)-1].closed = true
	}
	return p
}

// Arc adds a circular arc from angle a0 to a1 (radians), connected to the cursor
func (p *Path) Arc(cx, cy, r, a0, a1 float64) *Path {
	steps := int(math.Ceil(math.Abs(a1-a0) / vmath.TwoPi * ellipseSteps))
	if steps < 2 {
		steps = 2
	}
	sp := p.last()
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		sp.pts = append(sp.pts, vmath.Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r})
	}
	return p
}

// Ellipse adds a closed, rotated ellipse as its own subpath
func (p *Path) Ellipse(cx, cy, rx, ry, rotation float64) *Path {
	sin, cos := math.Sincos(rotation)
	pts := make([]vmath.Point, ellipseSteps)
	for i := range pts {
		a := vmath.TwoPi * float64(i) / ellipseSteps
		ex, ey := math.Cos(a)*rx, math.Sin(a)*ry
		pts[i] = vmath.Point{X: cx + ex*cos - ey*sin, Y: cy + ex*sin + ey*cos}
	}
	p.subs = append(p.subs, subpath{pts: pts, closed: true})
	return p
}

// Circle adds a closed circle
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r, 0)
}

// Rect adds a closed axis-aligned rectangle
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.Polygon([]vmath.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}})
}

// Polygon adds a closed polygon; pts is copied
func (p *Path) Polygon(pts []vmath.Point) *Path {
	cp := make([]vmath.Point, len(pts))
	copy(cp, pts)
	p.subs = append(p.subs, subpath{pts: cp, closed: true})
	return p
}

// Empty reports whether the path has no drawable segment
func (p *Path) Empty() bool {
	for _, sp := range p.subs {
		if len(sp.pts) > 1 {
			return false
		}
	}
	return true
}
