package canvas

import "github.com/mindfulcampus/bottlesmash/vmath"

// clipToRect clips a closed polygon against [0,w]x[0,h] (Sutherland–Hodgman)
// The rasterizer only accepts coordinates inside its bounds
func clipToRect(pts []vmath.Point, w, h float64) []vmath.Point {
	out := pts
	edges := []struct {
		inside func(vmath.Point) bool
		cross  func(a, b vmath.Point) vmath.Point
	}{
		{func(p vmath.Point) bool { return p.X >= 0 }, func(a, b vmath.Point) vmath.Point { return atX(a, b, 0) }},
		{func(p vmath.Point) bool { return p.X <= w }, func(a, b vmath.Point) vmath.Point { return atX(a, b, w) }},
		{func(p vmath.Point) bool { return p.Y >= 0 }, func(a, b vmath.Point) vmath.Point { return atY(a, b, 0) }},
		{func(p vmath.Point) bool { return p.Y <= h }, func(a, b vmath.Point) vmath.Point { return atY(a, b, h) }},
	}

	for _, e := range edges {
		if len(out) == 0 {
			return out
		}
		in := out
		out = make([]vmath.Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.cross(prev, cur))
				}
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b vmath.Point, x float64) vmath.Point {
	t := (x - a.X) / (b.X - a.X)
	return vmath.Point{X: x, Y: a.Y + (b.Y-a.Y)*t}
}

func atY(a, b vmath.Point, y float64) vmath.Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return vmath.Point{X: a.X + (b.X-a.X)*t, Y: y}
}
