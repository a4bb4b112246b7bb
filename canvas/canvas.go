// Package canvas is the drawing surface every simulation entity renders to.
// The interface mirrors a 2D immediate-mode context: a transform stack,
// a global alpha, an optional shadow, and fill/stroke of flattened paths.
package canvas

import (
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

// Canvas is implemented by the raster backend and the test recorder
type Canvas interface {
	Width() int
	Height() int

	// Clear resets every pixel to transparent; transform and alpha are untouched
	Clear()

	// Save pushes transform, alpha and shadow; Restore pops them
	Save()
	Restore()

	Translate(x, y float64)
	Rotate(angle float64)
	Scale(sx, sy float64)

	// SetAlpha sets the global opacity multiplied into every paint
	SetAlpha(a float64)
	// SetShadow enables a soft shadow under subsequent fills, blur 0 disables it
	SetShadow(blur float64, paint core.Paint)

	Fill(p *Path, paint core.Paint)
	Stroke(p *Path, paint core.Paint, width float64)
}

// state is the part of a canvas that Save/Restore manages
type state struct {
	tr         vmath.Transform
	alpha      float64
	shadowBlur float64
	shadow     core.Paint
}

func defaultState() state {
	return state{tr: vmath.Identity(), alpha: 1}
}

// stateStack implements the shared Save/Restore/transform bookkeeping
type stateStack struct {
	cur   state
	saved []state
}

func newStateStack() stateStack {
	return stateStack{cur: defaultState(), saved: make([]state, 0, 8)}
}

func (s *stateStack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore with an empty stack is ignored, matching canvas semantics
func (s *stateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *stateStack) Translate(x, y float64) { s.cur.tr = s.cur.tr.Translate(x, y) }
func (s *stateStack) Rotate(angle float64)   { s.cur.tr = s.cur.tr.Rotate(angle) }
func (s *stateStack) Scale(sx, sy float64)   { s.cur.tr = s.cur.tr.Scale(sx, sy) }

func (s *stateStack) SetAlpha(a float64) {
	s.cur.alpha = vmath.Clamp(a, 0, 1)
}

func (s *stateStack) SetShadow(blur float64, paint core.Paint) {
	s.cur.shadowBlur = blur
	s.cur.shadow = paint
}

// effective folds the global alpha into a paint. Raw literals carry no
// alpha of their own and count as opaque
func (s *stateStack) effective(p core.Paint) core.Paint {
	a := p.A
	if p.IsRaw() {
		a = 1
	}
	return p.WithAlpha(vmath.Clamp(a*s.cur.alpha, 0, 1))
}

// device maps every subpath of p into device space
func (s *stateStack) device(p *Path) []subpath {
	out := make([]subpath, 0, len(p.subs))
	for _, sub := range p.subs {
		if len(sub.pts) < 2 {
			continue
		}
		pts := make([]vmath.Point, len(sub.pts))
		for i, pt := range sub.pts {
			pts[i] = s.cur.tr.Apply(pt)
		}
		out = append(out, subpath{pts: pts, closed: sub.closed})
	}
	return out
}
