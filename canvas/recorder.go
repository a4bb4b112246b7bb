package canvas

import (
	"math"

	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

// OpKind identifies a recorded drawing call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFill
	OpStroke
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	}
	return "unknown"
}

// Op is one recorded drawing call in device space
type Op struct {
	Kind   OpKind
	Paint  core.Paint // global alpha already applied
	Width  float64    // device stroke width
	Shadow float64    // shadow blur active at the time of the call
	Min    vmath.Point
	Max    vmath.Point
}

// Center returns the middle of the op's device bounding box
func (o Op) Center() vmath.Point {
	return vmath.Lerp(o.Min, o.Max, 0.5)
}

// Size returns the device bounding box extent
func (o Op) Size() vmath.Point {
	return o.Max.Sub(o.Min)
}

// Recorder is a canvas that logs calls instead of drawing them
// Used by tests to check composition order and render purity
type Recorder struct {
	stateStack
	width, height int
	Ops           []Op
}

// NewRecorder creates a recorder reporting the given surface size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{stateStack: newStateStack(), width: width, height: height}
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) Fill(p *Path, paint core.Paint) {
	r.record(OpFill, p, paint, 0)
}

func (r *Recorder) Stroke(p *Path, paint core.Paint, width float64) {
	r.record(OpStroke, p, paint, width*r.cur.tr.ScaleFactor())
}

// Reset drops recorded ops and restores the default state
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.stateStack = newStateStack()
}

// Count returns how many ops of a kind were recorded
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) record(kind OpKind, p *Path, paint core.Paint, width float64) {
	if paint.IsZero() {
		return
	}
	subs := r.device(p)
	if len(subs) == 0 {
		return
	}
	op := Op{
		Kind:  kind,
		Paint: r.effective(paint),
		Width: width,
		Min:   vmath.Pt(math.Inf(1), math.Inf(1)),
		Max:   vmath.Pt(math.Inf(-1), math.Inf(-1)),
	}
	if !r.cur.shadow.IsZero() {
		op.Shadow = r.cur.shadowBlur
	}
	for _, sp := range subs {
		for _, pt := range sp.pts {
			op.Min = vmath.Pt(math.Min(op.Min.X, pt.X), math.Min(op.Min.Y, pt.Y))
			op.Max = vmath.Pt(math.Max(op.Max.X, pt.X), math.Max(op.Max.Y, pt.Y))
		}
	}
	r.Ops = append(r.Ops, op)
}
