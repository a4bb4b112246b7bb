package effect

import (
	"math"

	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/parameter/visual"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

// ShatterPiece is an irregular polygon fragment
// The outline is fixed at creation and only moved and rotated afterwards
type ShatterPiece struct {
	kinetic
	verts []vmath.Point
	paint core.Paint
}

// NewShatterPiece launches a piece from origin in direction angle
func NewShatterPiece(origin vmath.Point, angle float64, paint core.Paint, rng core.Rand) *ShatterPiece {
	speed := core.Range(rng, parameter.ShatterSpeedMin, parameter.ShatterSpeedMax)
	radius := core.Range(rng, parameter.ShatterRadiusMin, parameter.ShatterRadiusMax)

	n := core.IntRange(rng, parameter.ShatterVertexMin, parameter.ShatterVertexMax)
	verts := make([]vmath.Point, n)
	for i := range verts {
		a := vmath.TwoPi * float64(i) / float64(n)
		r := radius * (1 + core.Signed(rng, parameter.ShatterJitter))
		verts[i] = vmath.Polar(a, r)
	}

	return &ShatterPiece{
		kinetic: kinetic{
			pos:      origin,
			vel:      vmath.Polar(angle, speed),
			rotation: rng.Float64() * vmath.TwoPi,
			spin:     core.Signed(rng, parameter.ShatterSpinMax),
			life:     1,
			fade:     core.Range(rng, parameter.ShatterFadeMin, parameter.ShatterFadeMax),
			gravity:  parameter.ShatterGravity,
		},
		verts: verts,
		paint: paint,
	}
}

// Advance moves the piece one frame and reports whether it is still alive
func (p *ShatterPiece) Advance() bool {
	return p.step()
}

// Life returns the remaining life
func (p *ShatterPiece) Life() float64 { return p.life }

// Position returns the current center
func (p *ShatterPiece) Position() vmath.Point { return p.pos }

// Vertices returns the fixed local outline
func (p *ShatterPiece) Vertices() []vmath.Point { return p.verts }

// Render draws the polygon with a thin highlight edge
func (p *ShatterPiece) Render(c canvas.Canvas) {
	if p.life <= 0 {
		return
	}
	c.Save()
	c.SetAlpha(math.Max(p.life, parameter.ShatterMinOpacity))
	c.Translate(p.pos.X, p.pos.Y)
	c.Rotate(p.rotation)
	outline := canvas.NewPath().Polygon(p.verts)
	c.Fill(outline, p.paint)
	c.Stroke(outline, core.White(visual.HighlightAlpha), 0.8)
	c.Restore()
}
