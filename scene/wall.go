package scene

import (
	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/parameter/visual"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

// WallRect returns the wall rectangle projected at depth: the base rect
// scaled by 1/depth about the surface center
func WallRect(width, height int, depth float64) (lo, hi vmath.Point) {
	k := 1 / depth
	mid := vmath.Pt(float64(width)/2, float64(height)/2)
	lo = vmath.ProjectAbout(vmath.Pt(parameter.WallX, parameter.WallY), mid, k)
	hi = vmath.ProjectAbout(vmath.Pt(parameter.WallX+parameter.WallWidth, parameter.WallY+parameter.WallHeight), mid, k)
	return lo, hi
}

// drawWall paints the face with a depth-scaled drop shadow, then the mortar courses
func (d *Driver) drawWall(c canvas.Canvas) {
	lo, hi := WallRect(c.Width(), c.Height(), d.depth)
	w, h := hi.X-lo.X, hi.Y-lo.Y
	k := 1 / d.depth

	c.Save()
	c.SetShadow(parameter.WallShadowBlur/d.depth, core.Paint{RGB: visual.WallShadow, A: visual.WallShadowAlpha})
	c.Fill(canvas.NewPath().Rect(lo.X, lo.Y, w, h), core.Paint{RGB: visual.WallFace, A: 1})
	c.SetShadow(0, core.NoPaint)

	mortar := core.Paint{RGB: visual.WallMortar, A: visual.MortarAlpha}
	rowH := h / parameter.WallBrickRows
	brickW := rowH * 2.2

	courses := canvas.NewPath()
	for r := 1; r < parameter.WallBrickRows; r++ {
		y := lo.Y + float64(r)*rowH
		courses.MoveTo(lo.X, y).LineTo(hi.X, y)
	}
	for r := 0; r < parameter.WallBrickRows; r++ {
		y0 := lo.Y + float64(r)*rowH
		offset := 0.0
		if r%2 == 1 {
			offset = brickW / 2
		}
		for x := lo.X + offset + brickW; x < hi.X-1; x += brickW {
			courses.MoveTo(x, y0).LineTo(x, y0+rowH)
		}
	}
	c.Stroke(courses, mortar, 1.5*k)
	c.Restore()
}
