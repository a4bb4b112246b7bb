package breakable

import (
	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/parameter/visual"
)

// shapeFunc draws one shape in local coordinates centered on the origin
// Every shape fills the body, then the liquid when present, then the accents
type shapeFunc func(c canvas.Canvas, glass, liquid core.Paint)

var shapes = [...]shapeFunc{
	Bottle: drawBottle,
	Cup:    drawCup,
	Plate:  drawPlate,
	Vase:   drawVase,
	Glass:  drawGlass,
	Bowl:   drawBowl,
}

// DrawShape draws kind with the current canvas transform
// A zero liquid paint skips the liquid fill
func DrawShape(c canvas.Canvas, kind Kind, glass, liquid core.Paint) {
	if int(kind) >= len(shapes) {
		return
	}
	shapes[kind](c, glass, liquid)
}

func highlight() core.Paint { return core.White(visual.HighlightAlpha) }
func rim() core.Paint       { return core.White(visual.AccentAlpha) }

func fillLiquid(c canvas.Canvas, p *canvas.Path, liquid core.Paint) {
	if liquid.IsZero() {
		return
	}
	c.Fill(p, liquid)
}

func drawBottle(c canvas.Canvas, glass, liquid core.Paint) {
	body := canvas.NewPath().
		MoveTo(-14, 30).
		LineTo(-14, -4).
		QuadTo(-14, -14, -6, -20).
		LineTo(-6, -34).
		LineTo(6, -34).
		LineTo(6, -20).
		QuadTo(14, -14, 14, -4).
		LineTo(14, 30).
		Close()
	c.Fill(body, glass)

	fillLiquid(c, canvas.NewPath().Rect(-12, 2, 24, 26), liquid)

	c.Fill(canvas.NewPath().Rect(-7, -38, 14, 5), glass)
	c.Stroke(canvas.NewPath().MoveTo(-7, -30).LineTo(7, -30), rim(), 1.2)
	c.Stroke(canvas.NewPath().MoveTo(-9, -6).LineTo(-9, 24), highlight(), 2)
	c.Stroke(body, rim(), 1)
}

func drawCup(c canvas.Canvas, glass, liquid core.Paint) {
	body := canvas.NewPath().
		MoveTo(-16, -18).
		LineTo(16, -18).
		LineTo(12, 20).
		LineTo(-12, 20).
		Close()
	c.Fill(body, glass)

	fillLiquid(c, canvas.NewPath().
		MoveTo(-15, -10).
		LineTo(15, -10).
		LineTo(12.2, 18).
		LineTo(-12.2, 18).
		Close(), liquid)

	handle := canvas.NewPath().MoveTo(15, -10).QuadTo(30, -6, 13, 9)
	c.Stroke(handle, glass, 3.5)
	c.Stroke(canvas.NewPath().Ellipse(0, -18, 16, 3, 0), rim(), 1.2)
	c.Stroke(canvas.NewPath().MoveTo(-11, -12).LineTo(-8, 14), highlight(), 1.8)
}

func drawPlate(c canvas.Canvas, glass, liquid core.Paint) {
	c.Fill(canvas.NewPath().Ellipse(0, 0, 30, 9, 0), glass)

	fillLiquid(c, canvas.NewPath().Ellipse(0, 0, 17, 4.5, 0), liquid)

	c.Stroke(canvas.NewPath().Ellipse(0, 0, 21, 5.5, 0), rim(), 1)
	c.Stroke(canvas.NewPath().MoveTo(-24, -3).QuadTo(-12, -8, 4, -7.5), highlight(), 1.6)
}

func drawVase(c canvas.Canvas, glass, liquid core.Paint) {
	body := canvas.NewPath().
		MoveTo(-7, -30).
		LineTo(7, -30).
		LineTo(5, -18).
		QuadTo(24, -4, 12, 28).
		LineTo(-12, 28).
		QuadTo(-24, -4, -5, -18).
		Close()
	c.Fill(body, glass)

	fillLiquid(c, canvas.NewPath().
		MoveTo(-15, 6).
		LineTo(15, 6).
		QuadTo(16, 18, 12, 26).
		LineTo(-12, 26).
		QuadTo(-16, 18, -15, 6).
		Close(), liquid)

	c.Stroke(canvas.NewPath().Ellipse(0, -30, 9, 2.5, 0), rim(), 1.2)
	c.Stroke(canvas.NewPath().MoveTo(-8, -12).QuadTo(-14, 2, -9, 20), highlight(), 1.8)
}

func drawGlass(c canvas.Canvas, glass, liquid core.Paint) {
	body := canvas.NewPath().
		MoveTo(-13, -24).
		LineTo(13, -24).
		LineTo(10, 24).
		LineTo(-10, 24).
		Close()
	c.Fill(body, glass)

	fillLiquid(c, canvas.NewPath().
		MoveTo(-11.8, -6).
		LineTo(11.8, -6).
		LineTo(10.2, 21).
		LineTo(-10.2, 21).
		Close(), liquid)

	c.Stroke(canvas.NewPath().Ellipse(0, -24, 13, 2.5, 0), rim(), 1.2)
	c.Stroke(canvas.NewPath().MoveTo(-10, 23).LineTo(10, 23), rim(), 2.5)
	c.Stroke(canvas.NewPath().MoveTo(-8, -18).LineTo(-6, 16), highlight(), 1.8)
}

func drawBowl(c canvas.Canvas, glass, liquid core.Paint) {
	body := canvas.NewPath().
		MoveTo(-28, -8).
		LineTo(28, -8).
		QuadTo(26, 18, 0, 20).
		QuadTo(-26, 18, -28, -8).
		Close()
	c.Fill(body, glass)
	c.Fill(canvas.NewPath().Rect(-9, 18, 18, 4), glass)

	fillLiquid(c, canvas.NewPath().
		MoveTo(-25, -2).
		LineTo(25, -2).
		QuadTo(22, 15, 0, 17).
		QuadTo(-22, 15, -25, -2).
		Close(), liquid)

	c.Stroke(canvas.NewPath().Ellipse(0, -8, 28, 5, 0), rim(), 1.2)
	c.Stroke(canvas.NewPath().MoveTo(-20, 0).QuadTo(-16, 12, -6, 15), highlight(), 1.8)
}
