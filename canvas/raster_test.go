package canvas

import (
	"testing"

	"github.com/mindfulcampus/bottlesmash/core"
)

func alphaAt(r *Raster, x, y int) uint8 {
	return r.Image().RGBAAt(x, y).A
}

func TestRasterFillRect(t *testing.T) {
	r := NewRaster(40, 20)
	r.Fill(NewPath().Rect(10, 5, 10, 10), core.Paint{RGB: core.RGB{R: 255}, A: 1})

	if a := alphaAt(r, 15, 10); a != 255 {
		t.Errorf("inside pixel alpha = %d, want 255", a)
	}
	if a := alphaAt(r, 2, 2); a != 0 {
		t.Errorf("outside pixel alpha = %d, want 0", a)
	}
	if c := r.Image().RGBAAt(15, 10); c.R != 255 || c.G != 0 {
		t.Errorf("unexpected color %v", c)
	}
}

func TestRasterGlobalAlphaAndRestore(t *testing.T) {
	r := NewRaster(20, 20)
	r.Save()
	r.SetAlpha(0.5)
	r.Fill(NewPath().Rect(0, 0, 10, 10), core.White(1))
	r.Restore()
	r.Fill(NewPath().Rect(10, 10, 10, 10), core.White(1))

	if a := alphaAt(r, 5, 5); a < 120 || a > 135 {
		t.Errorf("half alpha fill = %d, want ~128", a)
	}
	if a := alphaAt(r, 15, 15); a != 255 {
		t.Errorf("restored alpha fill = %d, want 255", a)
	}
}

func TestRasterTransformedFill(t *testing.T) {
	r := NewRaster(40, 40)
	r.Translate(20, 20)
	r.Scale(2, 2)
	r.Fill(NewPath().Rect(-2, -2, 4, 4), core.White(1))

	if a := alphaAt(r, 17, 17); a != 255 {
		t.Errorf("scaled square should cover (17,17), alpha %d", a)
	}
	if a := alphaAt(r, 10, 10); a != 0 {
		t.Errorf("scaled square should not reach (10,10), alpha %d", a)
	}
}

func TestRasterClipsOffSurfaceGeometry(t *testing.T) {
	r := NewRaster(20, 20)
	r.Fill(NewPath().Rect(-50, -50, 60, 60), core.White(1))

	if a := alphaAt(r, 5, 5); a != 255 {
		t.Errorf("clipped fill should cover (5,5), alpha %d", a)
	}
	if a := alphaAt(r, 15, 15); a != 0 {
		t.Errorf("clipped fill leaked to (15,15), alpha %d", a)
	}
}

func TestRasterRawPaint(t *testing.T) {
	r := NewRaster(10, 10)
	r.Fill(NewPath().Rect(0, 0, 10, 10), core.Paint{Raw: "red"})
	if c := r.Image().RGBAAt(5, 5); c.R < 200 || c.A != 255 {
		t.Errorf("named raw paint should resolve to red, got %v", c)
	}

	r.Clear()
	r.Fill(NewPath().Rect(0, 0, 10, 10), core.Paint{Raw: "not-a-color"})
	if a := alphaAt(r, 5, 5); a != 0 {
		t.Errorf("unresolvable raw paint must draw nothing, alpha %d", a)
	}
}

func TestRasterStroke(t *testing.T) {
	r := NewRaster(30, 30)
	r.Stroke(NewPath().MoveTo(5, 15).LineTo(25, 15), core.White(1), 4)
	if a := alphaAt(r, 15, 15); a == 0 {
		t.Error("stroke should cover its centerline")
	}
	if a := alphaAt(r, 15, 25); a != 0 {
		t.Errorf("stroke too wide, alpha %d at distance 10", a)
	}
}

func TestRasterShadowSpreads(t *testing.T) {
	r := NewRaster(60, 60)
	r.SetShadow(8, core.Paint{A: 0.6})
	r.Fill(NewPath().Rect(20, 20, 20, 20), core.White(1))

	if a := alphaAt(r, 17, 30); a == 0 {
		t.Error("shadow should darken pixels just outside the shape")
	}
	if a := alphaAt(r, 2, 2); a != 0 {
		t.Errorf("shadow reached too far, alpha %d", a)
	}
}

func TestRecorderBounds(t *testing.T) {
	rec := NewRecorder(800, 500)
	rec.Translate(100, 50)
	rec.Fill(NewPath().Circle(0, 0, 10), core.White(0.5))

	if len(rec.Ops) != 1 {
		t.Fatalf("expected one op, got %d", len(rec.Ops))
	}
	op := rec.Ops[0]
	c := op.Center()
	if c.X < 99.9 || c.X > 100.1 || c.Y < 49.9 || c.Y > 50.1 {
		t.Errorf("center = %v, want (100,50)", c)
	}
	if op.Paint.A != 0.5 {
		t.Errorf("paint alpha = %v", op.Paint.A)
	}
}
