package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/vector"

	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

// shadowLayers is the number of expanded copies used to fake a blurred shadow
const shadowLayers = 5

// Raster is a software canvas backed by an RGBA image
// Not safe for concurrent use; one frame goroutine owns it
type Raster struct {
	stateStack
	img *image.RGBA
	ras *vector.Rasterizer
}

// NewRaster allocates a transparent surface of the given size
func NewRaster(width, height int) *Raster {
	return &Raster{
		stateStack: newStateStack(),
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:        vector.NewRasterizer(width, height),
	}
}

func (r *Raster) Width() int  { return r.img.Rect.Dx() }
func (r *Raster) Height() int { return r.img.Rect.Dy() }

// Image exposes the backing pixels (premultiplied RGBA)
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Clear() {
	clear(r.img.Pix)
}

func (r *Raster) Fill(p *Path, paint core.Paint) {
	src, ok := r.source(paint)
	if !ok {
		return
	}
	subs := r.device(p)
	if len(subs) == 0 {
		return
	}

	if r.cur.shadowBlur > 0 && !r.cur.shadow.IsZero() {
		r.fillShadow(subs)
	}

	r.begin()
	for _, sp := range subs {
		r.addPolygon(sp.pts)
	}
	r.ras.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

func (r *Raster) Stroke(p *Path, paint core.Paint, width float64) {
	src, ok := r.source(paint)
	if !ok {
		return
	}
	half := width * r.cur.tr.ScaleFactor() / 2
	if half <= 0 {
		return
	}
	// Keep hairlines visible after downscaling
	half = math.Max(half, 0.5)

	r.begin()
	for _, sp := range r.device(p) {
		n := len(sp.pts)
		segs := n - 1
		if sp.closed {
			segs = n
		}
		for i := 0; i < segs; i++ {
			a, b := sp.pts[i], sp.pts[(i+1)%n]
			d := b.Sub(a)
			l := d.Len()
			if l == 0 {
				continue
			}
			nx := vmath.Pt(-d.Y/l*half, d.X/l*half)
			r.addPolygon([]vmath.Point{a.Add(nx), b.Add(nx), b.Sub(nx), a.Sub(nx)})
		}
	}
	r.ras.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

// fillShadow draws progressively larger, fainter copies of the shape
func (r *Raster) fillShadow(subs []subpath) {
	shadow := r.effective(resolve(r.cur.shadow))
	if shadow.A <= 0 {
		return
	}
	var c vmath.Point
	count := 0
	for _, sp := range subs {
		for _, pt := range sp.pts {
			c = c.Add(pt)
			count++
		}
	}
	c = c.Mul(1 / float64(count))

	layer := uniform(shadow.WithAlpha(shadow.A / shadowLayers))
	for i := shadowLayers; i >= 1; i-- {
		grow := r.cur.shadowBlur * float64(i) / shadowLayers
		r.begin()
		for _, sp := range subs {
			grown := make([]vmath.Point, len(sp.pts))
			for j, pt := range sp.pts {
				d := pt.Sub(c)
				if l := d.Len(); l > 0 {
					pt = pt.Add(d.Mul(grow / l))
				}
				grown[j] = pt
			}
			r.addPolygon(grown)
		}
		r.ras.Draw(r.img, r.img.Bounds(), layer, image.Point{})
	}
}

func (r *Raster) begin() {
	r.ras.Reset(r.Width(), r.Height())
	r.ras.DrawOp = draw.Over
}

func (r *Raster) addPolygon(pts []vmath.Point) {
	clipped := clipToRect(pts, float64(r.Width()), float64(r.Height()))
	if len(clipped) < 3 {
		return
	}
	r.ras.MoveTo(float32(clipped[0].X), float32(clipped[0].Y))
	for _, pt := range clipped[1:] {
		r.ras.LineTo(float32(pt.X), float32(pt.Y))
	}
	r.ras.ClosePath()
}

func (r *Raster) source(paint core.Paint) (image.Image, bool) {
	if paint.IsZero() {
		return nil, false
	}
	p := r.effective(resolve(paint))
	if p.IsRaw() || p.A <= 0 {
		return nil, false
	}
	return uniform(p), true
}

// resolve turns a raw literal into RGB using tcell's color names table
// Unknown literals stay raw and are skipped by the caller
func resolve(p core.Paint) core.Paint {
	if !p.IsRaw() {
		return p
	}
	c := tcell.GetColor(p.Raw)
	if c == tcell.ColorDefault || !c.Valid() {
		return p
	}
	red, green, blue := c.RGB()
	if red < 0 {
		return p
	}
	return core.Paint{RGB: core.RGB{R: uint8(red), G: uint8(green), B: uint8(blue)}, A: 1}
}

func uniform(p core.Paint) image.Image {
	return image.NewUniform(color.NRGBA{R: p.R, G: p.G, B: p.B, A: uint8(math.Round(p.A * 255))})
}
