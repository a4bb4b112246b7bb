package render

import (
	"image"
	"image/color"

	"github.com/mindfulcampus/bottlesmash/scene"
)

// Composite flattens a surface over the backdrop gradient at full resolution
// The result is opaque and suitable for PNG export or a window texture
func Composite(surface *image.RGBA, backdrop scene.Gradient) *image.RGBA {
	b := surface.Rect
	out := image.NewRGBA(b)
	w, h := float64(b.Dx()), float64(b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			base := backdrop.Sample(float64(x-b.Min.X)+0.5, float64(y-b.Min.Y)+0.5, w, h)
			i := surface.PixOffset(x, y)
			px := surface.Pix[i : i+4 : i+4]
			c := over(base, uint32(px[0])*0x101, uint32(px[1])*0x101, uint32(px[2])*0x101, uint32(px[3])*0x101)
			out.SetRGBA(x, y, color.RGBA{c.R, c.G, c.B, 0xff})
		}
	}
	return out
}
