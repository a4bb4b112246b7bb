package render

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/mindfulcampus/bottlesmash/core"
)

// ColorMode selects how pixels are emitted to the terminal
type ColorMode uint8

const (
	ColorTrue ColorMode = iota
	Color256
)

// ParseColorMode accepts "true", "truecolor", "24bit" or "256"
func ParseColorMode(s string) (ColorMode, bool) {
	switch s {
	case "true", "truecolor", "24bit", "":
		return ColorTrue, true
	case "256":
		return Color256, true
	}
	return ColorTrue, false
}

func (m ColorMode) String() string {
	if m == Color256 {
		return "256"
	}
	return "truecolor"
}

// xterm cube channel levels
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// Quantize256 returns the closest xterm 256-palette index for c, choosing
// between the 6x6x6 cube and the 24-step gray ramp
func Quantize256(c core.RGB) uint8 {
	r, g, b := cubeIndex(c.R), cubeIndex(c.G), cubeIndex(c.B)
	cube := core.RGB{R: cubeLevels[r], G: cubeLevels[g], B: cubeLevels[b]}
	cubeIdx := 16 + 36*r + 6*g + b

	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	step := 23
	if avg < 238 {
		step = max((avg-8+5)/10, 0)
	}
	level := uint8(8 + 10*step)
	gray := core.RGB{R: level, G: level, B: level}

	if distance(c, gray) < distance(c, cube) {
		return uint8(232 + step)
	}
	return cubeIdx
}

func cubeIndex(v uint8) uint8 {
	if v < 48 {
		return 0
	}
	if v < 115 {
		return 1
	}
	return (v - 35) / 40
}

func distance(a, b core.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// toColor converts an RGB to a tcell color in the given mode
func toColor(c core.RGB, mode ColorMode) tcell.Color {
	if mode == Color256 {
		return tcell.PaletteColor(int(Quantize256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// over composites a premultiplied surface pixel onto an opaque base
func over(base core.RGB, r, g, b, a uint32) core.RGB {
	if a == 0 {
		return base
	}
	inv := 0xffff - a
	ch := func(src uint32, dst uint8) uint8 {
		return uint8((src + uint32(dst)*0x101*inv/0xffff) >> 8)
	}
	return core.RGB{R: ch(r, base.R), G: ch(g, base.G), B: ch(b, base.B)}
}

// boxAverage returns the premultiplied mean of img over [x0, x1) x [y0, y1)
// in 16-bit channels, clamped to the image bounds
func boxAverage(img *image.RGBA, x0, y0, x1, y1 int) (r, g, b, a uint32) {
	bounds := img.Rect
	x0, y0 = max(x0, bounds.Min.X), max(y0, bounds.Min.Y)
	x1, y1 = min(max(x1, x0+1), bounds.Max.X), min(max(y1, y0+1), bounds.Max.Y)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0
	}

	var sr, sg, sb, sa, n uint32
	for y := y0; y < y1; y++ {
		i := img.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			sr += uint32(img.Pix[i])
			sg += uint32(img.Pix[i+1])
			sb += uint32(img.Pix[i+2])
			sa += uint32(img.Pix[i+3])
			i += 4
			n++
		}
	}
	return sr * 0x101 / n, sg * 0x101 / n, sb * 0x101 / n, sa * 0x101 / n
}
