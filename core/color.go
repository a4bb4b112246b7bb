package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Paint is a fill color with opacity. A paint that could not be parsed keeps
// the caller's literal in Raw and is resolved by the drawing backend
type Paint struct {
	RGB
	A   float64
	Raw string
}

// NoPaint marks an absent fill (e.g. liquid "none")
var NoPaint = Paint{}

// White returns opaque or translucent white
func White(alpha float64) Paint {
	return Paint{RGB: RGBWhite, A: alpha}
}

// ParseTranslucent converts a #rrggbb literal into a paint with the given
// alpha. Anything else passes through unchanged as a raw paint
func ParseTranslucent(spec string, alpha float64) Paint {
	if !isHex6(spec) {
		return Paint{Raw: spec}
	}
	c, err := colorful.Hex(spec)
	if err != nil {
		return Paint{Raw: spec}
	}
	r, g, b := c.RGB255()
	return Paint{RGB: RGB{r, g, b}, A: alpha}
}

// MustHex parses a #rrggbb literal known at compile time
func MustHex(spec string) RGB {
	p := ParseTranslucent(spec, 1)
	if p.IsRaw() {
		panic("core: bad hex color " + spec)
	}
	return p.RGB
}

// IsRaw reports whether the paint carries an unparsed literal
func (p Paint) IsRaw() bool {
	return p.Raw != ""
}

// IsZero reports an absent paint
func (p Paint) IsZero() bool {
	return p == NoPaint
}

// WithAlpha returns a copy with opacity replaced
func (p Paint) WithAlpha(a float64) Paint {
	p.A = a
	return p
}

func (p Paint) String() string {
	if p.IsRaw() {
		return p.Raw
	}
	if p.IsZero() {
		return "none"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", p.R, p.G, p.B, p.A)
}

func isHex6(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	return strings.IndexFunc(s[1:], func(r rune) bool {
		return !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F')
	}) < 0
}
