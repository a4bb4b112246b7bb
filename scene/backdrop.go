package scene

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/mindfulcampus/bottlesmash/core"
)

// Stop is one color stop of a gradient, Offset in [0, 1]
type Stop struct {
	Color  colorful.Color
	Offset float64
}

// Gradient is a parsed CSS linear-gradient literal
type Gradient struct {
	Literal string
	Angle   float64 // CSS degrees, 0 points up, clockwise
	Stops   []Stop
}

// ParseGradient parses "linear-gradient(<deg>deg, <#hex> <pct>%, ...)"
func ParseGradient(literal string) (Gradient, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(literal), "linear-gradient(")
	if !ok || !strings.HasSuffix(body, ")") {
		return Gradient{}, errors.Errorf("not a linear gradient: %q", literal)
	}
	parts := strings.Split(strings.TrimSuffix(body, ")"), ",")
	if len(parts) < 3 {
		return Gradient{}, errors.Errorf("gradient needs an angle and two stops: %q", literal)
	}

	g := Gradient{Literal: literal}
	deg, ok := strings.CutSuffix(strings.TrimSpace(parts[0]), "deg")
	if !ok {
		return Gradient{}, errors.Errorf("gradient angle must be in deg: %q", parts[0])
	}
	angle, err := strconv.ParseFloat(deg, 64)
	if err != nil {
		return Gradient{}, errors.Wrapf(err, "gradient angle %q", parts[0])
	}
	g.Angle = angle

	for i, part := range parts[1:] {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			return Gradient{}, errors.Errorf("empty gradient stop in %q", literal)
		}
		c, err := colorful.Hex(fields[0])
		if err != nil {
			return Gradient{}, errors.Wrapf(err, "gradient stop color %q", fields[0])
		}
		// Stops without a position are spread evenly
		offset := float64(i) / float64(len(parts)-2)
		if len(fields) > 1 {
			pct, err := strconv.ParseFloat(strings.TrimSuffix(fields[1], "%"), 64)
			if err != nil {
				return Gradient{}, errors.Wrapf(err, "gradient stop offset %q", fields[1])
			}
			offset = pct / 100
		}
		g.Stops = append(g.Stops, Stop{Color: c, Offset: offset})
	}
	return g, nil
}

// MustGradient parses a literal known at compile time
func MustGradient(literal string) Gradient {
	g, err := ParseGradient(literal)
	if err != nil {
		panic(err)
	}
	return g
}

// At returns the color at gradient position u in [0, 1]
func (g Gradient) At(u float64) core.RGB {
	if len(g.Stops) == 0 {
		return core.RGBBlack
	}
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	switch {
	case u <= first.Offset:
		return rgb(first.Color)
	case u >= last.Offset:
		return rgb(last.Color)
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if u <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return rgb(b.Color)
			}
			return rgb(a.Color.BlendRgb(b.Color, (u-a.Offset)/span))
		}
	}
	return rgb(last.Color)
}

// Sample returns the color at (x, y) of a w×h box filled with the gradient
// The gradient line runs through the box center at the CSS angle and is
// long enough for the corners to hit the first and last stop
func (g Gradient) Sample(x, y, w, h float64) core.RGB {
	sin, cos := math.Sincos(g.Angle * math.Pi / 180)
	dx, dy := sin, -cos
	length := math.Abs(w*sin) + math.Abs(h*cos)
	if length == 0 {
		return g.At(0)
	}
	u := ((x-w/2)*dx+(y-h/2)*dy)/length + 0.5
	return g.At(u)
}

func rgb(c colorful.Color) core.RGB {
	r, g, b := c.Clamped().RGB255()
	return core.RGB{R: r, G: g, B: b}
}

// Backdrop is the container background shared by the presenter and the
// background task. It never touches the simulation collections
type Backdrop struct {
	mu       sync.RWMutex
	gradient Gradient
}

// NewBackdrop starts with the given gradient literal
func NewBackdrop(literal string) *Backdrop {
	b := &Backdrop{}
	b.Set(literal)
	return b
}

// Set applies a gradient literal and returns the previous one
// Unparseable literals keep the literal with no stops, which draws black
func (b *Backdrop) Set(literal string) string {
	g, err := ParseGradient(literal)
	if err != nil {
		g = Gradient{Literal: literal}
	}
	b.mu.Lock()
	prev := b.gradient.Literal
	b.gradient = g
	b.mu.Unlock()
	return prev
}

// Current returns the applied gradient
func (b *Backdrop) Current() Gradient {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.gradient
}

// Literal returns the applied gradient literal
func (b *Backdrop) Literal() string {
	return b.Current().Literal
}

// PickNext chooses uniformly from palette excluding prev
// A prev outside the palette excludes nothing
func PickNext(rng core.Rand, palette []string, prev string) string {
	candidates := make([]string, 0, len(palette))
	for _, p := range palette {
		if p != prev {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return prev
	}
	return candidates[rng.Intn(len(candidates))]
}
