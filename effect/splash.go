package effect

import (
	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

type ellipse struct {
	rx, ry   float64
	rotation float64
}

type splashArm struct {
	angle  float64
	length float64
	width  float64
	tip    float64 // secondary radius of the blob at the arm's end
	ellipse
}

type droplet struct {
	angle    float64
	distance float64
	radius   float64
}

// Splash is a liquid stain left on the wall at an impact point
// Geometry is randomized once; only life changes afterwards
type Splash struct {
	anchor   vmath.Point
	size     float64
	paint    core.Paint
	center   ellipse
	arms     []splashArm
	droplets []droplet
	life     float64
}

// NewSplash builds the splash shape around anchor
func NewSplash(anchor vmath.Point, paint core.Paint, rng core.Rand) *Splash {
	size := core.Range(rng, parameter.SplashSizeMin, parameter.SplashSizeMax)
	s := &Splash{
		anchor: anchor,
		size:   size,
		paint:  paint,
		center: ellipse{
			rx:       size * core.Range(rng, 0.45, 0.55),
			ry:       size * core.Range(rng, 0.3, 0.4),
			rotation: rng.Float64() * vmath.TwoPi,
		},
		life: 1,
	}

	n := core.IntRange(rng, parameter.SplashArmMin, parameter.SplashArmMax)
	s.arms = make([]splashArm, n)
	for i := range s.arms {
		length := size * core.Range(rng, 0.6, 1.1)
		width := size * core.Range(rng, 0.12, 0.22)
		s.arms[i] = splashArm{
			angle:  vmath.TwoPi*float64(i)/float64(n) + core.Signed(rng, parameter.SplashArmJitter),
			length: length,
			width:  width,
			tip:    width * core.Range(rng, 0.5, 0.8),
			ellipse: ellipse{
				rx:       length / 2,
				ry:       width / 2,
				rotation: core.Signed(rng, 0.15),
			},
		}
	}

	m := core.IntRange(rng, parameter.SplashDropletMin, parameter.SplashDropletMax)
	s.droplets = make([]droplet, m)
	for i := range s.droplets {
		s.droplets[i] = droplet{
			angle:    rng.Float64() * vmath.TwoPi,
			distance: size * core.Range(rng, 0.8, 1.6),
			radius:   core.Range(rng, 2, 6),
		}
	}
	return s
}

// Advance fades the splash by one frame and reports whether it is still visible
func (s *Splash) Advance() bool {
	s.life -= parameter.SplashFadeRate
	return s.life > 0
}

// Life returns the remaining opacity
func (s *Splash) Life() float64 { return s.life }

// Anchor returns the impact point in surface coordinates at depth 1
func (s *Splash) Anchor() vmath.Point { return s.anchor }

// Paint returns the liquid color
func (s *Splash) Paint() core.Paint { return s.paint }

// ArmCount returns the number of radiating arms
func (s *Splash) ArmCount() int { return len(s.arms) }

// DropletCount returns the number of loose droplets
func (s *Splash) DropletCount() int { return len(s.droplets) }

// Render draws the splash projected through the live wall depth
// Anchor and geometry both scale by 1/depth about the surface center
func (s *Splash) Render(c canvas.Canvas, depth float64) {
	if s.life <= 0 || depth <= 0 {
		return
	}
	k := 1 / depth
	mid := vmath.Pt(float64(c.Width())/2, float64(c.Height())/2)
	pos := vmath.ProjectAbout(s.anchor, mid, k)

	c.Save()
	c.SetAlpha(s.life)
	c.Translate(pos.X, pos.Y)
	c.Scale(k, k)

	c.Fill(canvas.NewPath().Ellipse(0, 0, s.center.rx, s.center.ry, s.center.rotation), s.paint)

	for _, arm := range s.arms {
		c.Save()
		c.Rotate(arm.angle)
		c.Translate(arm.length/2, 0)
		body := canvas.NewPath().
			Ellipse(0, 0, arm.rx, arm.ry, arm.rotation).
			Circle(arm.length/2, 0, arm.tip)
		c.Fill(body, s.paint)
		c.Restore()
	}

	drops := canvas.NewPath()
	for _, d := range s.droplets {
		p := vmath.Polar(d.angle, d.distance)
		drops.Circle(p.X, p.Y, d.radius)
	}
	c.Fill(drops, s.paint)

	c.Restore()
}
