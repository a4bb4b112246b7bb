// Package effect holds the short-lived entities a burst leaves behind:
// triangular shards, polygon shatter pieces and liquid splashes.
// Each entity owns its own Advance/Render pair and decays on its own.
package effect

import (
	"math"

	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

// kinetic is the ballistic state shared by shards and shatter pieces
type kinetic struct {
	pos      vmath.Point
	vel      vmath.Point
	rotation float64
	spin     float64
	life     float64
	fade     float64
	gravity  float64
}

// step integrates one frame; velocity is applied before gravity
func (k *kinetic) step() bool {
	k.pos = k.pos.Add(k.vel)
	k.vel.Y += k.gravity
	k.life -= k.fade
	k.rotation += k.spin
	return k.life > 0
}

// Shard is a small triangular fragment
type Shard struct {
	kinetic
	size  float64
	paint core.Paint
}

// NewShard launches a shard from origin in direction angle
func NewShard(origin vmath.Point, angle float64, paint core.Paint, rng core.Rand) *Shard {
	speed := core.Range(rng, parameter.ShardSpeedMin, parameter.ShardSpeedMax)
	return &Shard{
		kinetic: kinetic{
			pos:      origin,
			vel:      vmath.Polar(angle, speed),
			rotation: rng.Float64() * vmath.TwoPi,
			spin:     core.Signed(rng, parameter.ShardSpinMax),
			life:     1,
			fade:     core.Range(rng, parameter.ShardFadeMin, parameter.ShardFadeMax),
			gravity:  parameter.ShardGravity,
		},
		size:  core.Range(rng, parameter.ShardSizeMin, parameter.ShardSizeMax),
		paint: paint,
	}
}

// Advance moves the shard one frame and reports whether it is still alive
func (s *Shard) Advance() bool {
	return s.step()
}

// Life returns the remaining life in [.., 1]
func (s *Shard) Life() float64 { return s.life }

// Position returns the current center
func (s *Shard) Position() vmath.Point { return s.pos }

// Render draws the shard; expired shards draw nothing
func (s *Shard) Render(c canvas.Canvas) {
	if s.life <= 0 {
		return
	}
	c.Save()
	c.SetAlpha(math.Max(s.life, parameter.ShardMinOpacity))
	c.Translate(s.pos.X, s.pos.Y)
	c.Rotate(s.rotation)
	tri := canvas.NewPath().
		MoveTo(s.size, 0).
		LineTo(-s.size*0.6, s.size*0.7).
		LineTo(-s.size*0.5, -s.size*0.8).
		Close()
	c.Fill(tri, s.paint)
	c.Restore()
}
