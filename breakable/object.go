// Package breakable implements the thrown object: it flies from the launch
// point to its target while receding into the wall, then bursts into
// shards, shatter pieces and an optional liquid splash.
package breakable

import (
	"math"

	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/effect"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

// Liquid sentinels accepted by New
const (
	LiquidSame = "same"
	LiquidNone = "none"
)

// Options carries the spawn-time context of an object
type Options struct {
	// WallDepth is frozen into the object: it sets the throw duration and target depth
	WallDepth float64
	// Launch is the point the object starts from
	Launch vmath.Point
	Rand   core.Rand
}

// Burst reports the frame an object shattered
// Splash is nil when the object carried no liquid; the caller takes ownership of it
type Burst struct {
	Kind   Kind
	Target vmath.Point
	Glass  core.Paint
	Liquid core.Paint
	Depth  float64
	Shards int
	Pieces int
	Splash *effect.Splash
}

// Object is a single thrown breakable
type Object struct {
	kind   Kind
	glass  core.Paint
	liquid core.Paint

	launch vmath.Point
	target vmath.Point
	pos    vmath.Point

	depthProgress float64
	progress      int
	totalFrames   float64
	targetDepth   float64

	rotation    float64
	rotationVel float64
	sizeScale   float64

	burst      bool
	burstFrame int
	shards     []*effect.Shard
	pieces     []*effect.ShatterPiece

	rng core.Rand
}

// ResolveLiquid applies the liquid sentinels against a resolved glass paint
func ResolveLiquid(spec string, glass core.Paint) core.Paint {
	switch spec {
	case LiquidSame:
		return glass
	case LiquidNone, "":
		return core.NoPaint
	}
	return core.ParseTranslucent(spec, 1)
}

// New creates an object aimed at target
func New(kind Kind, glassSpec, liquidSpec string, target vmath.Point, opts Options) *Object {
	rng := opts.Rand
	if rng == nil {
		rng = core.NewRand(0)
	}
	glass := core.ParseTranslucent(glassSpec, parameter.GlassAlpha)

	spin := core.Range(rng, parameter.RotationSpeedMin, parameter.RotationSpeedMax)
	if rng.Float64() < 0.5 {
		spin = -spin
	}

	return &Object{
		kind:        kind,
		glass:       glass,
		liquid:      ResolveLiquid(liquidSpec, glass),
		launch:      opts.Launch,
		target:      target,
		pos:         opts.Launch,
		totalFrames: parameter.FramesPerDepthUnit * opts.WallDepth,
		targetDepth: opts.WallDepth,
		rotation:    rng.Float64() * vmath.TwoPi,
		rotationVel: spin,
		sizeScale:   core.Range(rng, parameter.SizeScaleMin, parameter.SizeScaleMax),
		rng:         rng,
	}
}

// Advance moves the object one frame
// Returns false once the fragment window after the burst has elapsed;
// burst is non-nil only on the frame the object shatters
func (o *Object) Advance() (alive bool, burst *Burst) {
	if o.burst {
		o.burstFrame++
		o.advanceFragments()
		return o.burstFrame <= parameter.FragmentWindowFrames, nil
	}

	o.progress++
	t := math.Min(float64(o.progress)/o.totalFrames, 1)
	o.depthProgress = t * o.targetDepth
	o.pos = vmath.Lerp(o.launch, o.target, t)
	o.rotation += o.rotationVel

	if float64(o.progress) >= o.totalFrames {
		return true, o.shatter()
	}
	return true, nil
}

func (o *Object) shatter() *Burst {
	o.burst = true
	o.burstFrame = 0
	o.pos = o.target

	b := &Burst{
		Kind:   o.kind,
		Target: o.target,
		Glass:  o.glass,
		Liquid: o.liquid,
		Depth:  o.targetDepth,
	}
	if o.HasLiquid() {
		b.Splash = effect.NewSplash(o.target, o.liquid, o.rng)
	}

	n := core.IntRange(o.rng, parameter.ShardCountMin, parameter.ShardCountMax)
	o.shards = make([]*effect.Shard, n)
	for i := range o.shards {
		o.shards[i] = effect.NewShard(o.target, o.fragmentAngle(i, n), o.glass, o.rng)
	}

	m := core.IntRange(o.rng, parameter.ShatterCountMin, parameter.ShatterCountMax)
	o.pieces = make([]*effect.ShatterPiece, m)
	for i := range o.pieces {
		o.pieces[i] = effect.NewShatterPiece(o.target, o.fragmentAngle(i, m), o.glass, o.rng)
	}

	b.Shards, b.Pieces = n, m
	return b
}

// fragmentAngle spreads n fragments over a full circle with jitter
func (o *Object) fragmentAngle(i, n int) float64 {
	return vmath.TwoPi*float64(i)/float64(n) + core.Signed(o.rng, parameter.FragmentAngleJitter)
}

// advanceFragments steps live fragments and drops the expired ones
func (o *Object) advanceFragments() {
	shards := o.shards[:0]
	for _, s := range o.shards {
		if s.Advance() {
			shards = append(shards, s)
		}
	}
	clear(o.shards[len(shards):])
	o.shards = shards

	pieces := o.pieces[:0]
	for _, p := range o.pieces {
		if p.Advance() {
			pieces = append(pieces, p)
		}
	}
	clear(o.pieces[len(pieces):])
	o.pieces = pieces
}

// Render draws the flying shape, or the fragments and impact flash after the burst
func (o *Object) Render(c canvas.Canvas) {
	if !o.burst {
		k := o.Scale()
		c.Save()
		c.Translate(o.pos.X, o.pos.Y)
		c.Scale(k, k)
		c.Rotate(o.rotation)
		DrawShape(c, o.kind, o.glass, o.liquid)
		c.Restore()
		return
	}

	for _, p := range o.pieces {
		p.Render(c)
	}
	for _, s := range o.shards {
		s.Render(c)
	}

	if o.burstFrame < parameter.FlashFrames {
		f := float64(o.burstFrame)
		radius := parameter.FlashBaseRadius + parameter.FlashGrowth*f
		alpha := parameter.FlashAlpha * (1 - f/parameter.FlashFrames)
		c.Fill(canvas.NewPath().Circle(o.target.X, o.target.Y, radius), core.White(alpha))
	}
}

// Scale returns the pre-burst draw scale: the object shrinks as it recedes
func (o *Object) Scale() float64 {
	return (1 - o.depthProgress/(o.targetDepth*parameter.DepthShrinkDivisor)) * o.sizeScale
}

func (o *Object) Kind() Kind             { return o.kind }
func (o *Object) Glass() core.Paint      { return o.glass }
func (o *Object) Liquid() core.Paint     { return o.liquid }
func (o *Object) HasLiquid() bool        { return !o.liquid.IsZero() }
func (o *Object) Target() vmath.Point    { return o.target }
func (o *Object) Position() vmath.Point  { return o.pos }
func (o *Object) DepthProgress() float64 { return o.depthProgress }
func (o *Object) TargetDepth() float64   { return o.targetDepth }
func (o *Object) Progress() int          { return o.progress }
func (o *Object) TotalFrames() float64   { return o.totalFrames }
func (o *Object) Rotation() float64      { return o.rotation }
func (o *Object) HasBurst() bool         { return o.burst }
func (o *Object) BurstFrame() int        { return o.burstFrame }
func (o *Object) ShardCount() int        { return len(o.shards) }
func (o *Object) PieceCount() int        { return len(o.pieces) }
