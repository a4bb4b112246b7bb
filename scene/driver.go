// Package scene runs the simulation: it owns the live objects and splashes,
// eases the wall depth, draws the wall and advances everything once per frame.
package scene

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/mindfulcampus/bottlesmash/breakable"
	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/config"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/effect"
	"github.com/mindfulcampus/bottlesmash/events"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/parameter/visual"
	"github.com/mindfulcampus/bottlesmash/status"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

// Options configures a Driver. Zero values fall back to live defaults
type Options struct {
	Settings config.Settings
	Canvas   canvas.Canvas
	Rand     core.Rand

	// Queue receives scene events; a private queue is created when nil
	Queue  *events.EventQueue
	Status *status.Registry
	// Backdrop is shared with the presenter; a private one is created when nil
	Backdrop *Backdrop

	// Frames and Background build the task tick sources
	Frames     TickerFactory
	Background TickerFactory

	// OnFrame runs on the frame goroutine after every Step
	OnFrame func(frame int64)
}

// Driver is one simulation instance. It is single use: after Stop a new
// Driver must be built for new settings
type Driver struct {
	settings config.Settings
	canvas   canvas.Canvas
	rng      core.Rand
	bgRand   core.Rand
	queue    *events.EventQueue
	backdrop *Backdrop

	objects  []*breakable.Object
	splashes []*effect.Splash
	depth    float64
	frame    atomic.Int64

	clicks chan vmath.Point

	frameTask  *task
	bgTask     *task
	frames     TickerFactory
	background TickerFactory
	onFrame    func(int64)

	statFrames     *atomic.Int64
	statObjects    *atomic.Int64
	statSplashes   *atomic.Int64
	statSmashes    *atomic.Int64
	statDepth      *status.AtomicFloat
	statBackground *status.AtomicString
}

// NewDriver builds a stopped driver with empty collections
func NewDriver(opts Options) *Driver {
	if opts.Canvas == nil {
		opts.Canvas = canvas.NewRaster(parameter.SurfaceWidth, parameter.SurfaceHeight)
	}
	if opts.Rand == nil {
		opts.Rand = core.NewRand(time.Now().UnixNano())
	}
	if opts.Queue == nil {
		opts.Queue = events.NewEventQueue()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.Backdrop == nil {
		opts.Backdrop = NewBackdrop("")
	}
	if opts.Frames == nil {
		opts.Frames = NewTicker
	}
	if opts.Background == nil {
		opts.Background = NewTicker
	}

	reg := opts.Status
	return &Driver{
		settings:       opts.Settings,
		canvas:         opts.Canvas,
		rng:            opts.Rand,
		bgRand:         core.NewRand(int64(opts.Rand.Intn(1 << 30))),
		queue:          opts.Queue,
		backdrop:       opts.Backdrop,
		objects:        make([]*breakable.Object, 0, 16),
		splashes:       make([]*effect.Splash, 0, 16),
		depth:          parameter.InitialSmoothedDepth,
		clicks:         make(chan vmath.Point, parameter.ClickQueueSize),
		frameTask:      newTask(),
		bgTask:         newTask(),
		frames:         opts.Frames,
		background:     opts.Background,
		onFrame:        opts.OnFrame,
		statFrames:     reg.Ints.Get(status.KeyFrames),
		statObjects:    reg.Ints.Get(status.KeyObjects),
		statSplashes:   reg.Ints.Get(status.KeySplashes),
		statSmashes:    reg.Ints.Get(status.KeySmashes),
		statDepth:      reg.Floats.Get(status.KeyDepth),
		statBackground: reg.Strings.Get(status.KeyBackground),
	}
}

// Start launches the frame task and applies the background
// With background "auto" the rotation task starts as well
func (d *Driver) Start() {
	if !d.frameTask.start(d.frameLoop) {
		return
	}
	if d.settings.Background == config.Auto {
		d.rotateBackground()
		d.bgTask.start(d.backgroundLoop)
	} else {
		d.applyBackground(d.settings.Background, false)
	}
}

// Stop cancels both tasks and waits for them to exit. Safe to call repeatedly
func (d *Driver) Stop() {
	d.bgTask.stop()
	d.frameTask.stop()
}

// Running reports whether the frame task is live
func (d *Driver) Running() bool {
	return d.frameTask.isRunning()
}

// RotationRunning reports whether the background task is live
func (d *Driver) RotationRunning() bool {
	return d.bgTask.isRunning()
}

// Click queues a spawn at surface coordinates. Safe from any goroutine;
// the object is created on the next Step
func (d *Driver) Click(x, y float64) bool {
	select {
	case d.clicks <- vmath.Pt(x, y):
		return true
	default:
		log.Printf("Scene: Click queue full, dropping click at (%.0f, %.0f)", x, y)
		return false
	}
}

func (d *Driver) frameLoop(stop <-chan struct{}) {
	tickLoop(d.frames(parameter.FrameUpdateInterval), stop, func(time.Time) {
		d.Step()
		if d.onFrame != nil {
			d.onFrame(d.frame.Load())
		}
	})
}

func (d *Driver) backgroundLoop(stop <-chan struct{}) {
	tickLoop(d.background(parameter.BackgroundRotateInterval), stop, func(time.Time) {
		d.rotateBackground()
	})
}

func (d *Driver) rotateBackground() {
	next := PickNext(d.bgRand, visual.Backgrounds, d.backdrop.Literal())
	d.applyBackground(next, true)
}

func (d *Driver) applyBackground(literal string, auto bool) {
	prev := d.backdrop.Set(literal)
	d.statBackground.Store(literal)
	d.emit(events.EventBackgroundChanged, &events.BackgroundChangedPayload{
		Previous: prev,
		Current:  literal,
		Auto:     auto,
	})
}

// Step runs one frame: spawn queued clicks, clear, ease depth, draw the
// wall, then advance and draw splashes and objects
func (d *Driver) Step() {
	d.frame.Add(1)
	d.drainClicks()

	c := d.canvas
	c.Clear()

	d.depth += (d.settings.WallDepth - d.depth) * parameter.DepthEase
	d.drawWall(c)

	d.stepSplashes(c)
	d.stepObjects(c)

	d.statFrames.Add(1)
	d.statObjects.Store(int64(len(d.objects)))
	d.statSplashes.Store(int64(len(d.splashes)))
	d.statDepth.Set(d.depth)
}

// stepSplashes advances in insertion order, keeping survivors in place
// Each splash is advanced exactly once and drawn only while alive
func (d *Driver) stepSplashes(c canvas.Canvas) {
	live := d.splashes[:0]
	for _, s := range d.splashes {
		if !s.Advance() {
			continue
		}
		s.Render(c, d.depth)
		live = append(live, s)
	}
	clear(d.splashes[len(live):])
	d.splashes = live
}

// stepObjects advances objects the same way; splashes from bursts join the
// splash collection after the pass and are drawn from the next frame on
func (d *Driver) stepObjects(c canvas.Canvas) {
	var born []*effect.Splash

	live := d.objects[:0]
	for _, o := range d.objects {
		alive, burst := o.Advance()
		if burst != nil {
			d.statSmashes.Add(1)
			d.emitBurst(burst)
			if burst.Splash != nil {
				born = append(born, burst.Splash)
			}
		}
		if !alive {
			continue
		}
		o.Render(c)
		live = append(live, o)
	}
	clear(d.objects[len(live):])
	d.objects = live
	d.splashes = append(d.splashes, born...)
}

func (d *Driver) drainClicks() {
	for {
		select {
		case p := <-d.clicks:
			d.spawn(p)
		default:
			return
		}
	}
}

func (d *Driver) spawn(target vmath.Point) {
	kind := d.resolveKind()
	glass := d.resolveGlass()
	launch := vmath.Pt(
		float64(d.canvas.Width())/2,
		float64(d.canvas.Height())+parameter.LaunchOffsetY,
	)

	o := breakable.New(kind, glass, d.settings.LiquidColor, target, breakable.Options{
		WallDepth: d.settings.WallDepth,
		Launch:    launch,
		Rand:      d.rng,
	})
	d.objects = append(d.objects, o)

	d.emit(events.EventObjectSpawned, &events.ObjectSpawnedPayload{
		Kind:      kind.String(),
		Glass:     glass,
		Liquid:    d.settings.LiquidColor,
		X:         target.X,
		Y:         target.Y,
		WallDepth: d.settings.WallDepth,
	})
}

// resolveKind samples a kind for "random"; unknown names are sampled too
func (d *Driver) resolveKind() breakable.Kind {
	if k, ok := breakable.ParseKind(d.settings.ObjectType); ok {
		return k
	}
	return breakable.Kinds[d.rng.Intn(len(breakable.Kinds))]
}

// resolveGlass samples the palette for "random"; anything else passes through
func (d *Driver) resolveGlass() string {
	if d.settings.GlassColor == config.Random {
		return visual.GlassColors[d.rng.Intn(len(visual.GlassColors))]
	}
	return d.settings.GlassColor
}

func (d *Driver) emitBurst(b *breakable.Burst) {
	d.emit(events.EventObjectBurst, &events.ObjectBurstPayload{
		Kind:      b.Kind.String(),
		Glass:     b.Glass.String(),
		Liquid:    b.Liquid.String(),
		X:         b.Target.X,
		Y:         b.Target.Y,
		WallDepth: b.Depth,
		Shards:    b.Shards,
		Pieces:    b.Pieces,
	})
	if b.Splash != nil {
		d.emit(events.EventSplashSpawned, &events.SplashSpawnedPayload{
			Liquid: b.Splash.Paint().String(),
			X:      b.Target.X,
			Y:      b.Target.Y,
			Arms:   b.Splash.ArmCount(),
		})
	}
}

func (d *Driver) emit(t events.EventType, payload any) {
	d.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     d.frame.Load(),
		Timestamp: time.Now(),
	})
}

// Objects returns the live objects in z-order. Frame goroutine only
func (d *Driver) Objects() []*breakable.Object { return d.objects }

// Splashes returns the live splashes in z-order. Frame goroutine only
func (d *Driver) Splashes() []*effect.Splash { return d.splashes }

// Depth returns the smoothed wall depth
func (d *Driver) Depth() float64 { return d.depth }

// Frame returns the number of completed steps. Safe from any goroutine
func (d *Driver) Frame() int64 { return d.frame.Load() }

// Settings returns the snapshot the driver was built with
func (d *Driver) Settings() config.Settings { return d.settings }

// Canvas returns the drawing surface
func (d *Driver) Canvas() canvas.Canvas { return d.canvas }

// Backdrop returns the container background holder
func (d *Driver) Backdrop() *Backdrop { return d.backdrop }

// Queue returns the event queue the driver emits to
func (d *Driver) Queue() *events.EventQueue { return d.queue }
