// Package engine mounts simulation drivers: it keeps at most one running,
// replaces it on reconfiguration and routes each frame to the presenter
// and the event handlers.
package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/config"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/events"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/scene"
	"github.com/mindfulcampus/bottlesmash/status"
)

// Frame is a finished simulation frame handed to the presenter
type Frame struct {
	Number   int64
	Surface  canvas.Canvas
	Backdrop scene.Gradient
	Settings config.Settings
}

// Presenter shows finished frames. Present runs on the frame goroutine and
// must return before the next frame is simulated
type Presenter interface {
	Present(f Frame)
}

// PresenterFunc adapts a function to Presenter
type PresenterFunc func(f Frame)

func (fn PresenterFunc) Present(f Frame) { fn(f) }

// Handler is an event handler receiving the stage metrics as context
type Handler = events.Handler[*status.Registry]

// Options configures a Stage
type Options struct {
	// Surface is shared by every driver the stage mounts
	Surface   canvas.Canvas
	Status    *status.Registry
	Presenter Presenter

	// Seed makes driver randomness reproducible; 0 seeds from the clock
	Seed int64

	Frames     scene.TickerFactory
	Background scene.TickerFactory
}

// Stage owns the mounted driver
type Stage struct {
	mu       sync.Mutex
	driver   *scene.Driver
	settings config.Settings
	gen      int64

	surface    canvas.Canvas
	registry   *status.Registry
	queue      *events.EventQueue
	router     *events.Router[*status.Registry]
	backdrop   *scene.Backdrop
	presenter  Presenter
	seed       int64
	frames     scene.TickerFactory
	background scene.TickerFactory

	statDrivers *atomic.Int64
	statLost    *atomic.Int64
}

// NewStage creates an unmounted stage
func NewStage(opts Options) *Stage {
	if opts.Surface == nil {
		opts.Surface = canvas.NewRaster(parameter.SurfaceWidth, parameter.SurfaceHeight)
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.Presenter == nil {
		opts.Presenter = PresenterFunc(func(Frame) {})
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	queue := events.NewEventQueue()
	return &Stage{
		surface:     opts.Surface,
		registry:    opts.Status,
		queue:       queue,
		router:      events.NewRouter[*status.Registry](queue),
		backdrop:    scene.NewBackdrop(""),
		presenter:   opts.Presenter,
		seed:        opts.Seed,
		frames:      opts.Frames,
		background:  opts.Background,
		statDrivers: opts.Status.Ints.Get(status.KeyDrivers),
		statLost:    opts.Status.Ints.Get(status.KeyEventsLost),
	}
}

// Register adds an event handler, must be called before Mount
func (s *Stage) Register(h Handler) {
	s.router.Register(h)
}

// Mount starts a driver for settings, replacing any mounted one
func (s *Stage) Mount(settings config.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remountLocked(settings)
}

// Reconfigure replaces the driver when settings differ from the mounted ones
// Returns false when nothing changed
func (s *Stage) Reconfigure(settings config.Settings) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.driver != nil && settings == s.settings {
		return false
	}
	s.remountLocked(settings)
	return true
}

// Unmount stops the driver and dispatches its remaining events
func (s *Stage) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.dispatch()
}

// remountLocked stops the old driver before the new one exists so two frame
// loops never draw on the shared surface
func (s *Stage) remountLocked(settings config.Settings) {
	s.stopLocked()

	s.gen++
	s.settings = settings
	d := scene.NewDriver(scene.Options{
		Settings:   settings,
		Canvas:     s.surface,
		Rand:       core.NewRand(s.seed + s.gen),
		Queue:      s.queue,
		Status:     s.registry,
		Backdrop:   s.backdrop,
		Frames:     s.frames,
		Background: s.background,
		OnFrame: func(n int64) {
			s.dispatch()
			s.presenter.Present(Frame{
				Number:   n,
				Surface:  s.surface,
				Backdrop: s.backdrop.Current(),
				Settings: settings,
			})
		},
	})
	d.Start()
	s.driver = d
	s.statDrivers.Add(1)
	log.Printf("Stage: Mounted driver %d (%s, glass %s, liquid %s, depth %.1f)",
		s.gen, settings.ObjectType, settings.GlassColor, settings.LiquidColor, settings.WallDepth)
}

// dispatch routes pending events and publishes the overflow count
// Runs on the frame goroutine, or on the caller once the driver is stopped
func (s *Stage) dispatch() {
	s.router.DispatchAll(s.registry)
	s.statLost.Store(int64(s.queue.Lost()))
}

func (s *Stage) stopLocked() {
	if s.driver == nil {
		return
	}
	s.driver.Stop()
	s.driver = nil
	s.statDrivers.Add(-1)
}

// Click forwards a surface click to the mounted driver
func (s *Stage) Click(x, y float64) bool {
	s.mu.Lock()
	d := s.driver
	s.mu.Unlock()
	if d == nil {
		return false
	}
	return d.Click(x, y)
}

// Settings returns the settings of the mounted driver
func (s *Stage) Settings() config.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Mounted reports whether a driver is running
func (s *Stage) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.driver != nil
}

// Generation returns how many drivers have been mounted
func (s *Stage) Generation() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Backdrop returns the container background shared by all drivers
func (s *Stage) Backdrop() *scene.Backdrop { return s.backdrop }

// Status returns the metrics registry
func (s *Stage) Status() *status.Registry { return s.registry }

// Surface returns the shared drawing surface
func (s *Stage) Surface() canvas.Canvas { return s.surface }
