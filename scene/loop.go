package scene

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/mindfulcampus/bottlesmash/core"
)

// FrameSource delivers ticks to a scheduled task
// The frame task uses one at the display rate, the background task one at 8s
type FrameSource interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds a FrameSource for an interval
type TickerFactory func(interval time.Duration) FrameSource

type tickerSource struct {
	t *time.Ticker
}

// NewTicker is the wall-clock TickerFactory
func NewTicker(interval time.Duration) FrameSource {
	return tickerSource{t: time.NewTicker(interval)}
}

func (s tickerSource) C() <-chan time.Time { return s.t.C }
func (s tickerSource) Stop()               { s.t.Stop() }

// ManualSource is a FrameSource driven by the caller, for headless runs and tests
type ManualSource struct {
	ch      chan time.Time
	stopped atomic.Bool
}

// NewManualSource creates an unbuffered manual source
// Tick blocks until the owning task receives it
func NewManualSource() *ManualSource {
	return &ManualSource{ch: make(chan time.Time)}
}

func (m *ManualSource) C() <-chan time.Time { return m.ch }
func (m *ManualSource) Stop()               { m.stopped.Store(true) }

// Stopped reports whether the owning task released the source
func (m *ManualSource) Stopped() bool { return m.stopped.Load() }

// Tick delivers one tick, giving up after timeout
// Returns false if no task took the tick
func (m *ManualSource) Tick(timeout time.Duration) bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-time.After(timeout):
		return false
	}
}

// Factory returns a TickerFactory that hands out this source for any interval
func (m *ManualSource) Factory() TickerFactory {
	return func(time.Duration) FrameSource { return m }
}

// task is one cancellable scheduled activity
// Each task owns its stop channel so stopping one never stops another
type task struct {
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

func newTask() *task {
	return &task{stopChan: make(chan struct{})}
}

// start runs fn on a crash-guarded goroutine until stop is closed
// A task runs at most once and never after stop
func (t *task) start(fn func(stop <-chan struct{})) bool {
	select {
	case <-t.stopChan:
		return false
	default:
	}
	if !t.running.CompareAndSwap(false, true) {
		return false
	}
	t.wg.Add(1)
	core.Go(func() {
		defer t.wg.Done()
		fn(t.stopChan)
	})
	return true
}

// stop closes the stop channel and waits for the goroutine to exit
func (t *task) stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
		t.wg.Wait()
	})
}

func (t *task) isRunning() bool {
	select {
	case <-t.stopChan:
		return false
	default:
		return t.running.Load()
	}
}

// tickLoop calls fn on every tick of src until stop closes
// A received tick is always processed; stop waits for it
func tickLoop(src FrameSource, stop <-chan struct{}, fn func(time.Time)) {
	defer src.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-src.C():
			fn(now)
		}
	}
}
