package engine

import (
	"log"
	"time"
)

// Ticker delivers one manual frame tick, reporting whether a frame task took it
type Ticker interface {
	Tick(timeout time.Duration) bool
}

// FrameGate is a Presenter for hosts that own the frame clock, such as a
// window's update loop. Step ticks the stage once and waits for the frame;
// Settled reports whether the shared surface may be read, i.e. no frame the
// host started is still being drawn
type FrameGate struct {
	ticks   Ticker
	wait    time.Duration
	done    chan Frame
	frame   Frame
	settled bool
}

// NewFrameGate builds a gate over ticks. wait bounds both the tick hand-off
// and the wait for the presented frame
func NewFrameGate(ticks Ticker, wait time.Duration) *FrameGate {
	return &FrameGate{
		ticks:   ticks,
		wait:    wait,
		done:    make(chan Frame, 1),
		settled: true,
	}
}

// Present runs on the frame goroutine
func (g *FrameGate) Present(f Frame) {
	select {
	case g.done <- f:
	default:
	}
}

// Step delivers one tick and waits for its frame. Host goroutine only
// Returns true when a new frame was presented
func (g *FrameGate) Step() bool {
	// A late frame from an earlier tick lands here once it is done
	select {
	case g.frame = <-g.done:
		g.settled = true
	default:
	}
	if !g.ticks.Tick(g.wait) {
		return false
	}
	select {
	case g.frame = <-g.done:
		g.settled = true
		return true
	case <-time.After(g.wait):
		log.Printf("Engine: Frame not presented within %v", g.wait)
		g.settled = false
		return false
	}
}

// Settled reports whether the last started frame has been presented
func (g *FrameGate) Settled() bool { return g.settled }

// Frame returns the last presented frame
func (g *FrameGate) Frame() Frame { return g.frame }
