package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/scene"
	"github.com/mindfulcampus/bottlesmash/status"
)

// slowPresenter holds the frame goroutine until release is closed
type slowPresenter struct {
	gate    *FrameGate
	release chan struct{}
	hold    atomic.Bool
}

func (p *slowPresenter) Present(f Frame) {
	if p.hold.Load() {
		<-p.release
	}
	p.gate.Present(f)
}

func TestFrameGateStepsStage(t *testing.T) {
	ticks := scene.NewManualSource()
	gate := NewFrameGate(ticks, time.Second)
	stage := NewStage(Options{
		Surface:    canvas.NewRecorder(800, 500),
		Status:     status.NewRegistry(),
		Presenter:  gate,
		Seed:       7,
		Frames:     ticks.Factory(),
		Background: scene.NewManualSource().Factory(),
	})

	if gate.Step() {
		t.Fatal("step without a mounted driver presented a frame")
	}
	if !gate.Settled() {
		t.Fatal("idle gate should be settled")
	}

	stage.Mount(baseSettings())
	defer stage.Unmount()
	for i := int64(1); i <= 3; i++ {
		if !gate.Step() {
			t.Fatalf("step %d presented nothing", i)
		}
		if gate.Frame().Number != i || !gate.Settled() {
			t.Errorf("step %d: frame %d settled %v", i, gate.Frame().Number, gate.Settled())
		}
	}
}

func TestFrameGateUnsettledWhileFrameRuns(t *testing.T) {
	ticks := scene.NewManualSource()
	gate := NewFrameGate(ticks, 30*time.Millisecond)
	p := &slowPresenter{gate: gate, release: make(chan struct{})}
	stage := NewStage(Options{
		Surface:    canvas.NewRecorder(800, 500),
		Status:     status.NewRegistry(),
		Presenter:  p,
		Seed:       8,
		Frames:     ticks.Factory(),
		Background: scene.NewManualSource().Factory(),
	})
	stage.Mount(baseSettings())
	defer stage.Unmount()

	if !gate.Step() {
		t.Fatal("first step presented nothing")
	}

	p.hold.Store(true)
	if gate.Step() {
		t.Fatal("held frame reported as presented")
	}
	if gate.Settled() {
		t.Fatal("gate settled while the frame goroutine is still drawing")
	}
	// The frame task is busy, so the next tick is refused and the gate stays unsettled
	if gate.Step() || gate.Settled() {
		t.Fatal("gate settled before the late frame finished")
	}

	p.hold.Store(false)
	close(p.release)
	time.Sleep(20 * time.Millisecond)
	if !gate.Step() {
		t.Fatal("step after release presented nothing")
	}
	if !gate.Settled() || gate.Frame().Number != 3 {
		t.Errorf("after release: frame %d settled %v", gate.Frame().Number, gate.Settled())
	}
}
