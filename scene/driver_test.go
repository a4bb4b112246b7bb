package scene

import (
	"math"
	"testing"
	"time"

	"github.com/mindfulcampus/bottlesmash/breakable"
	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/config"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/events"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/parameter/visual"
	"github.com/mindfulcampus/bottlesmash/status"
	"github.com/mindfulcampus/bottlesmash/vmath"
)

func newTestDriver(s config.Settings, seed int64) (*Driver, *canvas.Recorder) {
	rec := canvas.NewRecorder(parameter.SurfaceWidth, parameter.SurfaceHeight)
	d := NewDriver(Options{
		Settings: s,
		Canvas:   rec,
		Rand:     core.NewRand(seed),
	})
	return d, rec
}

func scenarioSettings() config.Settings {
	return config.Settings{
		ObjectType:  "bottle",
		GlassColor:  "#7EC8E3",
		LiquidColor: config.SameTint,
		Background:  visual.Backgrounds[0],
		WallDepth:   1.5,
	}
}

func TestScenarioBottleAtCenter(t *testing.T) {
	d, _ := newTestDriver(scenarioSettings(), 1)

	d.Click(400, 250)
	d.Step()
	if len(d.Objects()) != 1 {
		t.Fatalf("objects after click = %d, want 1", len(d.Objects()))
	}
	o := d.Objects()[0]
	if o.Kind() != breakable.Bottle || o.Target() != vmath.Pt(400, 250) {
		t.Fatalf("spawned %v at %v", o.Kind(), o.Target())
	}
	if o.TotalFrames() != 37.5 {
		t.Errorf("totalFrames = %v, want 37.5", o.TotalFrames())
	}

	for frame := 2; frame < 38; frame++ {
		d.Step()
		if o.HasBurst() {
			t.Fatalf("burst early at frame %d", frame)
		}
	}
	if len(d.Splashes()) != 0 {
		t.Fatal("splash before burst")
	}

	d.Step() // frame 38
	if !o.HasBurst() {
		t.Fatal("no burst on frame 38")
	}
	if len(d.Splashes()) != 1 {
		t.Fatalf("splashes = %d, want 1", len(d.Splashes()))
	}
	sp := d.Splashes()[0]
	if sp.Anchor() != vmath.Pt(400, 250) {
		t.Errorf("splash anchor = %v", sp.Anchor())
	}
	if sp.Paint() != core.ParseTranslucent("#7EC8E3", parameter.GlassAlpha) {
		t.Errorf("splash paint = %v", sp.Paint())
	}
	if n := o.ShardCount(); n < 28 || n > 40 {
		t.Errorf("shards = %d", n)
	}
	if n := o.PieceCount(); n < 12 || n > 18 {
		t.Errorf("pieces = %d", n)
	}

	for frame := 39; frame <= 62; frame++ {
		d.Step()
		if len(d.Objects()) != 1 {
			t.Fatalf("object removed early at frame %d (burst frame %d)", frame, o.BurstFrame())
		}
	}
	d.Step() // burst frame 25
	if len(d.Objects()) != 0 {
		t.Error("object still live after the fragment window")
	}
	if len(d.Splashes()) != 1 {
		t.Error("splash should outlive its object")
	}

	evs := d.Queue().Consume()
	var spawned, burst, splashed int
	for _, ev := range evs {
		switch ev.Type {
		case events.EventObjectSpawned:
			spawned++
		case events.EventObjectBurst:
			burst++
			p := ev.Payload.(*events.ObjectBurstPayload)
			if ev.Frame != 38 || p.Kind != "bottle" || p.X != 400 || p.Y != 250 {
				t.Errorf("burst event = frame %d %+v", ev.Frame, p)
			}
		case events.EventSplashSpawned:
			splashed++
		}
	}
	if spawned != 1 || burst != 1 || splashed != 1 {
		t.Errorf("events spawned=%d burst=%d splash=%d", spawned, burst, splashed)
	}
}

func TestScenarioNoLiquid(t *testing.T) {
	s := scenarioSettings()
	s.LiquidColor = config.NoLiquid
	d, _ := newTestDriver(s, 2)

	d.Click(200, 120)
	for i := 0; i < 80; i++ {
		d.Step()
		if len(d.Splashes()) != 0 {
			t.Fatalf("splash appeared at frame %d", i+1)
		}
	}
	if len(d.Objects()) != 0 {
		t.Error("object should be gone after 80 frames")
	}
	if d.statSmashes.Load() != 1 {
		t.Errorf("smashes = %d", d.statSmashes.Load())
	}
}

func TestSplashFadesOutOfScene(t *testing.T) {
	d, _ := newTestDriver(scenarioSettings(), 3)
	d.Click(400, 250)
	for d.Frame() < 38 {
		d.Step()
	}
	fade := parameter.SplashFadeSeconds * parameter.FrameRate
	for i := 0; i < fade-2; i++ {
		d.Step()
	}
	if len(d.Splashes()) != 1 {
		t.Fatal("splash gone before its fade completed")
	}
	for i := 0; i < 3; i++ {
		d.Step()
	}
	if len(d.Splashes()) != 0 {
		t.Error("splash still live after four seconds")
	}
}

func TestDepthEasing(t *testing.T) {
	s := scenarioSettings()
	s.WallDepth = 2
	d, _ := newTestDriver(s, 4)

	if d.Depth() != parameter.InitialSmoothedDepth {
		t.Fatalf("initial depth = %v", d.Depth())
	}
	d.Step()
	if math.Abs(d.Depth()-1.02) > 1e-12 {
		t.Errorf("depth after one frame = %v, want 1.02", d.Depth())
	}
	prev := d.Depth()
	for i := 0; i < 600; i++ {
		d.Step()
		if d.Depth() < prev || d.Depth() > 2 {
			t.Fatalf("depth %v not easing toward 2", d.Depth())
		}
		prev = d.Depth()
	}
	if 2-d.Depth() > 1e-4 {
		t.Errorf("depth after ten seconds = %v", d.Depth())
	}
}

func TestFrameDrawOrder(t *testing.T) {
	s := scenarioSettings()
	s.WallDepth = 2
	d, rec := newTestDriver(s, 5)
	d.Step()

	if len(rec.Ops) < 3 || rec.Ops[0].Kind != canvas.OpClear {
		t.Fatal("frame must start with a clear")
	}
	wall := rec.Ops[1]
	if wall.Kind != canvas.OpFill {
		t.Fatal("wall face must be drawn right after the clear")
	}
	if math.Abs(wall.Shadow-parameter.WallShadowBlur/d.Depth()) > 1e-12 {
		t.Errorf("wall shadow blur = %v, want %v", wall.Shadow, parameter.WallShadowBlur/d.Depth())
	}
	lo, hi := WallRect(800, 500, d.Depth())
	if math.Abs(wall.Min.X-lo.X) > 1e-9 || math.Abs(wall.Max.Y-hi.Y) > 1e-9 {
		t.Errorf("wall bounds %v..%v, want %v..%v", wall.Min, wall.Max, lo, hi)
	}
	if rec.Count(canvas.OpClear) != 1 {
		t.Errorf("clears per frame = %d", rec.Count(canvas.OpClear))
	}
}

func TestWallRect(t *testing.T) {
	lo, hi := WallRect(800, 500, 1)
	if lo != vmath.Pt(60, 40) || hi != vmath.Pt(740, 460) {
		t.Errorf("depth 1 wall = %v..%v", lo, hi)
	}
	lo, hi = WallRect(800, 500, 2)
	if lo != vmath.Pt(230, 145) || hi != vmath.Pt(570, 355) {
		t.Errorf("depth 2 wall = %v..%v", lo, hi)
	}
}

func TestRandomResolution(t *testing.T) {
	s := config.DefaultSettings()
	d, _ := newTestDriver(s, 6)

	kinds := map[breakable.Kind]bool{}
	glasses := map[core.Paint]bool{}
	for i := 0; i < 60; i++ {
		d.Click(float64(i), 10)
	}
	d.Step()
	for _, o := range d.Objects() {
		kinds[o.Kind()] = true
		glasses[o.Glass()] = true
	}
	if len(kinds) != len(breakable.Kinds) {
		t.Errorf("random kinds covered %d of %d", len(kinds), len(breakable.Kinds))
	}
	palette := map[core.Paint]bool{}
	for _, g := range visual.GlassColors {
		palette[core.ParseTranslucent(g, parameter.GlassAlpha)] = true
	}
	for g := range glasses {
		if !palette[g] {
			t.Errorf("random glass %v outside palette", g)
		}
	}
	if len(glasses) != len(visual.GlassColors) {
		t.Errorf("random glass covered %d of %d", len(glasses), len(visual.GlassColors))
	}
}

func TestSpawnReadsSettingsAtSpawn(t *testing.T) {
	s := scenarioSettings()
	s.WallDepth = 3
	s.LiquidColor = "#FFE66D"
	d, _ := newTestDriver(s, 7)
	d.Click(100, 100)
	d.Step()

	o := d.Objects()[0]
	if o.TotalFrames() != 75 || o.TargetDepth() != 3 {
		t.Errorf("object frozen with total=%v depth=%v", o.TotalFrames(), o.TargetDepth())
	}
	if o.Liquid() != core.ParseTranslucent("#FFE66D", 1) {
		t.Errorf("liquid = %v", o.Liquid())
	}
	want := vmath.Pt(400, 500+parameter.LaunchOffsetY)
	if got := o.Position(); got.Sub(want).Len() > 20 {
		t.Errorf("first-frame position %v too far from launch %v", got, want)
	}
}

func TestClickQueueBounded(t *testing.T) {
	d, _ := newTestDriver(scenarioSettings(), 8)
	for i := 0; i < parameter.ClickQueueSize; i++ {
		if !d.Click(1, 1) {
			t.Fatalf("click %d dropped", i)
		}
	}
	if d.Click(1, 1) {
		t.Error("click beyond the queue size should be dropped")
	}
	d.Step()
	if len(d.Objects()) != parameter.ClickQueueSize {
		t.Errorf("objects = %d", len(d.Objects()))
	}
}

func TestMetrics(t *testing.T) {
	reg := status.NewRegistry()
	d := NewDriver(Options{
		Settings: scenarioSettings(),
		Canvas:   canvas.NewRecorder(800, 500),
		Rand:     core.NewRand(9),
		Status:   reg,
	})
	d.Click(10, 10)
	d.Click(20, 20)
	for i := 0; i < 40; i++ {
		d.Step()
	}
	snap := reg.Snapshot()
	if snap.Frames != 40 || snap.Objects != 2 || snap.Splashes != 2 || snap.Smashes != 2 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Depth != d.Depth() {
		t.Errorf("depth metric = %v, want %v", snap.Depth, d.Depth())
	}
}

func TestFrameTaskDrivesSteps(t *testing.T) {
	frames := NewManualSource()
	done := make(chan int64, 8)
	d := NewDriver(Options{
		Settings: scenarioSettings(),
		Canvas:   canvas.NewRecorder(800, 500),
		Rand:     core.NewRand(10),
		Frames:   frames.Factory(),
		OnFrame:  func(n int64) { done <- n },
	})
	d.Start()
	defer d.Stop()

	for i := int64(1); i <= 3; i++ {
		if !frames.Tick(time.Second) {
			t.Fatalf("tick %d not taken", i)
		}
		select {
		case n := <-done:
			if n != i {
				t.Errorf("frame %d reported as %d", i, n)
			}
		case <-time.After(time.Second):
			t.Fatalf("frame %d not completed", i)
		}
	}
	if d.RotationRunning() {
		t.Error("fixed background must not start the rotation task")
	}
}

func TestStopIsSynchronousAndIdempotent(t *testing.T) {
	frames := NewManualSource()
	d := NewDriver(Options{
		Settings: scenarioSettings(),
		Canvas:   canvas.NewRecorder(800, 500),
		Rand:     core.NewRand(11),
		Frames:   frames.Factory(),
	})
	d.Start()
	if !d.Running() {
		t.Fatal("driver should be running after Start")
	}

	d.Stop()
	d.Stop()
	if d.Running() {
		t.Error("driver still running after Stop")
	}
	if !frames.Stopped() {
		t.Error("frame source not released on Stop")
	}
	if frames.Tick(50 * time.Millisecond) {
		t.Error("stopped driver took a tick")
	}

	d.Start()
	if d.Running() {
		t.Error("a stopped driver must not restart")
	}
}

func TestFrameAndRotationTasksRunConcurrently(t *testing.T) {
	frames := NewManualSource()
	rotation := NewManualSource()
	s := scenarioSettings()
	s.Background = config.Auto

	d := NewDriver(Options{
		Settings:   s,
		Canvas:     canvas.NewRecorder(800, 500),
		Rand:       core.NewRand(12),
		Frames:     frames.Factory(),
		Background: rotation.Factory(),
	})
	d.Start()
	if !d.RotationRunning() {
		t.Fatal("auto background should start the rotation task")
	}

	const ticks = 50
	rotated := make(chan int, 1)
	go func() {
		n := 0
		for i := 0; i < ticks; i++ {
			if rotation.Tick(time.Second) {
				n++
			}
		}
		rotated <- n
	}()
	for i := 0; i < ticks; i++ {
		d.Click(float64(100+i*10), 250)
		if !frames.Tick(time.Second) {
			t.Fatalf("frame tick %d not taken", i)
		}
	}
	n := <-rotated
	d.Stop()

	if d.Frame() != ticks {
		t.Errorf("Frame = %d, want %d", d.Frame(), ticks)
	}
	changes := 0
	for _, ev := range d.Queue().Consume() {
		if ev.Frame < 0 || ev.Frame > ticks {
			t.Fatalf("event %v stamped with frame %d", ev.Type, ev.Frame)
		}
		if ev.Type == events.EventBackgroundChanged {
			changes++
		}
	}
	// one change on Start plus one per rotation tick
	if changes != n+1 {
		t.Errorf("background changes = %d, want %d", changes, n+1)
	}
}
