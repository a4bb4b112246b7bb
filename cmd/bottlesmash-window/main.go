package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mindfulcampus/bottlesmash/audio"
	"github.com/mindfulcampus/bottlesmash/canvas"
	"github.com/mindfulcampus/bottlesmash/config"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/engine"
	"github.com/mindfulcampus/bottlesmash/journal"
	"github.com/mindfulcampus/bottlesmash/parameter"
	"github.com/mindfulcampus/bottlesmash/render"
	"github.com/mindfulcampus/bottlesmash/scene"
	"github.com/mindfulcampus/bottlesmash/status"
)

var (
	configFlag    = flag.String("config", "", "Settings file (default: user config dir)")
	noJournalFlag = flag.Bool("no-journal", false, "Do not record smashes")
	muteFlag      = flag.Bool("mute", false, "Start with sounds muted")
	seedFlag      = flag.Int64("seed", 0, "Random seed (0: time based)")
)

// frameWait bounds how long Update waits for the stage to finish a frame
const frameWait = 250 * time.Millisecond

// Game drives the stage from ebiten's update loop: every Update delivers one
// manual tick and waits until the frame is presented. Draw uploads the
// surface only while the gate is settled, otherwise it shows the last upload
type Game struct {
	stage   *engine.Stage
	surface *canvas.Raster
	gate    *engine.FrameGate
	store   *config.Store
	cfg     config.Config
	sounds  *audio.SoundManager

	layer    *ebiten.Image
	backdrop *ebiten.Image
	literal  string
}

func newGame(store *config.Store, cfg config.Config, registry *status.Registry, sounds *audio.SoundManager) *Game {
	ticks := scene.NewManualSource()
	g := &Game{
		surface: canvas.NewRaster(parameter.SurfaceWidth, parameter.SurfaceHeight),
		gate:    engine.NewFrameGate(ticks, frameWait),
		store:   store,
		cfg:     cfg,
		sounds:  sounds,
		layer:   ebiten.NewImage(parameter.SurfaceWidth, parameter.SurfaceHeight),
	}
	g.stage = engine.NewStage(engine.Options{
		Surface:   g.surface,
		Status:    registry,
		Seed:      *seedFlag,
		Frames:    ticks.Factory(),
		Presenter: g.gate,
	})
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.stage.Click(float64(x), float64(y))
	}

	g.gate.Step()
	return nil
}

func (g *Game) handleKeys() {
	back := ebiten.IsKeyPressed(ebiten.KeyShift)
	dir := 1
	if back {
		dir = -1
	}

	fields := map[ebiten.Key]config.Field{
		ebiten.KeyO: config.FieldObject,
		ebiten.KeyG: config.FieldGlass,
		ebiten.KeyL: config.FieldLiquid,
		ebiten.KeyB: config.FieldBackground,
	}
	for key, field := range fields {
		if inpututil.IsKeyJustPressed(key) {
			g.apply(g.stage.Settings().Cycle(field, dir))
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.apply(g.stage.Settings().StepDepth(1))
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.apply(g.stage.Settings().StepDepth(-1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sounds.SetMuted(!g.sounds.Muted())
		g.cfg.Audio.Muted = g.sounds.Muted()
		g.save()
	}
}

func (g *Game) apply(next config.Settings) {
	if g.stage.Reconfigure(next) {
		g.cfg.Scene = next
		g.save()
		ebiten.SetWindowTitle(title(next))
	}
}

func (g *Game) save() {
	if err := g.store.Save(g.cfg); err != nil {
		log.Printf("Window: Save settings: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.gate.Frame()
	if lit := frame.Backdrop.Literal; g.backdrop == nil || lit != g.literal {
		empty := canvas.NewRaster(parameter.SurfaceWidth, parameter.SurfaceHeight)
		g.backdrop = ebiten.NewImageFromImage(render.Composite(empty.Image(), frame.Backdrop))
		g.literal = lit
	}
	screen.DrawImage(g.backdrop, nil)

	// Surface pixels are premultiplied like ebiten's
	if g.gate.Settled() {
		g.layer.WritePixels(g.surface.Image().Pix)
	}
	screen.DrawImage(g.layer, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return parameter.SurfaceWidth, parameter.SurfaceHeight
}

func title(s config.Settings) string {
	return fmt.Sprintf("BottleSmash - %s, depth %.1f", s.ObjectType, s.WallDepth)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bottlesmash-window: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := *configFlag
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	store := config.NewStore(path)
	cfg, err := store.Load()
	if err != nil {
		log.Printf("Window: %v, using defaults", err)
	}

	registry := status.NewRegistry()
	sounds := audio.NewSoundManager(cfg.Audio.Volume)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Window: Audio unavailable: %v", err)
	}
	defer sounds.Cleanup()
	sounds.SetMuted(cfg.Audio.Muted || *muteFlag)

	g := newGame(store, cfg, registry, sounds)
	g.stage.Register(audio.NewHandler(sounds))

	if cfg.Journal.Enabled && !*noJournalFlag {
		jpath := cfg.Journal.Path
		if jpath == "" {
			jpath, err = config.DefaultJournalPath()
		}
		if err == nil {
			if j, err := journal.Open(jpath); err != nil {
				log.Printf("Window: Journal unavailable: %v", err)
			} else {
				defer j.Close()
				g.stage.Register(journal.NewHandler(j, registry))
			}
		}
	}

	g.stage.Mount(cfg.Scene)
	defer g.stage.Unmount()

	ebiten.SetWindowSize(parameter.SurfaceWidth, parameter.SurfaceHeight)
	ebiten.SetWindowTitle(title(cfg.Scene))
	ebiten.SetTPS(parameter.FrameRate)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
