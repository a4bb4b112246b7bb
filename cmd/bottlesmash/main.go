package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/mindfulcampus/bottlesmash/audio"
	"github.com/mindfulcampus/bottlesmash/config"
	"github.com/mindfulcampus/bottlesmash/core"
	"github.com/mindfulcampus/bottlesmash/engine"
	"github.com/mindfulcampus/bottlesmash/input"
	"github.com/mindfulcampus/bottlesmash/journal"
	"github.com/mindfulcampus/bottlesmash/render"
	"github.com/mindfulcampus/bottlesmash/status"
)

var (
	debugFlag     = flag.Bool("debug", false, "Write logs to <logdir>/bottlesmash.log")
	logDirFlag    = flag.String("logdir", "logs", "Log directory for -debug")
	colorModeFlag = flag.String("color", "truecolor", "Color mode: truecolor, 256")
	configFlag    = flag.String("config", "", "Settings file (default: user config dir)")
	journalFlag   = flag.String("journal", "", "Smash journal database (default: user config dir)")
	noJournalFlag = flag.Bool("no-journal", false, "Do not record smashes")
	muteFlag      = flag.Bool("mute", false, "Start with sounds muted")
	seedFlag      = flag.Int64("seed", 0, "Random seed (0: time based)")
	statsFlag     = flag.Bool("stats", false, "Print journal statistics and exit")

	snapshotFlag = flag.String("snapshot", "", "Render headless to this PNG file and exit")
	framesFlag   = flag.Int("frames", 40, "Frames to simulate for -snapshot")
	clickFlag    = flag.String("click", "400,250", "Surface clicks for -snapshot, as x,y;x,y")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag, *logDirFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("Main: %v", err)
		fmt.Fprintf(os.Stderr, "bottlesmash: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	store, err := openStore(*configFlag)
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		// A broken settings file should not keep the scene from starting
		log.Printf("Main: %v, using defaults", err)
	}

	switch {
	case *snapshotFlag != "":
		clicks, err := parseClicks(*clickFlag)
		if err != nil {
			return err
		}
		img := renderSnapshot(cfg.Scene, *framesFlag, clicks, *seedFlag)
		return writePNG(*snapshotFlag, img)
	case *statsFlag:
		return printStats(cfg)
	}

	mode, ok := render.ParseColorMode(*colorModeFlag)
	if !ok {
		return errors.Errorf("unknown color mode %q", *colorModeFlag)
	}
	return runTerminal(store, cfg, mode)
}

func openStore(path string) (*config.Store, error) {
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return config.NewStore(path), nil
}

func journalPath(cfg config.Config) (string, error) {
	switch {
	case *journalFlag != "":
		return *journalFlag, nil
	case cfg.Journal.Path != "":
		return cfg.Journal.Path, nil
	}
	return config.DefaultJournalPath()
}

func printStats(cfg config.Config) error {
	path, err := journalPath(cfg)
	if err != nil {
		return err
	}
	j, err := journal.Open(path)
	if err != nil {
		return err
	}
	defer j.Close()

	total, err := j.Total()
	if err != nil {
		return err
	}
	kinds, err := j.ByKind()
	if err != nil {
		return err
	}
	recent, err := j.Recent(1)
	if err != nil {
		return err
	}

	fmt.Printf("%s smashes in %s\n", humanize.Comma(total), path)
	if len(recent) > 0 {
		fmt.Printf("last: %s %s\n", recent[0].Kind, humanize.Time(recent[0].Time))
	}
	for _, kc := range kinds {
		fmt.Printf("  %-8s %s\n", kc.Kind, humanize.Comma(kc.Count))
	}
	return nil
}

func runTerminal(store *config.Store, cfg config.Config, mode render.ColorMode) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	registry := status.NewRegistry()
	presenter := render.NewPresenter(screen, mode, registry)
	presenter.SetHelp(input.HelpLines())

	stage := engine.NewStage(engine.Options{
		Status:    registry,
		Presenter: presenter,
		Seed:      *seedFlag,
	})

	sounds := audio.NewSoundManager(cfg.Audio.Volume)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Main: Audio unavailable: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()
	sounds.SetMuted(cfg.Audio.Muted || *muteFlag)
	stage.Register(audio.NewHandler(sounds))

	if cfg.Journal.Enabled && !*noJournalFlag {
		if j, err := openJournal(cfg); err != nil {
			log.Printf("Main: Journal unavailable: %v", err)
		} else {
			defer j.Close()
			stage.Register(journal.NewHandler(j, registry))
		}
	}

	stage.Mount(cfg.Scene)
	defer logMetrics(registry)
	defer stage.Unmount()

	persist := func() {
		if err := store.Save(cfg); err != nil {
			log.Printf("Main: Save settings: %v", err)
			presenter.SetNotice("settings not saved")
		}
	}
	apply := func(next config.Settings) {
		if stage.Reconfigure(next) {
			cfg.Scene = next
			persist()
		}
	}

	machine := input.NewMachine()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		intent := machine.Process(ev)
		if intent == nil {
			continue
		}

		switch intent.Type {
		case input.IntentQuit:
			return nil
		case input.IntentEscape:
			if !presenter.HideHelp() {
				return nil
			}
		case input.IntentHelp:
			presenter.ToggleHelp()
		case input.IntentToggleMute:
			muted := !sounds.Muted()
			sounds.SetMuted(muted)
			cfg.Audio.Muted = muted
			if muted {
				presenter.SetNotice("muted")
			} else {
				presenter.SetNotice("")
			}
			persist()
		case input.IntentCycle:
			apply(stage.Settings().Cycle(intent.Field, intent.Dir))
		case input.IntentDepth:
			apply(stage.Settings().StepDepth(intent.Dir))
		case input.IntentClick:
			l := render.ComputeLayout(screen.Size())
			if x, y, ok := l.ToSurface(intent.X, intent.Y); ok {
				stage.Click(x, y)
			}
		case input.IntentResize:
			screen.Sync()
		}
	}
}

func openJournal(cfg config.Config) (*journal.Journal, error) {
	path, err := journalPath(cfg)
	if err != nil {
		return nil, err
	}
	return journal.Open(path)
}

func logMetrics(reg *status.Registry) {
	reg.Ints.Range(func(key string, v *atomic.Int64) {
		log.Printf("Main: %s = %d", key, v.Load())
	})
	reg.Floats.Range(func(key string, v *status.AtomicFloat) {
		log.Printf("Main: %s = %.2f", key, v.Get())
	})
	reg.Strings.Range(func(key string, v *status.AtomicString) {
		log.Printf("Main: %s = %s", key, v.Load())
	})
}
