package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/collider/audio"
	"github.com/lixenwraith/collider/config"
	"github.com/lixenwraith/collider/engine"
	"github.com/lixenwraith/collider/game"
	"github.com/lixenwraith/collider/parameter"
	"github.com/lixenwraith/collider/physics"
	"github.com/lixenwraith/collider/render"
)

var (
	configFlag   = flag.String("config", config.DefaultPath, "Path to TOML config")
	logFlag      = flag.Bool("log", false, "Write logs/collisions.log regardless of config")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal UI, print collisions to stdout")
	ticksFlag    = flag.Int("ticks", 1000, "Number of ticks in headless mode")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCOLLIDER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Log.Enabled || *logFlag); logFile != nil {
		defer logFile.Close()
	}

	world := engine.NewWorld(physics.Arena{Lower: parameter.WallLower, Upper: parameter.WallUpper})

	if *headlessFlag {
		g, err := game.New(cfg, world, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
			os.Exit(1)
		}
		n := runHeadless(g, *ticksFlag, os.Stdout)
		fmt.Printf("%d collisions in %d ticks, %d balls\n", n, *ticksFlag, world.Len())
		return
	}

	// Audio is optional, the simulation runs silent without a device
	var tones game.TonePlayer
	if cfg.Audio.Enabled {
		tm := audio.NewToneManager(parameter.ToneSampleRate, cfg.Audio.Volume)
		if err := tm.Initialize(); err != nil {
			log.Printf("WARNING: Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer tm.Cleanup()
		}
		tones = tm
	}

	g, err := game.New(cfg, world, tones)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, parameter.ArenaSide)
	run(screen, renderer, g, time.Second/time.Duration(cfg.Sim.FPS))
}

// run owns the world: input and ticks are handled on this goroutine only
func run(screen tcell.Screen, renderer *render.TerminalRenderer, g *game.Game, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	renderer.RenderFrame(g.Frame())
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if _, resize := ev.(*tcell.EventResize); resize {
				screen.Sync()
				renderer.Resize()
				continue
			}
			if !g.HandleEvent(ev, renderer.Viewport()) {
				return
			}

		case <-ticker.C:
			g.Step()
			renderer.RenderFrame(g.Frame())
		}
	}
}
