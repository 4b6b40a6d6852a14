package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/escape-artist/asset"
	"github.com/lixenwraith/escape-artist/audio"
	"github.com/lixenwraith/escape-artist/config"
	"github.com/lixenwraith/escape-artist/dialog"
	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/game"
	"github.com/lixenwraith/escape-artist/input"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/render"
	"github.com/lixenwraith/escape-artist/status"
)

var (
	debugFlag      = flag.Bool("debug", false, "Write a debug log to logs/escape-artist.log")
	configFlag     = flag.String("config", "", "TOML config file; built-in defaults when empty")
	metricsFlag    = flag.String("metrics", "", "Serve Prometheus metrics on this address, e.g. 127.0.0.1:9090")
	seedFlag       = flag.Uint64("seed", 0, "Random seed; 0 picks one from the clock")
	muteFlag       = flag.Bool("mute", false, "Start with sound muted")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the default config and exit")
)

func main() {
	flag.Parse()

	if *dumpConfigFlag {
		fmt.Print(asset.DefaultConfig)
		return
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("escape-artist: %v", err)
		fmt.Fprintf(os.Stderr, "escape-artist: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	script, err := dialog.Load(cfg.World.DialogFile)
	if err != nil {
		return err
	}
	keys, err := input.NewKeyTable(cfg.Keys)
	if err != nil {
		return err
	}
	sheets := render.NewSheetCache(asset.FS(cfg.World.AssetDir), parameter.TileSize)

	metrics := status.NewRegistry()
	if *metricsFlag != "" {
		srv := status.NewServer(metrics, *metricsFlag)
		if err := srv.Start(); err != nil {
			return err
		}
		defer srv.Stop()
	}

	var sound engine.Audio = engine.NopAudio{}
	var mixer *audio.SoundManager
	if cfg.Audio.Enabled {
		mixer = audio.NewSoundManager(cfg.Audio.Volume)
		if err := mixer.Initialize(); err != nil {
			// Non-fatal, the game runs silent
			log.Printf("audio: %v (continuing without sound)", err)
			mixer = nil
		} else {
			defer mixer.Cleanup()
			if *muteFlag {
				mixer.ToggleMute()
			}
			sound = mixer
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	player := dialog.NewPlayer(script)
	sess, err := game.NewSession(game.Options{
		Config:  cfg,
		Sheets:  sheets,
		Audio:   sound,
		Dialog:  player,
		Metrics: metrics,
		Seed:    seed,
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mESCAPE-ARTIST CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableFocus()
	screen.HideCursor()

	realClock := engine.NewMonotonicTimeProvider()
	gameClock := engine.NewPausableClock(realClock)
	a := &app{
		screen:  screen,
		session: sess,
		player:  player,
		tracker: input.NewTracker(keys, realClock, parameter.KeyHoldTimeout),
		sched:   game.NewScheduler(gameClock, cfg.Timing.Tick(), cfg.Timing.MaxSteps),
		term:    render.NewTerminal(screen, sheets),
		mixer:   mixer,
		clock:   gameClock,
	}
	return a.loop()
}
