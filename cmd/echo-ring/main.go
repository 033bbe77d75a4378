package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/echo-ring/audio"
	"github.com/lixenwraith/echo-ring/config"
	"github.com/lixenwraith/echo-ring/constants"
	"github.com/lixenwraith/echo-ring/core"
	"github.com/lixenwraith/echo-ring/engine"
	"github.com/lixenwraith/echo-ring/events"
	"github.com/lixenwraith/echo-ring/game"
	"github.com/lixenwraith/echo-ring/input"
	"github.com/lixenwraith/echo-ring/logging"
	"github.com/lixenwraith/echo-ring/render"
	"github.com/lixenwraith/echo-ring/session"
	"github.com/lixenwraith/echo-ring/status"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	seedFlag   = flag.Int64("seed", 0, "Sequence seed (0 = time-based)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log, syncLog := logging.New(cfg.Log.Path)
	defer syncLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	defer screen.Fini()

	// Crash handler logs before the raw terminal reset
	core.SetCrashHandler(func(r any) {
		log.Errorw("crash", "panic", r, "stack", string(debug.Stack()))
		syncLog()

		fmt.Fprint(os.Stdout, "\x1b[?1049l\x1b[?25h\x1b[0m")
		os.Stdout.Sync()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mECHO-RING CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	reg := status.NewRegistry()
	queue := events.NewQueue()
	clock := engine.SystemClock{}

	// Audio is opportunistic: a failed device means silent mode, never exit
	var trigger engine.FeedbackTrigger = engine.NopTrigger{}
	if cfg.Audio.Enabled && !*muteFlag {
		audioEngine := audio.NewEngine()
		if err := audioEngine.Start(); err == nil {
			trigger = audioEngine
			defer audioEngine.Stop()
		} else {
			log.Warnw("audio unavailable, continuing silent", "error", err)
		}
	}

	sess := session.New(clock, cfg.EngineTiming(), cfg.Timing.RoundSeconds, seed, queue, reg, log)

	coord := engine.NewCoordinator(clock, cfg.EngineTiming(), trigger, reg, engine.Callbacks{
		OnColorClick: sess.HandleColorClick,
		OnSubmit:     sess.HandleSubmit,
	})

	board := render.NewBoard(game.BoardOrder, cfg.Board.GapDegrees)

	app := &app{
		screen: screen,
		coord:  coord,
		sess:   sess,
		log:    log,
		quit:   make(chan struct{}),
	}

	router := events.NewRouter[struct{}](queue)
	router.Register(app)

	inputHandler := input.NewHandler(screen, queue, board, game.BoardOrder)
	inputHandler.Start()

	loop := engine.NewLoop(clock, constants.TickInterval, func(now time.Time) {
		router.DispatchAll(struct{}{})

		sess.Update(now)
		frame := sess.Frame(now)
		coord.Sync(frame)
		coord.Update(now)

		active, hasActive := coord.ActiveRegion()
		round, score, phase := sess.Snapshot()

		board.Draw(screen, render.State{
			Frame:        frame,
			ActiveRegion: active,
			HasActive:    hasActive,
			Round:        round,
			Score:        score,
			Phase:        phase,
			Now:          now,
		})
		screen.Show()
	})

	log.Infow("starting", "seed", seed, "config", *configFlag)
	loop.Start()

	<-app.quit

	loop.Stop()
	inputHandler.Stop()
	log.Infow("shutdown", "metrics", reg.Snapshot())
}

// app routes queue events to their consumers from inside the tick loop
type app struct {
	screen tcell.Screen
	coord  *engine.Coordinator
	sess   *session.Session
	log    *zap.SugaredLogger
	quit   chan struct{}

	quitClosed bool
}

func (a *app) EventTypes() []events.Type {
	return []events.Type{
		events.TypeRegionClick,
		events.TypeSubmit,
		events.TypeRestart,
		events.TypeRoundResult,
		events.TypeResize,
		events.TypeQuit,
	}
}

func (a *app) HandleEvent(_ struct{}, ev events.Event) {
	switch ev.Type {
	case events.TypeRegionClick:
		if p, ok := ev.Payload.(events.RegionClickPayload); ok {
			a.coord.Click(p.Region)
		}

	case events.TypeSubmit:
		a.coord.Submit()

	case events.TypeRestart:
		a.sess.Restart()

	case events.TypeRoundResult:
		if p, ok := ev.Payload.(events.RoundResultPayload); ok {
			a.log.Infow("round result", "round", p.Round, "won", p.Won, "score", p.Score)
		}

	case events.TypeResize:
		a.screen.Clear()

	case events.TypeQuit:
		if !a.quitClosed {
			a.quitClosed = true
			close(a.quit)
		}
	}
}
