package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"labsim/internal/app"
	"labsim/internal/core"
	"labsim/internal/logging"
	_ "labsim/internal/sims/life"
	"labsim/internal/sims/projectile"
	"labsim/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file (the screen is in use)")
	sound := flag.Bool("sound", true, "play a chime when a projectile lands")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal().Err(err).Str("path", *logPath).Msg("failed to open log file")
		}
		defer f.Close()
		out = f
	}
	logging.Setup(out, cfg.Debug)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatal().Str("sim", cfg.Sim).Strs("available", core.SimNames()).Msg("unknown sim")
	}
	sim := factory(cfg.Set.Map())
	logging.Attach(sim, sim.Name())

	if *sound {
		chime := tui.NewSound()
		if err := chime.Init(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer chime.Close()
			if b, ok := sim.(*projectile.Board); ok {
				b.OnFinish(tui.ChimeOnLanding(func() { chime.Landing() }))
			}
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to init screen")
	}
	screen.EnableMouse()
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctrl := app.NewController(sim, cfg.TPS, cfg.Seed, logging.Component("controller"))
	runner := tui.New(screen, ctrl, logging.Component("tui"))
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	if err := runner.Run(ctx, time.Second/time.Duration(tps)); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("terminal loop failed")
	}
}
