//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"labsim/internal/app"
	"labsim/internal/core"
	"labsim/internal/logging"
	_ "labsim/internal/sims/life"
	_ "labsim/internal/sims/projectile"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logging.Setup(os.Stderr, cfg.Debug)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatal().Str("sim", cfg.Sim).Strs("available", core.SimNames()).Msg("unknown sim")
	}

	sim := factory(cfg.Set.Map())
	logging.Attach(sim, sim.Name())

	game := app.New(sim, cfg, logging.Component("app"))
	size := sim.Size()

	ebiten.SetWindowTitle("labsim - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
