//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ndca/internal/app"
	"ndca/internal/core"
	_ "ndca/internal/sims/elementary"
	_ "ndca/internal/sims/life"
	_ "ndca/internal/sims/life3d"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.NewSim(cfg.Sim, cfg.Params)
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := app.WindowSize(sim.Size(), cfg.Scale, cfg.HUDWidth)

	ebiten.SetWindowTitle("ndca - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
