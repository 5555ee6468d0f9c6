//go:build ebiten

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/engine"
	"github.com/sheikhrachel/go-gol/gui"
	"github.com/sheikhrachel/go-gol/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flagged := utils.DefaultConfig()
	flagged.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := utils.ResolveConfig(flag.CommandLine, *configPath, flagged)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	sim, err := engine.FromConfig(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	sched := engine.NewScheduler(cfg.TickPeriod)
	defer sched.Stop()

	game := gui.New(sim, cfg.Scale, sched)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
