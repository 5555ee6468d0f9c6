package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/engine"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flagged := utils.DefaultConfig()
	flagged.Bind(flag.CommandLine)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.ResolveConfig(flag.CommandLine, *configPath, flagged)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := config.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	sim, err := initializeGame(config)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renderer := model.NewTerminalRenderer(os.Stdout)
	renderer.Clear()

	err = run(ctx, sim, os.Stdin, newTerminalPresenter(renderer), engine.RunConfig{
		TickPeriod:     config.TickPeriod,
		MaxGenerations: config.MaxGenerations,
		OnError:        func(err error) { log.Printf("command: %v", err) },
	})
	switch {
	case errors.Is(err, engine.ErrGenerationLimit):
		log.Printf("🏁 %v", err)
	case err != nil:
		log.Fatal(err)
	}
	log.Printf("🛑 stopped at generation %d with %d living cells", sim.Iteration(), sim.Status().Alive)
}

// run wires the stdin input adapter to the simulation loop. The loop ends on
// ctx cancellation, on "q", or at end of input.
func run(ctx context.Context, sim *engine.Simulation, in io.Reader, p engine.Presenter, cfg engine.RunConfig) error {
	eg, ctx := errgroup.WithContext(ctx)
	cmds := make(chan engine.Command, 16)

	// Scan blocks outside ctx, so the reader is not part of the group; it
	// exits at the next line after the group is done.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	eg.Go(func() error {
		defer close(cmds)
		for {
			select {
			case <-ctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				cmd, quit, err := parseCommand(line)
				if quit {
					return nil
				}
				if err != nil {
					if cfg.OnError != nil {
						cfg.OnError(err)
					}
					continue
				}
				if cmd == nil {
					continue
				}
				select {
				case cmds <- cmd:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})

	eg.Go(func() error {
		return engine.Run(ctx, sim, cmds, p, cfg)
	})

	return eg.Wait()
}
