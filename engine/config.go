package engine

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

// FromConfig seeds a grid and wraps it in a simulation using the counting
// strategy and buffer pooling selected by config
func FromConfig(config utils.Config) (*Simulation, error) {
	seed, err := model.SeedByName(config.SeedPattern, config.Width, config.Height, config.RandomDensity, config.RandomSeed)
	if err != nil {
		return nil, errors.Wrap(err, "[FromConfig] bad seed pattern")
	}

	grid, err := model.NewGrid(config.Width, config.Height, seed)
	if err != nil {
		return nil, errors.Wrap(err, "[FromConfig] failed to create grid")
	}

	opts := Options{
		Bounded:  config.UseBoundedGrid,
		Parallel: config.UseParallel,
		Seed:     seed,
	}
	if config.UseMemoryPool {
		opts.Pool = model.NewBufferPool()
	}
	return New(grid, opts), nil
}
