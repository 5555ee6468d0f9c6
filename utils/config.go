package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	TickPeriod     time.Duration `json:"tick_period"`
	SeedPattern    string        `json:"seed_pattern"`
	RandomDensity  float64       `json:"random_density"`
	RandomSeed     int64         `json:"random_seed"`
	MaxGenerations uint64        `json:"max_generations"`
	UseParallel    bool          `json:"use_parallel"`
	UseBoundedGrid bool          `json:"use_bounded_grid"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	Scale          int           `json:"scale"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          20,
		Height:         20,
		TickPeriod:     500 * time.Millisecond,
		SeedPattern:    "checkerboard",
		RandomDensity:  0.15,
		RandomSeed:     1,
		MaxGenerations: 0,
		UseParallel:    true,
		UseBoundedGrid: true, // Enable active region optimization
		UseMemoryPool:  true,
		Scale:          16,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ResolveConfig loads the config file at path and re-applies every flag set
// explicitly on fs, so the command line wins over the file. A missing file is
// not an error: flagged, the defaults already overridden by fs, is returned.
// A file that exists but cannot be read or parsed is an error.
func ResolveConfig(fs *flag.FlagSet, path string, flagged Config) (Config, error) {
	config, err := LoadConfig(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return flagged, nil
		}
		return flagged, err
	}

	overrides := flag.NewFlagSet("overrides", flag.ContinueOnError)
	config.Bind(overrides)
	fs.Visit(func(f *flag.Flag) {
		if overrides.Lookup(f.Name) == nil {
			return
		}
		if setErr := overrides.Set(f.Name, f.Value.String()); setErr != nil && err == nil {
			err = errors.Wrapf(setErr, "[ResolveConfig] flag -%s", f.Name)
		}
	})
	return config, err
}

// Bind attaches the configuration to the provided FlagSet. Values already in c
// are the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.TickPeriod, "tick", c.TickPeriod, "time between generations while running")
	fs.StringVar(&c.SeedPattern, "seed", c.SeedPattern, "seed pattern: checkerboard, empty, random, patterns")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "live cell probability for the random seed")
	fs.Int64Var(&c.RandomSeed, "rng-seed", c.RandomSeed, "rng seed for the random pattern")
	fs.Uint64Var(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations, 0 for no limit")
	fs.BoolVar(&c.UseParallel, "parallel", c.UseParallel, "count neighbors in parallel row bands")
	fs.BoolVar(&c.UseBoundedGrid, "bounded", c.UseBoundedGrid, "count neighbors only around live cells, ahead of -parallel")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle generation buffers")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the window")
}

// Validate reports the first invalid field
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.TickPeriod <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] tick_period must be positive, got %v", c.TickPeriod)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be in [0,1], got %v", c.RandomDensity)
	case c.Scale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] scale must be positive, got %d", c.Scale)
	}
	return nil
}
