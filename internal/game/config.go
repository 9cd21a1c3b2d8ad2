package game

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/dungeonmap/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed   = "DUNGEONMAP_SEED"
	EnvWidth  = "DUNGEONMAP_WIDTH"
	EnvHeight = "DUNGEONMAP_HEIGHT"
	EnvSight  = "DUNGEONMAP_SIGHT"
)

// DefaultSightRadius is how far the player sees in every direction.
const DefaultSightRadius = 6

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible level generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Map dimensions for every generated level.
	Width  int
	Height int

	// SightRadius is the half-size of the square revealed around the player.
	SightRadius int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		SightRadius: DefaultSightRadius,
	}
}

// ConfigFromEnv overlays DUNGEONMAP_* environment variables on the defaults.
// Invalid values keep their default and are reported in the returned error,
// which is not fatal.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			cfg.Seed = seed
		}
	}

	positive := []struct {
		name   string
		target *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvSight, &cfg.SightRadius},
	}
	for _, p := range positive {
		v := os.Getenv(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.name, err))
			continue
		}
		if n <= 0 {
			errs = append(errs, fmt.Errorf("%s: must be positive, got %d", p.name, n))
			continue
		}
		*p.target = n
	}

	return cfg, errors.Join(errs...)
}

// NewRand returns the random source for a game session.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
