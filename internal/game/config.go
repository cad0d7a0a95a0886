package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/gridquest/internal/arena"
	"github.com/samdwyer/gridquest/internal/world"
)

// DefaultEnemies is how many enemies a default game spawns.
const DefaultEnemies = 6

// partyCells is the number of cells taken by the party and the sword.
const partyCells = 4

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible games.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width       int
	Height      int
	Enemies     int
	FleeRetries int

	// LogFile receives debug logs. Empty discards them.
	LogFile string
	// Plain selects line mode instead of the full-screen terminal.
	Plain bool
}

// DefaultConfig returns the classic 60x22 map with a handful of enemies.
func DefaultConfig() Config {
	return Config{
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		Enemies:     DefaultEnemies,
		FleeRetries: arena.DefaultFleeRetries,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by GRIDQUEST_* variables.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv("GRIDQUEST_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("GRIDQUEST_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"GRIDQUEST_WIDTH", &cfg.Width},
		{"GRIDQUEST_HEIGHT", &cfg.Height},
		{"GRIDQUEST_ENEMIES", &cfg.Enemies},
		{"GRIDQUEST_FLEE_RETRIES", &cfg.FleeRetries},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", e.name, err)
		}
		*e.dst = n
	}

	if v, ok := os.LookupEnv("GRIDQUEST_LOG"); ok {
		cfg.LogFile = v
	}
	return cfg, nil
}

// Validate reports configurations the game cannot start with.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 2 {
		return fmt.Errorf("grid must be at least 3x2, got %dx%d", c.Width, c.Height)
	}
	if c.Enemies < 0 {
		return errors.New("enemy count must not be negative")
	}
	if c.FleeRetries < 0 {
		return errors.New("flee retries must not be negative")
	}
	if free := c.Width*c.Height - partyCells; c.Enemies > free {
		return fmt.Errorf("%d enemies do not fit on a %dx%d grid (%d free cells)", c.Enemies, c.Width, c.Height, free)
	}
	return nil
}
