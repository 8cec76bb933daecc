package game

import (
	"os"
	"strconv"

	"github.com/samdwyer/fogward/internal/vision"
	"github.com/samdwyer/fogward/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon
	// generation; each depth derives its own stream from it.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// ViewRange is the party's room-mode sight distance in tiles.
	ViewRange int

	// Width and Height are the dungeon dimensions.
	Width  int
	Height int
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		ViewRange: vision.DefaultViewRange,
		Width:     world.DefaultWidth,
		Height:    world.DefaultHeight,
	}
}

// ConfigFromEnv builds a Config from FOGWARD_* environment variables,
// falling back to defaults for anything unset or unparsable.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v, err := strconv.ParseInt(os.Getenv("FOGWARD_SEED"), 10, 64); err == nil {
		cfg.Seed = v
	}
	if v, err := strconv.Atoi(os.Getenv("FOGWARD_VIEW_RANGE")); err == nil {
		cfg.ViewRange = v
	}
	if v, err := strconv.Atoi(os.Getenv("FOGWARD_WIDTH")); err == nil && v > 0 {
		cfg.Width = v
	}
	if v, err := strconv.Atoi(os.Getenv("FOGWARD_HEIGHT")); err == nil && v > 0 {
		cfg.Height = v
	}

	return cfg
}
