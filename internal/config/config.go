// Package config loads maze-maker settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	// ErrInvalidDimensions is returned when the maze has fewer than one row or column.
	ErrInvalidDimensions = errors.New("maze needs at least one row and one column")
	// ErrInvalidShape is returned when the cylinder height or circumference is not positive.
	ErrInvalidShape = errors.New("cylinder height and circumference must be positive")
)

// Config holds maze-maker configuration options.
type Config struct {
	Rows          int     // Logical maze rows (bounded axis)
	Cols          int     // Logical maze columns (wrapping axis)
	Height        float64 // Cylinder height in model units
	Circumference float64 // Cylinder circumference in model units
	MazeFile      string  // Base filename for the maze model
	OuterFile     string  // Base filename for the outer sleeve model
	Hollow        bool    // Hollow out the maze cylinder core

	// Seed for random number generation. Used for reproducible mazes.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	LogLevel  string // zap level name: debug, info, warn, error
	Telemetry bool   // Export traces over OTLP
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rows:          10,
		Cols:          20,
		Height:        30,
		Circumference: 60,
		MazeFile:      "cylinder_maze",
		OuterFile:     "cylinder_outer",
		LogLevel:      "info",
	}
}

// Load builds a Config from defaults, an optional .env file and MAZE_* variables.
// A missing .env file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from defaults overlaid with values from lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	if cfg.Rows, err = envInt(lookup, "MAZE_ROWS", cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Cols, err = envInt(lookup, "MAZE_COLS", cfg.Cols); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = envFloat(lookup, "MAZE_HEIGHT", cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Circumference, err = envFloat(lookup, "MAZE_CIRCUMFERENCE", cfg.Circumference); err != nil {
		return Config{}, err
	}
	if cfg.Hollow, err = envBool(lookup, "MAZE_HOLLOW", cfg.Hollow); err != nil {
		return Config{}, err
	}
	if cfg.Telemetry, err = envBool(lookup, "MAZE_TELEMETRY", cfg.Telemetry); err != nil {
		return Config{}, err
	}
	if v, ok := lookup("MAZE_SEED"); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("MAZE_SEED must be an integer: %w", err)
		}
	}
	cfg.MazeFile = envString(lookup, "MAZE_FILE", cfg.MazeFile)
	cfg.OuterFile = envString(lookup, "MAZE_OUTER_FILE", cfg.OuterFile)
	cfg.LogLevel = envString(lookup, "MAZE_LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

// Validate rejects settings the maze core cannot accept.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%dx%d: %w", c.Rows, c.Cols, ErrInvalidDimensions)
	}
	if c.Height <= 0 || c.Circumference <= 0 {
		return fmt.Errorf("height %v, circumference %v: %w", c.Height, c.Circumference, ErrInvalidShape)
	}
	return nil
}

// ResolveSeed returns Seed, or a time-derived seed when Seed is 0.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func envString(lookup func(string) (string, bool), key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func envFloat(lookup func(string) (string, bool), key string, def float64) (float64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}

func envBool(lookup func(string) (string, bool), key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
