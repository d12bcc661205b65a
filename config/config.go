// Package config loads runtime settings for the trix commands.
//
// Grid dimensions and the piece encoding are fixed by the bitboard package
// and are deliberately not configurable here.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the driver settings shared by all commands.
type Config struct {
	// TickInterval is the minimum time between two ticks.
	TickInterval time.Duration `yaml:"tickInterval"`
	// Seed feeds the piece selector and the mover. Zero picks a time-based seed.
	Seed uint64 `yaml:"seed"`
	// Mover is the horizontal nudge policy: random, still, left or right.
	Mover string `yaml:"mover"`
	// CellSize is the side of a grid cell in pixels for the window renderer.
	CellSize int    `yaml:"cellSize"`
	Audio    bool   `yaml:"audio"`
	Debug    bool   `yaml:"debug"`
	Title    string `yaml:"title"`
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		TickInterval: 100 * time.Millisecond,
		Mover:        "random",
		CellSize:     20,
		Title:        "trix",
	}
}

// Load reads a YAML file and overlays it on Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML settings on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

var (
	ErrTickInterval = errors.New("tickInterval must be positive")
	ErrCellSize     = errors.New("cellSize must be between 4 and 64")
	ErrMover        = errors.New("mover must be one of random, still, left, right")
)

// Validate checks every field.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return ErrTickInterval
	}
	if c.CellSize < 4 || c.CellSize > 64 {
		return fmt.Errorf("%w, got %d", ErrCellSize, c.CellSize)
	}
	switch c.Mover {
	case "random", "still", "left", "right":
	default:
		return fmt.Errorf("%w, got %q", ErrMover, c.Mover)
	}
	return nil
}

// ResolveSeed returns Seed, or a seed derived from now when Seed is zero.
func (c *Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
