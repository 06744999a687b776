// Package config loads the run configuration of the valves CLI.
//
// The file is YAML; every field is optional and falls back to Default:
//
//	start: AA
//	single_budget: 30
//	dual_budget: 26
//	workers: 4
//	canonical_dual_keys: false
//	symmetric_tunnels: false
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valvesearch/internal/logging"
	"github.com/katalvlaran/valvesearch/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the puzzle parameters and the search knobs.
type Config struct {
	Start             string `yaml:"start"`
	SingleBudget      int    `yaml:"single_budget"`
	DualBudget        int    `yaml:"dual_budget"`
	Workers           int    `yaml:"workers"`
	CanonicalDualKeys bool   `yaml:"canonical_dual_keys"`
	SymmetricTunnels  bool   `yaml:"symmetric_tunnels"`
	LogLevel          string `yaml:"log_level"`
}

// Default returns the puzzle's own parameters: start at AA, 30 minutes
// alone, 26 minutes each when working in pairs.
func Default() Config {
	return Config{
		Start:        "AA",
		SingleBudget: 30,
		DualBudget:   26,
		Workers:      1,
		LogLevel:     "info",
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Decode(bytes.NewReader(data))
}

// Decode reads YAML from r on top of Default and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return c, c.Validate()
}

// Validate checks ranges and the log level.
func (c Config) Validate() error {
	switch {
	case c.Start == "":
		return fmt.Errorf("%w: start valve is empty", ErrInvalidConfig)
	case c.SingleBudget < 0 || c.SingleBudget > search.MaxBudget:
		return fmt.Errorf("%w: single_budget %d out of [0, %d]", ErrInvalidConfig, c.SingleBudget, search.MaxBudget)
	case c.DualBudget < 0 || c.DualBudget > search.MaxBudget:
		return fmt.Errorf("%w: dual_budget %d out of [0, %d]", ErrInvalidConfig, c.DualBudget, search.MaxBudget)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SearchOptions translates the search knobs into search options.
func (c Config) SearchOptions() []search.Option {
	opts := []search.Option{search.WithWorkers(c.Workers)}
	if c.CanonicalDualKeys {
		opts = append(opts, search.WithCanonicalDualKeys())
	}

	return opts
}
