package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig is returned for a configuration value that no solver accepts.
var ErrBadConfig = errors.New("aoc2022: invalid configuration")

// Config holds the per-day parameters. Zero-valued fields in a file keep
// their defaults.
type Config struct {
	// RopeKnots lists the tail lengths simulated on day 9, one answer each.
	RopeKnots []int `yaml:"rope_knots"`
	// MarkerWindows lists the window sizes searched on day 6.
	MarkerWindows []int `yaml:"marker_windows"`
	// TopElves is how many of the best-stocked elves day 1 adds up.
	TopElves int `yaml:"top_elves"`
}

// DefaultConfig returns the parameters of the published puzzles.
func DefaultConfig() Config {
	return Config{
		RopeKnots:     []int{1, 9},
		MarkerWindows: []int{4, 14},
		TopElves:      3,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(body, &file); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if len(file.RopeKnots) > 0 {
		cfg.RopeKnots = file.RopeKnots
	}
	if len(file.MarkerWindows) > 0 {
		cfg.MarkerWindows = file.MarkerWindows
	}
	if file.TopElves != 0 {
		cfg.TopElves = file.TopElves
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the solvers cannot use.
func (c Config) Validate() error {
	for _, k := range c.RopeKnots {
		if k < 1 {
			return fmt.Errorf("%w: rope_knots entry %d must be at least 1", ErrBadConfig, k)
		}
	}
	for _, w := range c.MarkerWindows {
		if w < 1 || w > 26 {
			return fmt.Errorf("%w: marker_windows entry %d must be in 1..26", ErrBadConfig, w)
		}
	}
	if c.TopElves < 1 {
		return fmt.Errorf("%w: top_elves must be at least 1", ErrBadConfig)
	}
	return nil
}

// parseInts parses a comma separated list such as "1,9".
func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrBadConfig, f)
		}
		out = append(out, v)
	}
	return out, nil
}
