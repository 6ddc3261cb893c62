package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/sparse-gol/model"
)

// Config holds the configuration for a simulation run
type Config struct {
	Iterations       int    `json:"iterations" yaml:"iterations"`
	Pattern          string `json:"pattern" yaml:"pattern"`
	LogLevel         string `json:"log_level" yaml:"log_level"`
	StopOnStagnation bool   `json:"stop_on_stagnation" yaml:"stop_on_stagnation"`
	HistorySize      int    `json:"history_size" yaml:"history_size"`
}

// DefaultConfig returns the defaults: the r-pentomino run for 1103 steps
func DefaultConfig() Config {
	return Config{
		Iterations:       1103,
		Pattern:          model.DefaultPattern,
		LogLevel:         "info",
		StopOnStagnation: false,
		HistorySize:      5,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by
// extension. Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration describes a runnable simulation
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return errors.Errorf("[Validate] iterations must not be negative, got %d", c.Iterations)
	}
	if !slices.Contains(model.PatternNames(), c.Pattern) {
		return errors.Errorf("[Validate] unknown pattern %q, want one of %v", c.Pattern, model.PatternNames())
	}
	if c.HistorySize <= 0 {
		return errors.Errorf("[Validate] history_size must be positive, got %d", c.HistorySize)
	}
	return nil
}
