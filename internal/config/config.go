// Package config loads guardwalk's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Log formats accepted by Config.LogFormat.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the tunables shared by every guardwalk command.
type Config struct {
	// Workers is the number of concurrent loop trials; 1 runs sequentially.
	Workers int `yaml:"workers"`
	// MaxSteps bounds the real patrol; 0 means unbounded.
	MaxSteps int `yaml:"max_steps"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is auto, text or json.
	LogFormat string `yaml:"log_format"`
	// MetricsFile, if set, receives a Prometheus text-format dump of the run.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers:   1,
		MaxSteps:  0,
		LogLevel:  "info",
		LogFormat: FormatAuto,
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalid)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps %d: %w", c.MaxSteps, ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case FormatAuto, FormatText, FormatJSON:
	default:
		return fmt.Errorf("log_format %q: %w", c.LogFormat, ErrInvalid)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	return lvl, nil
}
