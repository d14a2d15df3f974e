package app

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath    string // .hcl, .yaml or .yml files, or a directory of them
	DocumentPath    string // HTML document components mount into
	ContextSelector string
	Targets         []string // components to init; empty means all

	LogFormat string
	LogLevel  string

	Watch       bool
	Debounce    time.Duration
	ShowMetrics bool
}

var (
	logFormats = []string{"text", "json"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.DocumentPath == "" {
		return nil, errors.New("DocumentPath is a required configuration field and cannot be empty")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.Debounce < 0 {
		return nil, fmt.Errorf("debounce must not be negative, got %s", cfg.Debounce)
	}
	if cfg.Watch && cfg.Debounce == 0 {
		cfg.Debounce = 200 * time.Millisecond
	}

	return &cfg, nil
}
