// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"fmt"
	"slices"
)

// Accepted values for the enumerated configuration fields.
var (
	LogLevels     = []string{"debug", "info", "warn", "error"}
	LogFormats    = []string{"text", "json"}
	OutputFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths       []string // graph and manifest files or directories
	ModulesPath string   // manifest-only files or directories

	// StorePath is the SQLite database used by the store commands. Empty
	// disables the store.
	StorePath string

	LogFormat    string
	LogLevel     string
	OutputFormat string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}

	if !slices.Contains(LogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %v", cfg.LogLevel, LogLevels)
	}
	if !slices.Contains(LogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %v", cfg.LogFormat, LogFormats)
	}
	if !slices.Contains(OutputFormats, cfg.OutputFormat) {
		return nil, fmt.Errorf("invalid format %q: must be one of %v", cfg.OutputFormat, OutputFormats)
	}
	return &cfg, nil
}
