package app

import (
	"errors"
	"fmt"
)

// Mode selects what Run does with each parsed document.
type Mode string

const (
	// ModeFormat prints the normalized document to the output writer or -o path.
	ModeFormat Mode = "format"
	// ModeCheck parses and validates only.
	ModeCheck Mode = "check"
	// ModeList prints a table of the projects in each document.
	ModeList Mode = "list"
	// ModeWrite rewrites each file in place with its normalized form.
	ModeWrite Mode = "write"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Path is the solution file, or a directory searched for .sln files.
	Path string
	// ConfigPath optionally points at a slnkit.hcl tool config file.
	ConfigPath string
	// OutputPath redirects format-mode output to a file instead of stdout.
	OutputPath string

	Mode      Mode
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Path == "" {
		return nil, errors.New("Path is a required configuration field and cannot be empty")
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeFormat
	}
	switch cfg.Mode {
	case ModeFormat, ModeCheck, ModeList, ModeWrite:
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if cfg.OutputPath != "" && cfg.Mode != ModeFormat {
		return nil, errors.New("an output path is only valid in format mode")
	}
	return &cfg, nil
}
