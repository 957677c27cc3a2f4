package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	OutputDir   string   // resource pack root
	ConfigPaths []string // palette files, directories or globs

	// Namespace overrides the namespace declared by the palette.
	Namespace  string
	TargetRoot string
	Force      bool

	LogFormat   string
	LogLevel    string
	WorkerCount int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.OutputDir == "" {
		return nil, errors.New("OutputDir is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WorkerCount must be at least 1, got %d", cfg.WorkerCount)
	}

	return &cfg, nil
}
