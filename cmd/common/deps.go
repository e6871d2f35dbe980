// Package common provides shared utilities for command implementations.
package common

import (
	"errors"
	"fmt"

	"github.com/jonesrussell/goimpressum/internal/config"
	"github.com/jonesrussell/goimpressum/internal/logger"
)

// Dependency errors.
var (
	ErrLoggerRequired = errors.New("logger is required")
	ErrConfigRequired = errors.New("config is required")
)

// CommandDeps holds common dependencies for all commands.
// Use this instead of context.Value for type-safe dependency injection.
type CommandDeps struct {
	Logger logger.Interface
	Config *config.Config
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	return nil
}

// NewCommandDeps loads configuration and constructs the logger.
func NewCommandDeps(cfgFile string, debug bool) (*CommandDeps, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logCfg := cfg.Logging
	if debug {
		logCfg.Level = "debug"
		logCfg.Development = true
	}

	log, err := logger.New(&logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &CommandDeps{Logger: log, Config: cfg}, nil
}
