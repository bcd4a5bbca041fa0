// Package engine assembles the network parameter model.
// It drives the per-station loop, assigns node indices in declaration order,
// folds each station into the network-wide aggregates, and builds one
// transition matrix per customer class.
package engine

import (
	"fmt"
	"log/slog"
)

// Engine builds network parameter models.
type Engine struct {
	// Structured logger
	logger *slog.Logger

	tolerance float64
}

// Config holds engine configuration.
type Config struct {
	// ProbabilityTolerance relaxes the per-class outbound probability bound
	// to 1+tolerance. Zero keeps the strict "total > 1" check.
	ProbabilityTolerance float64
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates a new engine.
func New(cfg Config) (*Engine, error) {
	// Initialize logger (use discard handler if nil)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if cfg.ProbabilityTolerance < 0 {
		return nil, fmt.Errorf("probability tolerance must not be negative, got %g", cfg.ProbabilityTolerance)
	}

	logger.Debug("initializing engine", "probability_tolerance", cfg.ProbabilityTolerance)

	return &Engine{
		logger:    logger,
		tolerance: cfg.ProbabilityTolerance,
	}, nil
}
