package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-puzzle-go/internal/errors"
)

// StressConfig holds settings for random self-play runs.
type StressConfig struct {
	// Games is the number of independent games to play
	Games int

	// Workers is the number of concurrent games; 0 means one per CPU
	Workers int

	// IterLimit caps the number of plies per game
	IterLimit int

	// Timeout bounds the whole run; 0 means no limit
	Timeout time.Duration

	// BoardFile replaces the built-in stress board when not empty
	BoardFile string
}

// NewStressConfig creates a StressConfig with default values.
func NewStressConfig() *StressConfig {
	return &StressConfig{
		Games:     1,
		IterLimit: 100000,
		Timeout:   10 * time.Second,
	}
}

// Validate checks that the stress configuration is valid.
func (s *StressConfig) Validate() error {
	if s.Games < 1 {
		return fmt.Errorf("games (%d) must be positive: %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.IterLimit < 1 {
		return fmt.Errorf("iteration limit (%d) must be positive: %w", s.IterLimit, errors.ErrInvalidConfig)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout (%s) must not be negative: %w", s.Timeout, errors.ErrInvalidConfig)
	}
	return nil
}
