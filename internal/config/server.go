package config

import (
	"fmt"

	"github.com/lgbarn/chess-puzzle-go/internal/errors"
)

// ServerConfig holds settings for the play server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowOrigins is the CORS origin list
	AllowOrigins string

	// MaxGames caps the number of games held in memory; 0 means no cap
	MaxGames int
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		AllowOrigins: "*",
		MaxGames:     1000,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if s.MaxGames < 0 {
		return fmt.Errorf("max games (%d) must not be negative: %w", s.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}
