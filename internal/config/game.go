package config

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/errors"
)

// GameConfig holds settings for an interactive game.
type GameConfig struct {
	// PlayAgainstComputer lets the computer answer every human move.
	// When false the human plays both sides.
	PlayAgainstComputer bool

	// ComputerSide is the colour the computer plays
	ComputerSide chess.Colour

	// Seed for the computer's random move choice
	Seed int64

	// BoardFile is loaded instead of prompting when not empty
	BoardFile string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		PlayAgainstComputer: true,
		ComputerSide:        chess.Black,
	}
}

// Rand returns a random source seeded from Seed.
func (g *GameConfig) Rand() *rand.Rand {
	return rand.New(rand.NewSource(g.Seed)) //nolint:gosec // G404: move choice needs reproducibility, not secrecy
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.ComputerSide != chess.White && g.ComputerSide != chess.Black {
		return fmt.Errorf("computer side %d: %w", g.ComputerSide, errors.ErrInvalidConfig)
	}
	return nil
}

// ParseSide parses a side name for the computer: "white", "black" or
// their first letters, in any case.
func ParseSide(name string) (chess.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.Black, fmt.Errorf("side %q: %w", name, errors.ErrInvalidConfig)
}
