// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/lgbarn/chess-puzzle-go/internal/config"
)

var (
	// Game options
	playSelf     = flag.Bool("playself", false, "Play both sides instead of against the computer")
	computerSide = flag.String("computer", "black", "Side the computer plays: white or black")
	seed         = flag.Int64("seed", 0, "Random seed for computer moves (0 = from the clock)")
	boardFile    = flag.String("board", "", "Board configuration file (default: prompt, or the fair board with -stress)")

	// Stress run options
	stressMode = flag.Bool("stress", false, "Play random games against itself and report the outcomes")
	games      = flag.Int("games", 1, "Number of games in a stress run")
	workers    = flag.Int("workers", 0, "Number of concurrent games (0 = auto-detect based on CPU cores)")
	iterLimit  = flag.Int("iters", 100000, "Maximum plies per stress game")
	timeout    = flag.Duration("timeout", 10*time.Second, "Time limit for a stress run (0 = none)")
	jsonOutput = flag.Bool("J", false, "Output final stress boards in JSON format")

	// Output and logging
	outputFile = flag.String("o", "", "Output file for stress boards (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Diagnostic level: 0 quiet, 1 progress, 2 every move")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.Verbosity = *verbosity
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyStressFlags(cfg)
	return nil
}

// applyGameFlags configures the interactive game.
func applyGameFlags(cfg *config.Config) error {
	cfg.Game.PlayAgainstComputer = !*playSelf
	cfg.Game.BoardFile = *boardFile

	side, err := config.ParseSide(*computerSide)
	if err != nil {
		return fmt.Errorf("-computer: %w", err)
	}
	cfg.Game.ComputerSide = side

	cfg.Game.Seed = *seed
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}
	return nil
}

// applyStressFlags configures the self-play run.
func applyStressFlags(cfg *config.Config) {
	cfg.Stress.Games = *games
	cfg.Stress.Workers = *workers
	cfg.Stress.IterLimit = *iterLimit
	cfg.Stress.Timeout = *timeout
	cfg.Stress.BoardFile = *boardFile
}
