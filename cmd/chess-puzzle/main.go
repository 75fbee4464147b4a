// chess-puzzle plays King, Rook and Bishop puzzles on boards of any size
// from 2x2 to 26x26, against the computer or in random self-play.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/config"
	"github.com/lgbarn/chess-puzzle-go/internal/engine"
	"github.com/lgbarn/chess-puzzle-go/internal/game"
	"github.com/lgbarn/chess-puzzle-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-puzzle version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)

	if *stressMode {
		setupOutputFile(cfg)
		os.Exit(runStress(cfg))
	}

	session := game.NewSession(cfg, os.Stdin, os.Stdout)
	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runStress plays the self-play run and returns the exit code.
func runStress(cfg *config.Config) int {
	board, err := loadStressBoard(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	boards := newBoardWriter(cfg.OutputFile, *jsonOutput)
	defer boards.Close() //nolint:errcheck // closing stdout or a finished file

	report, err := game.RunStress(ctx, cfg, board, boards)
	if report != nil {
		cfg.Logf(1, "%s\n", report)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadStressBoard reads the stress board file, or the fair board when none
// is given.
func loadStressBoard(cfg *config.Config) (*chess.Board, error) {
	if cfg.Stress.BoardFile != "" {
		return engine.ReadBoardFile(cfg.Stress.BoardFile)
	}
	return engine.ReadBoard(strings.NewReader(game.FairBoard))
}

// newBoardWriter creates the writer for final stress positions.
func newBoardWriter(w io.Writer, jsonFormat bool) output.BoardWriter {
	if jsonFormat {
		return output.NewJSONWriter(w)
	}
	return output.NewTextWriter(w)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLogFile(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, `chess-puzzle - King, Rook and Bishop puzzles on N x N boards

Usage: chess-puzzle [options]

Without -stress the game is played interactively: enter a board file name,
then moves such as a1b2 or c10c12. QUIT saves the position and exits.

Board files hold the size on the first line, then the White pieces, then
the Black pieces, e.g.

  4
  Kd2, Ra1, Bb2
  Rb4, Kd4

Options:
`)
	flag.PrintDefaults()
}
