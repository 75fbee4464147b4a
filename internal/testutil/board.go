package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/engine"
)

// Boards used across packages, in board file form.
const (
	// CheckBoard has Black in check from the bishop on b2; the rook on b4
	// can only capture it.
	CheckBoard = "4\nKd2, Ra1, Bb2\nRb4, Kd4\n"

	// MateBoard has White to move and checkmated.
	MateBoard = "4\nKa2, Ra1, Rb1\nKc3, Ra4\n"

	// StalemateBoard has White to move with no legal move and no check.
	StalemateBoard = "3\nKa1\nKc3, Rb3, Rc2\n"

	// FairBoard is a balanced 12x12 opening used for self-play. It repeats
	// game.FairBoard, since game's tests import this package;
	// TestFairBoard_SharedFixture keeps the two equal.
	FairBoard = "12\nKj1, Ra1, Rb1, Rc1, Bh3, Bi3, Bj3, Bk3\nKj12, Ra12, Rb12, Rc12, Bh10, Bi10, Bj10, Bk10\n"
)

// MustReadBoard parses a board in board file form.
// It calls t.Fatal if the text is not a valid board.
func MustReadBoard(t *testing.T, text string) *chess.Board {
	t.Helper()
	board, err := engine.ReadBoard(strings.NewReader(text))
	if err != nil {
		t.Fatalf("failed to read test board: %v\n%s", err, text)
	}
	return board
}

// WriteBoardFile writes text to a new file in a temporary directory and
// returns its path.
func WriteBoardFile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatalf("failed to write test board: %v", err)
	}
	return path
}
