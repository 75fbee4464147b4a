package engine

import (
	"testing"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
)

// mustBoard builds a board from two piece lists in board file notation.
func mustBoard(t *testing.T, size int, white, black string) *chess.Board {
	t.Helper()
	w, err := ParsePieceList(white, chess.White)
	if err != nil {
		t.Fatalf("ParsePieceList(%q) error: %v", white, err)
	}
	b, err := ParsePieceList(black, chess.Black)
	if err != nil {
		t.Fatalf("ParsePieceList(%q) error: %v", black, err)
	}
	board, err := BuildBoard(size, w, b)
	if err != nil {
		t.Fatalf("BuildBoard(%d, %q, %q) error: %v", size, white, black, err)
	}
	return board
}

// mustPiece returns the piece standing on loc.
func mustPiece(t *testing.T, board *chess.Board, loc string) *chess.Piece {
	t.Helper()
	x, y, err := chess.LocationToCoord(loc)
	if err != nil {
		t.Fatalf("LocationToCoord(%q) error: %v", loc, err)
	}
	p := board.PieceAt(x, y)
	if p == nil {
		t.Fatalf("no piece on %s", loc)
	}
	return p
}

// moveTexts returns the text form of each move.
func moveTexts(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Text()
	}
	return out
}
