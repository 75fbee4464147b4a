package engine

import (
	"fmt"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/errors"
)

// FindKing returns the king of the given colour. A board without exactly
// one such king yields ErrNoKingFound or ErrMultipleKings.
func FindKing(board *chess.Board, colour chess.Colour) (*chess.Piece, error) {
	var king *chess.Piece
	for _, p := range board.PiecesOf(colour) {
		if p.Kind != chess.King {
			continue
		}
		if king != nil {
			return nil, fmt.Errorf("%s: %w", colour, errors.ErrMultipleKings)
		}
		king = p
	}
	if king == nil {
		return nil, fmt.Errorf("%s: %w", colour, errors.ErrNoKingFound)
	}
	return king, nil
}

// IsCheck returns true if the given colour's king can be reached by any
// opposing piece. The attacker's own king safety is not considered.
//
// Boards must hold exactly one king per side; BuildBoard and ReadBoard
// enforce this. IsCheck panics with the FindKing error otherwise.
func IsCheck(board *chess.Board, colour chess.Colour) bool {
	king, err := FindKing(board, colour)
	if err != nil {
		panic(err)
	}

	for _, p := range board.PiecesOf(colour.Opposite()) {
		if CanReach(board, p, king.X, king.Y) {
			return true
		}
	}
	return false
}

// IsCheckmate returns true if the colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the colour is not in check but cannot move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsCheck(board, colour) && !HasLegalMoves(board, colour)
}
