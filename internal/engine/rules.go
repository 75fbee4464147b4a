// Package engine provides move validation, check detection and board
// loading for the King/Rook/Bishop puzzle variant.
package engine

import (
	"math/rand"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/errors"
)

// GameStatus is the state of a position for the side to move.
type GameStatus int

const (
	InProgress GameStatus = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}

// Over reports whether the status ends the game.
func (s GameStatus) Over() bool {
	return s != InProgress
}

// Status classifies the position for the given colour to move.
func Status(board *chess.Board, colour chess.Colour) GameStatus {
	if HasLegalMoves(board, colour) {
		return InProgress
	}
	if IsCheck(board, colour) {
		return Checkmate
	}
	return Stalemate
}

// ChooseMove picks one of the colour's legal moves uniformly at random.
// The random source is passed in so that games can be replayed from a seed.
// It returns ErrNoLegalMoves on checkmate or stalemate.
func ChooseMove(board *chess.Board, colour chess.Colour, rng *rand.Rand) (chess.Move, error) {
	moves := AllMoves(board, colour)
	if len(moves) == 0 {
		return chess.Move{}, errors.Wrapf(errors.ErrNoLegalMoves, "%s to move", colour)
	}
	return moves[rng.Intn(len(moves))], nil
}
