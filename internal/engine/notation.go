package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/errors"
)

// MoveToText returns the move in "<source><destination>" form, e.g. "a2b3".
func MoveToText(m chess.Move) string {
	return m.Text()
}

// ParseMove validates a move typed as "<source><destination>", such as
// "a1b2" or "c10c12", for the given colour. The source square must hold a
// piece of that colour which can legally move to the destination.
func ParseMove(text string, colour chess.Colour, board *chess.Board) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if len(text) < 4 {
		return chess.Move{}, fmt.Errorf("%q too short: %w", text, errors.ErrIllegalMove)
	}

	// The destination starts at the second letter.
	split := 1
	for !isFileLetter(text[split]) {
		split++
		if split >= len(text)-1 {
			return chess.Move{}, fmt.Errorf("%q has no destination: %w", text, errors.ErrIllegalMove)
		}
	}

	fromX, fromY, err := chess.LocationToCoord(text[:split])
	if err != nil {
		return chess.Move{}, err
	}
	toX, toY, err := chess.LocationToCoord(text[split:])
	if err != nil {
		return chess.Move{}, err
	}

	if !board.InBounds(fromX, fromY) || !board.InBounds(toX, toY) {
		return chess.Move{}, fmt.Errorf("%q off the board: %w", text, errors.ErrIllegalMove)
	}

	piece := board.PieceAt(fromX, fromY)
	if piece == nil {
		return chess.Move{}, fmt.Errorf("no piece on %s: %w", text[:split], errors.ErrIllegalMove)
	}
	if piece.Colour != colour {
		return chess.Move{}, fmt.Errorf("%s belongs to %s: %w", text[:split], piece.Colour, errors.ErrIllegalMove)
	}
	if !CanMoveTo(board, piece, toX, toY) {
		return chess.Move{}, fmt.Errorf("%s cannot move to %s: %w", piece, text[split:], errors.ErrIllegalMove)
	}

	return chess.Move{Piece: piece, X: toX, Y: toY}, nil
}

func isFileLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}
