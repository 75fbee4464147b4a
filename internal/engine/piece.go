package engine

import "github.com/lgbarn/chess-puzzle-go/internal/chess"

// CanReach reports whether the piece can land on (x, y) by its movement
// rules: the square is on the board, on the piece's pattern, not held by a
// piece of the same colour, and for rooks and bishops not behind another
// piece. A capture of an opposing piece is allowed. Whether the move
// leaves the mover's king in check is not considered; see CanMoveTo.
//
// A piece blocks its own square, so CanReach(b, p, p.X, p.Y) is false.
func CanReach(board *chess.Board, p *chess.Piece, x, y int) bool {
	if !board.InBounds(x, y) || !InDefinedMoves(p, x, y) {
		return false
	}
	if isDestinationBlocked(board, p, x, y) {
		return false
	}
	if p.Kind == chess.King {
		return true
	}
	return !IsLeapOver(board, p, x, y)
}

// isDestinationBlocked reports whether (x, y) holds a piece of p's colour.
// This includes p itself when (x, y) is its own square.
func isDestinationBlocked(board *chess.Board, p *chess.Piece, x, y int) bool {
	target := board.PieceAt(x, y)
	return target != nil && target.Colour == p.Colour
}
