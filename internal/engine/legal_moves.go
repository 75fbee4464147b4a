package engine

import "github.com/lgbarn/chess-puzzle-go/internal/chess"

// CanMoveTo reports whether moving the piece to (x, y) is legal: the piece
// can reach the square and the move does not leave its own king in check.
//
// The move is tried on the board itself and always undone before
// returning, so the board ends up exactly as it started, piece order
// included. Callers must hold exclusive access to the board for the
// duration of the call.
func CanMoveTo(board *chess.Board, p *chess.Piece, x, y int) bool {
	if !CanReach(board, p, x, y) {
		return false
	}

	d := board.Displace(p, x, y)
	defer board.Restore(d)

	return !IsCheck(board, p.Colour)
}

// MoveTo moves the piece to (x, y), removing any captured piece for good.
// It does not check legality; validate with CanMoveTo first. The board is
// changed in place and returned.
func MoveTo(board *chess.Board, p *chess.Piece, x, y int) *chess.Board {
	board.Displace(p, x, y)
	return board
}

// AllMoves returns every legal move of the given colour. Pieces are taken
// in board order and squares by ascending x, then ascending y; the order is
// stable so that seeded random choices are reproducible.
func AllMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, p := range board.PiecesOf(colour) {
		moves = append(moves, MovesFor(board, p)...)
	}
	return moves
}

// MovesFor returns the legal moves of a single piece in AllMoves order.
func MovesFor(board *chess.Board, p *chess.Piece) []chess.Move {
	size := board.Size()
	var moves []chess.Move
	for x := 1; x <= size; x++ {
		for y := 1; y <= size; y++ {
			if CanMoveTo(board, p, x, y) {
				moves = append(moves, chess.Move{Piece: p, X: x, Y: y})
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// It agrees with len(AllMoves(board, colour)) > 0 but stops at the first move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	size := board.Size()
	for _, p := range board.PiecesOf(colour) {
		for x := 1; x <= size; x++ {
			for y := 1; y <= size; y++ {
				if CanMoveTo(board, p, x, y) {
					return true
				}
			}
		}
	}
	return false
}
