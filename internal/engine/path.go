package engine

import "github.com/lgbarn/chess-puzzle-go/internal/chess"

// InDefinedMoves reports whether (x, y) lies on the piece's movement pattern.
// Board bounds and occupancy are ignored, and so is the zero move: a piece
// always blocks its own square, which CanReach handles.
func InDefinedMoves(p *chess.Piece, x, y int) bool {
	colDiff := abs(x - p.X)
	rankDiff := abs(y - p.Y)

	switch p.Kind {
	case chess.King:
		return colDiff <= 1 && rankDiff <= 1
	case chess.Rook:
		return colDiff == 0 || rankDiff == 0
	case chess.Bishop:
		return colDiff == rankDiff
	}
	return false
}

// IsLeapOver reports whether the piece would pass over an occupied square
// on its way to (x, y). Neither the start nor the destination square counts.
// It assumes (x, y) is in the piece's defined moves. Kings only step one
// square and never leap.
func IsLeapOver(board *chess.Board, p *chess.Piece, x, y int) bool {
	switch p.Kind {
	case chess.Rook:
		if p.X != x && p.Y != y {
			return false
		}
		return !isPathClear(board, p.X, p.Y, x, y)
	case chess.Bishop:
		if abs(x-p.X) != abs(y-p.Y) {
			return false
		}
		return !isPathClear(board, p.X, p.Y, x, y)
	}
	return false
}

// isPathClear checks that every square strictly between the two endpoints
// of a straight or diagonal line is empty.
func isPathClear(board *chess.Board, fromX, fromY, toX, toY int) bool {
	colDir := sign(toX - fromX)
	rankDir := sign(toY - fromY)

	x := fromX + colDir
	y := fromY + rankDir

	for x != toX || y != toY {
		if board.IsPieceAt(x, y) {
			return false
		}
		x += colDir
		y += rankDir
	}

	return true
}
