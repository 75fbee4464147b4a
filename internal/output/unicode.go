// Package output renders boards as unicode text and JSON.
package output

import (
	"strings"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
)

// EmptySquare is the character drawn for a square without a piece.
// It is an em quad, about as wide as a chess glyph in most fonts.
const EmptySquare = '\u2001'

// Unicode renders the board one row per line, from row N at the top down to
// row 1, using chess glyphs for the pieces. There is no trailing newline.
func Unicode(board *chess.Board) string {
	size := board.Size()
	grid := make([][]rune, size)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(string(EmptySquare), size))
	}
	for _, pl := range board.Placements() {
		grid[size-pl.Y][pl.X-1] = pl.Kind.Symbol(pl.Colour)
	}

	rows := make([]string, size)
	for i, row := range grid {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}
