package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/errors"
)

// fenSize is the only board size FEN can describe.
const fenSize = 8

// FEN returns the Forsyth-Edwards Notation of an 8x8 board with the given
// side to move. Castling and en passant never apply to the variant, so
// those fields are always "-".
func FEN(board *chess.Board, toMove chess.Colour) (string, error) {
	if board.Size() != fenSize {
		return "", errors.Wrapf(errors.ErrBoardFormat, "FEN needs an 8x8 board, got %dx%d",
			board.Size(), board.Size())
	}

	var sb strings.Builder
	for y := fenSize; y >= 1; y-- {
		empty := 0
		for x := 1; x <= fenSize; x++ {
			p := board.PieceAt(x, y)
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(fenLetter(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if y > 1 {
			sb.WriteByte('/')
		}
	}

	side := "b"
	if toMove == chess.White {
		side = "w"
	}
	return fmt.Sprintf("%s %s - - 0 1", sb.String(), side), nil
}

// fenLetter returns the FEN character of a piece: upper case for White.
func fenLetter(p *chess.Piece) byte {
	letter := p.Kind.Letter()
	if p.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}
