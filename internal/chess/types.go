// Package chess provides core types for the King/Rook/Bishop puzzle board.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Name returns the lower-case colour name used in piece descriptions.
func (c Colour) Name() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind is the kind of a piece. The set is closed: every switch over Kind
// handles King, Rook and Bishop.
type Kind int

const (
	King Kind = iota
	Rook
	Bishop
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"King", "Rook", "Bishop"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter used for the kind in board files.
func (k Kind) Letter() byte {
	letters := []byte{'K', 'R', 'B'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Symbol returns the unicode chess glyph for the kind in the given colour.
func (k Kind) Symbol(colour Colour) rune {
	switch k {
	case King:
		if colour == White {
			return '♔'
		}
		return '♚'
	case Rook:
		if colour == White {
			return '♖'
		}
		return '♜'
	case Bishop:
		if colour == White {
			return '♗'
		}
		return '♝'
	}
	return '?'
}

// KindFromLetter converts a board-file letter to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'K':
		return King, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	default:
		return 0, false
	}
}

// Constants for board dimensions.
const (
	MinBoardSize = 2
	MaxBoardSize = 26

	ColBase = 'a'
)
