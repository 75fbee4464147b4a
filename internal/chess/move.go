package chess

import "fmt"

// Placement is a kind, square and colour triple. It is the export form of
// a piece for renderers and the input form for building boards.
type Placement struct {
	Kind   Kind
	X      int
	Y      int
	Colour Colour
}

// Location returns the algebraic location of the placement.
func (pl Placement) Location() string {
	return CoordToLocation(pl.X, pl.Y)
}

// Move is a piece and its destination square.
type Move struct {
	Piece *Piece
	X     int
	Y     int
}

// Text returns the move in "<source><destination>" form, e.g. "a2b3".
// The source is read from the piece, so call Text before the move is applied.
func (m Move) Text() string {
	return m.Piece.Location() + CoordToLocation(m.X, m.Y)
}

// String returns a description such as "Rook(2, 4, black) -> (2, 2)".
func (m Move) String() string {
	return fmt.Sprintf("%s -> (%d, %d)", m.Piece, m.X, m.Y)
}
