package chess

import "fmt"

// Piece is a King, Rook or Bishop standing on the board.
// Kind and Colour never change; X and Y are 1-based and change when the
// piece moves.
type Piece struct {
	Kind   Kind
	Colour Colour
	X      int
	Y      int
}

// NewPiece creates a piece of the given kind and colour at (x, y).
func NewPiece(kind Kind, colour Colour, x, y int) *Piece {
	return &Piece{Kind: kind, Colour: colour, X: x, Y: y}
}

// Equal reports whether two pieces have the same kind, colour and position.
// It is a value comparison; use == on the pointers for identity.
func (p *Piece) Equal(o *Piece) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Kind == o.Kind && p.Colour == o.Colour && p.X == o.X && p.Y == o.Y
}

// Location returns the algebraic location of the piece, e.g. "d2".
func (p *Piece) Location() string {
	return CoordToLocation(p.X, p.Y)
}

// String returns a description such as "King(4, 2, white)".
func (p *Piece) String() string {
	return fmt.Sprintf("%s(%d, %d, %s)", p.Kind, p.X, p.Y, p.Colour.Name())
}

// Board is an N×N board and the pieces on it.
// The board owns its pieces; pieces keep insertion order so that move
// enumeration and saved files are reproducible.
type Board struct {
	size   int
	pieces []*Piece
}

// NewBoard creates a new empty board of the given size.
func NewBoard(size int) *Board {
	return &Board{size: size}
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// Add places a piece on the board. Callers are responsible for the
// occupancy and king invariants; see engine.BuildBoard.
func (b *Board) Add(p *Piece) {
	b.pieces = append(b.pieces, p)
}

// Pieces returns the pieces in insertion order. The slice is a copy but
// the pieces are shared with the board.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// PiecesOf returns the pieces of one colour in insertion order.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var out []*Piece
	for _, p := range b.pieces {
		if p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.pieces)
}

// InBounds reports whether (x, y) is a square of the board.
func (b *Board) InBounds(x, y int) bool {
	return x > 0 && x <= b.size && y > 0 && y <= b.size
}

// IsPieceAt reports whether a piece stands on (x, y).
func (b *Board) IsPieceAt(x, y int) bool {
	return b.PieceAt(x, y) != nil
}

// PieceAt returns the piece on (x, y), or nil if the square is empty.
func (b *Board) PieceAt(x, y int) *Piece {
	for _, p := range b.pieces {
		if p.X == x && p.Y == y {
			return p
		}
	}
	return nil
}

// indexOf returns the position of p in the piece list by identity, or -1.
func (b *Board) indexOf(p *Piece) int {
	for i, q := range b.pieces {
		if q == p {
			return i
		}
	}
	return -1
}

// Remove takes p off the board and returns its former index, or -1 if p
// is not on this board. Removal is by identity, not value.
func (b *Board) Remove(p *Piece) int {
	idx := b.indexOf(p)
	if idx < 0 {
		return -1
	}
	b.pieces = append(b.pieces[:idx], b.pieces[idx+1:]...)
	return idx
}

// insert puts p back at index idx.
func (b *Board) insert(idx int, p *Piece) {
	if idx < 0 || idx > len(b.pieces) {
		idx = len(b.pieces)
	}
	b.pieces = append(b.pieces, nil)
	copy(b.pieces[idx+1:], b.pieces[idx:])
	b.pieces[idx] = p
}

// Displacement records what Displace changed so that Restore can undo it.
type Displacement struct {
	piece       *Piece
	fromX       int
	fromY       int
	captured    *Piece
	capturedIdx int
}

// Captured returns the piece removed by the move, or nil.
func (d Displacement) Captured() *Piece {
	return d.captured
}

// Displace moves p to (x, y), removing any piece standing there.
// It does no rule checking. The returned Displacement undoes the change.
func (b *Board) Displace(p *Piece, x, y int) Displacement {
	d := Displacement{piece: p, fromX: p.X, fromY: p.Y, capturedIdx: -1}
	if target := b.PieceAt(x, y); target != nil && target != p {
		d.captured = target
		d.capturedIdx = b.Remove(target)
	}
	p.X = x
	p.Y = y
	return d
}

// Restore reverts a Displacement. The moved piece gets its coordinates
// back and a captured piece returns to its former index.
func (b *Board) Restore(d Displacement) {
	if d.piece == nil {
		return
	}
	d.piece.X = d.fromX
	d.piece.Y = d.fromY
	if d.captured != nil {
		b.insert(d.capturedIdx, d.captured)
	}
}

// Clone creates a deep copy of the board. Pieces of the copy are new values.
func (b *Board) Clone() *Board {
	nb := &Board{size: b.size, pieces: make([]*Piece, len(b.pieces))}
	for i, p := range b.pieces {
		cp := *p
		nb.pieces[i] = &cp
	}
	return nb
}

// Equal reports whether two boards have the same size and the same pieces
// in the same order, compared by value.
func (b *Board) Equal(o *Board) bool {
	if b.size != o.size || len(b.pieces) != len(o.pieces) {
		return false
	}
	for i := range b.pieces {
		if !b.pieces[i].Equal(o.pieces[i]) {
			return false
		}
	}
	return true
}

// Placements returns a read-only view of every piece in insertion order.
func (b *Board) Placements() []Placement {
	out := make([]Placement, len(b.pieces))
	for i, p := range b.pieces {
		out[i] = Placement{Kind: p.Kind, X: p.X, Y: p.Y, Colour: p.Colour}
	}
	return out
}
