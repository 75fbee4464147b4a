package output

import (
	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/engine"
)

// BoardView is the JSON form of a board.
type BoardView struct {
	Size    int         `json:"size"`
	Pieces  []PieceView `json:"pieces"`
	Unicode string      `json:"unicode"`
	Text    string      `json:"text"`          // board file form
	FEN     string      `json:"fen,omitempty"` // 8x8 boards only
}

// PieceView is the JSON form of a piece.
type PieceView struct {
	Kind     string `json:"kind"`
	Location string `json:"location"`
	Side     string `json:"side"` // "white" or "black"
}

// MoveView is the JSON form of a move.
type MoveView struct {
	Text string `json:"text"` // e.g. "a2b3"
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind"`
}

// NewBoardView converts a board to its JSON form. toMove only affects the
// FEN field.
func NewBoardView(board *chess.Board, toMove chess.Colour) BoardView {
	placements := board.Placements()
	view := BoardView{
		Size:    board.Size(),
		Pieces:  make([]PieceView, len(placements)),
		Unicode: Unicode(board),
		Text:    engine.FormatBoard(board),
	}
	for i, pl := range placements {
		view.Pieces[i] = PieceView{
			Kind:     pl.Kind.String(),
			Location: pl.Location(),
			Side:     pl.Colour.Name(),
		}
	}
	if fen, err := engine.FEN(board, toMove); err == nil {
		view.FEN = fen
	}
	return view
}

// NewMoveView converts a move to its JSON form. Call it before the move
// is applied, since the source square is read from the piece.
func NewMoveView(m chess.Move) MoveView {
	return MoveView{
		Text: m.Text(),
		From: m.Piece.Location(),
		To:   chess.CoordToLocation(m.X, m.Y),
		Kind: m.Piece.Kind.String(),
	}
}

// NewMoveViews converts a move list to its JSON form.
func NewMoveViews(moves []chess.Move) []MoveView {
	views := make([]MoveView, len(moves))
	for i, m := range moves {
		views[i] = NewMoveView(m)
	}
	return views
}
