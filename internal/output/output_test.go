package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/engine"
	"github.com/lgbarn/chess-puzzle-go/internal/testutil"
)

const sp = "\u2001"

func TestUnicode(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  string
	}{
		{
			name:  "check board",
			board: testutil.CheckBoard,
			want: sp + "♜" + sp + "♚\n" +
				sp + sp + sp + sp + "\n" +
				sp + "♗" + sp + "♔\n" +
				"♖" + sp + sp + sp,
		},
		{
			name:  "stalemate board",
			board: testutil.StalemateBoard,
			want: sp + "♜♚\n" +
				sp + sp + "♜\n" +
				"♔" + sp + sp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustReadBoard(t, tt.board)
			testutil.AssertEqual(t, Unicode(board), tt.want)
		})
	}
}

func TestUnicode_Shape(t *testing.T) {
	board := testutil.MustReadBoard(t, testutil.FairBoard)
	rows := strings.Split(Unicode(board), "\n")

	if len(rows) != 12 {
		t.Fatalf("rows = %d, want 12", len(rows))
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != 12 {
			t.Errorf("row %d has %d squares, want 12", i, n)
		}
	}
	testutil.AssertEqual(t, []rune(rows[0])[9], '♚', "j12")
	testutil.AssertEqual(t, []rune(rows[11])[9], '♔', "j1")
}

func TestNewBoardView(t *testing.T) {
	board := testutil.MustReadBoard(t, testutil.CheckBoard)
	view := NewBoardView(board, chess.Black)

	testutil.AssertEqual(t, view.Size, 4)
	testutil.AssertEqual(t, view.Pieces, []PieceView{
		{Kind: "King", Location: "d2", Side: "white"},
		{Kind: "Rook", Location: "a1", Side: "white"},
		{Kind: "Bishop", Location: "b2", Side: "white"},
		{Kind: "Rook", Location: "b4", Side: "black"},
		{Kind: "King", Location: "d4", Side: "black"},
	})
	testutil.AssertEqual(t, view.Text, testutil.CheckBoard)
	testutil.AssertEqual(t, view.FEN, "", "no FEN for 4x4")
}

func TestNewBoardView_FEN(t *testing.T) {
	board := testutil.MustReadBoard(t, "8\nKe1, Ra1\nKe8\n")
	view := NewBoardView(board, chess.White)
	testutil.AssertEqual(t, view.FEN, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
}

func TestNewMoveViews(t *testing.T) {
	board := testutil.MustReadBoard(t, testutil.CheckBoard)
	views := NewMoveViews(engine.AllMoves(board, chess.Black))

	for _, v := range views {
		if v.Kind == "Rook" {
			testutil.AssertEqual(t, v, MoveView{Text: "b4b2", From: "b4", To: "b2", Kind: "Rook"})
		}
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	board := testutil.MustReadBoard(t, testutil.StalemateBoard)

	w := NewTextWriter(&buf)
	testutil.AssertNoError(t, w.WriteBoard("The initial configuration is:", board, chess.White))
	testutil.AssertNoError(t, w.Close())

	want := "The initial configuration is:\n" + Unicode(board) + "\n\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	check := testutil.MustReadBoard(t, testutil.CheckBoard)
	mate := testutil.MustReadBoard(t, testutil.MateBoard)

	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteBoard("game 1", check, chess.Black))
	testutil.AssertNoError(t, w.WriteBoard("game 2", mate, chess.White))
	if buf.Len() != 0 {
		t.Fatalf("batch writer wrote before Close: %q", buf.String())
	}
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, len(out.Boards), 2)
	testutil.AssertEqual(t, out.Boards[1].Caption, "game 2")
	testutil.AssertEqual(t, out.Boards[1].Board.Text, testutil.MateBoard)
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	board := testutil.MustReadBoard(t, testutil.CheckBoard)

	w := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, w.WriteBoard("now", board, chess.Black))
	testutil.AssertContains(t, buf.String(), `"caption": "now"`)
	testutil.AssertContains(t, buf.String(), `"location": "b4"`)
}
