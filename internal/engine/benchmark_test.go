package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
)

var benchBoards = map[string]string{
	"Small": "4\nKd2, Ra1, Bb2\nRb4, Kd4\n",
	"Fair":  "12\nKj1, Ra1, Rb1, Rc1, Bh3, Bi3, Bj3, Bk3\nKj12, Ra12, Rb12, Rc12, Bh10, Bi10, Bj10, Bk10\n",
	"Large": "26\nKm1, Ra1, Rz1, Bc1, Bx1\nKm26, Ra26, Rz26, Bc26, Bx26\n",
}

func benchBoard(b *testing.B, text string) *chess.Board {
	b.Helper()
	board, err := ReadBoard(strings.NewReader(text))
	if err != nil {
		b.Fatal(err)
	}
	return board
}

func BenchmarkReadBoard(b *testing.B) {
	for name, text := range benchBoards {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				ReadBoard(strings.NewReader(text)) //nolint:errcheck // benchmark
			}
		})
	}
}

func BenchmarkAllMoves(b *testing.B) {
	for name, text := range benchBoards {
		b.Run(name, func(b *testing.B) {
			board := benchBoard(b, text)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				AllMoves(board, chess.White)
			}
		})
	}
}

func BenchmarkIsCheck(b *testing.B) {
	for name, text := range benchBoards {
		b.Run(name, func(b *testing.B) {
			board := benchBoard(b, text)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				IsCheck(board, chess.Black)
			}
		})
	}
}

func BenchmarkStatus(b *testing.B) {
	board := benchBoard(b, benchBoards["Fair"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Status(board, chess.White)
	}
}

func BenchmarkRandomGame(b *testing.B) {
	start := benchBoard(b, benchBoards["Fair"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := start.Clone()
		rng := rand.New(rand.NewSource(int64(i))) //nolint:gosec // benchmark
		toMove := chess.White
		for ply := 0; ply < 200; ply++ {
			move, err := ChooseMove(board, toMove, rng)
			if err != nil {
				break
			}
			MoveTo(board, move.Piece, move.X, move.Y)
			toMove = toMove.Opposite()
		}
	}
}
