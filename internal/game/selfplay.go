package game

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"strings"
	"time"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/config"
	"github.com/lgbarn/chess-puzzle-go/internal/engine"
	"github.com/lgbarn/chess-puzzle-go/internal/hashing"
	"github.com/lgbarn/chess-puzzle-go/internal/output"
	"github.com/lgbarn/chess-puzzle-go/internal/worker"
)

// FairBoard is the default self-play position: a 12x12 board with equal
// armies on both back ranks.
const FairBoard = `12
Kj1, Ra1, Rb1, Rc1, Bh3, Bi3, Bj3, Bk3
Kj12, Ra12, Rb12, Rc12, Bh10, Bi10, Bj10, Bk10
`

// PlayRandom plays random legal moves for both sides, White first, until
// the game ends, iterLimit plies have been played or ctx is done. The
// board is changed in place. The result's Err is set only when ctx ended
// the game.
func PlayRandom(ctx context.Context, board *chess.Board, rng *rand.Rand, iterLimit int) worker.ProcessResult {
	result := worker.ProcessResult{Board: board}
	toMove := chess.White

	for result.Plies < iterLimit {
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}

		move, err := engine.ChooseMove(board, toMove, rng)
		if err != nil {
			result.Status = engine.Status(board, toMove)
			result.Winner = toMove.Opposite()
			return result
		}
		engine.MoveTo(board, move.Piece, move.X, move.Y)
		toMove = toMove.Opposite()
		result.Plies++
	}

	// The limit was hit; the position may still be final.
	result.Status = engine.Status(board, toMove)
	result.Winner = toMove.Opposite()
	return result
}

// StressReport summarises a self-play run.
type StressReport struct {
	Games       int           `json:"games"`
	WhiteWins   int           `json:"whiteWins"`
	BlackWins   int           `json:"blackWins"`
	Stalemates  int           `json:"stalemates"`
	Unfinished  int           `json:"unfinished"`  // iteration limit reached
	Interrupted int           `json:"interrupted"` // timeout or cancellation
	Plies       int           `json:"plies"`
	Distinct    int           `json:"distinct"` // different final positions of finished games
	Elapsed     time.Duration `json:"elapsed"`
}

// add counts one game result.
func (r *StressReport) add(res worker.ProcessResult) {
	r.Games++
	r.Plies += res.Plies
	switch {
	case res.Err != nil:
		r.Interrupted++
	case res.Status == engine.Checkmate && res.Winner == chess.White:
		r.WhiteWins++
	case res.Status == engine.Checkmate:
		r.BlackWins++
	case res.Status == engine.Stalemate:
		r.Stalemates++
	default:
		r.Unfinished++
	}
}

// String returns a one-line summary.
func (r *StressReport) String() string {
	return fmt.Sprintf("%d games: %d White wins, %d Black wins, %d stalemates, %d unfinished, %d interrupted; %d distinct endings; %d plies in %s",
		r.Games, r.WhiteWins, r.BlackWins, r.Stalemates, r.Unfinished, r.Interrupted, r.Distinct, r.Plies, r.Elapsed.Round(time.Millisecond))
}

// RunStress plays cfg.Stress.Games random games on copies of board in a
// worker pool. Game i is seeded with cfg.Game.Seed + i. The run is bounded
// by cfg.Stress.Timeout; games still running then are reported as
// interrupted. Final positions go to boards when it is not nil, and a dot
// is written to cfg.OutputFile per finished game at verbosity 1 and above.
func RunStress(ctx context.Context, cfg *config.Config, board *chess.Board, boards output.BoardWriter) (*StressReport, error) {
	if err := cfg.Stress.Validate(); err != nil {
		return nil, err
	}

	if cfg.Stress.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Stress.Timeout)
		defer cancel()
	}

	numWorkers := cfg.Stress.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	iterLimit := cfg.Stress.IterLimit
	finals := hashing.NewThreadSafeDuplicateDetector(false)

	pool := worker.NewPool(numWorkers, numWorkers*2, func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		rng := rand.New(rand.NewSource(item.Seed)) //nolint:gosec // G404: reproducible self-play
		res := PlayRandom(ctx, item.Board, rng, iterLimit)
		res.Index = item.Index
		if res.Err == nil {
			finals.CheckAndAdd(res.Board, sideToMove(res.Plies), res.Plies)
		}
		return res
	})
	pool.Start(ctx)

	go func() {
		for i := 0; i < cfg.Stress.Games; i++ {
			pool.Submit(worker.WorkItem{Board: board.Clone(), Seed: cfg.Game.Seed + int64(i), Index: i})
		}
		pool.Close()
	}()

	start := time.Now()
	cfg.Logf(1, "Running %d games on %d workers: ", cfg.Stress.Games, pool.NumWorkers())

	report := &StressReport{}
	results := make([]worker.ProcessResult, cfg.Stress.Games)
	for res := range pool.Results() {
		report.add(res)
		results[res.Index] = res
		cfg.Logf(1, ".")
		cfg.Logf(2, "\ngame %d: %s after %d plies", res.Index, describe(res), res.Plies)
	}
	report.Elapsed = time.Since(start)
	report.Distinct = finals.UniqueCount()
	cfg.Logf(1, "\n")

	// Games the pool skipped after cancellation never produce a result.
	report.Interrupted += cfg.Stress.Games - report.Games
	report.Games = cfg.Stress.Games

	if boards != nil {
		for i, res := range results {
			if res.Board == nil {
				continue
			}
			caption := fmt.Sprintf("Game %d: %s after %d plies", i+1, describe(res), res.Plies)
			if err := boards.WriteBoard(caption, res.Board, sideToMove(res.Plies)); err != nil {
				return report, err
			}
		}
		if err := boards.Flush(); err != nil {
			return report, err
		}
	}
	return report, nil
}

// describe returns the outcome of one game in words.
func describe(res worker.ProcessResult) string {
	switch {
	case res.Err != nil:
		return "interrupted"
	case res.Status == engine.Checkmate:
		return strings.ToLower(res.Winner.String()) + " wins"
	case res.Status == engine.Stalemate:
		return "stalemate"
	}
	return "unfinished"
}

// sideToMove returns the side to move after the given number of plies.
func sideToMove(plies int) chess.Colour {
	if plies%2 == 0 {
		return chess.White
	}
	return chess.Black
}
