package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/config"
	"github.com/lgbarn/chess-puzzle-go/internal/errors"
	"github.com/lgbarn/chess-puzzle-go/internal/testutil"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt64(ptr *int64, val int64) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyGameFlags(t *testing.T) {
	t.Run("defaults play Black against the human", func(t *testing.T) {
		defer saveRestoreInt64(seed, 42)()
		cfg := config.NewConfig()
		testutil.AssertNoError(t, applyGameFlags(cfg))
		testutil.AssertEqual(t, cfg.Game.PlayAgainstComputer, true)
		testutil.AssertEqual(t, cfg.Game.ComputerSide, chess.Black)
		testutil.AssertEqual(t, cfg.Game.Seed, int64(42))
	})

	t.Run("playself", func(t *testing.T) {
		defer saveRestoreBool(playSelf, true)()
		cfg := config.NewConfig()
		testutil.AssertNoError(t, applyGameFlags(cfg))
		testutil.AssertEqual(t, cfg.Game.PlayAgainstComputer, false)
	})

	t.Run("computer plays white", func(t *testing.T) {
		defer saveRestoreString(computerSide, "White")()
		cfg := config.NewConfig()
		testutil.AssertNoError(t, applyGameFlags(cfg))
		testutil.AssertEqual(t, cfg.Game.ComputerSide, chess.White)
	})

	t.Run("unknown side", func(t *testing.T) {
		defer saveRestoreString(computerSide, "blak")()
		cfg := config.NewConfig()
		testutil.AssertErrorIs(t, applyGameFlags(cfg), errors.ErrInvalidConfig)
	})

	t.Run("zero seed comes from the clock", func(t *testing.T) {
		defer saveRestoreInt64(seed, 0)()
		cfg := config.NewConfig()
		testutil.AssertNoError(t, applyGameFlags(cfg))
		if cfg.Game.Seed == 0 {
			t.Error("Seed = 0; want a clock-based seed")
		}
	})
}

func TestApplyStressFlags(t *testing.T) {
	defer saveRestoreInt(games, 8)()
	defer saveRestoreInt(workers, 2)()
	defer saveRestoreInt(iterLimit, 500)()
	defer saveRestoreString(boardFile, "fair.txt")()
	oldTimeout := *timeout
	*timeout = time.Second
	defer func() { *timeout = oldTimeout }()

	cfg := config.NewConfig()
	applyStressFlags(cfg)

	want := config.StressConfig{Games: 8, Workers: 2, IterLimit: 500, Timeout: time.Second, BoardFile: "fair.txt"}
	testutil.AssertEqual(t, *cfg.Stress, want)
}

func TestApplyFlags_Verbosity(t *testing.T) {
	defer saveRestoreInt(verbosity, 0)()
	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))
	testutil.AssertEqual(t, cfg.Verbosity, 0)
}

func TestLoadStressBoard(t *testing.T) {
	t.Run("fair board by default", func(t *testing.T) {
		cfg := config.NewConfig()
		board, err := loadStressBoard(cfg)
		testutil.AssertNoError(t, err)
		testutil.AssertBoardEqual(t, board, testutil.MustReadBoard(t, testutil.FairBoard))
	})

	t.Run("from file", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Stress.BoardFile = testutil.WriteBoardFile(t, testutil.MateBoard)
		board, err := loadStressBoard(cfg)
		testutil.AssertNoError(t, err)
		testutil.AssertBoardEqual(t, board, testutil.MustReadBoard(t, testutil.MateBoard))
	})
}

func TestNewBoardWriter(t *testing.T) {
	board := testutil.MustReadBoard(t, testutil.MateBoard)

	var text bytes.Buffer
	w := newBoardWriter(&text, false)
	testutil.AssertNoError(t, w.WriteBoard("Game 1", board, chess.White))
	testutil.AssertNoError(t, w.Close())
	if !strings.HasPrefix(text.String(), "Game 1\n") {
		t.Errorf("text output = %q, want a caption line first", text.String())
	}

	var js bytes.Buffer
	w = newBoardWriter(&js, true)
	testutil.AssertNoError(t, w.WriteBoard("Game 1", board, chess.White))
	testutil.AssertNoError(t, w.Close())
	if !json.Valid(js.Bytes()) {
		t.Errorf("JSON output is not valid JSON: %s", js.String())
	}
}
