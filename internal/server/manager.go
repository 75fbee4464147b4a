package server

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-puzzle-go/internal/config"
	"github.com/lgbarn/chess-puzzle-go/internal/engine"
	"github.com/lgbarn/chess-puzzle-go/internal/errors"
	"github.com/lgbarn/chess-puzzle-go/internal/game"
)

// GameManager holds the games in memory, keyed by id.
type GameManager struct {
	cfg   *config.Config
	games map[string]*Game
	mu    sync.RWMutex
}

// NewGameManager creates an empty manager. The computer plays
// cfg.Game.ComputerSide in games that ask for it.
func NewGameManager(cfg *config.Config) *GameManager {
	return &GameManager{
		cfg:   cfg,
		games: make(map[string]*Game),
	}
}

// Create starts a new game from a board in the plain configuration format.
// An empty boardText uses the fair 12x12 position and seed 0 is replaced
// by the clock.
func (gm *GameManager) Create(boardText string, vsComputer bool, seed int64) (*Game, error) {
	if strings.TrimSpace(boardText) == "" {
		boardText = game.FairBoard
	}
	board, err := engine.ReadBoard(strings.NewReader(boardText))
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()
	if limit := gm.cfg.Server.MaxGames; limit > 0 && len(gm.games) >= limit {
		return nil, errors.Wrapf(errors.ErrTooManyGames, "limit %d", limit)
	}

	id := uuid.New().String()
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: move choice needs reproducibility, not secrecy
	g := newGame(id, board, vsComputer, gm.cfg.Game.ComputerSide, rng)
	gm.games[id] = g

	gm.cfg.Logf(1, "game %s created (%dx%d, seed %d)\n", id, board.Size(), board.Size(), seed)
	return g, nil
}

// Get returns the game with the given id.
func (gm *GameManager) Get(id string) (*Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	g, ok := gm.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	return g, nil
}

// Move plays a move in the given game.
func (gm *GameManager) Move(id, text string) (GameState, error) {
	g, err := gm.Get(id)
	if err != nil {
		return GameState{}, err
	}
	st, err := g.Move(text)
	if err != nil {
		gm.cfg.Logf(2, "%v\n", err)
		return GameState{}, err
	}
	return st, nil
}

// Len returns the number of games held.
func (gm *GameManager) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}
