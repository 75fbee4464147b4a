package server

import (
	"encoding/json"
	"math/rand"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/engine"
	"github.com/lgbarn/chess-puzzle-go/internal/errors"
	"github.com/lgbarn/chess-puzzle-go/internal/output"
)

// GameState is the JSON snapshot of a game sent to clients.
type GameState struct {
	ID           string            `json:"id"`
	Board        output.BoardView  `json:"board"`
	ToMove       string            `json:"toMove"`
	Status       string            `json:"status"`
	Winner       string            `json:"winner,omitempty"`
	VsComputer   bool              `json:"vsComputer"`
	ComputerSide string            `json:"computerSide,omitempty"`
	History      []output.MoveView `json:"history"`
}

// Game is one board being played on the server. The board is not safe for
// concurrent use, so every read and write goes through mu.
type Game struct {
	ID string

	mu         sync.Mutex
	board      *chess.Board
	toMove     chess.Colour
	vsComputer bool
	computer   chess.Colour
	rng        *rand.Rand
	history    []output.MoveView
	status     engine.GameStatus

	connMu sync.Mutex
	conns  map[*websocket.Conn]struct{}
}

func newGame(id string, board *chess.Board, vsComputer bool, computer chess.Colour, rng *rand.Rand) *Game {
	g := &Game{
		ID:         id,
		board:      board,
		toMove:     chess.White,
		vsComputer: vsComputer,
		computer:   computer,
		rng:        rng,
		history:    []output.MoveView{},
		conns:      make(map[*websocket.Conn]struct{}),
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = engine.Status(g.board, g.toMove)
	if g.computerToMove() {
		g.playComputer()
	}
	return g
}

// State returns a snapshot of the game.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() GameState {
	st := GameState{
		ID:         g.ID,
		Board:      output.NewBoardView(g.board, g.toMove),
		ToMove:     g.toMove.Name(),
		Status:     g.status.String(),
		VsComputer: g.vsComputer,
		History:    append([]output.MoveView(nil), g.history...),
	}
	if g.status == engine.Checkmate {
		st.Winner = g.toMove.Opposite().Name()
	}
	if g.vsComputer {
		st.ComputerSide = g.computer.Name()
	}
	return st
}

// LegalMoves returns the moves open to the side to move.
func (g *Game) LegalMoves() []output.MoveView {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status.Over() {
		return []output.MoveView{}
	}
	return output.NewMoveViews(engine.AllMoves(g.board, g.toMove))
}

// Move plays a move for the side to move, then lets the computer answer
// when it plays the other side. The new state is broadcast to every
// subscriber.
func (g *Game) Move(text string) (GameState, error) {
	g.mu.Lock()
	if g.status.Over() {
		g.mu.Unlock()
		return GameState{}, &errors.GameError{Err: errors.ErrGameOver, GameID: g.ID, PlyNum: len(g.history) + 1, MoveText: text}
	}
	if g.computerToMove() {
		g.mu.Unlock()
		return GameState{}, &errors.GameError{Err: errors.ErrNotYourTurn, GameID: g.ID, PlyNum: len(g.history) + 1, MoveText: text}
	}

	move, err := engine.ParseMove(text, g.toMove, g.board)
	if err != nil {
		g.mu.Unlock()
		return GameState{}, &errors.GameError{Err: err, GameID: g.ID, PlyNum: len(g.history) + 1, MoveText: text}
	}
	g.apply(move)
	if g.computerToMove() {
		g.playComputer()
	}
	st := g.state()
	g.mu.Unlock()

	g.broadcast(st)
	return st, nil
}

func (g *Game) computerToMove() bool {
	return g.vsComputer && !g.status.Over() && g.toMove == g.computer
}

// playComputer makes the computer's reply. g.mu must be held.
func (g *Game) playComputer() {
	move, err := engine.ChooseMove(g.board, g.toMove, g.rng)
	if err != nil {
		// Status already said the side can move.
		return
	}
	g.apply(move)
}

// apply plays a validated move. g.mu must be held.
func (g *Game) apply(move chess.Move) {
	g.history = append(g.history, output.NewMoveView(move))
	engine.MoveTo(g.board, move.Piece, move.X, move.Y)
	g.toMove = g.toMove.Opposite()
	g.status = engine.Status(g.board, g.toMove)
}

// Subscribe adds a websocket connection to the broadcast list and sends it
// the current state.
func (g *Game) Subscribe(conn *websocket.Conn) error {
	st := g.State()

	g.connMu.Lock()
	defer g.connMu.Unlock()
	g.conns[conn] = struct{}{}
	return writeState(conn, st)
}

// Unsubscribe removes a websocket connection from the broadcast list.
func (g *Game) Unsubscribe(conn *websocket.Conn) {
	g.connMu.Lock()
	defer g.connMu.Unlock()
	delete(g.conns, conn)
}

// Subscribers returns the number of connected websocket clients.
func (g *Game) Subscribers() int {
	g.connMu.Lock()
	defer g.connMu.Unlock()
	return len(g.conns)
}

// broadcast sends the state to every subscriber, dropping connections that
// fail. Writes are serialised by connMu.
func (g *Game) broadcast(st GameState) {
	g.connMu.Lock()
	defer g.connMu.Unlock()
	for conn := range g.conns {
		if err := writeState(conn, st); err != nil {
			delete(g.conns, conn)
		}
	}
}

func writeState(conn *websocket.Conn, st GameState) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return conn.WriteJSON(Message{Type: MessageTypeGameState, Payload: payload})
}
