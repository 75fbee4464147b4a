// Package game runs puzzle games: the interactive text session and random
// self-play.
package game

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/config"
	"github.com/lgbarn/chess-puzzle-go/internal/engine"
	"github.com/lgbarn/chess-puzzle-go/internal/output"
)

// CmdQuit ends the session when typed at any prompt.
const CmdQuit = "QUIT"

// Prompts and messages of the text session.
const (
	promptBoardFile = "\nFile name for initial configuration:\n"
	promptSaveFile  = "\nFile name to store the configuration:\n"
	promptMove      = "Next move of %s:\n"

	errBadFile     = "\nThis is not a valid file. "
	errBadMove     = "\nThis is not a valid move. "
	errBadFilename = "\nNot a valid filename. "

	msgInitial  = "The initial configuration is:"
	msgAfter    = "The configuration after %s's move is:"
	msgComputer = "Next move of %s is %s. The configuration after %s's move is:"
	msgSaved    = "The game configuration saved."
	msgWins     = "Game over. %s wins."
	msgNoMoves  = "%s has no moves. Game over."
)

// Session is one interactive game over a text stream. White moves first.
// When playing against the computer, the computer answers for
// cfg.Game.ComputerSide with a random legal move.
type Session struct {
	cfg    *config.Config
	in     *bufio.Reader
	out    io.Writer
	boards output.BoardWriter
	rng    *rand.Rand

	board  *chess.Board
	toMove chess.Colour
	plies  int
}

// NewSession creates a session reading commands from in and writing the
// game to out. The computer's random source is seeded from cfg.Game.Seed.
func NewSession(cfg *config.Config, in io.Reader, out io.Writer) *Session {
	return &Session{
		cfg:    cfg,
		in:     bufio.NewReader(in),
		out:    out,
		boards: output.NewTextWriter(out),
		rng:    cfg.Game.Rand(),
		toMove: chess.White,
	}
}

// Board returns the current board, or nil before one is loaded.
func (s *Session) Board() *chess.Board {
	return s.board
}

// ToMove returns the side to move.
func (s *Session) ToMove() chess.Colour {
	return s.toMove
}

// Run plays the session until the game ends, the user quits or the input
// runs out. End of input quits without saving. Only write errors are
// returned.
func (s *Session) Run() error {
	board, err := s.loadBoard()
	if err != nil || board == nil {
		return err
	}
	s.board = board

	if err := s.print("\n"); err != nil {
		return err
	}
	if err := s.boards.WriteBoard(msgInitial, s.board, s.toMove); err != nil {
		return err
	}

	for {
		over, err := s.checkTermination()
		if over || err != nil {
			return err
		}

		if s.cfg.Game.PlayAgainstComputer && s.toMove == s.cfg.Game.ComputerSide {
			if err := s.computerMove(); err != nil {
				return err
			}
			continue
		}

		move, quit, eof, err := s.promptMove()
		if err != nil || eof {
			return err
		}
		if quit {
			return s.quit()
		}

		s.apply(move)
		if err := s.boards.WriteBoard(fmt.Sprintf(msgAfter, move.Piece.Colour), s.board, s.toMove); err != nil {
			return err
		}
	}
}

// loadBoard returns the configured board file, or prompts until a valid
// file name or QUIT is given. A nil board means the user quit.
func (s *Session) loadBoard() (*chess.Board, error) {
	if path := s.cfg.Game.BoardFile; path != "" {
		return engine.ReadBoardFile(path)
	}

	errMsg := ""
	for {
		line, ok, err := s.prompt(errMsg + promptBoardFile)
		if err != nil || !ok || line == CmdQuit {
			return nil, err
		}
		board, err := engine.ReadBoardFile(line)
		if err == nil {
			s.cfg.Logf(2, "loaded %s: %dx%d, %d pieces\n", line, board.Size(), board.Size(), board.Len())
			return board, nil
		}
		s.cfg.Logf(2, "%v\n", err)
		errMsg = errBadFile
	}
}

// promptMove asks the side to move for a move until a legal one is given.
// The first flag reports QUIT and the second end of input; the move is valid
// only when both are false.
func (s *Session) promptMove() (chess.Move, bool, bool, error) {
	errMsg := ""
	for {
		line, ok, err := s.prompt(errMsg + fmt.Sprintf(promptMove, s.toMove))
		if err != nil {
			return chess.Move{}, false, false, err
		}
		if !ok {
			return chess.Move{}, false, true, nil
		}
		if line == CmdQuit {
			return chess.Move{}, true, false, nil
		}
		move, err := engine.ParseMove(line, s.toMove, s.board)
		if err == nil {
			return move, false, false, nil
		}
		s.cfg.Logf(2, "%v\n", err)
		errMsg = errBadMove
	}
}

// quit asks for a file name until the board is saved.
func (s *Session) quit() error {
	errMsg := ""
	for {
		line, ok, err := s.prompt(errMsg + promptSaveFile)
		if err != nil || !ok {
			return err
		}
		if err := engine.SaveBoardFile(line, s.board); err != nil {
			s.cfg.Logf(2, "%v\n", err)
			errMsg = errBadFilename
			continue
		}
		return s.print(msgSaved + "\n")
	}
}

// computerMove plays a random legal move for the side to move.
func (s *Session) computerMove() error {
	move, err := engine.ChooseMove(s.board, s.toMove, s.rng)
	if err != nil {
		return err
	}
	side := s.toMove
	text := move.Text()

	s.apply(move)
	return s.boards.WriteBoard(fmt.Sprintf(msgComputer, side, text, side), s.board, s.toMove)
}

// apply plays a validated move and passes the turn.
func (s *Session) apply(move chess.Move) {
	s.cfg.Logf(2, "ply %d: %s %s\n", s.plies+1, s.toMove, move.Text())
	engine.MoveTo(s.board, move.Piece, move.X, move.Y)
	s.toMove = s.toMove.Opposite()
	s.plies++
}

// checkTermination reports a finished game for the side to move.
func (s *Session) checkTermination() (bool, error) {
	switch engine.Status(s.board, s.toMove) {
	case engine.Checkmate:
		return true, s.print(fmt.Sprintf(msgWins, s.toMove.Opposite()) + "\n")
	case engine.Stalemate:
		return true, s.print(fmt.Sprintf(msgNoMoves, s.toMove) + "\n")
	}
	return false, nil
}

// prompt writes text and reads one line. ok is false at end of input.
func (s *Session) prompt(text string) (string, bool, error) {
	if err := s.print(text); err != nil {
		return "", false, err
	}
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", false, nil
		}
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

func (s *Session) print(text string) error {
	_, err := io.WriteString(s.out, text)
	return err
}
