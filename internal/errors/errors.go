// Package errors provides sentinel errors and error types for the chess puzzle engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidLocation indicates a malformed square such as "D3" or "a-9".
	ErrInvalidLocation = errors.New("invalid location")

	// ErrBoardFormat indicates a board configuration that breaks the file rules.
	ErrBoardFormat = errors.New("invalid board configuration")

	// ErrNoKingFound indicates a side without a king.
	ErrNoKingFound = errors.New("no king found")

	// ErrMultipleKings indicates a side with more than one king.
	ErrMultipleKings = errors.New("multiple kings found")

	// ErrIllegalMove indicates a move that violates the rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoLegalMoves indicates a side that cannot move at all.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrGameNotFound indicates an unknown game identifier.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameOver indicates a move attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn indicates a move by the side that is not to move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrTooManyGames indicates the server holds as many games as it may.
	ErrTooManyGames = errors.New("too many games")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// BoardFormatError represents a board configuration error with line context.
// Line is 1-based; 1 is the size line, 2 the White pieces, 3 the Black pieces.
type BoardFormatError struct {
	Err  error  // The underlying error
	File string // Source file name (if known)
	Line int    // Line number (0 if not applicable)
	Text string // The offending text
}

// Error returns a formatted error message with location and context.
func (e *BoardFormatError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "board format error"
}

// Unwrap returns the underlying error.
func (e *BoardFormatError) Unwrap() error {
	return e.Err
}

// GameError wraps errors with game context, including game identifier,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Game identifier (if known)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
