package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
	"github.com/lgbarn/chess-puzzle-go/internal/errors"
)

// Line numbers of the plain board configuration format.
const (
	sizeLine  = 1
	whiteLine = 2
	blackLine = 3
)

// BuildBoard creates a board of the given size holding the White pieces
// followed by the Black pieces, in list order. The Colour field of each
// placement is ignored. It fails with ErrBoardFormat unless the size is
// within [2, 26], every piece is on the board, no two pieces share a square
// and each side has exactly one king.
func BuildBoard(size int, white, black []chess.Placement) (*chess.Board, error) {
	if size < chess.MinBoardSize || size > chess.MaxBoardSize {
		return nil, fmt.Errorf("board size %d: %w", size, errors.ErrBoardFormat)
	}

	board := chess.NewBoard(size)
	if err := populate(board, chess.White, white); err != nil {
		return nil, err
	}
	if err := populate(board, chess.Black, black); err != nil {
		return nil, err
	}
	return board, nil
}

// populate adds one side's pieces to the board.
func populate(board *chess.Board, colour chess.Colour, placements []chess.Placement) error {
	kings := 0
	for _, pl := range placements {
		if pl.Kind < 0 || pl.Kind >= chess.NumKinds {
			return fmt.Errorf("%s piece kind %d: %w", colour, pl.Kind, errors.ErrBoardFormat)
		}
		if !board.InBounds(pl.X, pl.Y) {
			return fmt.Errorf("%s %s off a %dx%d board: %w",
				colour, pl.Location(), board.Size(), board.Size(), errors.ErrBoardFormat)
		}
		if board.IsPieceAt(pl.X, pl.Y) {
			return fmt.Errorf("%s %s already occupied: %w", colour, pl.Location(), errors.ErrBoardFormat)
		}
		if pl.Kind == chess.King {
			kings++
		}
		board.Add(chess.NewPiece(pl.Kind, colour, pl.X, pl.Y))
	}
	if kings != 1 {
		return fmt.Errorf("%s has %d kings: %w", colour, kings, errors.ErrBoardFormat)
	}
	return nil
}

// ParsePieceList parses a comma separated list such as "Kd2, Ra1," into
// placements of the given colour. A trailing comma is allowed.
func ParsePieceList(csv string, colour chess.Colour) ([]chess.Placement, error) {
	entries := strings.Split(csv, ",")
	if strings.TrimSpace(entries[len(entries)-1]) == "" {
		entries = entries[:len(entries)-1]
	}

	placements := make([]chess.Placement, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if len(entry) < 3 {
			return nil, fmt.Errorf("piece %q: %w", entry, errors.ErrBoardFormat)
		}

		kind, ok := chess.KindFromLetter(entry[0])
		if !ok {
			return nil, fmt.Errorf("piece letter %q: %w", entry[0], errors.ErrBoardFormat)
		}

		x, y, err := chess.LocationToCoord(entry[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrBoardFormat, err)
		}
		placements = append(placements, chess.Placement{Kind: kind, X: x, Y: y, Colour: colour})
	}
	return placements, nil
}

// ReadBoard reads a board in the plain configuration format: the size on
// the first line, then the White pieces, then the Black pieces. Errors are
// *errors.BoardFormatError values carrying the offending line.
func ReadBoard(r io.Reader) (*chess.Board, error) {
	reader := bufio.NewReader(r)

	sizeText, err := readLine(reader)
	if err != nil {
		return nil, &errors.BoardFormatError{Err: err, Line: sizeLine}
	}
	size, err := parseSize(sizeText)
	if err != nil {
		return nil, &errors.BoardFormatError{Err: err, Line: sizeLine, Text: sizeText}
	}

	board := chess.NewBoard(size)
	sides := []struct {
		colour chess.Colour
		line   int
	}{
		{chess.White, whiteLine},
		{chess.Black, blackLine},
	}
	for _, side := range sides {
		text, err := readLine(reader)
		if err != nil {
			return nil, &errors.BoardFormatError{Err: err, Line: side.line}
		}
		placements, err := ParsePieceList(text, side.colour)
		if err == nil {
			err = populate(board, side.colour, placements)
		}
		if err != nil {
			return nil, &errors.BoardFormatError{Err: err, Line: side.line, Text: text}
		}
	}

	return board, nil
}

// ReadBoardFile reads a board configuration from the named file.
func ReadBoardFile(path string) (*chess.Board, error) {
	file, err := os.Open(path) //nolint:gosec // G304: user chooses the board file
	if err != nil {
		return nil, err
	}
	defer file.Close()

	board, err := ReadBoard(file)
	if err != nil {
		if formatErr, ok := err.(*errors.BoardFormatError); ok {
			formatErr.File = path
		}
		return nil, err
	}
	return board, nil
}

// readLine returns the next line without surrounding white space. A missing
// line reads as empty so that the content checks report it.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(errors.ErrBoardFormat, err.Error())
	}
	return strings.TrimSpace(line), nil
}

// parseSize parses the size line.
func parseSize(text string) (int, error) {
	if text == "" || strings.TrimLeft(text, "0123456789") != "" {
		return 0, fmt.Errorf("size %q: %w", text, errors.ErrBoardFormat)
	}
	size, err := strconv.Atoi(text)
	if err != nil || size < chess.MinBoardSize || size > chess.MaxBoardSize {
		return 0, fmt.Errorf("size %q: %w", text, errors.ErrBoardFormat)
	}
	return size, nil
}

// FormatBoard returns the board in the plain configuration format.
func FormatBoard(board *chess.Board) string {
	var white, black []string
	for _, p := range board.Pieces() {
		entry := string(p.Kind.Letter()) + p.Location()
		if p.Colour == chess.White {
			white = append(white, entry)
		} else {
			black = append(black, entry)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", board.Size())
	sb.WriteString(strings.Join(white, ", "))
	sb.WriteByte('\n')
	sb.WriteString(strings.Join(black, ", "))
	sb.WriteByte('\n')
	return sb.String()
}

// WriteBoard writes the board in the plain configuration format.
func WriteBoard(w io.Writer, board *chess.Board) error {
	_, err := io.WriteString(w, FormatBoard(board))
	return err
}

// SaveBoardFile writes the board to a new file. It refuses to overwrite an
// existing file.
func SaveBoardFile(path string, board *chess.Board) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644) //nolint:gosec // G302: 0644 is appropriate for user-saved boards
	if err != nil {
		return err
	}
	if err := WriteBoard(file, board); err != nil {
		file.Close() //nolint:errcheck,gosec // G104: the write error is reported
		return err
	}
	return file.Close()
}
