package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
)

// BoardWriter is the interface for writing captioned boards to output.
type BoardWriter interface {
	// WriteBoard writes one board under a caption line.
	WriteBoard(caption string, board *chess.Board, toMove chess.Colour) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// TextWriter writes the caption, then the unicode board and a blank line.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteBoard writes a board in unicode form.
func (tw *TextWriter) WriteBoard(caption string, board *chess.Board, _ chess.Colour) error {
	_, err := fmt.Fprintf(tw.w, "%s\n%s\n\n", caption, Unicode(board))
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONBoard is one captioned board in JSON output.
type JSONBoard struct {
	Caption string    `json:"caption"`
	Board   BoardView `json:"board"`
}

// JSONOutput holds multiple boards for array output.
type JSONOutput struct {
	Boards []JSONBoard `json:"boards"`
}

// JSONWriter writes boards in JSON format.
// It buffers boards and writes them as one document on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	boards []JSONBoard
	single bool // If true, write each board immediately instead of batching
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each board immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteBoard buffers a board for JSON output (or writes it immediately in single mode).
func (jw *JSONWriter) WriteBoard(caption string, board *chess.Board, toMove chess.Colour) error {
	entry := JSONBoard{Caption: caption, Board: NewBoardView(board, toMove)}
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(entry)
	}
	jw.boards = append(jw.boards, entry)
	return nil
}

// Flush writes all buffered boards as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.boards) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Boards: jw.boards})

	jw.boards = jw.boards[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
