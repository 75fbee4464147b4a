package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/chess-puzzle-go/internal/errors"
)

// LocationToCoord converts a location such as "b5" to 1-based coordinates (2, 5).
// The column must be a lower-case letter and the row a positive decimal
// number. No bounds checking against a board size is done; callers
// check the result against the board they use.
func LocationToCoord(loc string) (int, int, error) {
	if len(loc) < 2 {
		return 0, 0, fmt.Errorf("%q: %w", loc, errors.ErrInvalidLocation)
	}

	letter := loc[0]
	digits := loc[1:]
	if letter < 'a' || letter > 'z' || !isDigits(digits) {
		return 0, 0, fmt.Errorf("%q: %w", loc, errors.ErrInvalidLocation)
	}

	y, err := strconv.Atoi(digits)
	if err != nil || y < 1 {
		return 0, 0, fmt.Errorf("%q: %w", loc, errors.ErrInvalidLocation)
	}
	return int(letter-ColBase) + 1, y, nil
}

// CoordToLocation converts 1-based coordinates to a location string.
// It assumes the coordinates are valid, e.g. (3, 16) -> "c16".
func CoordToLocation(x, y int) string {
	return string(rune(ColBase+x-1)) + strconv.Itoa(y)
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
