package chess

import (
	"errors"
	"testing"

	puzzleerrors "github.com/lgbarn/chess-puzzle-go/internal/errors"
)

func TestLocationToCoord(t *testing.T) {
	tests := []struct {
		loc   string
		wantX int
		wantY int
	}{
		{"a1", 1, 1},
		{"e2", 5, 2},
		{"b5", 2, 5},
		{"c7", 3, 7},
		{"g12", 7, 12},
		{"z26", 26, 26},
	}

	for _, tt := range tests {
		t.Run(tt.loc, func(t *testing.T) {
			x, y, err := LocationToCoord(tt.loc)
			if err != nil {
				t.Fatalf("LocationToCoord(%q) error: %v", tt.loc, err)
			}
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("LocationToCoord(%q) = (%d, %d); want (%d, %d)", tt.loc, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestLocationToCoordErrors(t *testing.T) {
	for _, loc := range []string{"bb", "D3", "ab95", "a-9", "a0", "a", "", "a+1", "{1", "a1.5"} {
		t.Run(loc, func(t *testing.T) {
			_, _, err := LocationToCoord(loc)
			if !errors.Is(err, puzzleerrors.ErrInvalidLocation) {
				t.Errorf("LocationToCoord(%q) error = %v; want ErrInvalidLocation", loc, err)
			}
		})
	}
}

func TestCoordToLocation(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{1, 5, "a5"},
		{26, 1, "z1"},
		{3, 5, "c5"},
		{5, 15, "e15"},
		{2, 4, "b4"},
	}
	for _, tt := range tests {
		if got := CoordToLocation(tt.x, tt.y); got != tt.want {
			t.Errorf("CoordToLocation(%d, %d) = %q; want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLocationRoundTrip(t *testing.T) {
	for x := 1; x <= MaxBoardSize; x++ {
		for y := 1; y <= MaxBoardSize; y++ {
			loc := CoordToLocation(x, y)
			gx, gy, err := LocationToCoord(loc)
			if err != nil {
				t.Fatalf("LocationToCoord(%q) error: %v", loc, err)
			}
			if got := CoordToLocation(gx, gy); got != loc {
				t.Errorf("round trip %q -> (%d, %d) -> %q", loc, gx, gy, got)
			}
		}
	}
}
