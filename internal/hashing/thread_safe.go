package hashing

import (
	"sync"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
)

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
func NewThreadSafeDuplicateDetector(exactMatch bool) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(exactMatch),
	}
}

// CheckAndAdd atomically checks if a position is a duplicate and records it.
// The caller must not change board during the call.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(board *chess.Board, toMove chess.Colour, plies int) bool {
	if board == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(board, toMove, plies)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of unique positions.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}
