// Package hashing provides position hashing and duplicate detection for
// puzzle boards.
package hashing

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/lgbarn/chess-puzzle-go/internal/chess"
)

// PositionHash returns a hash of the position: board size, side to move
// and every piece with its square. The order pieces were added in does not
// matter.
func PositionHash(board *chess.Board, toMove chess.Colour) uint64 {
	h := fnv.New64a()
	var buf [4]byte

	put := func(v int) {
		binary.LittleEndian.PutUint32(buf[:], uint32(v)) //nolint:gosec // G115: board values are small
		h.Write(buf[:])                                   //nolint:errcheck,gosec // hash writes never fail
	}

	put(board.Size())
	put(int(toMove))
	for x := 1; x <= board.Size(); x++ {
		for y := 1; y <= board.Size(); y++ {
			p := board.PieceAt(x, y)
			if p == nil {
				continue
			}
			put(x<<8 | y)
			put(int(p.Kind)<<1 | int(p.Colour))
		}
	}
	return h.Sum64()
}

// PositionSignature identifies one recorded position.
type PositionSignature struct {
	// Hash is the PositionHash of the position
	Hash uint64
	// Pieces is the number of pieces on the board
	Pieces int
	// Plies is the number of half-moves played to reach it
	Plies int
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by hash
	hashTable map[uint64][]PositionSignature
	// useExactMatch also requires the same ply count
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd checks if a position has been seen and records it.
// Returns true if the position is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, toMove chess.Colour, plies int) bool {
	if board == nil {
		return false
	}

	sig := PositionSignature{
		Hash:   PositionHash(board, toMove),
		Pieces: board.Len(),
		Plies:  plies,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// signaturesMatch checks if two signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.Pieces != b.Pieces {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
}
