// Package hashing provides position hashing and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/rookworks-go/internal/chess"
)

// DuplicateDetector remembers the final positions of games it has seen.
// Two games are duplicates when they end in the same position after the
// same number of plies.
type DuplicateDetector struct {
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal ply counts.
	useExactMatch  bool
	maxCapacity    int // 0 means unlimited
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
	// WeakHash is a second, independent hash of the placement
	WeakHash uint64
}

// NewDuplicateDetector creates a new duplicate detector. maxCapacity of 0
// means unlimited; once full, new games are still checked but not stored.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a game of plies half-moves ending at
// board.
func Signature(plies int, board *chess.Board) GameSignature {
	return GameSignature{
		Hash:     GenerateZobristHash(board),
		PlyCount: plies,
		WeakHash: WeakHash(board),
	}
}

// CheckAndAdd checks if a game is a duplicate and records it otherwise.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(plies int, board *chess.Board) bool {
	if board == nil {
		return false
	}
	sig := Signature(plies, board)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	}
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.UniqueCount() >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
