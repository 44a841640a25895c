package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DuplicateDetector tracks seen positions. Positions are bucketed by Zobrist
// key and compared on their full signature, so key collisions never cause
// false duplicates.
type DuplicateDetector struct {
	// hashTable maps Zobrist keys to the signatures seen under that key
	hashTable map[uint64][]chess.PositionSignature
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	uniqueCount    int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]chess.PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether the position was seen before and records it
// if not. Once the detector is full, new positions are checked but not stored.
func (d *DuplicateDetector) CheckAndAdd(pos *chess.Position) bool {
	hash := GenerateZobristHash(pos)
	sig := pos.Signature()

	for _, existing := range d.hashTable[hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[hash] = append(d.hashTable[hash], sig)
	d.uniqueCount++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]chess.PositionSignature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}

// repetitionEntry counts occurrences of one signature.
type repetitionEntry struct {
	sig   chess.PositionSignature
	count int
}

// RepetitionTable counts how often each position signature has occurred in
// a game. Entries are bucketed by Zobrist key like DuplicateDetector.
type RepetitionTable struct {
	buckets map[uint64][]repetitionEntry
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{buckets: make(map[uint64][]repetitionEntry)}
}

// Add records one more occurrence of the position and returns its new count.
func (r *RepetitionTable) Add(pos *chess.Position) int {
	hash := GenerateZobristHash(pos)
	sig := pos.Signature()

	bucket := r.buckets[hash]
	for i := range bucket {
		if bucket[i].sig == sig {
			bucket[i].count++
			return bucket[i].count
		}
	}
	r.buckets[hash] = append(bucket, repetitionEntry{sig: sig, count: 1})
	return 1
}

// Remove withdraws one occurrence of the position, as when a move is taken back.
func (r *RepetitionTable) Remove(pos *chess.Position) {
	hash := GenerateZobristHash(pos)
	sig := pos.Signature()

	bucket := r.buckets[hash]
	for i := range bucket {
		if bucket[i].sig != sig {
			continue
		}
		bucket[i].count--
		if bucket[i].count == 0 {
			bucket = append(bucket[:i], bucket[i+1:]...)
		}
		if len(bucket) == 0 {
			delete(r.buckets, hash)
		} else {
			r.buckets[hash] = bucket
		}
		return
	}
}

// Count returns how many times the position has been recorded.
func (r *RepetitionTable) Count(pos *chess.Position) int {
	sig := pos.Signature()
	for _, entry := range r.buckets[GenerateZobristHash(pos)] {
		if entry.sig == sig {
			return entry.count
		}
	}
	return 0
}
