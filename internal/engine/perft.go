package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Perft counts the legal move sequences of the given depth from pos.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := generateLegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		next := ApplyMove(*pos, move)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs perft to depth-1 below each legal root move, in LegalMoves order.
func Divide(pos *chess.Position, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := LegalMoves(pos)
	entries := make([]DivideEntry, 0, len(moves))
	for _, move := range moves {
		next := ApplyMove(*pos, move)
		entries = append(entries, DivideEntry{Move: move, Nodes: Perft(&next, depth-1)})
	}
	return entries
}
