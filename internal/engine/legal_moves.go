package engine

import (
	"cmp"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// LegalMoves returns the legal moves of the side to move, ordered by origin
// square, then destination, then promotion piece.
func LegalMoves(pos *chess.Position) []chess.Move {
	moves := generateLegalMoves(pos)
	slices.SortFunc(moves, CompareMoves)
	return moves
}

// CompareMoves orders moves by origin, destination and promotion piece.
func CompareMoves(a, b chess.Move) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	if c := cmp.Compare(a.To, b.To); c != 0 {
		return c
	}
	return cmp.Compare(a.Promotion, b.Promotion)
}

// generateLegalMoves filters the pseudo-legal moves in generation order.
func generateLegalMoves(pos *chess.Position) []chess.Move {
	pseudo := PseudoLegalMoves(pos)
	legal := pseudo[:0]
	for _, move := range pseudo {
		if leavesKingSafe(pos, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	for _, move := range PseudoLegalMoves(pos) {
		if leavesKingSafe(pos, move) {
			return true
		}
	}
	return false
}

// IsLegal reports whether move, matched on origin, destination and
// promotion, is legal in pos. It returns the generated move, whose flags
// are authoritative.
func IsLegal(pos *chess.Position, move chess.Move) (chess.Move, bool) {
	for _, legal := range generateLegalMoves(pos) {
		if SameMove(legal, move) {
			return legal, true
		}
	}
	return chess.Move{}, false
}

// SameMove reports whether two moves have the same origin, destination and
// promotion piece. Flags are derived data and are not compared.
func SameMove(a, b chess.Move) bool {
	return a.From == b.From && a.To == b.To && a.Promotion == b.Promotion
}

// leavesKingSafe plays the move on a copy of the position and checks
// whether the mover's king is attacked afterwards.
func leavesKingSafe(pos *chess.Position, move chess.Move) bool {
	next := ApplyMove(*pos, move)
	return !IsInCheck(&next.Board, pos.ToMove)
}
