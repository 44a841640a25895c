package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsCheck returns true if the side to move is in check.
func IsCheck(pos *chess.Position) bool {
	return IsInCheck(&pos.Board, pos.ToMove)
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsCheck(pos) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsCheck(pos) && !HasLegalMoves(pos)
}
