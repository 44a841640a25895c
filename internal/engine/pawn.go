package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// promotionPieces lists promotion choices, strongest first.
var promotionPieces = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// appendPawnMoves adds the pushes and captures of the pawn on from,
// including en passant and every promotion choice.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, from chess.Square) []chess.Move {
	board := &pos.Board
	colour := pos.ToMove
	dir := chess.ColourOffset(colour)

	// Forward pushes
	one := from.Offset(0, dir)
	if one != chess.NoSquare && board.IsEmpty(one) {
		moves = appendPawnMove(moves, chess.Move{From: from, To: one}, colour)

		// Double push from starting rank
		if from.Rank() == chess.PawnStartRank(colour) {
			two := one.Offset(0, dir)
			if board.IsEmpty(two) {
				moves = append(moves, chess.Move{From: from, To: two, Flags: chess.DoublePawnPush})
			}
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		to := from.Offset(df, dir)
		if to == chess.NoSquare {
			continue
		}
		target := board.Occupant(to)
		if target != chess.Empty {
			if chess.ExtractColour(target) != colour {
				moves = appendPawnMove(moves, chess.Move{From: from, To: to, Flags: chess.Capture}, colour)
			}
			continue
		}
		if isEnPassantTarget(pos, to) {
			moves = append(moves, chess.Move{From: from, To: to, Flags: chess.EnPassantCapture})
		}
	}
	return moves
}

// appendPawnMove adds a pawn move, expanding it into one move per promotion
// piece when it reaches the last rank.
func appendPawnMove(moves []chess.Move, move chess.Move, colour chess.Colour) []chess.Move {
	if move.To.Rank() != chess.PromotionRank(colour) {
		return append(moves, move)
	}
	for _, piece := range promotionPieces {
		promotion := move
		promotion.Promotion = piece
		moves = append(moves, promotion)
	}
	return moves
}

// isEnPassantTarget reports whether a pawn of the side to move may capture
// en passant onto to: it must be the position's target square, with the
// enemy pawn that skipped it standing just beyond.
func isEnPassantTarget(pos *chess.Position, to chess.Square) bool {
	if pos.EnPassant == chess.NoSquare || to != pos.EnPassant {
		return false
	}
	return pos.Board.Occupant(enPassantVictim(to, pos.ToMove)) == chess.MakeColouredPiece(pos.ToMove.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn captured when a pawn of the
// given colour lands on the en-passant target.
func enPassantVictim(target chess.Square, capturer chess.Colour) chess.Square {
	return target.Offset(0, -chess.ColourOffset(capturer))
}
