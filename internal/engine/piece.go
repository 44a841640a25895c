package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PseudoLegalMoves returns every move the side to move could make if its own
// king's safety were ignored. Castling is included only when all of its
// conditions hold, since those are not a matter of king exposure after the move.
func PseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 64)
	us := pos.ToMove
	board := &pos.Board

	for _, from := range board.Occupied(us).Squares() {
		if chess.ExtractPiece(board.Occupant(from)) == chess.Pawn {
			moves = appendPawnMoves(moves, pos, from)
			continue
		}
		moves = appendPieceMoves(moves, board, from, us)
	}

	return appendCastlingMoves(moves, pos)
}

// appendPieceMoves adds the moves of a knight, bishop, rook, queen or king:
// every attacked square not held by a piece of its own colour.
func appendPieceMoves(moves []chess.Move, board *chess.Board, from chess.Square, us chess.Colour) []chess.Move {
	targets := AttacksOf(board, from) &^ board.Occupied(us)
	for _, to := range targets.Squares() {
		move := chess.Move{From: from, To: to}
		if !board.IsEmpty(to) {
			move.Flags |= chess.Capture
		}
		moves = append(moves, move)
	}
	return moves
}
