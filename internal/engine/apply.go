package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ApplyMove returns the position reached by playing move in pos. The input
// position is not modified.
//
// The move must come from LegalMoves or PseudoLegalMoves for the same
// position: ApplyMove trusts its flags and does not re-check legality.
func ApplyMove(pos chess.Position, move chess.Move) chess.Position {
	next := pos
	board := &next.Board
	colour := pos.ToMove

	piece := board.Remove(move.From)
	captured := board.Remove(move.To)

	switch {
	case move.IsCastle():
		applyCastle(board, colour, move.Flags)
	case move.IsEnPassant():
		// The captured pawn is beside the mover, not on the target square.
		captured = board.Remove(enPassantVictim(move.To, colour))
		board.Place(move.To, piece)
	case move.IsPromotion():
		board.Place(move.To, chess.MakeColouredPiece(colour, move.Promotion))
	default:
		board.Place(move.To, piece)
	}

	next.Castling = updateCastlingRights(pos.Castling, piece, move.From, move.To)

	next.EnPassant = chess.NoSquare
	if move.Flags.Has(chess.DoublePawnPush) {
		next.EnPassant = move.From.Offset(0, chess.ColourOffset(colour))
	}

	if chess.ExtractPiece(piece) == chess.Pawn || captured != chess.Empty {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}

	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()

	return next
}

// applyCastle places king and rook on their castled squares. The king has
// already been lifted from its original square.
func applyCastle(board *chess.Board, colour chess.Colour, flags chess.MoveFlags) {
	path := castlingPathFor(colour, flags)
	if path == nil {
		return
	}
	rook := board.Remove(path.rookFrom)
	board.Place(path.kingTo, chess.MakeColouredPiece(colour, chess.King))
	board.Place(path.rookTo, rook)
}
