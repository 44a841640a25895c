package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingPath describes one of the four castling moves.
type castlingPath struct {
	colour   chess.Colour
	right    chess.CastlingRights
	flag     chess.MoveFlags
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square

	// Squares strictly between king and rook; all must be empty.
	between []chess.Square

	// Squares the king stands on, passes through and lands on; none may be attacked.
	kingPath []chess.Square
}

var castlingPaths = []castlingPath{
	{
		colour: chess.White, right: chess.WhiteKingside, flag: chess.CastleKingside,
		kingFrom: chess.E1, kingTo: chess.G1, rookFrom: chess.H1, rookTo: chess.F1,
		between:  []chess.Square{chess.F1, chess.G1},
		kingPath: []chess.Square{chess.E1, chess.F1, chess.G1},
	},
	{
		colour: chess.White, right: chess.WhiteQueenside, flag: chess.CastleQueenside,
		kingFrom: chess.E1, kingTo: chess.C1, rookFrom: chess.A1, rookTo: chess.D1,
		between:  []chess.Square{chess.B1, chess.C1, chess.D1},
		kingPath: []chess.Square{chess.E1, chess.D1, chess.C1},
	},
	{
		colour: chess.Black, right: chess.BlackKingside, flag: chess.CastleKingside,
		kingFrom: chess.E8, kingTo: chess.G8, rookFrom: chess.H8, rookTo: chess.F8,
		between:  []chess.Square{chess.F8, chess.G8},
		kingPath: []chess.Square{chess.E8, chess.F8, chess.G8},
	},
	{
		colour: chess.Black, right: chess.BlackQueenside, flag: chess.CastleQueenside,
		kingFrom: chess.E8, kingTo: chess.C8, rookFrom: chess.A8, rookTo: chess.D8,
		between:  []chess.Square{chess.B8, chess.C8, chess.D8},
		kingPath: []chess.Square{chess.E8, chess.D8, chess.C8},
	},
}

// appendCastlingMoves adds each castling move whose right is held, whose
// king and rook stand on their original squares, whose intervening squares
// are empty and whose king path is not attacked.
func appendCastlingMoves(moves []chess.Move, pos *chess.Position) []chess.Move {
	us := pos.ToMove
	them := us.Opposite()
	board := &pos.Board

	for i := range castlingPaths {
		path := &castlingPaths[i]
		if path.colour != us || !pos.Castling.Has(path.right) {
			continue
		}
		if board.Occupant(path.kingFrom) != chess.MakeColouredPiece(us, chess.King) ||
			board.Occupant(path.rookFrom) != chess.MakeColouredPiece(us, chess.Rook) {
			continue
		}
		if !allEmpty(board, path.between) || anyAttacked(board, path.kingPath, them) {
			continue
		}
		moves = append(moves, chess.Move{From: path.kingFrom, To: path.kingTo, Flags: path.flag})
	}
	return moves
}

// castlingPathFor returns the path of the castling move flagged by flags.
func castlingPathFor(colour chess.Colour, flags chess.MoveFlags) *castlingPath {
	for i := range castlingPaths {
		path := &castlingPaths[i]
		if path.colour == colour && flags.Has(path.flag) {
			return path
		}
	}
	return nil
}

// rookCastlingRight returns the castling right tied to a rook's original
// square, or NoCastling for any other square.
func rookCastlingRight(sq chess.Square) chess.CastlingRights {
	for i := range castlingPaths {
		if castlingPaths[i].rookFrom == sq {
			return castlingPaths[i].right
		}
	}
	return chess.NoCastling
}

// updateCastlingRights removes castling rights when a king moves, or when a
// rook moves from or is captured on its original square.
func updateCastlingRights(rights chess.CastlingRights, mover chess.Piece, from, to chess.Square) chess.CastlingRights {
	if chess.ExtractPiece(mover) == chess.King {
		colour := chess.ExtractColour(mover)
		rights = rights.Without(chess.KingsideRight(colour) | chess.QueensideRight(colour))
	}
	return rights.Without(rookCastlingRight(from) | rookCastlingRight(to))
}

func allEmpty(board *chess.Board, squares []chess.Square) bool {
	for _, sq := range squares {
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

func anyAttacked(board *chess.Board, squares []chess.Square, by chess.Colour) bool {
	for _, sq := range squares {
		if IsSquareAttacked(board, sq, by) {
			return true
		}
	}
	return false
}
