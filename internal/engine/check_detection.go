package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// AttacksOf returns the squares attacked by the piece standing on sq,
// ignoring whose turn it is and whether its own king is exposed.
// Pawn pushes are not attacks. Sliding rays stop at, and include, the first
// occupied square. An empty square attacks nothing.
func AttacksOf(board *chess.Board, sq chess.Square) chess.SquareSet {
	piece := board.Occupant(sq)
	if piece == chess.Empty {
		return 0
	}

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		dir := chess.ColourOffset(chess.ExtractColour(piece))
		return offsetAttacks(sq, [][2]int{{-1, dir}, {1, dir}})
	case chess.Knight:
		return offsetAttacks(sq, knightOffsets)
	case chess.King:
		return offsetAttacks(sq, kingOffsets)
	case chess.Bishop:
		return rayAttacks(board, sq, diagonalDirs)
	case chess.Rook:
		return rayAttacks(board, sq, straightDirs)
	case chess.Queen:
		return rayAttacks(board, sq, diagonalDirs) | rayAttacks(board, sq, straightDirs)
	}
	return 0
}

// offsetAttacks collects the on-board squares at fixed offsets from sq.
func offsetAttacks(sq chess.Square, offsets [][2]int) chess.SquareSet {
	var set chess.SquareSet
	for _, off := range offsets {
		if to := sq.Offset(off[0], off[1]); to != chess.NoSquare {
			set = set.Add(to)
		}
	}
	return set
}

// rayAttacks casts rays from sq, each ending at the first occupied square.
func rayAttacks(board *chess.Board, sq chess.Square, dirs [][2]int) chess.SquareSet {
	var set chess.SquareSet
	for _, dir := range dirs {
		for to := sq.Offset(dir[0], dir[1]); to != chess.NoSquare; to = to.Offset(dir[0], dir[1]) {
			set = set.Add(to)
			if !board.IsEmpty(to) {
				break // Blocked
			}
		}
	}
	return set
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if king == chess.NoSquare {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// It looks outward from the square for each kind of attacker rather than
// generating every enemy piece's attacks.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: the attacking pawn stands one rank behind the
	// square from its own point of view.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	if board.Occupant(sq.Offset(-1, pawnDir)) == pawn || board.Occupant(sq.Offset(1, pawnDir)) == pawn {
		return true
	}

	// Check knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.Occupant(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	// Check king attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.Occupant(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	// Check sliding pieces (bishop, rook, queen)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if slidingAttacker(board, sq, diagonalDirs, chess.MakeColouredPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return slidingAttacker(board, sq, straightDirs, chess.MakeColouredPiece(byColour, chess.Rook), queen)
}

// slidingAttacker reports whether the first piece met along any ray is one
// of the two given attackers.
func slidingAttacker(board *chess.Board, sq chess.Square, dirs [][2]int, attacker, queen chess.Piece) bool {
	for _, dir := range dirs {
		for s := sq.Offset(dir[0], dir[1]); s != chess.NoSquare; s = s.Offset(dir[0], dir[1]) {
			piece := board.Occupant(s)
			if piece == chess.Empty {
				continue
			}
			if piece == attacker || piece == queen {
				return true
			}
			break // Blocked
		}
	}
	return false
}
