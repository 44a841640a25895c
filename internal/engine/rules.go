package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// FiftyMoveLimit is the halfmove clock value at which the fifty-move rule
// applies: 100 half-moves, fifty by each side.
const FiftyMoveLimit = 100

// RepetitionLimit is the number of occurrences of a position that draws.
const RepetitionLimit = 3

// IsFiftyMoveRule returns true if the fifty-move rule applies.
func IsFiftyMoveRule(pos *chess.Position) bool {
	return pos.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if neither side has mating material.
// Ignoring kings, no pawn, rook or queen may remain and the minor pieces
// must be one of:
//   - none (K vs K)
//   - a single knight (K+N vs K)
//   - bishops only, all standing on squares of one colour, on either or both
//     sides (K+B vs K, K+B vs K+B same colour)
//
// K+N+N vs K, K+N vs K+N, K+N vs K+B and bishops on opposite colours are not
// counted as draws.
func HasInsufficientMaterial(board *chess.Board) bool {
	var knights, bishops int
	var lightBishops, darkBishops int

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := board.Occupant(sq)
		if piece == chess.Empty {
			continue
		}

		switch chess.ExtractPiece(piece) {
		case chess.King:
			// Kings don't count for material
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishops++
			if sq.IsLight() {
				lightBishops++
			} else {
				darkBishops++
			}
		}
	}

	switch {
	case knights == 0 && bishops == 0:
		return true
	case knights == 1 && bishops == 0:
		return true
	case knights == 0:
		return lightBishops == 0 || darkBishops == 0
	default:
		return false
	}
}
