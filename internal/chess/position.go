package chess

// CastlingRights holds the four independent castling availabilities.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// KingsideRight returns the kingside castling right of the colour.
func KingsideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside castling right of the colour.
func QueensideRight(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Has reports whether every right in r is available.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns the rights with r cleared. Rights are never re-granted.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (c CastlingRights) String() string {
	var buf []byte
	if c.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if c.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if c.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if c.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// Position is the complete state needed to continue a game from one ply.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// EnPassant is the square skipped by a double pawn push on the previous
	// ply, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, starting at 1 and incremented after Black moves.
	MoveNumber uint
}

// NewPosition returns the standard starting position.
func NewPosition() Position {
	pos := Position{
		ToMove:     White,
		Castling:   AllCastling,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
	pos.Board.SetupInitialPosition()
	return pos
}

// PositionSignature is the part of a position compared for repetition:
// placement, side to move, castling rights and en-passant target, without
// the move clocks.
type PositionSignature struct {
	Board     Board
	ToMove    Colour
	Castling  CastlingRights
	EnPassant Square
}

// Signature returns the repetition signature of the position.
func (p *Position) Signature() PositionSignature {
	return PositionSignature{
		Board:     p.Board,
		ToMove:    p.ToMove,
		Castling:  p.Castling,
		EnPassant: p.EnPassant,
	}
}
