package chess

import "strings"

// MoveFlags records the special properties of a move.
type MoveFlags uint8

const (
	Capture MoveFlags = 1 << iota
	EnPassantCapture
	CastleKingside
	CastleQueenside
	DoublePawnPush
)

// Has reports whether all bits of f are set.
func (m MoveFlags) Has(f MoveFlags) bool {
	return m&f == f
}

// String lists the set flags, e.g. "capture|ep".
func (m MoveFlags) String() string {
	names := []struct {
		flag MoveFlags
		name string
	}{
		{Capture, "capture"},
		{EnPassantCapture, "ep"},
		{CastleKingside, "O-O"},
		{CastleQueenside, "O-O-O"},
		{DoublePawnPush, "double"},
	}
	var parts []string
	for _, n := range names {
		if m.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "quiet"
	}
	return strings.Join(parts, "|")
}

// Move is a single move relative to the position it was generated from.
// Castling is encoded as the king's two-square move.
type Move struct {
	From Square
	To   Square

	// Promotion is the piece type a pawn becomes, or Empty.
	Promotion Piece

	Flags MoveFlags
}

// IsCapture returns true if this move captures a piece, en passant included.
func (m Move) IsCapture() bool {
	return m.Flags&(Capture|EnPassantCapture) != 0
}

// IsEnPassant returns true if this move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flags.Has(EnPassantCapture)
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Empty
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flags&(CastleKingside|CastleQueenside) != 0
}

// UCI returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(FENLetter(B(m.Promotion)))
	}
	return sb.String()
}

// String returns the coordinate form of the move.
func (m Move) String() string {
	return m.UCI()
}
