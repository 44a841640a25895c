package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Placement puts a coloured piece on a named square, e.g. {"e1", chess.W(chess.King)}.
type Placement struct {
	Square string
	Piece  chess.Piece
}

// BuildPosition returns a position with only the given pieces, no castling
// rights, no en-passant target and fresh clocks. It calls t.Fatal on a bad
// square name.
func BuildPosition(t *testing.T, toMove chess.Colour, placements ...Placement) chess.Position {
	t.Helper()
	pos := chess.Position{
		ToMove:     toMove,
		Castling:   chess.NoCastling,
		EnPassant:  chess.NoSquare,
		MoveNumber: 1,
	}
	for _, pl := range placements {
		sq, ok := chess.ParseSquare(pl.Square)
		if !ok {
			t.Fatalf("bad square %q in placement", pl.Square)
		}
		pos.Board.Place(sq, pl.Piece)
	}
	return pos
}

// MustSquare parses a square name, calling t.Fatal on failure.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("bad square %q", name)
	}
	return sq
}

// MoveStrings renders moves in coordinate notation.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}
