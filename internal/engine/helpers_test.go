package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Well-known test positions.
const (
	kiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	endgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	promotionFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	castlingFEN  = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
)

func mustPosition(t *testing.T, fen string) chess.Position {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error = %v", fen, err)
	}
	return pos
}

func mustResolve(t *testing.T, pos *chess.Position, text string) chess.Move {
	t.Helper()
	move, err := ResolveNotation(pos, text)
	if err != nil {
		t.Fatalf("ResolveNotation(%q) error = %v", text, err)
	}
	return move
}

// playAll resolves and applies each move in turn.
func playAll(t *testing.T, pos chess.Position, moves ...string) chess.Position {
	t.Helper()
	for _, text := range moves {
		pos = ApplyMove(pos, mustResolve(t, &pos, text))
	}
	return pos
}

func hasMove(moves []chess.Move, uci string) bool {
	for _, m := range moves {
		if m.UCI() == uci {
			return true
		}
	}
	return false
}
