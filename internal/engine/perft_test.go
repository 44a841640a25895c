package engine

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
		slow  bool
	}{
		{"initial", InitialFEN, 0, 1, false},
		{"initial", InitialFEN, 1, 20, false},
		{"initial", InitialFEN, 2, 400, false},
		{"initial", InitialFEN, 3, 8902, false},
		{"initial", InitialFEN, 4, 197281, true},
		{"kiwipete", kiwipeteFEN, 1, 48, false},
		{"kiwipete", kiwipeteFEN, 2, 2039, false},
		{"kiwipete", kiwipeteFEN, 3, 97862, true},
		{"rook endgame", endgameFEN, 1, 14, false},
		{"rook endgame", endgameFEN, 2, 191, false},
		{"rook endgame", endgameFEN, 3, 2812, false},
		{"rook endgame", endgameFEN, 4, 43238, true},
		{"promotions", promotionFEN, 1, 6, false},
		{"promotions", promotionFEN, 2, 264, false},
		{"promotions", promotionFEN, 3, 9467, false},
		{"discovered checks", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 1, 44, false},
		{"discovered checks", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2, 1486, false},
		{"discovered checks", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 3, 62379, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/depth%d", tt.name, tt.depth), func(t *testing.T) {
			if tt.slow && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			pos := mustPosition(t, tt.fen)
			testutil.AssertEqual(t, Perft(&pos, tt.depth), tt.want)
		})
	}
}

func TestPerft_LeavesPositionUnchanged(t *testing.T) {
	pos := mustPosition(t, kiwipeteFEN)
	before := pos
	Perft(&pos, 2)
	testutil.AssertEqual(t, pos, before)
}

func TestDivide(t *testing.T) {
	pos := chess.NewPosition()
	entries := Divide(&pos, 2)
	testutil.AssertEqual(t, len(entries), 20)

	var total uint64
	for _, e := range entries {
		testutil.AssertEqual(t, e.Nodes, uint64(20), e.Move.UCI())
		total += e.Nodes
	}
	testutil.AssertEqual(t, total, uint64(400))
	testutil.AssertEqual(t, entries[0].Move.UCI(), "b1a3")
}

func TestDivide_SumsToPerft(t *testing.T) {
	pos := mustPosition(t, kiwipeteFEN)
	var total uint64
	for _, e := range Divide(&pos, 3) {
		total += e.Nodes
	}
	testutil.AssertEqual(t, total, Perft(&pos, 3))
}

func TestDivide_ZeroDepth(t *testing.T) {
	pos := chess.NewPosition()
	testutil.AssertEqual(t, len(Divide(&pos, 0)), 0)
}
