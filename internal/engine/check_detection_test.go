package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func squareNames(set chess.SquareSet) []string {
	var names []string
	for _, sq := range set.Squares() {
		names = append(names, sq.String())
	}
	return names
}

func TestAttacksOf(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{
			name:   "knight in the corner",
			fen:    "4k3/8/8/8/8/8/8/N3K3 w - - 0 1",
			square: "a1",
			want:   []string{"c2", "b3"},
		},
		{
			name:   "white pawn attacks diagonals only",
			fen:    "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"d3", "f3"},
		},
		{
			name:   "black pawn on the edge",
			fen:    "4k3/7p/8/8/8/8/8/4K3 w - - 0 1",
			square: "h7",
			want:   []string{"g6"},
		},
		{
			name:   "rook rays include blockers of either colour",
			fen:    "4k3/8/3p4/8/3R1N2/8/8/4K3 w - - 0 1",
			square: "d4",
			want:   []string{"d1", "d2", "d3", "a4", "b4", "c4", "e4", "f4", "d5", "d6"},
		},
		{
			name:   "king",
			fen:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			square: "e1",
			want:   []string{"d1", "f1", "d2", "e2", "f2"},
		},
		{
			name:   "empty square",
			fen:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			square: "d4",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			got := AttacksOf(&pos.Board, testutil.MustSquare(t, tt.square))
			testutil.AssertEqual(t, squareNames(got), tt.want)
		})
	}
}

func TestIsSquareAttacked(t *testing.T) {
	start := chess.NewPosition()
	tests := []struct {
		square string
		by     chess.Colour
		want   bool
	}{
		{"f3", chess.White, true},  // g1 knight, e2 and g2 pawns
		{"e4", chess.White, false}, // nothing reaches the fourth rank
		{"e6", chess.Black, true},  // d7 and f7 pawns
		{"e1", chess.Black, false},
		{"d2", chess.White, true}, // defended by own pieces
	}

	for _, tt := range tests {
		t.Run(tt.square+" by "+tt.by.String(), func(t *testing.T) {
			got := IsSquareAttacked(&start.Board, testutil.MustSquare(t, tt.square), tt.by)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestIsSquareAttacked_BlockedSlider(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/q7/8/2P5/4K3 w - - 0 1")
	// a4-b3-c2-d1
	testutil.AssertFalse(t, IsSquareAttacked(&pos.Board, chess.D1, chess.Black), "c2 blocks a4-d1")
	testutil.AssertTrue(t, IsSquareAttacked(&pos.Board, testutil.MustSquare(t, "b3"), chess.Black))
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position", InitialFEN, chess.White, false},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.White, true},
		{"knight check", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"pawn check", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"pawn does not check straight ahead", "8/8/8/8/8/4k3/4P3/4K3 b - - 0 1", chess.Black, false},
		{"rook blocked", "4k3/4p3/8/8/8/8/8/4R1K1 b - - 0 1", chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			testutil.AssertEqual(t, IsInCheck(&pos.Board, tt.colour), tt.want)
		})
	}
}
