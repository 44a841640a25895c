package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{
			name: "double pawn push sets en passant target",
			fen:  InitialFEN,
			move: "e2e4",
			want: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name: "black reply increments move number",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move: "e7e5",
			want: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		},
		{
			name: "piece move advances halfmove clock",
			fen:  InitialFEN,
			move: "g1f3",
			want: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		},
		{
			name: "single push clears en passant target",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move: "d7d6",
			want: "rnbqkbnr/ppp1pppp/3p4/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		},
		{
			name: "capture resets halfmove clock",
			fen:  "4k3/8/8/3p4/8/8/8/3RK3 w - - 12 30",
			move: "d1d5",
			want: "4k3/8/8/3R4/8/8/8/4K3 b - - 0 30",
		},
		{
			name: "white castles kingside",
			fen:  castlingFEN,
			move: "e1g1",
			want: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name: "white castles queenside",
			fen:  castlingFEN,
			move: "e1c1",
			want: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name: "black castles kingside",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: "e8g8",
			want: "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name: "black castles queenside",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: "e8c8",
			want: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name: "king move drops both rights",
			fen:  castlingFEN,
			move: "e1e2",
			want: "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1",
		},
		{
			name: "rook move drops one right",
			fen:  castlingFEN,
			move: "a1a2",
			want: "r3k2r/8/8/8/8/8/R7/4K2R b Kkq - 1 1",
		},
		{
			name: "capturing a rook on its square drops the opponent's right",
			fen:  castlingFEN,
			move: "h1h8",
			want: "r3k2R/8/8/8/8/8/8/R3K3 b Qq - 0 1",
		},
		{
			name: "en passant removes the passed pawn",
			fen:  "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			move: "e5f6",
			want: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name: "promotion with capture",
			fen:  "2b3k1/3PR3/8/8/8/8/8/6K1 w - - 0 1",
			move: "d7c8q",
			want: "2Q3k1/4R3/8/8/8/8/8/6K1 b - - 0 1",
		},
		{
			name: "underpromotion",
			fen:  "8/4P3/8/8/8/8/k7/4K3 w - - 5 40",
			move: "e7e8n",
			want: "4N3/8/8/8/8/8/k7/4K3 b - - 0 40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			next := ApplyMove(pos, mustResolve(t, &pos, tt.move))
			testutil.AssertEqual(t, ToFEN(&next), tt.want)
		})
	}
}

func TestApplyMove_DoesNotModifyInput(t *testing.T) {
	pos := chess.NewPosition()
	before := pos
	_ = ApplyMove(pos, mustResolve(t, &pos, "e2e4"))
	testutil.AssertEqual(t, pos, before)
}

func TestApplyMove_EnPassantExpires(t *testing.T) {
	pos := playAll(t, chess.NewPosition(), "e4", "Nf6", "e5", "d5")
	testutil.AssertTrue(t, hasMove(LegalMoves(&pos), "e5d6"), "en passant right after d5")

	pos = playAll(t, pos, "Nc3", "Nc6")
	testutil.AssertFalse(t, hasMove(LegalMoves(&pos), "e5d6"), "en passant one move later")
}

func TestApplyMove_CastlingRightsNeverReturn(t *testing.T) {
	pos := playAll(t, mustPosition(t, castlingFEN), "Rh2", "Rh7", "Rh1", "Rh8")
	testutil.AssertEqual(t, pos.Castling, chess.WhiteQueenside|chess.BlackQueenside)
	testutil.AssertFalse(t, hasMove(LegalMoves(&pos), "e1g1"))
}
