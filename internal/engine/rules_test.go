package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"K vs K", "8/8/8/4k3/8/8/8/4K3 w - - 0 1", true},
		{"KN vs K", "8/8/8/4k3/8/8/8/4KN2 w - - 0 1", true},
		{"K vs KN", "8/8/8/4k3/8/2n5/8/4K3 w - - 0 1", true},
		{"KB vs K", "8/8/8/4k3/8/8/8/4KB2 w - - 0 1", true},
		{"KB vs KB same colour", "5b2/8/8/4k3/8/8/8/2B1K3 w - - 0 1", true},
		{"KBB vs K same colour", "8/8/8/4k3/8/8/3B4/2B1K3 w - - 0 1", true},
		{"KB vs KB opposite colour", "2b5/8/8/4k3/8/8/8/2B1K3 w - - 0 1", false},
		{"KNN vs K", "8/8/8/4k3/8/8/8/3NKN2 w - - 0 1", false},
		{"KN vs KN", "8/8/8/4k3/8/2n5/8/4KN2 w - - 0 1", false},
		{"KN vs KB", "8/8/8/4k3/8/2b5/8/4KN2 w - - 0 1", false},
		{"KP vs K", "8/8/8/4k3/8/8/4P3/4K3 w - - 0 1", false},
		{"KR vs K", "8/8/8/4k3/8/8/8/4KR2 w - - 0 1", false},
		{"KQ vs K", "8/8/8/4k3/8/8/8/4KQ2 w - - 0 1", false},
		{"initial position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			testutil.AssertEqual(t, HasInsufficientMaterial(&pos.Board), tt.want)
		})
	}
}

func TestIsFiftyMoveRule(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{"4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 99 80", false},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 100 80", true},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 150 80", true},
	}

	for _, tt := range tests {
		t.Run(tt.fen, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			testutil.AssertEqual(t, IsFiftyMoveRule(&pos), tt.want)
		})
	}
}

func TestIsFiftyMoveRule_ReachedByMove(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 80")
	next := ApplyMove(pos, mustResolve(t, &pos, "Ra2"))
	testutil.AssertTrue(t, IsFiftyMoveRule(&next))

	check := ApplyMove(pos, mustResolve(t, &pos, "Ra8+"))
	testutil.AssertEqual(t, check.HalfmoveClock, uint(100))

	pawn := mustPosition(t, "4k3/8/8/8/8/8/P7/4K3 w - - 99 80")
	afterPawn := ApplyMove(pawn, mustResolve(t, &pawn, "a3"))
	testutil.AssertFalse(t, IsFiftyMoveRule(&afterPawn))
}
