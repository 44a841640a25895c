package chess

import "testing"

func TestMoveUCI(t *testing.T) {
	e2, _ := ParseSquare("e2")
	e4, _ := ParseSquare("e4")
	e7, _ := ParseSquare("e7")

	tests := []struct {
		name string
		move Move
		want string
	}{
		{"push", Move{From: e2, To: e4, Flags: DoublePawnPush}, "e2e4"},
		{"castle", Move{From: E1, To: G1, Flags: CastleKingside}, "e1g1"},
		{"queen promotion", Move{From: e7, To: E8, Promotion: Queen}, "e7e8q"},
		{"knight promotion", Move{From: e7, To: D8, Promotion: Knight, Flags: Capture}, "e7d8n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.UCI(); got != tt.want {
				t.Errorf("UCI() = %q; want %q", got, tt.want)
			}
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestMovePredicates(t *testing.T) {
	ep := Move{Flags: EnPassantCapture}
	if !ep.IsCapture() || !ep.IsEnPassant() {
		t.Error("en passant move should be a capture")
	}

	castle := Move{Flags: CastleQueenside}
	if !castle.IsCastle() || castle.IsCapture() {
		t.Error("castling flags misreported")
	}

	quiet := Move{}
	if quiet.IsCapture() || quiet.IsCastle() || quiet.IsPromotion() {
		t.Error("quiet move reports a special property")
	}
}

func TestMoveFlagsString(t *testing.T) {
	tests := []struct {
		flags MoveFlags
		want  string
	}{
		{0, "quiet"},
		{Capture, "capture"},
		{Capture | EnPassantCapture, "capture|ep"},
		{CastleKingside, "O-O"},
	}

	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("MoveFlags(%d).String() = %q; want %q", tt.flags, got, tt.want)
		}
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for piece := Pawn; piece < NumPieceValues; piece++ {
			cp := MakeColouredPiece(colour, piece)
			if ExtractColour(cp) != colour || ExtractPiece(cp) != piece {
				t.Errorf("round trip of %v %v failed", colour, piece)
			}
		}
	}

	if got := FENLetter(W(Knight)); got != 'N' {
		t.Errorf("FENLetter(white knight) = %c; want N", got)
	}
	if got := FENLetter(B(Queen)); got != 'q' {
		t.Errorf("FENLetter(black queen) = %c; want q", got)
	}
	if got := PieceFromLetter('k'); got != King {
		t.Errorf("PieceFromLetter('k') = %v; want King", got)
	}
	if got := PieceFromLetter('x'); got != Empty {
		t.Errorf("PieceFromLetter('x') = %v; want Empty", got)
	}
}

func TestRanksByColour(t *testing.T) {
	if HomeRank(White) != 0 || HomeRank(Black) != 7 {
		t.Error("HomeRank wrong")
	}
	if PawnStartRank(White) != 1 || PawnStartRank(Black) != 6 {
		t.Error("PawnStartRank wrong")
	}
	if PromotionRank(White) != 7 || PromotionRank(Black) != 0 {
		t.Error("PromotionRank wrong")
	}
}
