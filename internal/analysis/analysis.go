// Package analysis builds reports on single positions and batches of FEN
// lines.
package analysis

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// MoveInfo is one legal move in both notations.
type MoveInfo struct {
	UCI string
	SAN string
}

// Report describes a position: who moves, what they can play and which
// game-ending conditions hold.
type Report struct {
	FEN    string
	ToMove chess.Colour
	Hash   uint64
	Moves  []MoveInfo

	Check                bool
	Checkmate            bool
	Stalemate            bool
	InsufficientMaterial bool
	FiftyMoveRule        bool
}

// Analyze reports on pos. Moves are listed in legal move order.
func Analyze(pos *chess.Position) *Report {
	r := &Report{
		FEN:                  engine.ToFEN(pos),
		ToMove:               pos.ToMove,
		Hash:                 hashing.GenerateZobristHash(pos),
		Check:                engine.IsCheck(pos),
		InsufficientMaterial: engine.HasInsufficientMaterial(&pos.Board),
		FiftyMoveRule:        engine.IsFiftyMoveRule(pos),
	}

	moves := engine.LegalMoves(pos)
	r.Moves = make([]MoveInfo, len(moves))
	for i, move := range moves {
		r.Moves[i] = MoveInfo{UCI: move.UCI(), SAN: engine.SAN(pos, move)}
	}

	if len(moves) == 0 {
		r.Checkmate = r.Check
		r.Stalemate = !r.Check
	}
	return r
}

// IsTerminal reports whether the side to move has no legal move or the
// position is a draw by rule.
func (r *Report) IsTerminal() bool {
	return r.Checkmate || r.Stalemate || r.InsufficientMaterial || r.FiftyMoveRule
}

// Status names the position's state in one word.
func (r *Report) Status() string {
	switch {
	case r.Checkmate:
		return "checkmate"
	case r.Stalemate:
		return "stalemate"
	case r.FiftyMoveRule:
		return "fifty-move rule"
	case r.InsufficientMaterial:
		return "insufficient material"
	case r.Check:
		return "check"
	}
	return "normal"
}
