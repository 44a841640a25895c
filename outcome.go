package chessrules

import "github.com/lgbarn/chessrules-go/internal/chess"

// Result is a game result in PGN form.
type Result string

const (
	NoResult  Result = "*"
	WhiteWins Result = "1-0"
	BlackWins Result = "0-1"
	Draw      Result = "1/2-1/2"
)

// Method is the rule that ended the game.
type Method int

const (
	NoMethod Method = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
	InsufficientMaterial
)

var methodNames = [...]string{
	NoMethod:             "none",
	Checkmate:            "checkmate",
	Stalemate:            "stalemate",
	FiftyMoveRule:        "fifty-move rule",
	ThreefoldRepetition:  "threefold repetition",
	InsufficientMaterial: "insufficient material",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "unknown"
	}
	return methodNames[m]
}

// Outcome is the result of a game and the rule that produced it.
type Outcome struct {
	Result Result
	Method Method
}

// Outcome returns the current result. Checkmate takes precedence, then
// stalemate, the fifty-move rule, threefold repetition and insufficient
// material.
func (g *Game) Outcome() Outcome {
	switch {
	case g.IsCheckmate():
		if g.current.ToMove == chess.White {
			return Outcome{Result: BlackWins, Method: Checkmate}
		}
		return Outcome{Result: WhiteWins, Method: Checkmate}
	case g.IsStalemate():
		return Outcome{Result: Draw, Method: Stalemate}
	case g.IsFiftyMoveRule():
		return Outcome{Result: Draw, Method: FiftyMoveRule}
	case g.IsThreefoldRepetition():
		return Outcome{Result: Draw, Method: ThreefoldRepetition}
	case g.IsInsufficientMaterial():
		return Outcome{Result: Draw, Method: InsufficientMaterial}
	}
	return Outcome{Result: NoResult}
}
