// Package crosscheck compares the engine with third-party move generators.
// A disagreement points at a bug on one side; the oracles are not assumed
// to be right.
package crosscheck

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Discrepancy is one disagreement with an oracle.
type Discrepancy struct {
	Oracle string
	Check  string // "legal moves", "perft", "status" or "error"
	Detail string
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Oracle, d.Check, d.Detail)
}

// Result is the outcome of comparing one position.
type Result struct {
	FEN           string
	Depth         int
	Nodes         uint64 // our perft count at Depth
	Oracles       []string
	Discrepancies []Discrepancy
}

// OK reports whether every oracle agreed.
func (r *Result) OK() bool {
	return len(r.Discrepancies) == 0
}

// Compare checks pos against the default oracles. Perft is compared only
// for depth > 0.
func Compare(pos *chess.Position, depth int) *Result {
	return CompareWith(pos, depth, DefaultOracles()...)
}

// CompareWith checks pos against the given oracles.
func CompareWith(pos *chess.Position, depth int, oracles ...Oracle) *Result {
	fen := engine.ToFEN(pos)
	r := &Result{FEN: fen, Depth: depth}
	if depth > 0 {
		r.Nodes = engine.Perft(pos, depth)
	}

	ours := movesUCI(engine.LegalMoves(pos))
	checkmate := engine.IsCheckmate(pos)
	stalemate := engine.IsStalemate(pos)

	for _, oracle := range oracles {
		name := oracle.Name()
		r.Oracles = append(r.Oracles, name)

		if lister, ok := oracle.(MoveLister); ok {
			theirs, err := lister.LegalMoves(fen)
			if err != nil {
				r.add(name, "error", err.Error())
			} else if missing, extra := diff(ours, theirs); len(missing)+len(extra) > 0 {
				r.add(name, "legal moves", fmt.Sprintf("only ours [%s], only theirs [%s]",
					strings.Join(missing, " "), strings.Join(extra, " ")))
			}
		}

		if reporter, ok := oracle.(StatusReporter); ok {
			mate, stale, err := reporter.Status(fen)
			switch {
			case err != nil:
				r.add(name, "error", err.Error())
			case mate != checkmate || stale != stalemate:
				r.add(name, "status", fmt.Sprintf("ours checkmate=%t stalemate=%t, theirs checkmate=%t stalemate=%t",
					checkmate, stalemate, mate, stale))
			}
		}

		if counter, ok := oracle.(PerftCounter); ok && depth > 0 {
			nodes, err := counter.Perft(fen, depth)
			switch {
			case err != nil:
				r.add(name, "error", err.Error())
			case nodes != r.Nodes:
				r.add(name, "perft", fmt.Sprintf("depth %d: ours %d, theirs %d", depth, r.Nodes, nodes))
			}
		}
	}
	return r
}

func (r *Result) add(oracle, check, detail string) {
	r.Discrepancies = append(r.Discrepancies, Discrepancy{Oracle: oracle, Check: check, Detail: detail})
}

func movesUCI(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

// diff returns the moves only in ours and only in theirs, both sorted.
func diff(ours, theirs []string) (onlyOurs, onlyTheirs []string) {
	a := slices.Clone(ours)
	b := slices.Clone(theirs)
	slices.Sort(a)
	slices.Sort(b)

	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j >= len(b) || (i < len(a) && a[i] < b[j]):
			onlyOurs = append(onlyOurs, a[i])
			i++
		case i >= len(a) || b[j] < a[i]:
			onlyTheirs = append(onlyTheirs, b[j])
			j++
		default:
			i++
			j++
		}
	}
	return onlyOurs, onlyTheirs
}
