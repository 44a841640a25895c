package crosscheck

import (
	"strings"

	"github.com/Oliverans/GooseEngineMG/goosemg"
	corentings "github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Oracle is a third-party implementation of the rules. Each oracle also
// implements some of MoveLister, PerftCounter and StatusReporter.
type Oracle interface {
	Name() string
}

// MoveLister lists the legal moves of a position in coordinate notation.
type MoveLister interface {
	LegalMoves(fen string) ([]string, error)
}

// PerftCounter counts leaf nodes to a depth.
type PerftCounter interface {
	Perft(fen string, depth int) (uint64, error)
}

// StatusReporter reports whether the side to move is mated or stalemated.
type StatusReporter interface {
	Status(fen string) (checkmate, stalemate bool, err error)
}

// DefaultOracles returns every oracle the package knows.
func DefaultOracles() []Oracle {
	return []Oracle{Corentings{}, Dragontooth{}, Goose{}}
}

// Corentings wraps github.com/corentings/chess/v2.
type Corentings struct{}

// Name identifies the oracle in discrepancy reports.
func (Corentings) Name() string { return "corentings/chess" }

func (Corentings) game(fen string) (*corentings.Game, error) {
	opt, err := corentings.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedFEN, "corentings/chess: %v", err)
	}
	return corentings.NewGame(opt), nil
}

// LegalMoves lists the legal moves of fen, lower-cased coordinate notation.
func (c Corentings) LegalMoves(fen string) ([]string, error) {
	g, err := c.game(fen)
	if err != nil {
		return nil, err
	}
	valid := g.ValidMoves()
	moves := make([]string, 0, len(valid))
	for i := range valid {
		moves = append(moves, strings.ToLower(valid[i].String()))
	}
	return moves, nil
}

// Status reports checkmate and stalemate from the game's outcome method.
func (c Corentings) Status(fen string) (bool, bool, error) {
	g, err := c.game(fen)
	if err != nil {
		return false, false, err
	}
	return g.Method() == corentings.Checkmate, g.Method() == corentings.Stalemate, nil
}

// Dragontooth wraps github.com/dylhunn/dragontoothmg. Its FEN parser does
// not report errors, so it is only handed FEN produced by engine.ToFEN.
type Dragontooth struct{}

// Name identifies the oracle in discrepancy reports.
func (Dragontooth) Name() string { return "dragontoothmg" }

// LegalMoves lists the legal moves of fen in coordinate notation.
func (Dragontooth) LegalMoves(fen string) ([]string, error) {
	b := dragontoothmg.ParseFen(fen)
	legal := b.GenerateLegalMoves()
	moves := make([]string, len(legal))
	for i, m := range legal {
		moves[i] = m.String()
	}
	return moves, nil
}

// Perft counts leaf nodes of fen to depth with the dragontoothmg generator.
func (Dragontooth) Perft(fen string, depth int) (uint64, error) {
	b := dragontoothmg.ParseFen(fen)
	return dragontoothPerft(&b, depth), nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Goose wraps github.com/Oliverans/GooseEngineMG/goosemg.
type Goose struct{}

// Name identifies the oracle in discrepancy reports.
func (Goose) Name() string { return "goosemg" }

// Perft counts leaf nodes of fen to depth. A FEN goosemg rejects
// wraps ErrMalformedFEN.
func (Goose) Perft(fen string, depth int) (uint64, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrMalformedFEN, "goosemg: %v", err)
	}
	return uint64(goosemg.Perft(b, depth)), nil
}

// Status reports whether the side to move in fen is checkmated or stalemated.
func (Goose) Status(fen string) (bool, bool, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return false, false, errors.Wrapf(errors.ErrMalformedFEN, "goosemg: %v", err)
	}
	return b.InCheckmate(), b.InStalemate(), nil
}
