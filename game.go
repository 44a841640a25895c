// Package chessrules implements the rules of standard chess: legal move
// generation, move application, check, checkmate and draw detection, and
// FEN import and export.
//
// A Game owns its current position and its history. Positions are plain
// values, so anything handed out by a Game is a copy.
package chessrules

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Types shared with the engine.
type (
	Move           = chess.Move
	Position       = chess.Position
	Square         = chess.Square
	Colour         = chess.Colour
	Piece          = chess.Piece
	CastlingRights = chess.CastlingRights
)

// InitialFEN is the FEN of the standard starting position.
const InitialFEN = engine.InitialFEN

// Error sentinels, re-exported for errors.Is checks by callers.
var (
	ErrMalformedFEN       = errors.ErrMalformedFEN
	ErrIllegalMove        = errors.ErrIllegalMove
	ErrUnparsableNotation = errors.ErrUnparsableNotation
	ErrGameOver           = errors.ErrGameOver
)

// Entry is one applied move with its SAN text and the position it produced.
type Entry struct {
	Move     Move
	SAN      string
	Position Position
}

// Game is a position plus the history of moves that led to it.
// A Game is not safe for concurrent use.
type Game struct {
	initial     Position
	current     Position
	entries     []Entry
	repetitions *hashing.RepetitionTable
}

// New returns a game at the standard starting position.
func New() *Game {
	return newGame(chess.NewPosition())
}

// FromFEN returns a game starting from the position described by fen.
func FromFEN(fen string) (*Game, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(pos), nil
}

func newGame(pos Position) *Game {
	g := &Game{
		initial:     pos,
		current:     pos,
		repetitions: hashing.NewRepetitionTable(),
	}
	g.repetitions.Add(&g.current)
	return g
}

// LegalMoves returns the legal moves in the current position.
func (g *Game) LegalMoves() []Move {
	return engine.LegalMoves(&g.current)
}

// LegalMoveStrings returns the legal moves in coordinate notation.
func (g *Game) LegalMoveStrings() []string {
	moves := g.LegalMoves()
	out := make([]string, len(moves))
	for i, move := range moves {
		out[i] = move.UCI()
	}
	return out
}

// Apply plays move, matched against the legal moves on origin, destination
// and promotion piece. An illegal move leaves the game unchanged.
func (g *Game) Apply(move Move) error {
	if err := g.checkNotOver(move.UCI()); err != nil {
		return err
	}

	legal, ok := engine.IsLegal(&g.current, move)
	if !ok {
		return g.moveError(errors.ErrIllegalMove, move.UCI())
	}
	g.play(legal)
	return nil
}

// MoveTo resolves notation (coordinate or SAN) against the legal moves and
// plays the single match.
func (g *Game) MoveTo(notation string) error {
	if err := g.checkNotOver(notation); err != nil {
		return err
	}

	move, err := engine.ResolveNotation(&g.current, notation)
	if err != nil {
		return g.moveError(err, notation)
	}
	g.play(move)
	return nil
}

func (g *Game) checkNotOver(notation string) error {
	if !g.IsOver() {
		return nil
	}
	return g.moveError(fmt.Errorf("%w: %w", errors.ErrIllegalMove, errors.ErrGameOver), notation)
}

func (g *Game) moveError(err error, notation string) error {
	return &errors.MoveError{
		Err:      err,
		Ply:      len(g.entries) + 1,
		Notation: notation,
		FEN:      g.FEN(),
	}
}

func (g *Game) play(move Move) {
	san := engine.SAN(&g.current, move)
	g.current = engine.ApplyMove(g.current, move)
	g.entries = append(g.entries, Entry{Move: move, SAN: san, Position: g.current})
	g.repetitions.Add(&g.current)
}

// Undo takes back the last move. It returns false when there is nothing to
// take back.
func (g *Game) Undo() (Move, bool) {
	if len(g.entries) == 0 {
		return Move{}, false
	}
	last := g.entries[len(g.entries)-1]
	g.repetitions.Remove(&last.Position)
	g.entries = g.entries[:len(g.entries)-1]

	if len(g.entries) == 0 {
		g.current = g.initial
	} else {
		g.current = g.entries[len(g.entries)-1].Position
	}
	return last.Move, true
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.ToFEN(&g.current)
}

// Position returns a copy of the current position.
func (g *Game) Position() Position {
	return g.current
}

// InitialPosition returns the position the game started from.
func (g *Game) InitialPosition() Position {
	return g.initial
}

// ToMove returns the side to move.
func (g *Game) ToMove() Colour {
	return g.current.ToMove
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.entries)
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []Move {
	moves := make([]Move, len(g.entries))
	for i, entry := range g.entries {
		moves[i] = entry.Move
	}
	return moves
}

// Entries returns a copy of the game record.
func (g *Game) Entries() []Entry {
	return append([]Entry(nil), g.entries...)
}

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	return engine.IsCheck(&g.current)
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return engine.IsCheckmate(&g.current)
}

// IsStalemate reports whether the side to move has no legal move and is
// not in check.
func (g *Game) IsStalemate() bool {
	return engine.IsStalemate(&g.current)
}

// IsFiftyMoveRule reports whether 100 half-moves have passed without a
// capture or pawn move.
func (g *Game) IsFiftyMoveRule() bool {
	return engine.IsFiftyMoveRule(&g.current)
}

// IsThreefoldRepetition reports whether the current position has occurred
// three times.
func (g *Game) IsThreefoldRepetition() bool {
	return g.repetitions.Count(&g.current) >= engine.RepetitionLimit
}

// IsInsufficientMaterial reports whether neither side can mate.
func (g *Game) IsInsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(&g.current.Board)
}

// IsDraw reports whether the game is drawn by any rule.
func (g *Game) IsDraw() bool {
	return g.Outcome().Result == Draw
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.Outcome().Result != NoResult
}
