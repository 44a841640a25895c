// Package engine provides chess move generation, legality checking and
// position transitions.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names used in error reports.
const (
	fieldPlacement = "piece placement"
	fieldSide      = "side to move"
	fieldCastling  = "castling"
	fieldEnPassant = "en passant"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

func malformed(field, got string) error {
	return &errors.FENError{Err: errors.ErrMalformedFEN, Field: field, Got: got}
}

// ParseFEN parses a FEN string of six fields separated by single spaces
// into a position. No partial position is returned on failure; every
// failure wraps ErrMalformedFEN.
func ParseFEN(fen string) (chess.Position, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != 6 {
		return chess.Position{}, &errors.FENError{
			Err:   errors.ErrMalformedFEN,
			Field: fmt.Sprintf("expected 6 fields, found %d", len(parts)),
		}
	}

	var pos chess.Position
	if err := parsePiecePositions(&pos.Board, parts[0]); err != nil {
		return chess.Position{}, err
	}

	var err error
	if pos.ToMove, err = parseSideToMove(parts[1]); err != nil {
		return chess.Position{}, err
	}
	if pos.Castling, err = parseCastlingRights(parts[2]); err != nil {
		return chess.Position{}, err
	}
	if pos.EnPassant, err = parseEnPassant(parts[3], pos.ToMove); err != nil {
		return chess.Position{}, err
	}
	if pos.HalfmoveClock, err = parseCounter(parts[4], fieldHalfmove, 0); err != nil {
		return chess.Position{}, err
	}
	if pos.MoveNumber, err = parseCounter(parts[5], fieldFullmove, 1); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error. It is meant for
// package-level constants and tests.
func MustParseFEN(fen string) chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return malformed(fieldPlacement, fmt.Sprintf("%d ranks", len(ranks)))
	}

	for i, rankText := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece := chess.PieceFromLetter(c)
				if piece == chess.Empty {
					return malformed(fieldPlacement, string(c))
				}
				if file >= chess.BoardSize {
					return malformed(fieldPlacement, rankText)
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				board.Place(chess.NewSquare(file, rank), chess.MakeColouredPiece(colour, piece))
				file++
			}
			if file > chess.BoardSize {
				return malformed(fieldPlacement, rankText)
			}
		}
		if file != chess.BoardSize {
			return malformed(fieldPlacement, rankText)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(colour, chess.King); n != 1 {
			return malformed(fieldPlacement, fmt.Sprintf("%d %s kings", n, strings.ToLower(colour.String())))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(side string) (chess.Colour, error) {
	switch side {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, malformed(fieldSide, side)
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	if field == "-" {
		return chess.NoCastling, nil
	}

	rights := chess.NoCastling
	for _, c := range field {
		var r chess.CastlingRights
		switch c {
		case 'K':
			r = chess.WhiteKingside
		case 'Q':
			r = chess.WhiteQueenside
		case 'k':
			r = chess.BlackKingside
		case 'q':
			r = chess.BlackQueenside
		default:
			return chess.NoCastling, malformed(fieldCastling, field)
		}
		if rights.Has(r) {
			return chess.NoCastling, malformed(fieldCastling, field)
		}
		rights |= r
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field. The target must
// lie on the rank a pawn of the side not to move has just skipped.
func parseEnPassant(field string, toMove chess.Colour) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return chess.NoSquare, malformed(fieldEnPassant, field)
	}
	mover := toMove.Opposite()
	if sq.Rank() != chess.PawnStartRank(mover)+chess.ColourOffset(mover) {
		return chess.NoSquare, malformed(fieldEnPassant, field)
	}
	return sq, nil
}

// parseCounter parses a clock field as a decimal integer no smaller than min.
func parseCounter(field, name string, min uint) (uint, error) {
	n, err := strconv.ParseUint(field, 10, 32)
	if err != nil || uint(n) < min {
		return 0, malformed(name, field)
	}
	return uint(n), nil
}

// ToFEN converts a position to a FEN string.
func ToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos.ToMove)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Occupant(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(chess.FENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
