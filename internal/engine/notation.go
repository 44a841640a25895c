package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// moveText is move notation broken into the parts used for matching
// against the legal move set. Zero values mean "not specified".
type moveText struct {
	piece     chess.Piece
	from      chess.Square
	fromFile  int
	fromRank  int
	to        chess.Square
	promotion chess.Piece
	castle    chess.MoveFlags
}

// ResolveNotation finds the unique legal move described by text. Accepted
// forms are coordinate notation ("e2e4", "e7e8q", "e2-e4") and SAN ("e4",
// "Nf3", "exd5", "Rae1", "N3d2", "Qh4xe1", "e8=Q", "O-O", "0-0-0"), with
// trailing check, mate and annotation marks and an " e.p." suffix ignored.
// Text that names no legal move, or more than one, fails with
// ErrUnparsableNotation.
func ResolveNotation(pos *chess.Position, text string) (chess.Move, error) {
	mt, ok := parseMoveText(text)
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrUnparsableNotation, "%q", text)
	}

	var matches []chess.Move
	for _, move := range generateLegalMoves(pos) {
		if mt.matches(&pos.Board, move) {
			matches = append(matches, move)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return chess.Move{}, errors.Wrapf(errors.ErrUnparsableNotation, "%q matches no legal move", text)
	default:
		return chess.Move{}, errors.Wrapf(errors.ErrUnparsableNotation, "%q matches %d legal moves", text, len(matches))
	}
}

// matches reports whether move fits every part the text specified.
func (mt *moveText) matches(board *chess.Board, move chess.Move) bool {
	if mt.castle != 0 {
		return move.Flags.Has(mt.castle)
	}
	if move.To != mt.to || move.Promotion != mt.promotion {
		return false
	}
	if mt.from != chess.NoSquare {
		return move.From == mt.from
	}
	if chess.ExtractPiece(board.Occupant(move.From)) != mt.piece {
		return false
	}
	if mt.fromFile >= 0 && move.From.File() != mt.fromFile {
		return false
	}
	// A pawn move without an origin file is a push along its own file.
	if mt.piece == chess.Pawn && mt.fromFile < 0 && move.From.File() != move.To.File() {
		return false
	}
	if mt.fromRank >= 0 && move.From.Rank() != mt.fromRank {
		return false
	}
	return true
}

// parseMoveText splits notation into its parts. It reports false for text
// that is not well formed in any accepted notation.
func parseMoveText(text string) (moveText, bool) {
	mt := moveText{from: chess.NoSquare, to: chess.NoSquare, fromFile: -1, fromRank: -1}

	s := strings.TrimSpace(text)
	s = strings.TrimSpace(strings.TrimSuffix(s, "e.p."))
	s = strings.TrimRight(s, "+#!?")
	if s == "" {
		return mt, false
	}

	switch s {
	case "O-O", "0-0":
		mt.castle = chess.CastleKingside
		return mt, true
	case "O-O-O", "0-0-0":
		mt.castle = chess.CastleQueenside
		return mt, true
	}

	if parseCoordinate(s, &mt) {
		return mt, true
	}
	return mt, parseSAN(s, &mt)
}

// parseCoordinate parses "e2e4", "e2-e4" and "e7e8q".
func parseCoordinate(s string, mt *moveText) bool {
	s = strings.Replace(s, "-", "", 1)
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	from, ok := chess.ParseSquare(s[0:2])
	if !ok {
		return false
	}
	to, ok := chess.ParseSquare(s[2:4])
	if !ok {
		return false
	}
	if len(s) == 5 {
		promotion := chess.PieceFromLetter(s[4])
		if !promotion.IsPromotionPiece() {
			return false
		}
		mt.promotion = promotion
	}
	mt.from, mt.to = from, to
	return true
}

// parseSAN parses standard algebraic notation without check marks.
func parseSAN(s string, mt *moveText) bool {
	mt.piece = chess.Pawn
	if p := pieceFromSANLetter(s[0]); p != chess.Empty {
		mt.piece = p
		s = s[1:]
	}

	// Promotion suffix: "=Q" or a bare trailing piece letter after the rank.
	if n := len(s); mt.piece == chess.Pawn && n >= 3 {
		last := pieceFromSANLetter(s[n-1])
		if last != chess.Empty {
			if !last.IsPromotionPiece() {
				return false
			}
			mt.promotion = last
			s = strings.TrimSuffix(s[:n-1], "=")
		}
	}

	s = strings.ReplaceAll(s, "x", "")
	if len(s) < 2 || len(s) > 4 {
		return false
	}

	to, ok := chess.ParseSquare(s[len(s)-2:])
	if !ok {
		return false
	}
	mt.to = to

	for _, c := range []byte(s[:len(s)-2]) {
		switch {
		case c >= 'a' && c <= 'h' && mt.fromFile < 0 && mt.fromRank < 0:
			mt.fromFile = int(c - chess.FileBase)
		case c >= '1' && c <= '8' && mt.fromRank < 0:
			mt.fromRank = int(c - chess.RankBase)
		default:
			return false
		}
	}
	return true
}

// pieceFromSANLetter converts an uppercase SAN piece letter. Lowercase
// letters are files, not pieces.
func pieceFromSANLetter(c byte) chess.Piece {
	if c < 'A' || c > 'Z' {
		return chess.Empty
	}
	p := chess.PieceFromLetter(c)
	if p == chess.Pawn {
		return chess.Empty
	}
	return p
}

// SAN returns the standard algebraic notation of a legal move in pos,
// disambiguated as little as possible and suffixed with "+" or "#".
func SAN(pos *chess.Position, move chess.Move) string {
	var sb strings.Builder

	switch {
	case move.Flags.Has(chess.CastleKingside):
		sb.WriteString("O-O")
	case move.Flags.Has(chess.CastleQueenside):
		sb.WriteString("O-O-O")
	default:
		writeSANBody(&sb, pos, move)
	}

	next := ApplyMove(*pos, move)
	if IsCheck(&next) {
		if HasLegalMoves(&next) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

// writeSANBody writes piece letter, disambiguation, capture mark,
// destination and promotion.
func writeSANBody(sb *strings.Builder, pos *chess.Position, move chess.Move) {
	piece := chess.ExtractPiece(pos.Board.Occupant(move.From))

	if piece == chess.Pawn {
		if move.IsCapture() {
			sb.WriteByte(byte(chess.FileBase + move.From.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if move.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(move.Promotion.Letter())
		}
		return
	}

	sb.WriteByte(piece.Letter())
	writeDisambiguation(sb, pos, move, piece)
	if move.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())
}

// writeDisambiguation writes the origin file, rank or both when another
// piece of the same kind can reach the same square.
func writeDisambiguation(sb *strings.Builder, pos *chess.Position, move chess.Move, piece chess.Piece) {
	var rivals, sameFile, sameRank int
	for _, other := range generateLegalMoves(pos) {
		if other.To != move.To || other.From == move.From {
			continue
		}
		if chess.ExtractPiece(pos.Board.Occupant(other.From)) != piece {
			continue
		}
		rivals++
		if other.From.File() == move.From.File() {
			sameFile++
		}
		if other.From.Rank() == move.From.Rank() {
			sameRank++
		}
	}

	switch {
	case rivals == 0:
	case sameFile == 0:
		sb.WriteByte(byte(chess.FileBase + move.From.File()))
	case sameRank == 0:
		sb.WriteByte(byte(chess.RankBase + move.From.Rank()))
	default:
		sb.WriteString(move.From.String())
	}
}
