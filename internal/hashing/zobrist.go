// Package hashing provides position keys, repetition counting and duplicate
// detection for chess positions.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed fixes the key tables so keys are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	pieceKeys     [chess.NumSquares][chess.NumPieceValues][2]uint64
	castlingKeys  [16]uint64
	enPassantKeys [chess.BoardSize]uint64
	whiteToMove   uint64
)

func init() {
	state := uint64(zobristSeed)
	next := func() uint64 {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for sq := range pieceKeys {
		for piece := chess.Pawn; piece < chess.NumPieceValues; piece++ {
			pieceKeys[sq][piece][chess.Black] = next()
			pieceKeys[sq][piece][chess.White] = next()
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = next()
	}
	whiteToMove = next()
}

// GenerateZobristHash returns the Zobrist key of a position's repetition
// signature: placement, side to move, castling rights and en-passant target.
// Clocks are not hashed.
func GenerateZobristHash(pos *chess.Position) uint64 {
	var hash uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Board.Occupant(sq)
		if piece == chess.Empty {
			continue
		}
		hash ^= pieceKeys[sq][chess.ExtractPiece(piece)][chess.ExtractColour(piece)]
	}

	hash ^= castlingKeys[pos.Castling&chess.AllCastling]
	if pos.EnPassant != chess.NoSquare {
		hash ^= enPassantKeys[pos.EnPassant.File()]
	}
	if pos.ToMove == chess.White {
		hash ^= whiteToMove
	}
	return hash
}
