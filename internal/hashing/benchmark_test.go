package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial":   engine.InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			pos := engine.MustParseFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateZobristHash(&pos)
			}
		})
	}
}

func BenchmarkRepetitionTable_Add(b *testing.B) {
	rt := NewRepetitionTable()
	pos := engine.MustParseFEN(benchFENPositions["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rt.Add(&pos)
	}
}

func BenchmarkDuplicateDetector_CheckAndAdd(b *testing.B) {
	dd := NewDuplicateDetector(0)
	pos := engine.MustParseFEN(benchFENPositions["Initial"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dd.CheckAndAdd(&pos)
	}
}
