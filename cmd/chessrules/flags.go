// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"regexp"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position
	fenFlag   = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	movesFlag = flag.String("moves", "", "Moves to play from the starting position, SAN or UCI, space separated")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move paths to depth N")
	divide     = flag.Bool("divide", false, "With -perft, report the count below each root move")
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Cross-check
	crossCheck = flag.Bool("crosscheck", false, "Compare legal moves, perft and status with third-party move generators")

	// Batch analysis
	analyzeFile        = flag.String("analyze", "", "Analyze every FEN in FILE, one per line (- for stdin)")
	suppressDuplicates = flag.Bool("D", false, "With -analyze, skip positions already seen")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum positions to remember for -D (0 = unlimited)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	uciOnly    = flag.Bool("uci", false, "List legal moves in UCI notation only")
	lineLength = flag.Int("w", 80, "Maximum line length")

	// Service
	serveAddr = flag.String("serve", "", "Serve games over HTTP on ADDR (host:port)")
	maxGames  = flag.Int("maxgames", 0, "Maximum live games when serving (0 = unlimited)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=nothing, 1=summary, 2=running commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)
	applyServerFlags(cfg)

	cfg.CrossCheck = *crossCheck
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
	cfg.OutputFilename = *outputFile

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowSAN = !*uciOnly
	cfg.Output.LineLength = *lineLength
}

// applyPerftFlags configures perft and the worker pool.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// applyServerFlags configures the game service.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.ListenAddr = *serveAddr
	cfg.Server.MaxGames = *maxGames
}

// moveNumber matches a move-number prefix such as "12." or "3...".
var moveNumber = regexp.MustCompile(`^[0-9]+\.+`)

// splitMoves splits a move list such as "1. e4 e5 2. Nf3" into move texts,
// dropping move numbers.
func splitMoves(s string) []string {
	var moves []string
	for _, field := range strings.Fields(s) {
		field = moveNumber.ReplaceAllString(field, "")
		if field != "" {
			moves = append(moves, field)
		}
	}
	return moves
}
