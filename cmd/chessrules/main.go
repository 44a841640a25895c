// chessrules plays, counts and checks chess positions under the standard
// rules, from the command line or as an HTTP game service.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lgbarn/chessrules-go"
	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/crosscheck"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/server"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const programVersion = "0.1.0"

var (
	// errDiscrepancy is returned when an oracle disagrees with the engine.
	errDiscrepancy = stderrors.New("cross-check found discrepancies")
	// errMalformedInput is returned when -analyze input has lines that are not FEN.
	errMalformedInput = stderrors.New("input contains malformed FEN lines")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	var err error
	switch {
	case cfg.Server.ListenAddr != "":
		err = serve(ctx, cfg)
	case *analyzeFile != "":
		err = analyzeInput(ctx, cfg, *analyzeFile)
	default:
		err = runPosition(ctx, cfg, *fenFlag, *movesFlag)
	}
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}

	file, err := os.Create(cfg.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// startGame sets up the game from fen (empty for the standard start) and
// plays moves on it.
func startGame(fen, moves string) (*chessrules.Game, error) {
	game := chessrules.New()
	if fen != "" {
		var err error
		if game, err = chessrules.FromFEN(fen); err != nil {
			return nil, err
		}
	}

	for _, m := range splitMoves(moves) {
		if err := game.MoveTo(m); err != nil {
			return nil, err
		}
	}
	return game, nil
}

// runPosition handles a single position: perft and cross-check when asked
// for, otherwise an analysis report.
func runPosition(ctx context.Context, cfg *config.Config, fen, moves string) error {
	game, err := startGame(fen, moves)
	if err != nil {
		return err
	}
	pos := game.Position()

	if cfg.Perft.Depth == 0 && !cfg.CrossCheck {
		return writeReport(cfg, game, &pos)
	}

	if cfg.Perft.Depth > 0 {
		if err := runPerft(ctx, cfg, &pos); err != nil {
			return err
		}
	}
	if cfg.CrossCheck {
		return runCrossCheck(cfg, &pos)
	}
	return nil
}

// writeReport writes the analysis of pos. In text mode a finished game
// also gets its result line.
func writeReport(cfg *config.Config, game *chessrules.Game, pos *chess.Position) error {
	report := analysis.Analyze(pos)
	if cfg.Output.JSONFormat {
		w := output.NewJSONWriterSingle(cfg.OutputFile, cfg.Output)
		if err := w.WriteReport(report); err != nil {
			return err
		}
		return w.Close()
	}

	if err := output.WriteReportText(cfg.OutputFile, report, cfg.Output); err != nil {
		return err
	}
	if outcome := game.Outcome(); outcome.Method != chessrules.NoMethod {
		_, err := fmt.Fprintf(cfg.OutputFile, "Result: %s (%s)\n", outcome.Result, outcome.Method)
		return err
	}
	return nil
}

// runPerft counts move paths from pos on the worker pool.
func runPerft(ctx context.Context, cfg *config.Config, pos *chess.Position) error {
	depth := cfg.Perft.Depth
	opt := worker.WithWorkers(cfg.Perft.Workers)
	start := time.Now()

	var entries []engine.DivideEntry
	var nodes uint64
	var err error
	if cfg.Perft.Divide {
		entries, err = worker.Divide(ctx, pos, depth, opt)
		for _, e := range entries {
			nodes += e.Nodes
		}
	} else {
		nodes, err = worker.Perft(ctx, pos, depth, opt)
	}
	if err != nil {
		return err
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "perft(%d): %d nodes in %v using %d workers\n",
			depth, nodes, time.Since(start).Round(time.Millisecond), cfg.Perft.Workers)
	}
	return output.WriteDivide(cfg.OutputFile, engine.ToFEN(pos), depth, entries, nodes, cfg.Output)
}

// runCrossCheck compares pos with the third-party generators, at the perft
// depth when one is set.
func runCrossCheck(cfg *config.Config, pos *chess.Position) error {
	return reportCrossCheck(cfg, crosscheck.Compare(pos, cfg.Perft.Depth))
}

func reportCrossCheck(cfg *config.Config, result *crosscheck.Result) error {
	for _, d := range result.Discrepancies {
		fmt.Fprintf(cfg.OutputFile, "%s\n", d)
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "cross-checked %s against %d oracles: %d discrepancies\n",
			result.FEN, len(result.Oracles), len(result.Discrepancies))
	}
	if !result.OK() {
		return errDiscrepancy
	}
	return nil
}

// analyzeInput analyzes every FEN in the named file ("-" for stdin).
func analyzeInput(ctx context.Context, cfg *config.Config, name string) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}
	return analyzeReader(ctx, cfg, r)
}

// analyzeReader writes a report for every position read from r. Reports are
// written even when some lines are malformed; the error follows them.
func analyzeReader(ctx context.Context, cfg *config.Config, r io.Reader) error {
	items, err := analysis.ReadFENs(r)
	if err != nil {
		return err
	}

	results, stats, batchErr := analysis.Batch(ctx, items, cfg)
	w := output.NewReportWriter(cfg.OutputFile, cfg.Output)
	for _, res := range results {
		if res.Report == nil {
			continue
		}
		if err := w.WriteReport(res.Report); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	if batchErr != nil {
		return batchErr
	}
	if stats.Errors > 0 {
		return fmt.Errorf("%d lines: %w", stats.Errors, errMalformedInput)
	}
	return nil
}

// serve runs the game service until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config) error {
	err := server.New(cfg).Run(ctx)
	if stderrors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Legal moves, perft counts and game status for chess positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)    Report legal moves and status of -fen after -moves\n")
	fmt.Fprintf(os.Stderr, "  -perft N     Count move paths; add -divide for per-move counts\n")
	fmt.Fprintf(os.Stderr, "  -crosscheck  Compare with third-party move generators\n")
	fmt.Fprintf(os.Stderr, "  -analyze F   Report on every FEN in F\n")
	fmt.Fprintf(os.Stderr, "  -serve ADDR  Run the HTTP game service\n")
}
