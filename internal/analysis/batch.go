package analysis

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// BatchResult is the outcome for one input line.
type BatchResult struct {
	Line      int // 1-based line number in the input
	FEN       string
	Report    *Report
	Duplicate bool
	Err       error
}

// BatchStats summarises a batch run.
type BatchStats struct {
	Positions  int
	Terminal   int // positions with no play left: mate, stalemate or a draw by rule
	Errors     int
	Duplicates int
}

// ReadFENs reads one FEN per line, skipping blank lines and lines starting
// with '#'. The returned items carry 1-based line numbers as their index.
func ReadFENs(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, worker.WorkItem{Index: line, FEN: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading FEN input")
	}
	return items, nil
}

// Batch analyzes every item on a worker pool sized by cfg.Perft.Workers.
// With cfg.Duplicate.Suppress set, positions already seen in the batch are
// flagged as duplicates and not analyzed. Which of two identical lines
// counts as the original depends on scheduling; the number of duplicates
// does not. Results come back in input order. Cancelling ctx stops the run
// and returns what was analyzed so far with ctx.Err().
func Batch(ctx context.Context, items []worker.WorkItem, cfg *config.Config) ([]BatchResult, BatchStats, error) {
	var detector *hashing.ThreadSafeDuplicateDetector
	if cfg.Duplicate.Suppress {
		detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.MaxCapacity)
	}

	process := func(item worker.WorkItem) worker.ProcessResult {
		pos, err := engine.ParseFEN(item.FEN)
		if err != nil {
			return worker.ProcessResult{Index: item.Index, Error: err}
		}
		if detector != nil && detector.CheckAndAdd(&pos) {
			return worker.ProcessResult{Index: item.Index, Duplicate: true}
		}
		return worker.ProcessResult{Index: item.Index, Payload: Analyze(&pos)}
	}

	fens := make(map[int]string, len(items))
	for _, item := range items {
		fens[item.Index] = item.FEN
	}

	var stats BatchStats
	processed, err := worker.Run(ctx, items, process, worker.WithWorkers(cfg.Perft.Workers))
	results := make([]BatchResult, len(processed))
	for i, p := range processed {
		results[i] = BatchResult{Line: p.Index, FEN: fens[p.Index], Duplicate: p.Duplicate, Err: p.Error}
		if report, ok := p.Payload.(*Report); ok {
			results[i].Report = report
		}

		switch {
		case p.Error != nil:
			stats.Errors++
			if cfg.Verbosity > 0 {
				fmt.Fprintf(cfg.LogFile, "line %d: %v\n", p.Index, p.Error)
			}
		case p.Duplicate:
			stats.Duplicates++
		default:
			stats.Positions++
			if results[i].Report != nil && results[i].Report.IsTerminal() {
				stats.Terminal++
			}
		}
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d positions analyzed (%d terminal), %d errors, %d duplicates\n",
			stats.Positions, stats.Terminal, stats.Errors, stats.Duplicates)
	}
	return results, stats, err
}
