package worker

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Run processes every item on a new pool and returns the results ordered
// by item index. Cancelling ctx stops the pool: items not yet processed are
// dropped and ctx.Err() is returned with the partial results.
func Run(ctx context.Context, items []WorkItem, processFunc ProcessFunc, opts ...PoolOption) ([]ProcessResult, error) {
	pool := NewPoolWithOptions(processFunc, opts...)
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()

	go func() {
		for _, item := range items {
			if ctx.Err() != nil {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for result := range pool.Results() {
		results = append(results, result)
	}
	slices.SortFunc(results, func(a, b ProcessResult) int {
		return a.Index - b.Index
	})
	return results, ctx.Err()
}

// perftSubtree counts the leaves below item.Move played in item.Position.
func perftSubtree(item WorkItem) ProcessResult {
	child := engine.ApplyMove(item.Position, item.Move)
	return ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Nodes: engine.Perft(&child, item.Depth-1),
	}
}

// Divide is engine.Divide with one work item per root move. Entries come
// back in legal move order.
func Divide(ctx context.Context, pos *chess.Position, depth int, opts ...PoolOption) ([]engine.DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}

	moves := engine.LegalMoves(pos)
	items := make([]WorkItem, len(moves))
	for i, move := range moves {
		items[i] = WorkItem{Index: i, Position: *pos, Move: move, Depth: depth}
	}

	results, err := Run(ctx, items, perftSubtree, opts...)
	if err != nil {
		return nil, err
	}
	entries := make([]engine.DivideEntry, len(results))
	for i, r := range results {
		entries[i] = engine.DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries, nil
}

// Perft is engine.Perft split across the pool by root move.
func Perft(ctx context.Context, pos *chess.Position, depth int, opts ...PoolOption) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	entries, err := Divide(ctx, pos, depth, opts...)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, entry := range entries {
		total += entry.Nodes
	}
	return total, nil
}
