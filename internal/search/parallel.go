package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// rootScore is the exact result of searching below one root move.
type rootScore struct {
	score int
	line  []chess.Move
	nodes uint64
}

// searchParallel gives each root move its own worker, board copy and
// path, searches it with a full window so every score is exact, and
// takes the best score with ties going to the earlier move.
func (s *Searcher) searchParallel(ctx context.Context, root *chess.Board, path *engine.History, moves []chess.Move, depth int) (Result, error) {
	scores := make([]rootScore, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range moves {
		i := i
		g.Go(func() error {
			w := s.newWorker(ctx, root, path)
			score, line, err := w.child(moves[i], depth-1, -infinity, infinity, 1)
			if err != nil {
				return err
			}
			scores[i] = rootScore{score: score, line: line, nodes: w.nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{Score: -infinity, Depth: depth, Nodes: 1}
	for i, rs := range scores {
		result.Nodes += rs.nodes
		if rs.score > result.Score {
			m := moves[i]
			result.Move = &m
			result.Score = rs.score
			result.PV = append([]chess.Move{m}, rs.line...)
		}
	}
	return result, nil
}
