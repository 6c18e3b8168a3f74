package worker

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Analyzer parses each position, classifies it and searches it when the
// game is still going.
type Analyzer struct {
	Searcher *search.Searcher
	Depth    int
}

// Process analyses one work item. It satisfies ProcessFunc.
func (a *Analyzer) Process(ctx context.Context, item WorkItem) ProcessResult {
	res := ProcessResult{Index: item.Index, FEN: item.FEN}
	board, err := engine.NewBoardFromFEN(item.FEN)
	if err != nil {
		res.Err = errors.Wrapf(err, "position %d", item.Index+1)
		return res
	}
	res.Board = board
	res.Outcome = engine.DetermineOutcome(board, nil)
	if res.Outcome.IsOver() {
		return res
	}
	res.Search, err = a.Searcher.Search(ctx, board, nil, a.Depth)
	if err != nil {
		res.Err = errors.Wrapf(err, "position %d", item.Index+1)
	}
	return res
}
