// Package search finds the best move of a position with a fixed-depth
// negamax alpha-beta search.
package search

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/eval"
)

// pollInterval is how many nodes are searched between context checks.
const pollInterval = 1024

// Result is the outcome of a search.
type Result struct {
	// Move is the best move, or nil when the position has no legal move.
	Move *chess.Move
	// Score is from the side to move's point of view, in centipawns or
	// as a mate score (see Mate).
	Score int
	Depth int
	Nodes uint64
	// PV is the expected line starting with Move.
	PV []chess.Move
}

// Searcher runs searches with a fixed evaluator and options. A Searcher
// holds no per-search state and may be used from several goroutines.
type Searcher struct {
	eval     eval.Evaluator
	workers  int
	ordering bool
}

// NewSearcher creates a searcher scoring leaves with e.
func NewSearcher(e eval.Evaluator, opts ...Option) *Searcher {
	s := &Searcher{eval: e, workers: 1, ordering: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns the best move of board found by searching depth plies.
// Positions that repeat three times across history and the search path,
// that reach the fifty-move limit, or that lack mating material score as
// draws below the root. history may be nil.
//
// When several moves share the best score, the first in search order
// wins: captures and promotions before quiet moves (when ordering is
// enabled), otherwise the order of engine.LegalMoves. The parallel split
// returns the same move and score as a sequential search.
//
// Depth 0 returns the static evaluation with no move. A negative depth
// fails with errors.ErrInvalidConfig, and a cancelled ctx with ctx.Err().
// The board is not modified.
func (s *Searcher) Search(ctx context.Context, board *chess.Board, history *engine.History, depth int) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("search depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	root := *board
	path := history.Clone()
	if last, ok := path.Last(); !ok || last != root.Zobrist {
		path.Push(&root)
	}

	if depth == 0 {
		return Result{Score: eval.Relative(s.eval, &root), Nodes: 1}, nil
	}

	moves := engine.LegalMoves(&root)
	if len(moves) == 0 {
		score := 0
		if engine.IsInCheck(&root, root.ToMove) {
			score = lossIn(0)
		}
		return Result{Score: score, Depth: depth, Nodes: 1}, nil
	}
	if s.ordering {
		orderMoves(moves)
	}

	if s.workers > 1 && len(moves) > 1 {
		return s.searchParallel(ctx, &root, path, moves, depth)
	}

	w := s.newWorker(ctx, &root, path)
	best, err := w.searchRoot(moves, depth)
	if err != nil {
		return Result{}, err
	}
	best.Nodes = w.nodes + 1
	return best, nil
}

// Search searches board to depth with the material evaluator, no
// history and no cancellation.
func Search(board *chess.Board, depth int) (Result, error) {
	return NewSearcher(eval.Material{}).Search(context.Background(), board, nil, depth)
}

// worker owns one board and path for the duration of a search.
type worker struct {
	ctx      context.Context
	eval     eval.Evaluator
	board    *chess.Board
	path     *engine.History
	ordering bool
	nodes    uint64
}

func (s *Searcher) newWorker(ctx context.Context, board *chess.Board, path *engine.History) *worker {
	b := *board
	return &worker{
		ctx:      ctx,
		eval:     s.eval,
		board:    &b,
		path:     path.Clone(),
		ordering: s.ordering,
	}
}

// searchRoot searches the root moves in order with a narrowing window.
func (w *worker) searchRoot(moves []chess.Move, depth int) (Result, error) {
	alpha, beta := -infinity, infinity
	result := Result{Score: -infinity, Depth: depth}
	for i := range moves {
		score, line, err := w.child(moves[i], depth-1, alpha, beta, 1)
		if err != nil {
			return Result{}, err
		}
		if score > result.Score {
			m := moves[i]
			result.Move = &m
			result.Score = score
			result.PV = append([]chess.Move{m}, line...)
			if score > alpha {
				alpha = score
			}
		}
	}
	return result, nil
}

// child plays m, searches the resulting position at the given height
// and returns its score from the mover's point of view along with the
// line that follows. alpha and beta are from the mover's point of view.
func (w *worker) child(m chess.Move, depth, alpha, beta, height int) (int, []chess.Move, error) {
	var (
		score int
		line  []chess.Move
		err   error
	)
	engine.WithMove(w.board, m, func() {
		w.path.Push(w.board)
		defer w.path.Pop()
		score, line, err = w.alphaBeta(depth, -beta, -alpha, height)
	})
	return -score, line, err
}

// alphaBeta is a fail-hard negamax search of the current board. height
// is the distance from the root in plies.
func (w *worker) alphaBeta(depth, alpha, beta, height int) (int, []chess.Move, error) {
	w.nodes++
	if w.nodes%pollInterval == 0 {
		if err := w.ctx.Err(); err != nil {
			return 0, nil, err
		}
	}

	b := w.board
	if depth <= 0 {
		if !engine.HasLegalMoves(b) {
			return w.terminal(height), nil, nil
		}
		if w.isDraw() {
			return 0, nil, nil
		}
		return eval.Relative(w.eval, b), nil, nil
	}

	moves := engine.LegalMoves(b)
	if len(moves) == 0 {
		return w.terminal(height), nil, nil
	}
	if w.isDraw() {
		return 0, nil, nil
	}
	if w.ordering {
		orderMoves(moves)
	}

	var pv []chess.Move
	for _, m := range moves {
		score, line, err := w.child(m, depth-1, alpha, beta, height+1)
		if err != nil {
			return 0, nil, err
		}
		if score >= beta {
			return beta, nil, nil
		}
		if score > alpha {
			alpha = score
			pv = append([]chess.Move{m}, line...)
		}
	}
	return alpha, pv, nil
}

// terminal scores a position without legal moves: mate or stalemate.
func (w *worker) terminal(height int) int {
	if engine.IsInCheck(w.board, w.board.ToMove) {
		return lossIn(height)
	}
	return 0
}

// isDraw applies the draw rules to a non-root position whose key is the
// last entry of the path.
func (w *worker) isDraw() bool {
	b := w.board
	return engine.HasInsufficientMaterial(b) ||
		engine.IsFiftyMoveDraw(b) ||
		w.path.Count(b.Zobrist) >= engine.RepetitionLimit
}
