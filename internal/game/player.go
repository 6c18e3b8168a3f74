package game

import (
	"context"
	"math/rand"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// Player chooses the next move for the side to move. history ends with
// board. Implementations must not modify board.
type Player interface {
	ChooseMove(ctx context.Context, board *chess.Board, history *engine.History) (chess.Move, error)
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(ctx context.Context, board *chess.Board, history *engine.History) (chess.Move, error)

// ChooseMove calls f.
func (f PlayerFunc) ChooseMove(ctx context.Context, board *chess.Board, history *engine.History) (chess.Move, error) {
	return f(ctx, board, history)
}

// EnginePlayer plays the best move found by a fixed-depth search.
type EnginePlayer struct {
	Searcher *search.Searcher
	Depth    int

	// Last is the result of the most recent search.
	Last search.Result
}

// NewEnginePlayer creates an engine player searching depth plies.
func NewEnginePlayer(s *search.Searcher, depth int) *EnginePlayer {
	return &EnginePlayer{Searcher: s, Depth: depth}
}

// ChooseMove implements Player.
func (p *EnginePlayer) ChooseMove(ctx context.Context, board *chess.Board, history *engine.History) (chess.Move, error) {
	depth := p.Depth
	if depth < 1 {
		depth = 1
	}
	res, err := p.Searcher.Search(ctx, board, history, depth)
	if err != nil {
		return chess.Move{}, err
	}
	p.Last = res
	if res.Move == nil {
		return chess.Move{}, errors.ErrGameOver
	}
	return *res.Move, nil
}

// RandomPlayer plays a uniformly random legal move. It is not safe for
// concurrent use.
type RandomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer creates a random player; the same seed gives the same
// sequence of choices.
func NewRandomPlayer(seed int64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

// ChooseMove implements Player.
func (p *RandomPlayer) ChooseMove(_ context.Context, board *chess.Board, _ *engine.History) (chess.Move, error) {
	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		return chess.Move{}, errors.ErrGameOver
	}
	return moves[p.rng.Intn(len(moves))], nil
}
