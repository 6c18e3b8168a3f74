// Package game drives a game of chess between two players.
package game

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// DefaultMaxPlies caps a game that no rule ends.
const DefaultMaxPlies = 400

// Result summarises a finished game.
type Result struct {
	Outcome engine.Outcome
	Moves   []chess.Move
	// Truncated is set when the game stopped at the ply cap while still
	// in progress.
	Truncated bool
}

// Game holds the position, history and players of one game. The game
// owns its board; players see it read-only.
type Game struct {
	white, black Player
	maxPlies     int
	log          io.Writer
	verbosity    int

	board   chess.Board
	history *engine.History
	moves   []chess.Move
}

// Option configures a Game.
type Option func(*Game)

// WithMaxPlies stops the game after n half-moves.
func WithMaxPlies(n int) Option {
	return func(g *Game) {
		if n >= 1 {
			g.maxPlies = n
		}
	}
}

// WithLog writes progress to w: the result at verbosity 1 and every move
// with the board at verbosity 2.
func WithLog(w io.Writer, verbosity int) Option {
	return func(g *Game) {
		g.log = w
		g.verbosity = verbosity
	}
}

// New creates a game from start, which is copied. A nil start means the
// initial position.
func New(start *chess.Board, white, black Player, opts ...Option) *Game {
	if start == nil {
		start = engine.NewInitialBoard()
	}
	g := &Game{
		white:    white,
		black:    black,
		maxPlies: DefaultMaxPlies,
		board:    *start,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.history = engine.NewHistory(&g.board)
	return g
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	b := g.board
	return &b
}

// History returns the positions reached so far, starting position first.
func (g *Game) History() *engine.History {
	return g.history.Clone()
}

// Moves returns the moves played so far.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// Outcome classifies the current position.
func (g *Game) Outcome() engine.Outcome {
	return engine.DetermineOutcome(&g.board, g.history)
}

// Step asks the side to move for a move and plays it. It fails with
// errors.ErrGameOver once the game has ended, and with an
// errors.IllegalMoveError if the player returns an illegal move.
func (g *Game) Step(ctx context.Context) (chess.Move, error) {
	if outcome := g.Outcome(); outcome.IsOver() {
		return chess.Move{}, errors.Wrap(errors.ErrGameOver, outcome.String())
	}
	player := g.white
	if g.board.ToMove == chess.Black {
		player = g.black
	}

	view := g.board
	m, err := player.ChooseMove(ctx, &view, g.history.Clone())
	if err != nil {
		return chess.Move{}, errors.Wrapf(err, "%v to move", g.board.ToMove)
	}
	next, err := engine.Apply(&g.board, m)
	if err != nil {
		return chess.Move{}, err
	}

	g.board = next
	g.history.Push(&g.board)
	g.moves = append(g.moves, m)
	g.logf(2, "%d. %s\n%s\n", len(g.moves), m, g.board.Render(m.From, m.To))
	return m, nil
}

// Play runs the game until an outcome is reached, the ply cap is hit, ctx
// is cancelled or a player fails.
func (g *Game) Play(ctx context.Context) (Result, error) {
	for len(g.moves) < g.maxPlies {
		if g.Outcome().IsOver() {
			break
		}
		if _, err := g.Step(ctx); err != nil {
			return g.result(), err
		}
	}

	res := g.result()
	g.logf(2, "%d positions, %d distinct, most repeated %d times\n",
		g.history.Len(), g.history.Distinct(), g.history.MaxRepetitions())
	if res.Truncated {
		g.logf(1, "Game stopped after %d plies\n", len(g.moves))
	} else {
		g.logf(1, "Game over: %s after %d moves\n", res.Outcome, fullMoves(len(g.moves)))
	}
	return res, nil
}

func (g *Game) result() Result {
	outcome := g.Outcome()
	return Result{
		Outcome:   outcome,
		Moves:     g.Moves(),
		Truncated: !outcome.IsOver() && len(g.moves) >= g.maxPlies,
	}
}

func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.log == nil || g.verbosity < level {
		return
	}
	fmt.Fprintf(g.log, format, args...)
}

func fullMoves(plies int) int {
	return (plies + 1) / 2
}
