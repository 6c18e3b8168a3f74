// Package eval scores chess positions in centipawns. Scores are from
// White's point of view: positive favours White.
package eval

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Evaluator assigns a static score to a position. Implementations must
// be deterministic and antisymmetric under Board.Mirror: evaluating the
// mirrored position gives the negated score.
type Evaluator interface {
	Evaluate(board *chess.Board) int
}

// Func adapts an ordinary function to the Evaluator interface.
type Func func(board *chess.Board) int

// Evaluate calls f.
func (f Func) Evaluate(board *chess.Board) int {
	return f(board)
}

// Relative returns the score of the position for the side to move.
func Relative(e Evaluator, board *chess.Board) int {
	score := e.Evaluate(board)
	if board.ToMove == chess.Black {
		return -score
	}
	return score
}

// Names lists the evaluators accepted by New.
var Names = []string{"material", "pst"}

// New returns the evaluator registered under name.
func New(name string) (Evaluator, error) {
	switch strings.ToLower(name) {
	case "material", "":
		return Material{}, nil
	case "pst":
		return NewPieceSquare(), nil
	}
	return nil, fmt.Errorf("unknown evaluator %q (want one of %s): %w",
		name, strings.Join(Names, ", "), errors.ErrInvalidConfig)
}
