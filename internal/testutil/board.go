package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MustBoard parses a FEN string, failing the test on error.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// MustApply plays coordinate moves in order from board and returns the
// final position along with the history of every position reached,
// starting position included. board itself is not modified.
func MustApply(t testing.TB, board *chess.Board, moves ...string) (*chess.Board, *engine.History) {
	t.Helper()
	current := *board
	history := engine.NewHistory(&current)
	for _, text := range moves {
		m, err := engine.ParseMove(&current, text)
		if err != nil {
			t.Fatalf("ParseMove(%q) in %s: %v", text, engine.BoardToFEN(&current), err)
		}
		current, err = engine.Apply(&current, m)
		if err != nil {
			t.Fatalf("Apply(%v): %v", m, err)
		}
		history.Push(&current)
	}
	return &current, history
}

// MoveStrings returns the coordinate text of the moves, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}
