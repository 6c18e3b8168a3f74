package game

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// PrintBoard prints the board to Out before asking its player for a move.
type PrintBoard struct {
	Player Player
	Out    io.Writer
}

// ChooseMove implements Player.
func (p PrintBoard) ChooseMove(ctx context.Context, board *chess.Board, history *engine.History) (chess.Move, error) {
	fmt.Fprintf(p.Out, "%s\n", board)
	return p.Player.ChooseMove(ctx, board, history)
}

// PrintMoves prints each move its player chooses to Out.
type PrintMoves struct {
	Player Player
	Out    io.Writer
}

// ChooseMove implements Player.
func (p PrintMoves) ChooseMove(ctx context.Context, board *chess.Board, history *engine.History) (chess.Move, error) {
	m, err := p.Player.ChooseMove(ctx, board, history)
	if err == nil {
		fmt.Fprintln(p.Out, m)
	}
	return m, err
}

// ManualStep waits for a line on its reader before each move, so a game
// between programs can be followed one move at a time.
type ManualStep struct {
	Player Player
	in     *bufio.Reader
}

// NewManualStep wraps player, pausing for a line from r before each move.
func NewManualStep(player Player, r io.Reader) *ManualStep {
	return &ManualStep{Player: player, in: lineReader(r)}
}

// ChooseMove implements Player.
func (p *ManualStep) ChooseMove(ctx context.Context, board *chess.Board, history *engine.History) (chess.Move, error) {
	if _, err := p.in.ReadString('\n'); err != nil && err != io.EOF {
		return chess.Move{}, err
	}
	return p.Player.ChooseMove(ctx, board, history)
}
