package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// TerminalPlayer asks a person for moves. It reads the square of the
// piece to move, lists that piece's moves, then reads the target square.
// A full coordinate move such as e2e4 is accepted at the first prompt.
type TerminalPlayer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPlayer creates a terminal player reading from r and writing
// prompts to w. Players sharing one *bufio.Reader take turns reading it.
func NewTerminalPlayer(r io.Reader, w io.Writer) *TerminalPlayer {
	return &TerminalPlayer{in: lineReader(r), out: w}
}

// ChooseMove implements Player. It returns io.ErrUnexpectedEOF if the
// input ends before a legal move is given.
func (p *TerminalPlayer) ChooseMove(ctx context.Context, board *chess.Board, _ *engine.History) (chess.Move, error) {
	legal := engine.LegalMoves(board)
	if len(legal) == 0 {
		return chess.Move{}, errors.ErrGameOver
	}
	for {
		if err := ctx.Err(); err != nil {
			return chess.Move{}, err
		}
		line, err := p.prompt("What piece to move?")
		if err != nil {
			return chess.Move{}, err
		}
		if len(line) >= 4 {
			m, err := engine.ParseMove(board, line)
			if err != nil {
				fmt.Fprintf(p.out, "%v\n", err)
				continue
			}
			return m, nil
		}

		from, err := chess.ParseSquare(line)
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		piece := board.Get(from)
		if !piece.IsColoured() || chess.ExtractColour(piece) != board.ToMove {
			fmt.Fprintln(p.out, "That is not one of your pieces.")
			continue
		}
		var candidates []chess.Move
		for _, m := range legal {
			if m.From == from {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 0 {
			fmt.Fprintln(p.out, "That piece has no moves.")
			continue
		}
		for _, m := range candidates {
			fmt.Fprintln(p.out, m)
		}

		line, err = p.prompt("Where to move the piece?")
		if err != nil {
			return chess.Move{}, err
		}
		to, err := chess.ParseSquare(line)
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		if m, ok, err := p.pickTarget(candidates, to); err != nil {
			return chess.Move{}, err
		} else if ok {
			return m, nil
		}
	}
}

// pickTarget selects the candidate landing on to, asking for the
// promotion piece when there is more than one.
func (p *TerminalPlayer) pickTarget(candidates []chess.Move, to chess.Square) (chess.Move, bool, error) {
	var matches []chess.Move
	for _, m := range candidates {
		if m.To == to {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return chess.Move{}, false, nil
	case 1:
		return matches[0], true, nil
	}
	line, err := p.prompt("Promote to (q, r, b, n)?")
	if err != nil {
		return chess.Move{}, false, err
	}
	if len(line) != 1 {
		return chess.Move{}, false, nil
	}
	promo := chess.PieceFromLetter(line[0])
	for _, m := range matches {
		if m.Promotion == promo {
			return m, true, nil
		}
	}
	return chess.Move{}, false, nil
}

// prompt writes text and reads one trimmed, lowercased line.
func (p *TerminalPlayer) prompt(text string) (string, error) {
	fmt.Fprintln(p.out, text)
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", io.ErrUnexpectedEOF
	}
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading move")
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

// lineReader returns r itself when it is already buffered.
func lineReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}
