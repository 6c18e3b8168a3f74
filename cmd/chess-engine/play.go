package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// newPlayer builds the player of one side. Human players read their moves
// from in and see the board before each move.
func newPlayer(kind config.PlayerKind, cfg *config.Config, searcher *search.Searcher, seed int64, in io.Reader) game.Player {
	var p game.Player
	switch kind {
	case config.HumanPlayer:
		p = game.PrintBoard{Player: game.NewTerminalPlayer(in, cfg.OutputFile), Out: cfg.OutputFile}
	case config.RandomPlayer:
		p = game.NewRandomPlayer(seed)
	default:
		p = game.NewEnginePlayer(searcher, cfg.Search.Depth)
	}
	return game.PrintMoves{Player: p, Out: cfg.OutputFile}
}

// runPlay plays a game between the configured players and prints the
// result.
func runPlay(ctx context.Context, cfg *config.Config, in io.Reader, step bool) error {
	board, err := startBoard(cfg)
	if err != nil {
		return err
	}
	searcher, err := newSearcher(cfg)
	if err != nil {
		return err
	}

	// Human players and step pauses share one buffered reader.
	in = bufio.NewReader(in)
	white := newPlayer(cfg.Play.White, cfg, searcher, cfg.Play.Seed, in)
	black := newPlayer(cfg.Play.Black, cfg, searcher, cfg.Play.Seed+1, in)
	if step {
		white = game.NewManualStep(white, in)
		black = game.NewManualStep(black, in)
	}

	g := game.New(board, white, black,
		game.WithMaxPlies(cfg.Play.MaxPlies),
		game.WithLog(cfg.LogFile, cfg.Verbosity),
	)
	res, err := g.Play(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cfg.OutputFile, "%s\n", g.Board())
	if res.Truncated {
		fmt.Fprintf(cfg.OutputFile, "* Stopped after %d plies\n", len(res.Moves))
		return nil
	}
	fmt.Fprintf(cfg.OutputFile, "%s %s\n", res.Outcome.Result(), res.Outcome)
	return nil
}
