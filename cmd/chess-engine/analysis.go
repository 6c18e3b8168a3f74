package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

// runAnalysis searches the starting position and prints the best move.
func runAnalysis(ctx context.Context, cfg *config.Config) error {
	board, err := startBoard(cfg)
	if err != nil {
		return err
	}
	if outcome := engine.DetermineOutcome(board, nil); outcome.IsOver() {
		fmt.Fprintf(cfg.OutputFile, "%s %s\n", outcome.Result(), outcome)
		return nil
	}
	searcher, err := newSearcher(cfg)
	if err != nil {
		return err
	}

	cfg.Logf(2, "%s\n", board)
	start := time.Now()
	res, err := searcher.Search(ctx, board, nil, cfg.Search.Depth)
	if err != nil {
		return err
	}
	cfg.Logf(1, "Searched %d nodes in %v\n", res.Nodes, time.Since(start).Round(time.Millisecond))
	printResult(cfg.OutputFile, res)
	return nil
}

// printResult writes a search result as bestmove, score and pv lines.
func printResult(w io.Writer, res search.Result) {
	if res.Move == nil {
		fmt.Fprintf(w, "bestmove none\n")
	} else {
		fmt.Fprintf(w, "bestmove %s\n", res.Move)
	}
	fmt.Fprintf(w, "score %s\n", formatScore(res.Score))
	fmt.Fprintf(w, "depth %d nodes %d\n", res.Depth, res.Nodes)
	if len(res.PV) > 0 {
		fmt.Fprintf(w, "pv %s\n", formatLine(res.PV))
	}
}

// formatScore prints centipawns, or "mate N" for mate scores.
func formatScore(score int) string {
	if search.IsMateScore(score) {
		return fmt.Sprintf("mate %d", search.MateIn(score))
	}
	return fmt.Sprintf("cp %d", score)
}

func formatLine(moves []chess.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// runPerft prints the node count of the starting position to depth.
func runPerft(cfg *config.Config, depth int, divide bool) error {
	board, err := startBoard(cfg)
	if err != nil {
		return err
	}
	start := time.Now()
	if divide {
		var total uint64
		for _, entry := range engine.Divide(board, depth) {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", entry.Move, entry.Nodes)
			total += entry.Nodes
		}
		fmt.Fprintf(cfg.OutputFile, "\nNodes: %d\n", total)
	} else {
		fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, engine.Perft(board, depth))
	}
	cfg.Logf(1, "perft took %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}
