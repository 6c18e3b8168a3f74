// chess-engine searches chess positions, counts move trees and plays games.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/eval"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run dispatches to the mode selected by the configuration.
func run(ctx context.Context, cfg *config.Config, stdin io.Reader) error {
	switch {
	case *perftDepth > 0:
		return runPerft(cfg, *perftDepth, *divideOutput)
	case cfg.Batch.File != "":
		return runBatch(ctx, cfg)
	case cfg.Play.Enabled:
		return runPlay(ctx, cfg, stdin, *stepMoves)
	default:
		return runAnalysis(ctx, cfg)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// startBoard returns the configured starting position.
func startBoard(cfg *config.Config) (*chess.Board, error) {
	if cfg.FEN == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(cfg.FEN)
}

// newSearcher builds a searcher from the search settings.
func newSearcher(cfg *config.Config) (*search.Searcher, error) {
	ev, err := eval.New(cfg.Search.Evaluator)
	if err != nil {
		return nil, err
	}
	return search.NewSearcher(ev,
		search.WithWorkers(cfg.Search.Workers),
		search.WithMoveOrdering(cfg.Search.MoveOrdering),
	), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Searches a chess position, counts its move tree or plays a game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (first match wins):\n")
	fmt.Fprintf(os.Stderr, "  -perft N        node count of the position\n")
	fmt.Fprintf(os.Stderr, "  -batch file     best move of every FEN line\n")
	fmt.Fprintf(os.Stderr, "  -play w,b       game between engine, random or human players\n")
	fmt.Fprintf(os.Stderr, "  (none)          best move of -fen\n")
	fmt.Fprintf(os.Stderr, "\nMoves are entered and printed in coordinate form: e2e4, e7e8q.\n")
}
